// Package app wires the command-line interface to the session engine.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/HSellappan/RailFocus-sub001/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the railfocus app instance.
func Get() *cli.App {
	railfocusApp := &cli.App{
		Name: "railfocus",
		Usage: `
		RailFocus is a focus timer themed as train journeys: pick an origin,
		a destination, and a duration, then stay aboard until you arrive.
		Completed journeys build your streak and focus totals.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "Report journey statistics. Defaults to a reporting period of 7 days",
				Flags: []cli.Flag{
					periodFlag,
					sinceFlag,
					startFlag,
					endFlag,
					tagFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:  "history",
				Usage: "List recorded journeys, most recent first",
				Flags: []cli.Flag{
					countFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "stations",
				Usage:  "List the station catalog",
				Action: stationsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			fromFlag,
			toFlag,
			durationFlag,
			tagFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return railfocusApp
}
