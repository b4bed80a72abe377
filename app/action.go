package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/HSellappan/RailFocus-sub001/coordinator"
	"github.com/HSellappan/RailFocus-sub001/internal/clock"
	"github.com/HSellappan/RailFocus-sub001/internal/config"
	"github.com/HSellappan/RailFocus-sub001/internal/ui"
	"github.com/HSellappan/RailFocus-sub001/journey"
	"github.com/HSellappan/RailFocus-sub001/ledger"
	"github.com/HSellappan/RailFocus-sub001/stats"
	"github.com/HSellappan/RailFocus-sub001/store"
	"github.com/HSellappan/RailFocus-sub001/tui"
)

const (
	envNoColor          = "NO_COLOR"
	envRailFocusNoColor = "RAILFOCUS_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.New(config.WithViperConfig(config.ConfigFilePath()))
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// openLedger connects the datastore and loads the journey history.
func openLedger(cfg *config.Config) (*ledger.Ledger, *slog.Logger, error) {
	logger := config.InitLogging(config.LogFilePath())

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	led, err := ledger.New(db, ledger.Policy{
		CountInterrupted: cfg.Stats.CountInterrupted,
	}, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return led, logger, nil
}

// sortedStations returns the catalog in natural city-name order.
func sortedStations() []journey.Station {
	stations := journey.Catalog()

	sort.Slice(stations, func(i, j int) bool {
		return natural.Less(stations[i].City, stations[j].City)
	})

	return stations
}

// promptRoute asks for the origin, destination, and tag interactively.
func promptRoute(originID, destID *string, tag *journey.Tag) error {
	stations := sortedStations()

	stationOpts := make([]huh.Option[string], 0, len(stations))
	for _, s := range stations {
		stationOpts = append(stationOpts, huh.NewOption(s.City, s.ID))
	}

	tagOpts := []huh.Option[string]{huh.NewOption("none", "")}
	for _, t := range journey.Tags() {
		tagOpts = append(tagOpts, huh.NewOption(string(t), string(t)))
	}

	tagStr := string(*tag)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Origin station").
				Options(stationOpts...).
				Value(originID),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Destination station").
				Options(stationOpts...).
				Value(destID),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Journey tag").
				Options(tagOpts...).
				Value(&tagStr),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	*tag = journey.Tag(tagStr)

	return nil
}

// notifyArrival raises the desktop notification, plays the arrival sound,
// and runs the configured post-journey command.
func notifyArrival(cfg *config.Config, j journey.Journey) {
	if cfg.Notification.Enabled {
		title := "You have arrived in " + j.Destination.City

		msg := fmt.Sprintf(
			"%s complete: %.0f miles of focus.",
			j.Route(),
			j.DistanceMiles,
		)

		if err := beeep.Notify(title, msg, ""); err != nil {
			pterm.Error.Printfln("unable to display notification: %v", err)
		}
	}

	if sound := cfg.Notification.Sound; sound != "" {
		if err := playSound(sound); err != nil {
			pterm.Error.Printfln("unable to play sound: %v", err)
		}
	}

	if err := runSessionCmd(cfg.System.SessionCmd); err != nil {
		pterm.Error.Printfln("session command failed: %v", err)
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}

// defaultAction starts a journey and runs the countdown until arrival or
// interruption.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if ctx.Bool("disable-notification") {
		cfg.Notification.Enabled = false
	}

	if sound := ctx.String("sound"); sound != "" {
		if sound == "off" {
			cfg.Notification.Sound = ""
		} else {
			cfg.Notification.Sound = sound
		}
	}

	if cmd := ctx.String("session-cmd"); cmd != "" {
		cfg.System.SessionCmd = cmd
	}

	originID := ctx.String("from")
	destID := ctx.String("to")
	tag := journey.Tag(ctx.String("tag"))

	if originID == "" || destID == "" {
		originID = firstNonEmptyString(originID, cfg.Journey.DefaultOrigin)
		destID = firstNonEmptyString(destID, cfg.Journey.DefaultDest)

		if err = promptRoute(&originID, &destID, &tag); err != nil {
			return err
		}
	}

	duration := cfg.Journey.DefaultDuration

	if ds := ctx.String("duration"); ds != "" {
		duration, err = config.ParseDuration(ds)
		if err != nil {
			return err
		}
	}

	led, logger, err := openLedger(cfg)
	if err != nil {
		return err
	}

	clk := clock.New()
	coord := coordinator.New(clk, led, logger)

	defer func() {
		_ = coord.Close()
	}()

	coord.OnArrival(func(j journey.Journey) {
		go notifyArrival(cfg, j)
	})

	if _, err = coord.StartJourney(originID, destID, duration, tag); err != nil {
		return err
	}

	_, err = tea.NewProgram(
		tui.New(coord, clk, cfg.Display.TwentyFourHour),
	).Run()

	return err
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()

	opts, err := statsOpts(ctx, now)
	if err != nil {
		return err
	}

	led, _, err := openLedger(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = led.Close()
	}()

	s := &stats.Stats{Opts: opts, Ledger: led}

	s.Compute(now)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	return s.Show(config.Stdout)
}

// historyAction prints a table of recorded journeys, most recent first.
func historyAction(ctx *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	led, _, err := openLedger(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = led.Close()
	}()

	limit := ctx.Int("count")

	if ctx.Bool("json") {
		b, err := json.Marshal(slices.Collect(led.History(limit)))
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if led.Len() == 0 {
		pterm.Println("No journeys recorded yet")
		return nil
	}

	data := [][]string{
		{"DEPARTED", "ROUTE", "TAG", "PLANNED", "FOCUSED", "MILES", "OUTCOME"},
	}

	for j := range led.History(limit) {
		data = append(data, []string{
			j.StartedAt.Format("Jan 02, 2006 03:04 PM"),
			j.Route(),
			string(j.Tag),
			j.PlannedDuration.String(),
			j.ActualElapsed.Round(time.Second).String(),
			fmt.Sprintf("%.0f", j.DistanceMiles),
			string(j.Outcome),
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// stationsAction lists the station catalog.
func stationsAction(_ *cli.Context) error {
	data := [][]string{
		{"ID", "CITY", "LATITUDE", "LONGITUDE"},
	}

	for _, s := range sortedStations() {
		data = append(data, []string{
			s.ID,
			s.City,
			fmt.Sprintf("%.4f", s.Latitude),
			fmt.Sprintf("%.4f", s.Longitude),
		})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

// editConfigAction opens the config file in the user's default editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envRailFocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting railfocus")

	return nil
}
