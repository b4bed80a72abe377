package app

import "github.com/urfave/cli/v2"

var (
	fromFlag = &cli.StringFlag{
		Name:    "from",
		Aliases: []string{"f"},
		Usage:   "Origin station id (see 'railfocus stations')",
	}

	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Destination station id (see 'railfocus stations')",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Journey duration in minutes, or a duration string like '1h30m' (default: 25)",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Tag the journey: work, study, reading, writing, or rest",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"n"},
		Usage:   "Disable the system notification that appears on arrival",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to an mp3, ogg, flac, or wav file to play on arrival. Disable with 'off'",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each journey",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Reporting period: today, yesterday, 7days, 14days, 30days, 90days, 365days, all-time",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Report from a natural-language point in time (e.g. '3 days ago') until now",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Report start date",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Report end date",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output as JSON",
	}

	countFlag = &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"c"},
		Usage:   "Maximum number of journeys to list (0 lists all)",
		Value:   20,
	}
)
