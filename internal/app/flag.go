package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studyfocus/internal/config"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Print the countdown to stdout instead of starting the interactive timer",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Report statistics as of this day (e.g. 'yesterday', '2024-05-06'). Defaults to today",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	limitFlag = &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of sessions to print. Use 0 for all (default from config)",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Choose the timer settings from a menu",
	}
)

// timerFlags change the persisted timer settings. Each command gets its own
// flag values.
func timerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    config.FlagWork,
			Aliases: []string{"w"},
			Usage:   "Work duration in minutes (default: 25)",
		},
		&cli.IntFlag{
			Name:    config.FlagShortBreak,
			Aliases: []string{"s"},
			Usage:   "Short break duration in minutes (default: 5)",
		},
		&cli.IntFlag{
			Name:    config.FlagLongBreak,
			Aliases: []string{"l"},
			Usage:   "Long break duration in minutes (default: 15)",
		},
		&cli.IntFlag{
			Name:    config.FlagLongBreakInterval,
			Aliases: []string{"int"},
			Usage:   "The number of work sessions before a long break (default: 4)",
		},
	}
}
