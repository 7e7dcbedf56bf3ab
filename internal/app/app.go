// Package app defines the studyfocus command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studyfocus/internal/config"
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

// Get retrieves the studyfocus app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "studyfocus",
		Usage: `
		studyfocus is a focus timer for the command-line. Work in timed
		sessions separated by short breaks, with a longer break after every
		few sessions, and keep track of your daily progress.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "stats",
				Usage:  "Print today's sessions, focus time and current streak",
				Flags:  []cli.Flag{dateFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:    "history",
				Aliases: []string{"list"},
				Usage:   "List the most recently completed sessions",
				Flags:   []cli.Flag{limitFlag, jsonFlag},
				Action:  historyAction,
			},
			{
				Name:   "settings",
				Usage:  "Show or change the timer settings",
				Flags:  append(timerFlags(), interactiveFlag, jsonFlag),
				Action: settingsAction,
			},
		},
		Flags: append(
			timerFlags(),
			headlessFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			noColorFlag,
		),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
