package config

import (
	"github.com/urfave/cli/v2"
)

// Flag names shared by the commands that change timer settings.
const (
	FlagWork              = "work"
	FlagShortBreak        = "short-break"
	FlagLongBreak         = "long-break"
	FlagLongBreakInterval = "long-break-interval"
)

// PartialFromCLI builds a settings update from the timer flags that were
// explicitly set on the command line.
func PartialFromCLI(ctx *cli.Context) Partial {
	var p Partial

	if ctx.IsSet(FlagWork) {
		p.WorkMinutes = Int(ctx.Int(FlagWork))
	}

	if ctx.IsSet(FlagShortBreak) {
		p.BreakMinutes = Int(ctx.Int(FlagShortBreak))
	}

	if ctx.IsSet(FlagLongBreak) {
		p.LongBreakMinutes = Int(ctx.Int(FlagLongBreak))
	}

	if ctx.IsSet(FlagLongBreakInterval) {
		p.SessionsBeforeLongBreak = Int(ctx.Int(FlagLongBreakInterval))
	}

	return p
}

// WithCLIConfig returns an Option that applies command-line overrides for
// notifications and the session command.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		if ctx.Bool("disable-notification") {
			c.Notifications.Enabled = false
		}

		if cmd := ctx.String("session-cmd"); cmd != "" {
			c.Settings.Cmd = cmd
		}

		if ctx.IsSet("limit") {
			c.Settings.HistoryLimit = ctx.Int("limit")
		}

		return nil
	}
}
