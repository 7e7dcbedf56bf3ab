package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/studyfocus/internal/config"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Mode colours a in the colour associated with mode.
func Mode(mode config.Mode, a any) string {
	switch mode {
	case config.Break:
		return Cyan(a)
	case config.LongBreak:
		return Magenta(a)
	default:
		return Green(a)
	}
}
