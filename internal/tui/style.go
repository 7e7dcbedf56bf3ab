package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/studyfocus/internal/config"
)

const (
	padding  = 2
	maxWidth = 80
)

const (
	workColor      = "#B0DB43"
	breakColor     = "#12EAEA"
	longBreakColor = "#C492B1"
)

type style struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	modes     map[config.Mode]lipgloss.Style
}

func newStyle(dark bool) style {
	text := lipgloss.Color("#1A1A1A")
	faint := lipgloss.Color("#6B6B6B")

	if dark {
		text = lipgloss.Color("#F2F2F2")
		faint = lipgloss.Color("#9E9E9E")
	}

	label := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color(color)).
			Padding(0, 1).
			MarginRight(1)
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(text),
		hint:      lipgloss.NewStyle().Foreground(faint),
		modes: map[config.Mode]lipgloss.Style{
			config.Work:      label(workColor),
			config.Break:     label(breakColor),
			config.LongBreak: label(longBreakColor),
		},
	}
}

func (s style) mode(m config.Mode) lipgloss.Style {
	return s.modes[m]
}
