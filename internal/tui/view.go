package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/timer"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

func (m *Model) statusView() string {
	switch m.state.RunState {
	case timer.Paused:
		return m.style.secondary.Render("[Paused]")
	case timer.Idle:
		return m.style.secondary.Render("[Ready]")
	}

	timeFormat := "03:04:05 PM"
	if m.opts.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	end := m.clock.Now().Add(time.Duration(m.state.RemainingSeconds) * time.Second)

	return m.style.hint.Render("until " + end.Format(timeFormat))
}

func (m *Model) cycleView() string {
	if m.state.Mode != config.Work {
		return ""
	}

	interval := m.ctrl.Settings().SessionsBeforeLongBreak

	return m.style.hint.Render(
		fmt.Sprintf(" (%d/%d)", m.worked%interval+1, interval),
	)
}

func (m *Model) todayView() string {
	return m.style.hint.Render(fmt.Sprintf(
		"Today: %d sessions, %d min focused, %d day streak",
		m.today.CompletedWorkSessionsToday,
		m.today.TotalFocusMinutesToday,
		m.today.CurrentStreakDays,
	))
}

func (m *Model) helpView() string {
	bindings := []key.Binding{defaultKeymap.start, defaultKeymap.reset, defaultKeymap.quit}

	if m.state.RunState == timer.Running {
		bindings = []key.Binding{defaultKeymap.pause, defaultKeymap.reset, defaultKeymap.quit}
	}

	return m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.style.mode(m.state.Mode).Render(m.state.Mode.Label()))
	s.WriteString(m.statusView())
	s.WriteString(m.cycleView())

	s.WriteString("\n\n")
	s.WriteString(m.style.main.Render(timeutil.FormatCountdown(m.state.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.state.Progress()))

	if m.notice != "" {
		s.WriteString("\n\n" + m.style.secondary.Render(m.notice))
	}

	s.WriteString("\n\n" + m.todayView())
	s.WriteString("\n\n" + m.helpView())

	return m.style.base.Render(s.String())
}
