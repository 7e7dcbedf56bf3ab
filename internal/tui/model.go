// Package tui renders the focus timer in the terminal
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/stats"
	"github.com/ayoisaiah/studyfocus/internal/timer"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

// tickMsg drives the countdown once per second. A message whose id is not
// the model's current tick id belongs to an earlier run and is dropped.
type tickMsg struct {
	id int
}

// Options control how the model is displayed.
type Options struct {
	Messages       config.MessageConfig
	DarkTheme      bool
	TwentyFourHour bool
}

// Model is the bubbletea model for the timer screen. The controller it
// wraps must be scheduled by sched so that every tick runs on the
// bubbletea event loop.
type Model struct {
	ctrl     *timer.Controller
	sched    *timer.ManualScheduler
	reader   *stats.Reader
	clock    timeutil.Clock
	notice   string
	style    style
	help     help.Model
	progress progress.Model
	opts     Options
	state    timer.State
	today    stats.DerivedStats
	worked   int // all-time work sessions
	tickID   int
}

// New returns a model over ctrl.
func New(
	ctrl *timer.Controller,
	sched *timer.ManualScheduler,
	reader *stats.Reader,
	clock timeutil.Clock,
	opts Options,
) *Model {
	m := &Model{
		ctrl:     ctrl,
		sched:    sched,
		reader:   reader,
		clock:    clock,
		opts:     opts,
		style:    newStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithGradient(workColor, breakColor)),
		state:    ctrl.State(),
		today:    reader.Stats(clock.Now()),
		worked:   reader.Count(config.Work),
	}

	ctrl.OnSessionComplete(m.sessionCompleted)

	return m
}

// sessionCompleted runs inside Fire, on the event loop.
func (m *Model) sessionCompleted(sess session.Session) {
	m.notice = m.opts.Messages.Message(sess.Mode)
	m.today = m.reader.Stats(m.clock.Now())
	m.worked = m.reader.Count(config.Work)
}

func tick(id int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// rearm invalidates any pending tick and, if the timer is running, arms a
// fresh one a full second from now.
func (m *Model) rearm() tea.Cmd {
	m.tickID++

	if m.state.RunState != timer.Running {
		return nil
	}

	return tick(m.tickID)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug("key press", slog.String("msg", spew.Sdump(msg)))

	switch {
	case key.Matches(msg, defaultKeymap.start):
		if m.state.RunState == timer.Running {
			return m, nil
		}

		m.notice = ""
		m.ctrl.Start()

	case key.Matches(msg, defaultKeymap.pause):
		m.ctrl.Pause()

	case key.Matches(msg, defaultKeymap.reset):
		m.notice = ""
		m.ctrl.Reset()

	case key.Matches(msg, defaultKeymap.quit):
		m.ctrl.Close()

		return m, tea.Batch(tea.ClearScreen, tea.Quit)

	default:
		return m, nil
	}

	m.state = m.ctrl.State()

	return m, m.rearm()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}

		m.sched.Fire()
		m.state = m.ctrl.State()

		if m.state.RunState != timer.Running {
			return m, nil
		}

		return m, tick(m.tickID)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
