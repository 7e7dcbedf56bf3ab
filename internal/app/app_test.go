package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/stats"
	"github.com/ayoisaiah/studyfocus/internal/store"
	"github.com/ayoisaiah/studyfocus/internal/timer"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

var now = time.Date(2024, time.May, 6, 9, 30, 0, 0, time.Local)

func plainOutput(t *testing.T) {
	t.Helper()

	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLogHandlerWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(newLogHandler(&buf, "warn"))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("key", "timerSettings"))

	out := buf.String()

	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"kept"`)
	assert.Contains(t, out, `"key":"timerSettings"`)
}

func TestRunSessionCmd(t *testing.T) {
	var got []string

	h := &completionHooks{
		sessionCmd: `notify-send "Session over" --urgency=low`,
		run: func(name string, args ...string) error {
			got = append([]string{name}, args...)
			return nil
		},
	}

	require.NoError(t, h.runSessionCmd())
	assert.Equal(t, []string{"notify-send", "Session over", "--urgency=low"}, got)

	h.sessionCmd = `echo "unterminated`
	assert.ErrorIs(t, h.runSessionCmd(), errSessionCmd)

	got = nil
	h.sessionCmd = ""

	require.NoError(t, h.runSessionCmd())
	assert.Nil(t, got)
}

func TestSendNotification(t *testing.T) {
	type call struct{ title, msg string }

	var calls []call

	h := &completionHooks{
		notify: func(title, msg, _ string) error {
			calls = append(calls, call{title, msg})
			return nil
		},
		messages: config.MessageConfig{
			Work:  "Time for a break",
			Break: "Back to work",
		},
		notifyOn: true,
	}

	require.NoError(t, h.sendNotification(session.Session{Mode: config.Work}))
	require.NoError(t, h.sendNotification(session.Session{Mode: config.Break}))

	assert.Equal(t, []call{
		{"Focus session is finished", "Time for a break"},
		{"Short break is finished", "Back to work"},
	}, calls)

	h.notifyOn = false
	require.NoError(t, h.sendNotification(session.Session{Mode: config.Work}))
	assert.Len(t, calls, 2)
}

func TestHandleAbsorbsFailures(t *testing.T) {
	h := &completionHooks{
		notify: func(_, _, _ string) error {
			return errors.New("no notification daemon")
		},
		run: func(string, ...string) error {
			return errors.New("exit status 1")
		},
		sessionCmd: "false",
		notifyOn:   true,
	}

	assert.NotPanics(t, func() {
		h.handle(session.Session{Mode: config.Work})
	})
}

func TestOpenRecordsFallsBackToMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "studyfocus.db")

	records, closeFn, err := openRecords(path)
	require.NoError(t, err)

	assert.IsType(t, &store.Memory{}, records)
	assert.NoError(t, closeFn())
}

func TestOpenRecordsSecondInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studyfocus.db")

	records, closeFn, err := openRecords(path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = closeFn() })

	assert.IsType(t, &store.Client{}, records)

	_, _, err = openRecords(path)
	assert.ErrorIs(t, err, store.ErrAlreadyRunning)
}

func TestNewEnv(t *testing.T) {
	cfg := &config.Config{
		Timer: config.Settings{
			WorkMinutes:             50,
			BreakMinutes:            10,
			LongBreakMinutes:        30,
			SessionsBeforeLongBreak: 2,
		},
	}

	e := newEnv(cfg, store.NewMemory(), timeutil.Fixed(now))

	assert.Equal(t, cfg.Timer, e.settings.Get())

	e.logger.Log(config.Work, 3000)

	got := e.reader.Stats(now)

	assert.Equal(t, stats.DerivedStats{
		Date:                       "2024-05-06",
		CompletedWorkSessionsToday: 1,
		TotalFocusMinutesToday:     50,
		CurrentStreakDays:          1,
	}, got)
}

func TestPrintSessionsTable(t *testing.T) {
	plainOutput(t)

	sessions := []session.Session{
		{
			ID:          "b",
			Mode:        config.Break,
			Duration:    300,
			CompletedAt: now,
			Date:        "2024-05-06",
		},
		{
			ID:          "a",
			Mode:        config.Work,
			Duration:    1500,
			CompletedAt: now.Add(-5 * time.Minute),
			Date:        "2024-05-06",
		},
	}

	var buf bytes.Buffer

	require.NoError(t, printSessionsTable(&buf, sessions, dateTimeFormat(true)))

	out := buf.String()

	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "May 06, 2024 09:30")
	assert.Contains(t, out, "Short break")
	assert.Contains(t, out, "Focus session")
	assert.Contains(t, out, "25:00")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Short break")), bytes.Index(buf.Bytes(), []byte("Focus session")))
}

func TestPrintStats(t *testing.T) {
	plainOutput(t)

	var buf bytes.Buffer

	err := printStats(&buf, stats.DerivedStats{
		Date:                       "2024-05-06",
		CompletedWorkSessionsToday: 3,
		TotalFocusMinutesToday:     65,
		CurrentStreakDays:          1,
	}, 4)
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "Monday, May 06, 2024")
	assert.Contains(t, out, "1h 5m")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "4 sessions")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printJSON(&buf, config.Defaults()))

	assert.JSONEq(t, `{
		"workDuration": 25,
		"breakDuration": 5,
		"longBreakDuration": 15,
		"sessionsBeforeLongBreak": 4
	}`, buf.String())
}

func newHeadlessController(t *testing.T) (*timer.Controller, *timer.ManualScheduler) {
	t.Helper()

	records := store.NewMemory()
	sched := timer.NewManualScheduler()

	ctrl := timer.New(
		config.NewManager(records, config.Settings{
			WorkMinutes:             1,
			BreakMinutes:            1,
			LongBreakMinutes:        1,
			SessionsBeforeLongBreak: 4,
		}),
		session.NewLogger(records, timeutil.Fixed(now)),
		sched,
	)

	return ctrl, sched
}

func TestRunHeadless(t *testing.T) {
	plainOutput(t)

	ctrl, sched := newHeadlessController(t)

	var buf bytes.Buffer

	errc := make(chan error, 1)

	go func() {
		errc <- runHeadless(context.Background(), &buf, ctrl)
	}()

	require.Eventually(t, func() bool {
		return sched.Active() == 1
	}, time.Second, time.Millisecond)

	for range 60 {
		sched.Fire()
	}

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("headless run did not finish")
	}

	out := buf.String()

	assert.Contains(t, out, "Focus session 01:00")
	assert.Contains(t, out, "Focus session 00:00")
	assert.Contains(t, out, "Up next: Short break")
	assert.Equal(t, config.Break, ctrl.State().Mode)
}

func TestHeadlessWaitsForCompletionHooks(t *testing.T) {
	plainOutput(t)

	ctrl, sched := newHeadlessController(t)

	var ran atomic.Bool

	h := &completionHooks{
		sessionCmd: "notify-send done",
		run: func(string, ...string) error {
			time.Sleep(50 * time.Millisecond)
			ran.Store(true)

			return nil
		},
	}

	ctrl.OnSessionComplete(h.listener())

	var buf bytes.Buffer

	errc := make(chan error, 1)

	go func() {
		errc <- runHeadless(context.Background(), &buf, ctrl)
	}()

	require.Eventually(t, func() bool {
		return sched.Active() == 1
	}, time.Second, time.Millisecond)

	for range 60 {
		sched.Fire()
	}

	require.NoError(t, <-errc)

	h.wait()

	assert.True(t, ran.Load())
}

func TestRunHeadlessCancelled(t *testing.T) {
	plainOutput(t)

	ctrl, _ := newHeadlessController(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer

	require.NoError(t, runHeadless(ctx, &buf, ctrl))
	assert.Equal(t, timer.Paused, ctrl.State().RunState)
}

func TestHelpText(t *testing.T) {
	plainOutput(t)

	text := helpText()

	for _, want := range []string{
		"COMMANDS",
		"EXAMPLES",
		"studyfocus stats --date yesterday",
		"studyfocus history --limit 20",
		"studyfocus settings --interactive",
		"FOCUS_ENV",
	} {
		assert.Contains(t, text, want)
	}
}
