// Package timer runs the work/break countdown and decides which phase comes
// next
package timer

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
)

const tickInterval = time.Second

// SettingsStore provides and updates the timer settings.
type SettingsStore interface {
	Get() config.Settings
	Update(p config.Partial) (config.Settings, error)
}

// SessionLogger records completed sessions.
type SessionLogger interface {
	Log(mode config.Mode, duration int) session.Session
	Count(mode config.Mode) int
}

type listeners struct {
	tick     []func(State)
	complete []func(session.Session)
	mode     []func(config.Mode)
}

// events collects the notifications produced while the lock is held so they
// can be delivered after it is released.
type events struct {
	completed *session.Session
	mode      config.Mode
	state     State
	ticked    bool
}

// Controller is the focus timer. All methods are safe for concurrent use;
// calls that do not apply to the current run state are ignored.
type Controller struct {
	settings  SettingsStore
	logger    SessionLogger
	scheduler Scheduler
	cancel    func()
	listeners listeners
	state     State
	gen       uint64
	mu        sync.Mutex
}

// New returns an idle controller in work mode with a full countdown.
func New(
	settings SettingsStore,
	logger SessionLogger,
	scheduler Scheduler,
) *Controller {
	total := settings.Get().Seconds(config.Work)

	return &Controller{
		settings:  settings,
		logger:    logger,
		scheduler: scheduler,
		state: State{
			Mode:             config.Work,
			RunState:         Idle,
			RemainingSeconds: total,
			TotalSeconds:     total,
		},
	}
}

// Start begins or resumes the countdown.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.RunState == Running {
		return
	}

	c.stopTicking()

	c.state.RunState = Running

	gen := c.gen
	c.cancel = c.scheduler.Schedule(tickInterval, func() {
		c.tick(gen)
	})

	slog.Debug(
		"timer started",
		slog.String("mode", string(c.state.Mode)),
		slog.Int("remaining", c.state.RemainingSeconds),
	)
}

// Pause halts a running countdown.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.RunState != Running {
		return
	}

	c.stopTicking()

	c.state.RunState = Paused

	slog.Debug("timer paused", slog.Int("remaining", c.state.RemainingSeconds))
}

// Reset stops the countdown and restores the full duration of the current
// mode using the latest settings.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()

	total := c.settings.Get().Seconds(c.state.Mode)

	c.state.RunState = Idle
	c.state.TotalSeconds = total
	c.state.RemainingSeconds = total

	slog.Debug("timer reset", slog.String("mode", string(c.state.Mode)))
}

// Close cancels any pending tick. The controller may still be used.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTicking()

	if c.state.RunState == Running {
		c.state.RunState = Paused
	}
}

// UpdateSettings merges p into the timer settings. The new durations apply
// from the next reset or phase change.
func (c *Controller) UpdateSettings(p config.Partial) (config.Settings, error) {
	return c.settings.Update(p)
}

// Settings returns the current timer settings.
func (c *Controller) Settings() config.Settings {
	return c.settings.Get()
}

// State returns a snapshot of the timer.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// OnTick registers fn to be called after every tick.
func (c *Controller) OnTick(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners.tick = append(c.listeners.tick, fn)
}

// OnSessionComplete registers fn to be called with each logged session.
func (c *Controller) OnSessionComplete(fn func(session.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners.complete = append(c.listeners.complete, fn)
}

// OnModeChange registers fn to be called when a phase ends and the next
// mode is selected.
func (c *Controller) OnModeChange(fn func(config.Mode)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listeners.mode = append(c.listeners.mode, fn)
}

// stopTicking cancels the scheduled tick. Bumping the generation discards a
// tick that was already in flight. c.mu must be held.
func (c *Controller) stopTicking() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.gen++
}

func (c *Controller) tick(gen uint64) {
	var ev events

	c.mu.Lock()

	if gen != c.gen || c.state.RunState != Running {
		c.mu.Unlock()
		return
	}

	c.state.RemainingSeconds--
	if c.state.RemainingSeconds < 0 {
		c.state.RemainingSeconds = 0
	}

	ev.ticked = true
	ev.state = c.state

	if c.state.RemainingSeconds == 0 {
		sess := c.completeSession()
		ev.completed = &sess
		ev.mode = c.state.Mode
	}

	l := c.snapshotListeners()

	c.mu.Unlock()

	l.dispatch(ev)
}

// completeSession logs the finished phase and moves to the next one. The
// new phase is left idle. c.mu must be held.
func (c *Controller) completeSession() session.Session {
	c.stopTicking()

	c.state.RunState = Idle

	finished := c.state.Mode
	sess := c.logger.Log(finished, c.state.TotalSeconds)

	settings := c.settings.Get()

	next := config.Work

	if finished == config.Work {
		c.state.SessionsCompleted++

		next = config.Break

		// the count includes the session just logged
		if c.logger.Count(config.Work)%settings.SessionsBeforeLongBreak == 0 {
			next = config.LongBreak
		}
	}

	total := settings.Seconds(next)

	c.state.Mode = next
	c.state.TotalSeconds = total
	c.state.RemainingSeconds = total

	slog.Info(
		"phase complete",
		slog.String("finished", string(finished)),
		slog.String("next", string(next)),
		slog.Int("completed_this_process", c.state.SessionsCompleted),
	)

	return sess
}

// snapshotListeners copies the listener lists. c.mu must be held.
func (c *Controller) snapshotListeners() listeners {
	return listeners{
		tick:     slices.Clone(c.listeners.tick),
		complete: slices.Clone(c.listeners.complete),
		mode:     slices.Clone(c.listeners.mode),
	}
}

func (l listeners) dispatch(ev events) {
	if ev.ticked {
		for _, fn := range l.tick {
			fn(ev.state)
		}
	}

	if ev.completed == nil {
		return
	}

	for _, fn := range l.complete {
		fn(*ev.completed)
	}

	for _, fn := range l.mode {
		fn(ev.mode)
	}
}
