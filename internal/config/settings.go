package config

import (
	"log/slog"
	"sync"

	"github.com/ayoisaiah/studyfocus/internal/store"
)

// Settings are the timer durations (in minutes) and the number of work
// sessions between long breaks.
type Settings struct {
	WorkMinutes             int `json:"workDuration"            mapstructure:"work_minutes"`
	BreakMinutes            int `json:"breakDuration"           mapstructure:"break_minutes"`
	LongBreakMinutes        int `json:"longBreakDuration"       mapstructure:"long_break_minutes"`
	SessionsBeforeLongBreak int `json:"sessionsBeforeLongBreak" mapstructure:"sessions_before_long_break"`
}

// Partial is a settings update. Nil fields are left unchanged.
type Partial struct {
	WorkMinutes             *int
	BreakMinutes            *int
	LongBreakMinutes        *int
	SessionsBeforeLongBreak *int
}

// Defaults returns the stock settings.
func Defaults() Settings {
	return Settings{
		WorkMinutes:             25,
		BreakMinutes:            5,
		LongBreakMinutes:        15,
		SessionsBeforeLongBreak: 4,
	}
}

// Minutes returns the configured length of mode in minutes.
func (s Settings) Minutes(mode Mode) int {
	switch mode {
	case Break:
		return s.BreakMinutes
	case LongBreak:
		return s.LongBreakMinutes
	default:
		return s.WorkMinutes
	}
}

// Seconds returns the configured length of mode in seconds.
func (s Settings) Seconds(mode Mode) int {
	return s.Minutes(mode) * 60
}

// Int returns a pointer to v for building a Partial.
func Int(v int) *int {
	return &v
}

// IsEmpty reports whether p changes nothing.
func (p Partial) IsEmpty() bool {
	return p.WorkMinutes == nil &&
		p.BreakMinutes == nil &&
		p.LongBreakMinutes == nil &&
		p.SessionsBeforeLongBreak == nil
}

// Apply merges the set fields of p into s.
func (p Partial) Apply(s Settings) Settings {
	if p.WorkMinutes != nil {
		s.WorkMinutes = *p.WorkMinutes
	}

	if p.BreakMinutes != nil {
		s.BreakMinutes = *p.BreakMinutes
	}

	if p.LongBreakMinutes != nil {
		s.LongBreakMinutes = *p.LongBreakMinutes
	}

	if p.SessionsBeforeLongBreak != nil {
		s.SessionsBeforeLongBreak = *p.SessionsBeforeLongBreak
	}

	return s
}

// Manager owns the current timer settings and persists every change.
type Manager struct {
	records store.Records
	current Settings
	mu      sync.RWMutex
}

// NewManager loads the persisted settings from records, falling back to
// fallback when nothing usable is stored. The effective settings are
// written back so that the record always exists after startup.
func NewManager(records store.Records, fallback Settings) *Manager {
	if err := fallback.Validate(); err != nil {
		slog.Warn("invalid default timer settings, using stock values", slog.Any("error", err))

		fallback = Defaults()
	}

	current := fallback

	saved := fallback
	if records.Load(store.KeySettings, &saved) {
		current = saved.repair(fallback)
	}

	records.Save(store.KeySettings, current)

	return &Manager{
		records: records,
		current: current,
	}
}

// Get returns the current settings.
func (m *Manager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// Update merges p into the current settings, persists and returns the
// result. An invalid field rejects the whole update.
func (m *Manager) Update(p Partial) (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := p.Apply(m.current)

	if err := next.Validate(); err != nil {
		return m.current, err
	}

	m.current = next

	m.records.Save(store.KeySettings, m.current)

	return m.current, nil
}
