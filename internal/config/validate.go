package config

import "log/slog"

const (
	minMinutes = 1
	maxMinutes = 720 // 12 hours

	minLongBreakInterval = 1
)

// Validate checks that every duration is within bounds and that the long
// break interval is positive.
func (s Settings) Validate() error {
	durations := []struct {
		name  string
		value int
	}{
		{"work", s.WorkMinutes},
		{"break", s.BreakMinutes},
		{"long break", s.LongBreakMinutes},
	}

	for _, d := range durations {
		if d.value < minMinutes || d.value > maxMinutes {
			return ErrInvalidSetting.Wrap(
				errInvalidDuration.Fmt(d.name, minMinutes, maxMinutes, d.value),
			)
		}
	}

	if s.SessionsBeforeLongBreak < minLongBreakInterval {
		return ErrInvalidSetting.Wrap(errInvalidLongBreakInterval.Fmt(
			minLongBreakInterval,
			s.SessionsBeforeLongBreak,
		))
	}

	return nil
}

// repair replaces each out of range field with its fallback value.
func (s Settings) repair(fallback Settings) Settings {
	if s.Validate() == nil {
		return s
	}

	slog.Warn("stored timer settings are out of range, repairing", slog.Any("settings", s))

	valid := func(v int) bool {
		return v >= minMinutes && v <= maxMinutes
	}

	if !valid(s.WorkMinutes) {
		s.WorkMinutes = fallback.WorkMinutes
	}

	if !valid(s.BreakMinutes) {
		s.BreakMinutes = fallback.BreakMinutes
	}

	if !valid(s.LongBreakMinutes) {
		s.LongBreakMinutes = fallback.LongBreakMinutes
	}

	if s.SessionsBeforeLongBreak < minLongBreakInterval {
		s.SessionsBeforeLongBreak = fallback.SessionsBeforeLongBreak
	}

	return s
}
