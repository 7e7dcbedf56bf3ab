package config

// Mode is one of the three timer phases.
type Mode string

const (
	Work      Mode = "work"
	Break     Mode = "break"
	LongBreak Mode = "long-break"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case Work, Break, LongBreak:
		return true
	}

	return false
}

// Label returns a human readable name for m.
func (m Mode) Label() string {
	switch m {
	case Work:
		return "Focus session"
	case Break:
		return "Short break"
	case LongBreak:
		return "Long break"
	}

	return "Session"
}
