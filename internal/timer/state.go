package timer

import "github.com/ayoisaiah/studyfocus/internal/config"

// RunState is whether the countdown is idle, running or paused.
type RunState int

const (
	Idle RunState = iota
	Running
	Paused
)

func (r RunState) String() string {
	switch r {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// State is a snapshot of the timer.
type State struct {
	Mode              config.Mode
	RunState          RunState
	RemainingSeconds  int
	TotalSeconds      int
	SessionsCompleted int // work sessions completed by this process
}

// Progress returns the elapsed fraction of the current phase.
func (s State) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}

	return 1 - float64(s.RemainingSeconds)/float64(s.TotalSeconds)
}
