// Package stats derives focus statistics from the session history
package stats

import (
	"encoding/json"
	"time"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

// maxStreakDays bounds how far back the streak walk looks.
const maxStreakDays = 30

// DerivedStats are recomputed from the history on demand and never stored.
type DerivedStats struct {
	Date                       string `json:"date"`
	CompletedWorkSessionsToday int    `json:"completed_work_sessions_today"`
	TotalFocusMinutesToday     int    `json:"total_focus_minutes_today"`
	CurrentStreakDays          int    `json:"current_streak_days"`
}

// ToJSON returns the stats as indented JSON.
func (s DerivedStats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Compute derives the statistics for the calendar day of asOf.
func Compute(history session.History, asOf time.Time) DerivedStats {
	today := timeutil.DateOf(asOf)

	// dates on which at least one work session was completed
	workDays := make(map[string]bool)

	var (
		count   int
		seconds int
	)

	for i := range history {
		sess := &history[i]

		if sess.Mode != config.Work {
			continue
		}

		workDays[sess.Date] = true

		if sess.Date == today {
			count++
			seconds += sess.Duration
		}
	}

	return DerivedStats{
		Date:                       today,
		CompletedWorkSessionsToday: count,
		TotalFocusMinutesToday:     seconds / 60,
		CurrentStreakDays:          streak(workDays, asOf),
	}
}

// streak counts consecutive days with a work session walking back from
// asOf. A day without sessions ends the walk, except asOf itself.
func streak(workDays map[string]bool, asOf time.Time) int {
	var n int

	for i := range maxStreakDays {
		if workDays[timeutil.DaysBefore(asOf, i)] {
			n++
			continue
		}

		if i > 0 {
			break
		}
	}

	return n
}

// Source provides the session history.
type Source interface {
	All() session.History
	Recent(limit int) []session.Session
}

// Reader answers history queries for the presentation layer.
type Reader struct {
	src Source
}

// NewReader returns a Reader over src.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// RecentSessions returns at most limit sessions, newest first.
func (r *Reader) RecentSessions(limit int) []session.Session {
	return r.src.Recent(limit)
}

// Stats computes the derived statistics as of the given day.
func (r *Reader) Stats(asOf time.Time) DerivedStats {
	return Compute(r.src.All(), asOf)
}

// Count returns the number of all-time sessions with the given mode.
func (r *Reader) Count(mode config.Mode) int {
	return r.src.All().Count(mode)
}
