// Package session records completed focus and break sessions
package session

import (
	"cmp"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/store"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

// Session is an immutable record of one completed phase.
type Session struct {
	CompletedAt time.Time   `json:"completedAt"`
	ID          string      `json:"id"`
	Mode        config.Mode `json:"mode"`
	Date        string      `json:"date"`
	Duration    int         `json:"duration"` // seconds
}

// History is the full list of sessions in insertion order.
type History []Session

// valid reports whether a decoded record can be used.
func (s *Session) valid() bool {
	return s.ID != "" && s.Mode.Valid() && s.Duration > 0 && s.Date != ""
}

// Count returns the number of sessions with the given mode.
func (h History) Count(mode config.Mode) int {
	var n int

	for i := range h {
		if h[i].Mode == mode {
			n++
		}
	}

	return n
}

// Recent returns at most limit sessions, newest first. A non-positive limit
// returns every session.
func (h History) Recent(limit int) []Session {
	out := slices.Clone(h)

	slices.SortStableFunc(out, func(a, b Session) int {
		return cmp.Compare(b.CompletedAt.UnixNano(), a.CompletedAt.UnixNano())
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Logger appends completed sessions to the history and persists it.
type Logger struct {
	records store.Records
	clock   timeutil.Clock
	history History
	mu      sync.RWMutex
}

// NewLogger loads the stored history from records. Records that cannot be
// decoded are skipped so that one bad entry does not discard the rest.
func NewLogger(records store.Records, clock timeutil.Clock) *Logger {
	return &Logger{
		records: records,
		clock:   clock,
		history: load(records),
	}
}

func load(records store.Records) History {
	var raw []json.RawMessage

	if !records.Load(store.KeyHistory, &raw) {
		return History{}
	}

	history := make(History, 0, len(raw))

	for i, v := range raw {
		var sess Session

		err := json.Unmarshal(v, &sess)
		if err != nil || !sess.valid() {
			slog.Warn(
				"skipping malformed session record",
				slog.Int("index", i),
				slog.String("record", string(v)),
				slog.Any("error", err),
			)

			continue
		}

		history = append(history, sess)
	}

	return history
}

// Log records a completed session of mode lasting duration seconds and
// persists the updated history.
func (l *Logger) Log(mode config.Mode, duration int) Session {
	now := l.clock.Now()

	sess := Session{
		ID:          uuid.NewString(),
		Mode:        mode,
		Duration:    duration,
		CompletedAt: now,
		Date:        timeutil.DateOf(now),
	}

	l.mu.Lock()
	l.history = append(l.history, sess)
	snapshot := slices.Clone(l.history)
	l.mu.Unlock()

	l.records.Save(store.KeyHistory, snapshot)

	slog.Info(
		"session completed",
		slog.String("id", sess.ID),
		slog.String("mode", string(mode)),
		slog.Int("duration", duration),
	)

	return sess
}

// Count returns the number of all-time sessions with the given mode.
func (l *Logger) Count(mode config.Mode) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.history.Count(mode)
}

// All returns a copy of the full history.
func (l *Logger) All() History {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.history)
}

// Recent returns at most limit sessions, newest first.
func (l *Logger) Recent(limit int) []Session {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.history.Recent(limit)
}
