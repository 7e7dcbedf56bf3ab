package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/store"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

func TestLogAppendsAndPersists(t *testing.T) {
	records := store.NewMemory()
	now := time.Date(2024, time.May, 6, 23, 30, 0, 0, time.Local)

	l := session.NewLogger(records, timeutil.Fixed(now))

	sess := l.Log(config.Work, 1500)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, config.Work, sess.Mode)
	assert.Equal(t, 1500, sess.Duration)
	assert.True(t, sess.CompletedAt.Equal(now))
	assert.Equal(t, "2024-05-06", sess.Date)

	assert.Len(t, l.All(), 1)

	var stored []map[string]any

	require.True(t, records.Load(store.KeyHistory, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "work", stored[0]["mode"])
	assert.Equal(t, float64(1500), stored[0]["duration"])
	assert.Equal(t, "2024-05-06", stored[0]["date"])
	assert.Equal(t, sess.ID, stored[0]["id"])

	l.Log(config.Break, 300)

	reloaded := session.NewLogger(records, timeutil.Fixed(now))
	assert.Len(t, reloaded.All(), 2)
	assert.Equal(t, 1, reloaded.Count(config.Work))
	assert.Equal(t, 1, reloaded.Count(config.Break))
}

func TestUniqueIDs(t *testing.T) {
	l := session.NewLogger(store.NewMemory(), timeutil.System)

	seen := make(map[string]bool)

	for range 20 {
		sess := l.Log(config.Work, 60)
		assert.False(t, seen[sess.ID], "duplicate id %s", sess.ID)
		seen[sess.ID] = true
	}
}

func TestMalformedRecordsAreSkipped(t *testing.T) {
	records := store.NewMemory()

	records.SetRaw(store.KeyHistory, []byte(`[
		{"id":"1","mode":"work","duration":1500,"completedAt":"2024-05-06T10:00:00Z","date":"2024-05-06"},
		{"id":"2","mode":"work","duration":"long","completedAt":"2024-05-06T11:00:00Z","date":"2024-05-06"},
		{"id":"3","mode":"nap","duration":300,"completedAt":"2024-05-06T11:30:00Z","date":"2024-05-06"},
		{"id":"4","mode":"break","duration":0,"completedAt":"2024-05-06T11:35:00Z","date":"2024-05-06"},
		"garbage",
		{"id":"5","mode":"long-break","duration":900,"completedAt":"2024-05-06T12:00:00Z","date":"2024-05-06"}
	]`))

	l := session.NewLogger(records, timeutil.System)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "5", all[1].ID)
}

func TestCorruptHistoryStartsEmpty(t *testing.T) {
	records := store.NewMemory()
	records.SetRaw(store.KeyHistory, []byte(`{"id":`))

	l := session.NewLogger(records, timeutil.System)

	assert.Empty(t, l.All())

	l.Log(config.Work, 60)
	assert.Len(t, l.All(), 1)
}

func TestRecent(t *testing.T) {
	base := time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC)

	var history session.History

	for i := range 5 {
		history = append(history, session.Session{
			ID:          string(rune('a' + i)),
			Mode:        config.Work,
			Duration:    60,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
			Date:        "2024-05-06",
		})
	}

	// insertion order differs from completion order
	history[0], history[3] = history[3], history[0]

	ids := func(sessions []session.Session) string {
		var s string
		for _, v := range sessions {
			s += v.ID
		}

		return s
	}

	assert.Equal(t, "edc", ids(history.Recent(3)))
	assert.Equal(t, "edcba", ids(history.Recent(0)))
	assert.Equal(t, "edcba", ids(history.Recent(10)))
}

func TestSessionJSONLayout(t *testing.T) {
	sess := session.Session{
		ID:          "abc",
		Mode:        config.LongBreak,
		Duration:    900,
		CompletedAt: time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC),
		Date:        "2024-05-06",
	}

	b, err := json.Marshal(sess)
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"id":"abc","mode":"long-break","duration":900,"completedAt":"2024-05-06T12:00:00Z","date":"2024-05-06"}`,
		string(b),
	)
}
