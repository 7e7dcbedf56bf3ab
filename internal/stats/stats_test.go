package stats_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/stats"
	"github.com/ayoisaiah/studyfocus/internal/store"
	"github.com/ayoisaiah/studyfocus/internal/testutil"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
)

var asOf = time.Date(2024, time.May, 6, 18, 0, 0, 0, time.Local)

// sess builds a session completed daysAgo days before asOf.
func sess(mode config.Mode, daysAgo, duration int) session.Session {
	completed := asOf.AddDate(0, 0, -daysAgo)

	return session.Session{
		ID:          completed.String(),
		Mode:        mode,
		Duration:    duration,
		CompletedAt: completed,
		Date:        timeutil.DateOf(completed),
	}
}

type golden struct {
	snapshot []byte
	name     string
}

func (g golden) Output() ([]byte, string) {
	return g.snapshot, g.name
}

func TestComputeToday(t *testing.T) {
	history := session.History{
		sess(config.Work, 0, 1500),
		sess(config.Break, 0, 300),
		sess(config.Work, 0, 1500),
		sess(config.Break, 0, 300),
		sess(config.Work, 0, 900),
		sess(config.Work, 1, 1500),
	}

	got := stats.Compute(history, asOf)

	want := stats.DerivedStats{
		Date:                       "2024-05-06",
		CompletedWorkSessionsToday: 3,
		TotalFocusMinutesToday:     65,
		CurrentStreakDays:          2,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStreak(t *testing.T) {
	cases := []struct {
		name    string
		history session.History
		want    int
	}{
		{
			name:    "empty history",
			history: nil,
			want:    0,
		},
		{
			name: "today does not break the streak",
			history: session.History{
				sess(config.Work, 1, 1500),
				sess(config.Work, 2, 1500),
			},
			want: 2,
		},
		{
			name: "gap stops the walk",
			history: session.History{
				sess(config.Work, 1, 1500),
				sess(config.Work, 2, 1500),
				sess(config.Work, 4, 1500),
				sess(config.Work, 5, 1500),
			},
			want: 2,
		},
		{
			name: "today counts when present",
			history: session.History{
				sess(config.Work, 0, 1500),
				sess(config.Work, 1, 1500),
				sess(config.Work, 3, 1500),
			},
			want: 2,
		},
		{
			name: "break sessions do not count",
			history: session.History{
				sess(config.Work, 0, 1500),
				sess(config.Break, 1, 300),
				sess(config.Work, 2, 1500),
			},
			want: 1,
		},
		{
			name: "only yesterday missing",
			history: session.History{
				sess(config.Work, 0, 1500),
				sess(config.Work, 2, 1500),
			},
			want: 1,
		},
		{
			name: "nothing today or yesterday",
			history: session.History{
				sess(config.Work, 2, 1500),
				sess(config.Work, 3, 1500),
			},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stats.Compute(tc.history, asOf).CurrentStreakDays
			if got != tc.want {
				t.Errorf("expected streak to be: %d, but got: %d", tc.want, got)
			}
		})
	}
}

func TestComputeStreakCap(t *testing.T) {
	var history session.History

	for i := range 45 {
		history = append(history, sess(config.Work, i, 1500))
	}

	if got := stats.Compute(history, asOf).CurrentStreakDays; got != 30 {
		t.Errorf("expected streak to be capped at 30, but got: %d", got)
	}

	// with today empty the walk still covers 30 days in total
	if got := stats.Compute(history[1:], asOf).CurrentStreakDays; got != 29 {
		t.Errorf("expected streak to be 29, but got: %d", got)
	}
}

func TestComputeFloorsMinutes(t *testing.T) {
	history := session.History{
		sess(config.Work, 0, 59),
		sess(config.Work, 0, 60),
	}

	got := stats.Compute(history, asOf)

	if got.TotalFocusMinutesToday != 1 {
		t.Errorf("expected 1 focus minute, but got: %d", got.TotalFocusMinutesToday)
	}
}

func TestReader(t *testing.T) {
	records := store.NewMemory()

	clock := asOf
	l := session.NewLogger(records, timeutil.ClockFunc(func() time.Time {
		return clock
	}))

	for _, mode := range []config.Mode{config.Work, config.Break, config.Work} {
		l.Log(mode, 1500)
		clock = clock.Add(time.Minute)
	}

	r := stats.NewReader(l)

	recent := r.RecentSessions(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent sessions, but got: %d", len(recent))
	}

	if recent[0].Mode != config.Work || recent[1].Mode != config.Break {
		t.Errorf("expected newest first, got %s then %s", recent[0].Mode, recent[1].Mode)
	}

	got := r.Stats(asOf)

	if got.CompletedWorkSessionsToday != 2 || got.TotalFocusMinutesToday != 50 {
		t.Errorf("unexpected stats: %+v", got)
	}
}

func TestStatsJSON(t *testing.T) {
	history := session.History{
		sess(config.Work, 0, 1500),
		sess(config.Work, 0, 1500),
		sess(config.Work, 0, 900),
		sess(config.Work, 1, 1500),
		sess(config.Work, 2, 1500),
	}

	b, err := stats.Compute(history, asOf).ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	testutil.CompareGoldenFile(t, golden{snapshot: b, name: "stats_json"})
}
