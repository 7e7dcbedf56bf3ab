package timer

import (
	"slices"
	"sync"
	"time"
)

// Scheduler runs a callback repeatedly until the returned cancel function is
// called. Cancel must be safe to call more than once.
type Scheduler interface {
	Schedule(interval time.Duration, fn func()) (cancel func())
}

// TickerScheduler fires callbacks from a background goroutine driven by a
// time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Schedule(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// a tick and a cancellation may be ready at the same time
				select {
				case <-done:
					return
				default:
				}

				fn()
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

// ManualScheduler fires callbacks only when Fire is called. It lets the
// caller decide what "one interval" means: tests call Fire directly and the
// terminal UI calls it from its own tick message.
type ManualScheduler struct {
	active map[int]func()
	next   int
	mu     sync.Mutex
}

// NewManualScheduler returns a scheduler with nothing scheduled.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		active: make(map[int]func()),
	}
}

func (m *ManualScheduler) Schedule(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.next
	m.next++
	m.active[id] = fn

	return func() {
		m.mu.Lock()
		delete(m.active, id)
		m.mu.Unlock()
	}
}

// Fire runs every scheduled callback once, in scheduling order. A callback
// cancelled by an earlier one in the same round is skipped.
func (m *ManualScheduler) Fire() {
	m.mu.Lock()

	ids := make([]int, 0, len(m.active))
	for id := range m.active {
		ids = append(ids, id)
	}

	m.mu.Unlock()

	slices.Sort(ids)

	for _, id := range ids {
		m.mu.Lock()
		fn, ok := m.active[id]
		m.mu.Unlock()

		if ok {
			fn()
		}
	}
}

// Active returns the number of scheduled callbacks.
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.active)
}
