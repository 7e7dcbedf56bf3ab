package store

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Memory keeps records for the lifetime of the process only. Values are
// stored in encoded form so callers observe the same round trip as with a
// Client.
type Memory struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewMemory returns an empty in-memory record store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) Save(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		slog.Warn("unable to persist record", slog.String("key", key), slog.Any("error", err))
		return
	}

	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
}

func (m *Memory) Load(key string, dst any) bool {
	m.mu.RLock()
	b, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return false
	}

	if err := json.Unmarshal(b, dst); err != nil {
		slog.Warn("unable to load record", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return true
}

// SetRaw stores b under key without encoding it.
func (m *Memory) SetRaw(key string, b []byte) {
	m.mu.Lock()
	m.data[key] = b
	m.mu.Unlock()
}
