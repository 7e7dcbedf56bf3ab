package store

// Records is the durable key/value interface used for settings and session
// history. Save and Load never fail from the caller's point of view: errors
// are logged and a failed Load reports the record as absent.
type Records interface {
	// Save serialises value and stores it under key, replacing any prior
	// value
	Save(key string, value any)
	// Load decodes the value stored under key into dst and reports whether
	// it was found
	Load(key string, dst any) bool
}

// Record keys.
const (
	KeySettings = "timerSettings"
	// KeyHistory holds the full session history despite its name
	KeyHistory = "sessionsToday"
)
