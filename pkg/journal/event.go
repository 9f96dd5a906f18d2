package journal

import "time"

// Kind classifies a journal event.
type Kind uint8

const (
	// KindSession marks the start of a process run. Session events
	// carry the journal format version.
	KindSession Kind = 0

	// KindTimerAdded records a timer creation.
	KindTimerAdded Kind = 1

	// KindTimerCancelled records a confirmed cancellation.
	KindTimerCancelled Kind = 2

	// KindTimerFinished records a timer reaching its deadline.
	KindTimerFinished Kind = 3

	// KindShutdown records a registry-wide shutdown.
	KindShutdown Kind = 4
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSession:
		return "SESSION"
	case KindTimerAdded:
		return "ADDED"
	case KindTimerCancelled:
		return "CANCELLED"
	case KindTimerFinished:
		return "FINISHED"
	case KindShutdown:
		return "SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}

// Event records one timer lifecycle occurrence.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was recorded.
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the process run that produced the event.
	// Runs may append to a shared file; the session ID keeps them apart.
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// FormatVersion is the journal format version ("major.minor").
	// Only set on KindSession events.
	FormatVersion string `cbor:"4,keyasint,omitempty"`

	// Payloads (at most one is set, depending on Kind).
	Timer    *TimerEvent    `cbor:"5,keyasint,omitempty"`
	Shutdown *ShutdownEvent `cbor:"6,keyasint,omitempty"`
}

// TimerEvent carries the timer identity for added, cancelled, and
// finished events.
type TimerEvent struct {
	// ID is the timer id, unique within its session.
	ID uint64 `cbor:"1,keyasint"`

	// Label is the timer display text.
	Label string `cbor:"2,keyasint"`

	// Duration is the requested countdown span.
	Duration time.Duration `cbor:"3,keyasint"`

	// Remaining is the time that was left on the timer.
	// Only set on cancellation events.
	Remaining time.Duration `cbor:"4,keyasint,omitempty"`
}

// ShutdownEvent carries the registry state at shutdown.
type ShutdownEvent struct {
	// Active is the number of running timers the shutdown cancelled.
	Active int `cbor:"1,keyasint"`
}
