package timer

import (
	"sync/atomic"
	"time"
)

// DefaultLabel replaces an empty label at creation.
const DefaultLabel = "(unnamed)"

// Record holds the identity, schedule, and lifecycle state of one
// timer. Identity and schedule are immutable after construction; the
// state is the only mutable field and every terminal transition goes
// through a compare-and-swap, so exactly one of Cancelled or Finished
// ever wins.
type Record struct {
	id       uint64
	label    string
	duration time.Duration
	start    time.Time
	deadline time.Time

	state atomic.Uint32

	// done is closed when the record's task has fully stopped.
	// Cancel and ShutdownAll block on it to confirm the stop.
	done chan struct{}
}

// newRecord builds a Running record with deadline = start + duration.
func newRecord(id uint64, label string, duration time.Duration, start time.Time) *Record {
	if label == "" {
		label = DefaultLabel
	}
	return &Record{
		id:       id,
		label:    label,
		duration: duration,
		start:    start,
		deadline: start.Add(duration),
		done:     make(chan struct{}),
	}
}

// ID returns the timer id, unique within the registry.
func (r *Record) ID() uint64 { return r.id }

// Label returns the display text.
func (r *Record) Label() string { return r.label }

// Duration returns the requested countdown span.
func (r *Record) Duration() time.Duration { return r.duration }

// Deadline returns the instant the timer is due.
func (r *Record) Deadline() time.Time { return r.deadline }

// State returns the stored lifecycle state.
func (r *Record) State() State {
	return State(r.state.Load())
}

// transition attempts the Running -> to transition and reports whether
// this caller won it. A false return means another writer already moved
// the record to a terminal state.
func (r *Record) transition(to State) bool {
	return r.state.CompareAndSwap(uint32(StateRunning), uint32(to))
}

// remaining returns the time left until the deadline, clamped at zero.
func (r *Record) remaining(now time.Time) time.Duration {
	left := r.deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Snapshot returns a copy of the record's externally visible state at
// the given instant. A Running record past its deadline reports
// StatePendingDone rather than pretending its task already finished.
func (r *Record) Snapshot(now time.Time) Snapshot {
	state := r.State()
	if state == StateRunning && !now.Before(r.deadline) {
		state = StatePendingDone
	}
	return Snapshot{
		ID:        r.id,
		Label:     r.label,
		Duration:  r.duration,
		Deadline:  r.deadline,
		State:     state,
		Remaining: r.remaining(now),
	}
}

// Snapshot is a value copy of one timer's externally visible state,
// taken at a single instant.
type Snapshot struct {
	ID        uint64
	Label     string
	Duration  time.Duration
	Deadline  time.Time
	State     State
	Remaining time.Duration
}
