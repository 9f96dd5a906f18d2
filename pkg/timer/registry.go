package timer

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
	"github.com/multitimer-project/multitimer-go/pkg/sink"
)

// Registry errors.
var (
	// ErrInvalidDuration is returned by Create for non-positive durations.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrNotFound is returned by Cancel for ids the registry never issued.
	ErrNotFound = errors.New("timer not found")

	// ErrAlreadyTerminal is returned by Cancel when the timer already
	// finished or was already cancelled.
	ErrAlreadyTerminal = errors.New("timer already finished or cancelled")

	// ErrShutdown is returned by Create once ShutdownAll has begun.
	ErrShutdown = errors.New("registry is shutting down")
)

// Poll step bounds.
const (
	// DefaultPollStep is the wait between task re-checks when none is
	// configured.
	DefaultPollStep = time.Second

	// MaxPollStep caps the configured poll step. The cap bounds
	// cancellation and shutdown latency.
	MaxPollStep = time.Second
)

// Config holds registry construction options.
type Config struct {
	// Sink receives the human-readable ADD/CANCEL/DONE notifications.
	// Nil discards them.
	Sink sink.Sink

	// Journal captures machine-readable lifecycle events.
	// Nil discards them.
	Journal journal.Journal

	// SessionID stamps journal events so runs appending to a shared
	// journal file stay distinguishable. Generated when empty.
	SessionID string

	// PollStep is the maximum wait between task re-checks. Zero or
	// negative selects DefaultPollStep; values above MaxPollStep are
	// clamped.
	PollStep time.Duration
}

// Registry is the single owner of the timer collection. All membership
// and cross-cutting operations go through it; records accumulate for
// the lifetime of the process and are never removed.
type Registry struct {
	mu      sync.Mutex
	records []*Record
	byID    map[uint64]*Record
	nextID  uint64

	// stopping is the process-wide shutdown flag, set once by
	// ShutdownAll and re-checked by every task on each poll step.
	stopping atomic.Bool

	sink      sink.Sink
	journal   journal.Journal
	sessionID string
	pollStep  time.Duration

	// Time sources, replaceable in tests.
	now      func() time.Time
	newTimer func(time.Duration) (<-chan time.Time, func() bool)
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg Config) *Registry {
	out := cfg.Sink
	if out == nil {
		out = sink.NopSink{}
	}

	jrn := cfg.Journal
	if jrn == nil {
		jrn = journal.NopJournal{}
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	step := cfg.PollStep
	if step <= 0 {
		step = DefaultPollStep
	}
	if step > MaxPollStep {
		step = MaxPollStep
	}

	return &Registry{
		byID:      make(map[uint64]*Record),
		sink:      out,
		journal:   jrn,
		sessionID: sessionID,
		pollStep:  step,
		now:       time.Now,
		newTimer:  defaultNewTimer,
	}
}

// defaultNewTimer produces a real timer channel and its stop function.
func defaultNewTimer(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// SessionID returns the id stamped on this registry's journal events.
func (r *Registry) SessionID() string { return r.sessionID }

// Create registers a new countdown timer and starts its task. The
// returned id is strictly greater than every id issued before it. An
// empty label is replaced with DefaultLabel; a non-positive duration is
// rejected with ErrInvalidDuration.
func (r *Registry) Create(duration time.Duration, label string) (uint64, error) {
	if duration <= 0 {
		return 0, ErrInvalidDuration
	}

	r.mu.Lock()
	if r.stopping.Load() {
		r.mu.Unlock()
		return 0, ErrShutdown
	}
	r.nextID++
	rec := newRecord(r.nextID, label, duration, r.now())
	r.records = append(r.records, rec)
	r.byID[rec.id] = rec
	go r.runTask(rec)
	r.mu.Unlock()

	r.sink.Print(fmt.Sprintf("[ADD] timer #%d %q for %s", rec.id, rec.label, FormatDuration(duration)))
	r.journal.Record(journal.Event{
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Kind:      journal.KindTimerAdded,
		Timer: &journal.TimerEvent{
			ID:       rec.id,
			Label:    rec.label,
			Duration: duration,
		},
	})
	return rec.id, nil
}

// List returns a snapshot of every record ordered by id, all evaluated
// against a single reading of the clock.
func (r *Registry) List() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	snaps := make([]Snapshot, 0, len(r.records))
	for _, rec := range r.records {
		snaps = append(snaps, rec.Snapshot(now))
	}
	return snaps
}

// Count returns the total number of records, terminal ones included.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Active returns the number of records still Running.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, rec := range r.records {
		if rec.State() == StateRunning {
			n++
		}
	}
	return n
}

// Cancel stops the timer with the given id and confirms the stop: when
// Cancel returns nil the timer's task has exited and will never
// announce completion for this id. The confirmation wait is bounded by
// the poll step. Unknown ids return ErrNotFound; timers that already
// finished or were already cancelled return ErrAlreadyTerminal.
func (r *Registry) Cancel(id uint64) error {
	r.mu.Lock()
	rec := r.byID[id]
	r.mu.Unlock()

	if rec == nil {
		return ErrNotFound
	}
	if !rec.transition(StateCancelled) {
		return ErrAlreadyTerminal
	}

	// Join outside the collection mutex so a stop in progress never
	// blocks unrelated registry operations.
	<-rec.done

	left := rec.remaining(r.now())
	r.sink.Print(fmt.Sprintf("[CANCEL] timer #%d %q (%s left)", rec.id, rec.label, FormatDuration(left)))
	r.journal.Record(journal.Event{
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Kind:      journal.KindTimerCancelled,
		Timer: &journal.TimerEvent{
			ID:        rec.id,
			Label:     rec.label,
			Duration:  rec.duration,
			Remaining: left,
		},
	})
	return nil
}

// ShutdownAll cancels every running timer and waits for every task to
// stop. Unlike Cancel it prints no per-timer notifications. It is
// idempotent and safe to call concurrently from normal exit and signal
// handling; every caller returns only once all tasks have stopped.
func (r *Registry) ShutdownAll() {
	first := !r.stopping.Swap(true)

	r.mu.Lock()
	recs := make([]*Record, len(r.records))
	copy(recs, r.records)
	r.mu.Unlock()

	cancelled := 0
	for _, rec := range recs {
		if rec.transition(StateCancelled) {
			cancelled++
		}
	}

	// Join every task outside the mutex.
	for _, rec := range recs {
		<-rec.done
	}

	if first {
		r.journal.Record(journal.Event{
			Timestamp: r.now(),
			SessionID: r.sessionID,
			Kind:      journal.KindShutdown,
			Shutdown:  &journal.ShutdownEvent{Active: cancelled},
		})
	}
}
