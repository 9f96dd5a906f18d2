package timer

import (
	"fmt"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
)

// runTask drives one record from Running to a terminal state. It runs
// on its own goroutine and closes the record's done channel on exit so
// Cancel and ShutdownAll can confirm the stop.
func (r *Registry) runTask(rec *Record) {
	defer close(rec.done)

	for {
		// Stop conditions are re-checked every poll step, which bounds
		// cancellation and shutdown latency to at most one step.
		if r.stopping.Load() {
			return
		}
		if rec.State() != StateRunning {
			return
		}

		left := rec.deadline.Sub(r.now())
		if left <= 0 {
			r.finish(rec)
			return
		}

		if left > r.pollStep {
			left = r.pollStep
		}
		wait, _ := r.newTimer(left)
		<-wait
	}
}

// finish marks the record Finished and announces it, unless shutdown or
// a concurrent cancellation won first. Shutdown outranks completion: a
// record expiring during shutdown stays silent.
func (r *Registry) finish(rec *Record) {
	if r.stopping.Load() {
		return
	}
	if !rec.transition(StateFinished) {
		return
	}

	r.sink.Print(fmt.Sprintf("[DONE] timer #%d %q finished", rec.id, rec.label))
	r.journal.Record(journal.Event{
		Timestamp: r.now(),
		SessionID: r.sessionID,
		Kind:      journal.KindTimerFinished,
		Timer: &journal.TimerEvent{
			ID:       rec.id,
			Label:    rec.label,
			Duration: rec.duration,
		},
	})
}
