package timer

import (
	"sync"
	"testing"
	"time"
)

func TestNewRecordDefaults(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rec := newRecord(3, "", 10*time.Minute, start)

	if rec.ID() != 3 {
		t.Errorf("ID() = %d, want 3", rec.ID())
	}
	if rec.Label() != DefaultLabel {
		t.Errorf("Label() = %q, want %q", rec.Label(), DefaultLabel)
	}
	if rec.Duration() != 10*time.Minute {
		t.Errorf("Duration() = %v, want 10m", rec.Duration())
	}
	if want := start.Add(10 * time.Minute); !rec.Deadline().Equal(want) {
		t.Errorf("Deadline() = %v, want %v", rec.Deadline(), want)
	}
	if rec.State() != StateRunning {
		t.Errorf("State() = %v, want RUNNING", rec.State())
	}
}

func TestRecordSnapshotRunning(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rec := newRecord(1, "Tea", 10*time.Minute, start)

	snap := rec.Snapshot(start.Add(2*time.Minute + 48*time.Second))
	if snap.State != StateRunning {
		t.Errorf("State = %v, want RUNNING", snap.State)
	}
	if want := 7*time.Minute + 12*time.Second; snap.Remaining != want {
		t.Errorf("Remaining = %v, want %v", snap.Remaining, want)
	}
}

func TestRecordSnapshotPendingDone(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	rec := newRecord(1, "Tea", time.Minute, start)

	// Exactly at the deadline counts as expired
	snap := rec.Snapshot(start.Add(time.Minute))
	if snap.State != StatePendingDone {
		t.Errorf("State at deadline = %v, want PENDING DONE", snap.State)
	}
	if snap.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", snap.Remaining)
	}

	snap = rec.Snapshot(start.Add(2 * time.Minute))
	if snap.State != StatePendingDone {
		t.Errorf("State past deadline = %v, want PENDING DONE", snap.State)
	}
	if snap.Remaining != 0 {
		t.Errorf("Remaining past deadline = %v, want 0", snap.Remaining)
	}
}

func TestRecordSnapshotTerminalStates(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	rec := newRecord(1, "Tea", time.Minute, start)
	if !rec.transition(StateCancelled) {
		t.Fatal("transition to CANCELLED failed")
	}
	// A cancelled record past its deadline stays CANCELLED
	if got := rec.Snapshot(start.Add(2 * time.Minute)).State; got != StateCancelled {
		t.Errorf("State = %v, want CANCELLED", got)
	}

	rec = newRecord(2, "Pasta", time.Minute, start)
	if !rec.transition(StateFinished) {
		t.Fatal("transition to FINISHED failed")
	}
	if got := rec.Snapshot(start.Add(2 * time.Minute)).State; got != StateFinished {
		t.Errorf("State = %v, want DONE", got)
	}
}

func TestRecordTransitionSingleWinner(t *testing.T) {
	start := time.Now()
	rec := newRecord(1, "Race", time.Minute, start)

	const racers = 32
	wins := make(chan State, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			to := StateCancelled
			if n%2 == 0 {
				to = StateFinished
			}
			if rec.transition(to) {
				wins <- to
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []State
	for w := range wins {
		winners = append(winners, w)
	}
	if len(winners) != 1 {
		t.Fatalf("%d transitions won, want exactly 1", len(winners))
	}
	if rec.State() != winners[0] {
		t.Errorf("State() = %v, want %v", rec.State(), winners[0])
	}
	if !rec.State().Terminal() {
		t.Errorf("final state %v is not terminal", rec.State())
	}
}
