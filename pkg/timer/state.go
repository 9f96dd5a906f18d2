package timer

// State identifies where a timer is in its lifecycle.
type State uint32

const (
	// StateRunning indicates the timer is counting down.
	StateRunning State = 0

	// StateCancelled indicates the timer was stopped before its task
	// observed the deadline.
	StateCancelled State = 1

	// StateFinished indicates the timer reached its deadline and its
	// task announced completion.
	StateFinished State = 2

	// StatePendingDone indicates a running timer whose deadline has
	// passed but whose task has not yet marked it Finished. It only
	// appears in snapshots and is never stored in a record.
	StatePendingDone State = 3
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateCancelled:
		return "CANCELLED"
	case StateFinished:
		return "DONE"
	case StatePendingDone:
		return "PENDING DONE"
	default:
		return "UNKNOWN"
	}
}

// Terminal returns true for states a timer never leaves.
func (s State) Terminal() bool {
	return s == StateCancelled || s == StateFinished
}
