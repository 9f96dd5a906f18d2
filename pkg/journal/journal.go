package journal

// Journal is the interface applications implement to capture timer
// lifecycle events.
type Journal interface {
	// Record captures one event. Implementations must be safe for
	// concurrent use and must not fail timer operations on capture
	// problems.
	Record(event Event)
}

// NopJournal discards all events. Use when capture is disabled.
// NopJournal is safe for concurrent use and usable as a zero value.
type NopJournal struct{}

// Record discards the event.
func (NopJournal) Record(Event) {}

// Compile-time interface satisfaction check.
var _ Journal = NopJournal{}
