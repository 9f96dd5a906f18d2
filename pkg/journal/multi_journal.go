package journal

// MultiJournal sends events to multiple journals.
// Useful when you want both console output (via SlogJournal)
// and file capture (via FileJournal) simultaneously.
type MultiJournal struct {
	journals []Journal
}

// NewMultiJournal creates a MultiJournal that sends events to all
// provided journals.
func NewMultiJournal(journals ...Journal) *MultiJournal {
	return &MultiJournal{journals: journals}
}

// Record sends the event to all configured journals.
func (m *MultiJournal) Record(event Event) {
	for _, j := range m.journals {
		j.Record(event)
	}
}

// Compile-time interface satisfaction check.
var _ Journal = (*MultiJournal)(nil)
