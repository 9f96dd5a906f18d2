package journal

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureJournal records events in memory for assertions.
type captureJournal struct {
	mu     sync.Mutex
	events []Event
}

func (c *captureJournal) Record(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureJournal) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestMultiJournalFansOut(t *testing.T) {
	first := &captureJournal{}
	second := &captureJournal{}
	multi := NewMultiJournal(first, second)

	multi.Record(Event{Timestamp: time.Now(), SessionID: "sess-abc", Kind: KindTimerAdded})
	multi.Record(Event{Timestamp: time.Now(), SessionID: "sess-abc", Kind: KindShutdown})

	assert.Equal(t, 2, first.count())
	assert.Equal(t, 2, second.count())
}

func TestMultiJournalEmpty(t *testing.T) {
	multi := NewMultiJournal()
	multi.Record(Event{Timestamp: time.Now(), Kind: KindTimerAdded})
}

func TestSlogJournalWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	j := NewSlogJournal(logger)
	j.Record(Event{
		Timestamp: time.Now(),
		SessionID: "sess-abc",
		Kind:      KindTimerCancelled,
		Timer: &TimerEvent{
			ID:        3,
			Label:     "Tea",
			Duration:  10 * time.Minute,
			Remaining: 7 * time.Minute,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "kind=CANCELLED")
	assert.Contains(t, out, "timer_id=3")
	assert.Contains(t, out, "label=Tea")
	assert.Contains(t, out, "remaining=7m0s")
}

func TestSlogJournalShutdownEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	j := NewSlogJournal(logger)
	j.Record(Event{
		Timestamp: time.Now(),
		SessionID: "sess-abc",
		Kind:      KindShutdown,
		Shutdown:  &ShutdownEvent{Active: 2},
	})

	assert.Contains(t, buf.String(), "active=2")
}
