package journal

import (
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multitimer-project/multitimer-go/pkg/version"
)

// readAll drains every event from the journal file at path.
func readAll(t *testing.T, path string) []Event {
	t.Helper()

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var events []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, event)
	}
}

func TestFileJournalWritesSessionHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	j, err := NewFileJournal(path, "sess-abc")
	require.NoError(t, err)
	require.NoError(t, j.Close())

	events := readAll(t, path)
	require.Len(t, events, 1)
	assert.Equal(t, KindSession, events[0].Kind)
	assert.Equal(t, "sess-abc", events[0].SessionID)
	assert.Equal(t, version.Current, events[0].FormatVersion)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestFileJournalAppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	first, err := NewFileJournal(path, "sess-one")
	require.NoError(t, err)
	first.Record(Event{
		Timestamp: time.Now(),
		SessionID: "sess-one",
		Kind:      KindTimerAdded,
		Timer:     &TimerEvent{ID: 1, Label: "Tea", Duration: 10 * time.Minute},
	})
	require.NoError(t, first.Close())

	second, err := NewFileJournal(path, "sess-two")
	require.NoError(t, err)
	second.Record(Event{
		Timestamp: time.Now(),
		SessionID: "sess-two",
		Kind:      KindTimerAdded,
		Timer:     &TimerEvent{ID: 1, Label: "Coffee", Duration: 5 * time.Minute},
	})
	require.NoError(t, second.Close())

	events := readAll(t, path)
	require.Len(t, events, 4)
	assert.Equal(t, KindSession, events[0].Kind)
	assert.Equal(t, "sess-one", events[0].SessionID)
	assert.Equal(t, "sess-one", events[1].SessionID)
	assert.Equal(t, KindSession, events[2].Kind)
	assert.Equal(t, "sess-two", events[2].SessionID)
	assert.Equal(t, "sess-two", events[3].SessionID)
}

func TestFileJournalRecordAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	j, err := NewFileJournal(path, "sess-abc")
	require.NoError(t, err)
	require.NoError(t, j.Close())
	require.NoError(t, j.Close(), "double close should be safe")

	// Silently ignored
	j.Record(Event{Timestamp: time.Now(), SessionID: "sess-abc", Kind: KindTimerAdded})

	events := readAll(t, path)
	assert.Len(t, events, 1, "only the session header should be present")
}

func TestFileJournalConcurrentRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	j, err := NewFileJournal(path, "sess-abc")
	require.NoError(t, err)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for n := 0; n < perWriter; n++ {
				j.Record(Event{
					Timestamp: time.Now(),
					SessionID: "sess-abc",
					Kind:      KindTimerAdded,
					Timer:     &TimerEvent{ID: uint64(id*perWriter + n + 1), Label: "x", Duration: time.Minute},
				})
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, j.Close())

	events := readAll(t, path)
	assert.Len(t, events, writers*perWriter+1, "all events plus the session header")
}
