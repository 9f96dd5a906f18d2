package journal

import (
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/multitimer-project/multitimer-go/pkg/version"
)

// FileJournal appends timer events to a file in CBOR format.
// It is safe for concurrent use from multiple goroutines.
//
// Opening a FileJournal writes a session header event carrying the
// journal format version, so every run appending to a shared file is
// self-describing.
type FileJournal struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewFileJournal opens (or creates) the journal file at path and writes
// the session header for this run. If the file already exists, events
// are appended. The file is created with permissions 0644.
func NewFileJournal(path, sessionID string) (*FileJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	j := &FileJournal{
		file:    f,
		encoder: NewEncoder(f),
	}
	j.Record(Event{
		Timestamp:     time.Now(),
		SessionID:     sessionID,
		Kind:          KindSession,
		FormatVersion: version.Current,
	})
	return j, nil
}

// Record writes an event to the journal file.
// This method is safe for concurrent use.
func (j *FileJournal) Record(event Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	// Ignore encoding errors - capture must not disrupt the timers.
	_ = j.encoder.Encode(event)
}

// Close closes the journal file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Record calls are silently ignored.
func (j *FileJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}

	j.closed = true
	return j.file.Close()
}

// Compile-time interface satisfaction check.
var _ Journal = (*FileJournal)(nil)
