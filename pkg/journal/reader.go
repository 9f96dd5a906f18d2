package journal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/multitimer-project/multitimer-go/pkg/version"
)

// Filter specifies criteria for filtering journal events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	// SessionID filters by exact session ID match.
	SessionID string

	// Kind filters by event kind.
	Kind *Kind

	// TimerID filters timer events by id. Events without a timer
	// payload (session headers, shutdowns) never match when set.
	TimerID uint64

	// TimeStart filters events at or after this time.
	TimeStart *time.Time

	// TimeEnd filters events before this time.
	TimeEnd *time.Time
}

// matches returns true if the event matches all filter criteria.
func (f *Filter) matches(event Event) bool {
	if f.SessionID != "" && event.SessionID != f.SessionID {
		return false
	}
	if f.Kind != nil && event.Kind != *f.Kind {
		return false
	}
	if f.TimerID != 0 && (event.Timer == nil || event.Timer.ID != f.TimerID) {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads timer events from a CBOR-encoded journal file.
// It provides an iterator interface for streaming large files.
//
// The Reader verifies every session header it encounters and fails when
// the file was written by an incompatible journal format version.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all events from the specified
// journal file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads events matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next event that matches the filter.
// Returns io.EOF when no more events are available.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, err
		}

		if event.Kind == KindSession {
			if err := checkFormatVersion(event.FormatVersion); err != nil {
				return Event{}, err
			}
		}

		if r.filter.matches(event) {
			return event, nil
		}
		// Event doesn't match filter, continue to next
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// checkFormatVersion verifies a session header's format version against
// the version this library implements.
func checkFormatVersion(raw string) error {
	if raw == "" {
		return fmt.Errorf("session header is missing the journal format version")
	}

	fileVersion, err := version.Parse(raw)
	if err != nil {
		return fmt.Errorf("session header has an invalid format version: %w", err)
	}

	current, _ := version.Parse(version.Current)
	if !current.Compatible(fileVersion) {
		return fmt.Errorf("journal format version %s is not readable by version %s", fileVersion, version.Current)
	}
	return nil
}
