// Package testharness provides shared helpers for multitimer tests: a
// notification capture sink, an in-memory journal, a polling wait for
// asynchronous state transitions, and a journal file fixture writer.
package testharness

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
	"github.com/multitimer-project/multitimer-go/pkg/sink"
)

// CaptureSink records notification lines for assertions.
// It is safe for concurrent use.
type CaptureSink struct {
	mu    sync.Mutex
	lines []string
}

// Print records the message.
func (s *CaptureSink) Print(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, msg)
}

// Lines returns a copy of everything printed so far.
func (s *CaptureSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Contains reports whether any recorded line contains substr.
func (s *CaptureSink) Contains(substr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Count returns the number of recorded lines.
func (s *CaptureSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Compile-time interface satisfaction check.
var _ sink.Sink = (*CaptureSink)(nil)

// CaptureJournal records events in memory for assertions.
// It is safe for concurrent use.
type CaptureJournal struct {
	mu     sync.Mutex
	events []journal.Event
}

// Record stores the event.
func (j *CaptureJournal) Record(event journal.Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, event)
}

// Events returns a copy of everything recorded so far.
func (j *CaptureJournal) Events() []journal.Event {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]journal.Event, len(j.events))
	copy(out, j.events)
	return out
}

// Kinds returns the recorded event kinds in order.
func (j *CaptureJournal) Kinds() []journal.Kind {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]journal.Kind, 0, len(j.events))
	for _, e := range j.events {
		out = append(out, e.Kind)
	}
	return out
}

// Compile-time interface satisfaction check.
var _ journal.Journal = (*CaptureJournal)(nil)

// WaitFor polls cond every millisecond until it returns true, failing
// the test when the timeout elapses first. Use it instead of fixed
// sleeps when waiting for asynchronous timer transitions.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}

// WriteJournal writes the given events, as-is, to a fresh journal file
// under t.TempDir and returns its path. The file starts with a session
// header for sessionID, so events should carry the same session id.
func WriteJournal(t *testing.T, sessionID string, events []journal.Event) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.tlog")
	j, err := journal.NewFileJournal(path, sessionID)
	if err != nil {
		t.Fatalf("failed to create journal fixture: %v", err)
	}
	for _, e := range events {
		j.Record(e)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("failed to close journal fixture: %v", err)
	}
	return path
}
