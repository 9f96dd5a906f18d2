package commands

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
	"github.com/multitimer-project/multitimer-go/pkg/version"
)

func TestFilterBySessionID(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	events := []journal.Event{
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindSession, FormatVersion: version.Current},
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 1, Label: "Tea", Duration: 10 * time.Minute}},
		{Timestamp: ts, SessionID: "sess-2", Kind: journal.KindSession, FormatVersion: version.Current},
		{Timestamp: ts, SessionID: "sess-2", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 1, Label: "Eggs", Duration: 7 * time.Minute}},
	}

	path := createTestJournal(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.tlog")

	err := RunFilter(path, FilterOptions{
		Output:    outPath,
		SessionID: "sess-1",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	// Verify output
	reader, err := journal.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		if event.SessionID != "sess-1" {
			t.Errorf("expected sess-1, got %s", event.SessionID)
		}
		count++
	}

	if count != 2 {
		t.Errorf("expected 2 events, got %d", count)
	}
}

func TestFilterByTimeRange(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []journal.Event{
		{Timestamp: base, SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 1, Label: "a", Duration: time.Minute}},
		{Timestamp: base.Add(time.Hour), SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 2, Label: "b", Duration: time.Minute}},
		{Timestamp: base.Add(2 * time.Hour), SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 3, Label: "c", Duration: time.Minute}},
	}

	path := createTestJournal(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.tlog")

	err := RunFilter(path, FilterOptions{
		Output:    outPath,
		TimeStart: base.Add(30 * time.Minute).Format(time.RFC3339),
		TimeEnd:   base.Add(90 * time.Minute).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	// Verify output - should only have the 10:00 + 1hr event
	reader, err := journal.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		if event.Timer == nil || event.Timer.ID != 2 {
			t.Errorf("expected timer #2, got %+v", event.Timer)
		}
		count++
	}

	if count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
}

func TestFilterCommandByKind(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []journal.Event{
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 1, Label: "Tea", Duration: 10 * time.Minute}},
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerCancelled,
			Timer: &journal.TimerEvent{ID: 1, Label: "Tea", Duration: 10 * time.Minute, Remaining: 9 * time.Minute}},
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerFinished,
			Timer: &journal.TimerEvent{ID: 2, Label: "Eggs", Duration: 7 * time.Minute}},
	}

	path := createTestJournal(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.tlog")

	err := RunFilter(path, FilterOptions{
		Output: outPath,
		Kind:   "cancelled",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	reader, err := journal.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		if event.Kind != journal.KindTimerCancelled {
			t.Errorf("expected cancelled kind, got %v", event.Kind)
		}
		count++
	}

	if count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
}

func TestFilterOutputRoundTrips(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []journal.Event{
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerCancelled,
			Timer: &journal.TimerEvent{ID: 5, Label: "Tea", Duration: 10 * time.Minute, Remaining: 3 * time.Minute}},
	}

	path := createTestJournal(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.tlog")

	err := RunFilter(path, FilterOptions{Output: outPath})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	reader, err := journal.NewReader(outPath)
	if err != nil {
		t.Fatalf("failed to open output as journal: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("failed to read event: %v", err)
	}

	if event.Timer == nil || event.Timer.ID != 5 {
		t.Errorf("expected timer #5, got %+v", event.Timer)
	}
	if event.Timer.Remaining != 3*time.Minute {
		t.Errorf("expected 3m remaining, got %s", event.Timer.Remaining)
	}
}

func TestFilterInvalidTimeFormat(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []journal.Event{
		{Timestamp: ts, SessionID: "sess-1", Kind: journal.KindTimerAdded,
			Timer: &journal.TimerEvent{ID: 1, Label: "Tea", Duration: time.Minute}},
	}

	path := createTestJournal(t, events)
	outPath := filepath.Join(t.TempDir(), "filtered.tlog")

	err := RunFilter(path, FilterOptions{
		Output:    outPath,
		TimeStart: "yesterday",
	})
	if err == nil {
		t.Fatal("expected error for invalid time format")
	}
	if !strings.Contains(err.Error(), "time-start") {
		t.Errorf("expected time-start error, got: %v", err)
	}
}
