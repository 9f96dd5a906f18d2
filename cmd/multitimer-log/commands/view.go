// Package commands implements the multitimer-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
	"github.com/multitimer-project/multitimer-go/pkg/timer"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind      *journal.Kind
	TimerID   uint64
	SessionID string
}

// formatEvent writes a one-line human-readable representation of the
// event to w.
func formatEvent(w io.Writer, event journal.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sess := shortenSessionID(event.SessionID)
	kind := event.Kind.String()

	switch {
	case event.Kind == journal.KindSession:
		fmt.Fprintf(w, "%s [sess:%s] %s start (format %s)\n", ts, sess, kind, event.FormatVersion)
	case event.Timer != nil && event.Kind == journal.KindTimerCancelled:
		fmt.Fprintf(w, "%s [sess:%s] %s timer #%d %q (%s left)\n",
			ts, sess, kind, event.Timer.ID, event.Timer.Label, timer.FormatDuration(event.Timer.Remaining))
	case event.Timer != nil:
		fmt.Fprintf(w, "%s [sess:%s] %s timer #%d %q (%s)\n",
			ts, sess, kind, event.Timer.ID, event.Timer.Label, timer.FormatDuration(event.Timer.Duration))
	case event.Shutdown != nil:
		fmt.Fprintf(w, "%s [sess:%s] %s (%d active)\n", ts, sess, kind, event.Shutdown.Active)
	default:
		fmt.Fprintf(w, "%s [sess:%s] %s\n", ts, sess, kind)
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseKindFlag parses an event kind from a command-line flag
// (case-insensitive).
func ParseKindFlag(s string) (journal.Kind, error) {
	switch strings.ToLower(s) {
	case "session":
		return journal.KindSession, nil
	case "added", "add":
		return journal.KindTimerAdded, nil
	case "cancelled", "cancel":
		return journal.KindTimerCancelled, nil
	case "finished", "done":
		return journal.KindTimerFinished, nil
	case "shutdown":
		return journal.KindShutdown, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be session, added, cancelled, finished, or shutdown)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := journal.NewFilteredReader(path, journal.Filter{
		SessionID: filter.SessionID,
		Kind:      filter.Kind,
		TimerID:   filter.TimerID,
	})
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
