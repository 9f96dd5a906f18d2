package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
)

// Stats holds aggregate statistics about a journal file.
type Stats struct {
	TotalEvents  int
	EventsByKind map[journal.Kind]int
	Sessions     map[string]*SessionStats
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Added     int
	Cancelled int
	Finished  int
}

// RunStats analyzes the journal file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := journal.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[journal.Kind]int),
		Sessions:     make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		switch event.Kind {
		case journal.KindTimerAdded:
			sess.Added++
		case journal.KindTimerCancelled:
			sess.Cancelled++
		case journal.KindTimerFinished:
			sess.Finished++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Timer Journal Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by kind
	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []journal.Kind{journal.KindSession, journal.KindTimerAdded, journal.KindTimerCancelled, journal.KindTimerFinished, journal.KindShutdown} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Sessions
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		// Sort by first seen time
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(s.id), s.stats.Events, duration)
			fmt.Fprintf(w, "           Timers: added %d, cancelled %d, finished %d\n",
				s.stats.Added, s.stats.Cancelled, s.stats.Finished)
		}
	}

	// Cancellation rate across the whole file
	added := stats.EventsByKind[journal.KindTimerAdded]
	cancelled := stats.EventsByKind[journal.KindTimerCancelled]
	if added > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Cancellation Rate: %.1f%% (%d of %d)\n",
			float64(cancelled)/float64(added)*100, cancelled, added)
	}
}
