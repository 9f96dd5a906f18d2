package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	SessionID string
	Kind      string
	TimerID   uint64
	TimeStart string
	TimeEnd   string
}

// RunFilter filters the journal file and writes matching events to a
// new file. Events are copied verbatim, so session headers survive the
// trip when they match the filter.
func RunFilter(path string, opts FilterOptions) error {
	// Build filter
	filter := journal.Filter{
		SessionID: opts.SessionID,
		TimerID:   opts.TimerID,
	}

	if opts.Kind != "" {
		k, err := ParseKindFlag(opts.Kind)
		if err != nil {
			return err
		}
		filter.Kind = &k
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	// Open input
	reader, err := journal.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer reader.Close()

	// Write raw events rather than going through a FileJournal, which
	// would stamp a fresh session header into the output.
	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	encoder := journal.NewEncoder(out)

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to write event: %w", err)
		}
		count++
	}

	fmt.Printf("Filtered %d events to %s\n", count, opts.Output)
	return nil
}
