package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/multitimer-project/multitimer-go/pkg/journal"
)

// RunExport exports the journal file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := journal.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open journal file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *journal.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *journal.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{"timestamp", "session_id", "kind", "timer_id", "label", "duration_seconds", "remaining_seconds", "active"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		timerID := ""
		label := ""
		durationSecs := ""
		remainingSecs := ""
		active := ""
		if event.Timer != nil {
			timerID = strconv.FormatUint(event.Timer.ID, 10)
			label = event.Timer.Label
			durationSecs = strconv.FormatInt(int64(event.Timer.Duration/time.Second), 10)
			if event.Kind == journal.KindTimerCancelled {
				remainingSecs = strconv.FormatInt(int64(event.Timer.Remaining/time.Second), 10)
			}
		}
		if event.Shutdown != nil {
			active = strconv.Itoa(event.Shutdown.Active)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Kind.String(),
			timerID,
			label,
			durationSecs,
			remainingSecs,
			active,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
