package journal

import (
	"context"
	"log/slog"
)

// SlogJournal writes timer events to an slog.Logger.
// Useful for development when you want to see lifecycle events in console.
type SlogJournal struct {
	logger *slog.Logger
}

// NewSlogJournal creates a new SlogJournal that writes to the given slog.Logger.
func NewSlogJournal(logger *slog.Logger) *SlogJournal {
	return &SlogJournal{logger: logger}
}

// Record writes the event to the slog logger at Debug level.
func (j *SlogJournal) Record(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("kind", event.Kind.String()),
	}

	if event.FormatVersion != "" {
		attrs = append(attrs, slog.String("format_version", event.FormatVersion))
	}

	// Add type-specific attributes
	switch {
	case event.Timer != nil:
		attrs = append(attrs,
			slog.Uint64("timer_id", event.Timer.ID),
			slog.String("label", event.Timer.Label),
			slog.Duration("duration", event.Timer.Duration),
		)
		if event.Timer.Remaining > 0 {
			attrs = append(attrs, slog.Duration("remaining", event.Timer.Remaining))
		}
	case event.Shutdown != nil:
		attrs = append(attrs, slog.Int("active", event.Shutdown.Active))
	}

	j.logger.LogAttrs(context.Background(), slog.LevelDebug, "timer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Journal = (*SlogJournal)(nil)
