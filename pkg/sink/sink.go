package sink

// Sink is the interface timer notifications are written to.
type Sink interface {
	// Print writes one notification line. Implementations must be safe
	// for concurrent use and must not interleave messages from
	// concurrent callers.
	Print(msg string)
}

// NopSink discards all notifications. Use when output is disabled.
// NopSink is safe for concurrent use and usable as a zero value.
type NopSink struct{}

// Print discards the message.
func (NopSink) Print(string) {}

// Compile-time interface satisfaction check.
var _ Sink = NopSink{}
