package sink

import (
	"fmt"
	"io"
	"sync"
)

// WriterSink writes notifications to an io.Writer, one line per message.
// It is safe for concurrent use from multiple goroutines.
type WriterSink struct {
	mu      sync.Mutex
	w       io.Writer
	refresh func()
}

// NewWriterSink creates a WriterSink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// SetOutput rebinds the sink to a new writer. The console uses this to
// take over notification output once it owns the terminal.
func (s *WriterSink) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

// SetRefresh installs a hook invoked after each write. The console uses
// it to redraw the prompt after an asynchronous notification.
func (s *WriterSink) SetRefresh(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = fn
}

// Print writes one notification line.
// This method is safe for concurrent use.
func (s *WriterSink) Print(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ignore write errors - notifications must not disrupt the timers.
	fmt.Fprintln(s.w, msg)
	if s.refresh != nil {
		s.refresh()
	}
}

// Compile-time interface satisfaction check.
var _ Sink = (*WriterSink)(nil)
