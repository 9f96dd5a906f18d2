// Package journal captures timer lifecycle events in CBOR format for
// post-hoc analysis.
//
// Events are written as a flat stream of CBOR maps with integer keys,
// one event per entry, so files stay compact and can be appended to
// across process runs. Each run writes a session header event first;
// the header carries the journal format version and a session ID that
// keeps interleaved runs distinguishable.
//
// The package provides:
//   - Event: the journal event model (session, added, cancelled,
//     finished, shutdown)
//   - Journal: the capture interface, with file, slog, multi, and nop
//     implementations
//   - Reader: a filtering iterator over journal files
//
// Example usage:
//
//	j, err := journal.NewFileJournal("session.tlog", sessionID)
//	if err != nil {
//		return err
//	}
//	defer j.Close()
//
//	j.Record(journal.Event{
//		Timestamp: time.Now(),
//		SessionID: sessionID,
//		Kind:      journal.KindTimerAdded,
//		Timer:     &journal.TimerEvent{ID: 1, Label: "Tea", Duration: 10 * time.Minute},
//	})
package journal
