// Package timer implements the countdown timer lifecycle and its
// concurrency discipline.
//
// A Registry owns every timer created during a process run. Each timer
// gets a Record (identity, schedule, state) and a task goroutine that
// drives the record from Running to a terminal state. Records are
// never removed; terminal ones stay listed as history.
//
// # State machine
//
// A record is Running until exactly one terminal transition wins:
//
//	Running -> Cancelled   stop requested before the task observed expiry
//	Running -> Finished    deadline reached, no stop condition set
//
// Terminal states are never left. Every transition goes through an
// atomic compare-and-swap on the record state, so a concurrent
// cancellation and expiry cannot both claim the same timer.
//
// # Polling
//
// Tasks do not sleep through their whole duration. They wait in bounded
// steps of at most one second, re-checking the registry stopping flag,
// their own state, and the deadline at each step. That keeps
// cancellation and shutdown latency at or below one step regardless of
// the remaining time.
//
// # Shutdown
//
// Registry.ShutdownAll is idempotent and safe to invoke concurrently
// from signal handling and normal exit. Shutdown outranks completion: a
// task that observes the stopping flag exits without marking its record
// Finished, so a timer expiring exactly at shutdown may never announce
// completion.
package timer
