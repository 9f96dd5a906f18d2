// Package sink serializes timer notifications into a single ordered
// output stream.
//
// Timer tasks announce completion asynchronously while the console owns
// the terminal, so every notification goes through a Sink that writes
// whole lines under a mutex. Messages from concurrent tasks never
// interleave; beyond that, whichever task acquires the sink first
// prints first.
package sink
