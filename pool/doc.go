// Package pool runs many simworker.Driver pipelines concurrently over a
// fixed number of worker goroutines.
//
// # Design
//
// Pool owns one unbuffered job channel and one unbuffered result channel.
// Each worker goroutine derives its own rng.Stream from the pool's root
// seed via Stream.Derive(workerIndex) — never sharing a stream with any
// other worker — and builds exactly one simworker.Driver that it reuses
// for every job it pulls off the channel for the lifetime of the pool.
// Results are emitted in whatever order workers finish them, tagged by
// whatever Tag the caller attached to the Event; result ordering need not
// match submission order.
//
// Structured progress and shutdown logging uses logrus, following the
// level conventions ("starting workers", "job submission closed", per-worker panics
// recovered as Error-level logs rather than crashing the pool) adopted
// across this repository's cmd/ entrypoint.
package pool
