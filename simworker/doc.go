// Package simworker composes the avalanche, waveform and feature packages
// into a single per-event pipeline: photon arrival times in, Features and
// Counters out.
//
// A Driver owns the per-worker state that must not be shared across
// goroutines — one rng.Stream, one pulseshape.Model, one reusable
// waveform.Waveform buffer — so that pool can hand one Driver to each
// worker goroutine and let it run Process sequentially for the lifetime
// of the worker.
package simworker
