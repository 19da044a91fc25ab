// Package rng provides the per-worker deterministic random stream used by
// the SiPM Monte Carlo pipeline.
//
// # What & Why
//
// Every simulated event draws from exactly one Stream: a thin wrapper around
// a *rand.Rand source exposing the handful of distributions the physics
// model needs (uniform integer, uniform choice, normal, exponential,
// Poisson). A Stream is never shared between goroutines; each pool worker
// owns exactly one, created once at startup via New or Derive and reused for
// the lifetime of the worker (see package pool).
//
// # Algorithmic choice (reproducibility contract)
//
// Stream is backed by Go's standard math/rand algorithm (an additive lagged
// Fibonacci generator, source-compatible since Go 1.0) seeded with a single
// int64. For a fixed seed and a fixed sequence of calls, math/rand guarantees
// bit-identical output across platforms and process runs — exactly the
// reproducibility contract the simulator needs. Draws that require a named
// distribution (Poisson, Normal, Exponential) are implemented with
// gonum.org/v1/gonum/stat/distuv, each instance configured to pull its
// entropy from this Stream's *rand.Rand so the whole draw sequence — not
// just the raw uniform stream — stays deterministic per seed.
//
// # Worker isolation
//
// Seeds are never reused across workers. New derives a process seed from OS
// entropy; Derive mixes that seed with a worker index using a SplitMix64-style
// avalanche finalizer to spin up independent per-worker streams, so that two
// workers are never observed to share a state even if the OS-entropy seed
// were to collide.
package rng
