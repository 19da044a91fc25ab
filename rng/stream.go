package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// splitMix64Gamma is the canonical SplitMix64 golden-ratio increment (Vigna
// 2014 / Steele, Lea & Flood 2014). It is used only to decorrelate derived
// seeds; it has no bearing on the statistical quality of the downstream
// math/rand stream itself.
const splitMix64Gamma = 0x9e3779b97f4a7c15

// Stream is a single worker's random source. It is not safe for concurrent
// use: the pipeline calls it strictly sequentially within one worker
// goroutine (see package pool), so no locking is needed or attempted.
type Stream struct {
	src  *rand.Rand
	seed int64
}

// New seeds a Stream from OS entropy. Use this exactly once per process to
// obtain a root seed, then call Derive for every worker so that no two
// workers ever draw from the same stream.
func New() *Stream {
	return FromSeed(osEntropySeed())
}

// FromSeed seeds a Stream deterministically. Two Streams built with the
// same seed and driven by the same call sequence produce bit-identical
// output, on any platform, for the lifetime of the Go math/rand algorithm
// contract.
func FromSeed(seed int64) *Stream {
	return &Stream{src: rand.New(rand.NewSource(seed)), seed: seed}
}

// Derive produces an independent child Stream for worker index idx, mixing
// the parent's seed with idx via a SplitMix64-style avalanche so that
// consecutive worker indices do not yield correlated streams even for
// adjacent idx values.
//
// Complexity: O(1).
func (s *Stream) Derive(idx uint64) *Stream {
	return FromSeed(deriveSeed(s.seed, idx))
}

// Seed returns the seed this Stream was constructed with, for logging and
// provenance only; it must never be used to branch simulation behavior.
func (s *Stream) Seed() int64 { return s.seed }

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the SplitMix64 finalizer, for per-worker seed isolation.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + splitMix64Gamma)
	x += splitMix64Gamma
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// osEntropySeed reads a seed from the OS entropy pool. It never returns an
// error to the caller: on the vanishingly unlikely failure of
// crypto/rand.Read, it falls back to a fixed seed rather than panicking,
// since a simulator process starting up is not the place to fail hard over
// a seed source.
func osEntropySeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// UniformInt draws n values independently and uniformly from [0, hi].
//
// Complexity: O(n).
func (s *Stream) UniformInt(hi int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.src.Intn(hi + 1)
	}
	return out
}

// UniformChoice returns one element of seq chosen uniformly at random.
// seq must be non-empty; callers in this module never invoke it otherwise.
func (s *Stream) UniformChoice(seq []int) int {
	return seq[s.src.Intn(len(seq))]
}

// Normal draws n samples from Normal(mu, sigma).
//
// Complexity: O(n).
func (s *Stream) Normal(mu, sigma float64, n int) []float64 {
	out := make([]float64, n)
	if sigma == 0 {
		for i := range out {
			out[i] = mu
		}
		return out
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// Exponential draws n samples from an exponential distribution with the
// given mean (not rate). A mean of zero is invalid for the caller's
// physics (it would imply an infinite-rate process) and is rejected by the
// config layer before simulation starts; Exponential itself assumes
// mean > 0.
//
// Complexity: O(n).
func (s *Stream) Exponential(mean float64, n int) []float64 {
	out := make([]float64, n)
	d := distuv.Exponential{Rate: 1 / mean, Src: s.src}
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// Poisson draws n samples from Poisson(lambda). lambda == 0 always yields 0
// without consulting the underlying distribution, since distuv.Poisson
// requires Lambda > 0.
//
// Complexity: O(n).
func (s *Stream) Poisson(lambda float64, n int) []int {
	out := make([]int, n)
	if lambda <= 0 {
		return out
	}
	d := distuv.Poisson{Lambda: lambda, Src: s.src}
	for i := range out {
		out[i] = int(d.Rand())
	}
	return out
}

// PoissonOne draws a single Poisson(lambda) sample. It is a convenience
// wrapper over Poisson used in the hot path (crosstalk/afterpulse
// expansion) to avoid a one-element slice allocation per avalanche.
func (s *Stream) PoissonOne(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	d := distuv.Poisson{Lambda: lambda, Src: s.src}
	return int(d.Rand())
}

// Float64 returns one uniform sample in [0, 1).
func (s *Stream) Float64() float64 { return s.src.Float64() }
