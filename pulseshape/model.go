package pulseshape

import "math"

// Model holds the time constants for one pulse shape and a precomputed
// unit-amplitude template for the fast placement path. It is read-only
// after New; simworker builds one Model per Driver.
type Model struct {
	tFall, tRise float64
	peakRatio    float64
	template     []float64 // PeakRatio*unit(i), i in samples, for the fast path
}

// New builds a Model for the given fall/rise time constants (in the same
// time unit as the sample indices AddFast/AddExact receive, i.e. already
// divided by SAMPLING) and precomputes a template of length n samples.
//
// tFall and tRise must be positive and distinct; New panics otherwise.
// sipmconfig rejects non-positive TFALL/TRISE before a Model is built, but
// it does not check that the two differ.
//
// Complexity: O(n).
func New(tFall, tRise float64, n int) *Model {
	if tFall <= 0 || tRise <= 0 {
		panic("pulseshape: tFall and tRise must be positive")
	}
	if tFall == tRise {
		panic("pulseshape: tFall and tRise must differ")
	}
	m := &Model{
		tFall:     tFall,
		tRise:     tRise,
		peakRatio: peakRatio(tFall, tRise),
	}
	m.template = make([]float64, n)
	for i := range m.template {
		m.template[i] = m.peakRatio * unit(float64(i), tFall, tRise)
	}
	return m
}

// PeakRatio returns the normalization constant that scales the raw
// double-exponential shape so a single photoelectron peaks at amplitude 1.
func (m *Model) PeakRatio() float64 { return m.peakRatio }

// Template returns the precomputed unit-amplitude template AddFast shifts
// into a destination buffer. Callers that need to vectorize pulse
// placement themselves (see waveform's batched dispatch path) can slice
// this directly instead of going through AddFast; the returned slice must
// be treated as read-only.
func (m *Model) Template() []float64 { return m.template }

// unit evaluates the unnormalized double-exponential pulse shape at time t
// (t measured in samples, t >= 0 required for a nonzero result).
func unit(t, tFall, tRise float64) float64 {
	if t < 0 {
		return 0
	}
	return math.Exp(-t/tFall) - math.Exp(-t/tRise)
}

// peakRatio computes the scale factor that normalizes unit's peak to 1,
// evaluated at the analytic peak time t* = tFall*tRise*ln(tFall/tRise)/(tFall-tRise).
func peakRatio(tFall, tRise float64) float64 {
	lnRatio := math.Log(tRise / tFall)
	denom := tFall - tRise
	peak := -math.Exp(tFall*lnRatio/denom) + math.Exp(tRise*lnRatio/denom)
	return 1 / peak
}

// AddFast adds amplitude*PeakRatio*unit(i-t0Samples) into dst for every
// in-bounds sample, using the precomputed template shifted by t0Samples
// whole samples. Samples before t0Samples or beyond len(dst) are left
// untouched. A negative t0Samples is treated as 0: the template is placed
// unshifted from dst[0].
// dst must not be longer than the template New was built with.
//
// Complexity: O(len(dst) - t0Samples).
func (m *Model) AddFast(dst []float64, t0Samples int, amplitude float64) {
	if t0Samples < 0 {
		t0Samples = 0
	}
	n := len(dst)
	if t0Samples >= n {
		return
	}
	span := n - t0Samples
	if span > len(m.template) {
		span = len(m.template)
	}
	for i := 0; i < span; i++ {
		dst[t0Samples+i] += amplitude * m.template[i]
	}
}

// AddExact adds amplitude*PeakRatio*unit(i-t0) into dst for every in-bounds sample,
// recomputing the closed-form shape at each sample rather than reusing the
// template. t0 may be fractional, unlike AddFast's integer shift.
//
// Complexity: O(len(dst)).
func (m *Model) AddExact(dst []float64, t0 float64, amplitude float64) {
	scale := amplitude * m.peakRatio
	for i := range dst {
		v := unit(float64(i)-t0, m.tFall, m.tRise)
		if v != 0 {
			dst[i] += scale * v
		}
	}
}
