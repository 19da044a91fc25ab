// Package pulseshape models the single-cell double-exponential SiPM pulse
// and the two ways the rest of the pipeline can place copies of it into a
// waveform buffer.
//
// # Shape
//
//	unit(t) = exp(-t/TFALL) - exp(-t/TRISE),  t >= 0 (0 otherwise)
//
// unit is not itself peak-normalized, so Model precomputes a PeakRatio
// scale factor such that PeakRatio*unit peaks at exactly 1 for a single
// photoelectron. Every placed pulse's amplitude is then
// height * PeakRatio * unit(t - t0).
//
// # Fast vs exact placement
//
// Model precomputes one unit-amplitude template sampled over the full
// waveform length (t0 = 0) and exposes AddFast, which shifts that template
// into a destination buffer and scales it — O(n) per call with no
// transcendental math. AddExact instead recomputes the closed form at every
// destination sample for callers that need adjacency-error-free placement,
// at the cost of two exp() calls per sample.
package pulseshape
