// Package waveform synthesizes the digitized SiPM signal for one event from
// its avalanche.Set: gaussian baseline noise, per-avalanche cell-to-cell
// gain variation, and the sum of every avalanche's pulse shape placed at
// its firing time.
//
// # Dispatch strategy
//
// Waveform synthesis is selected by how many avalanches an event produced:
// very small or very large events always run scalar, a middle band can be
// vectorized. No GPU backend is available in this dependency set, so
// Synthesize always computes on the CPU, but it preserves a three-way band
// as a strategy selector between a scalar per-pulse loop (addPulsesScalar)
// and a gonum/floats-vectorized accumulation (addPulsesBatched) — both
// numerically identical, since there is no separate hardware path to
// diverge from.
package waveform
