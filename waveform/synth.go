package waveform

import (
	"gonum.org/v1/gonum/floats"

	"github.com/gophotonics/sipmsim/avalanche"
	"github.com/gophotonics/sipmsim/pulseshape"
	"github.com/gophotonics/sipmsim/rng"
	"github.com/gophotonics/sipmsim/sipmconfig"
)

// Synthesize fills dst with the digitized signal for set: gaussian
// baseline noise around a per-waveform offset drawn from
// Normal(0, BaseSpread), then every avalanche's pulse shape added at its firing
// time and scaled by its recovery height and an independently-drawn
// cell-to-cell gain variation factor. dst is reset first, so callers may
// reuse the same Waveform across events.
//
// Complexity: O(SigPts + k) where k is the avalanche count, except in the
// exact-pulse path, which is O(SigPts*k).
func Synthesize(cfg *sipmconfig.Config, model *pulseshape.Model, set *avalanche.Set, stream *rng.Stream, dst *Waveform) {
	dst.Reset()
	offset := stream.Normal(0, cfg.BaseSpread(), 1)[0]
	baseline := stream.Normal(offset, cfg.SNRLinear(), len(dst.Samples))
	copy(dst.Samples, baseline)

	n := len(set.Avalanches)
	if n == 0 {
		return
	}
	gains := stream.Normal(1, cfg.CCGV(), n)
	samplingNS := cfg.SamplingNS()

	switch {
	case cfg.ExactPulse():
		addPulsesExact(dst.Samples, model, set.Avalanches, gains, samplingNS)
	case n >= cfg.CPUThreshold() && n <= cfg.GPUMax():
		addPulsesBatched(dst.Samples, model, set.Avalanches, gains, samplingNS)
	default:
		addPulsesScalar(dst.Samples, model, set.Avalanches, gains, samplingNS)
	}
}

// addPulsesScalar places every avalanche's pulse with a manual accumulation
// loop (pulseshape.Model.AddFast), used below Config.CPUThreshold and above
// Config.GPUMax where the batched path's per-call overhead would not pay
// for itself.
func addPulsesScalar(dst []float64, model *pulseshape.Model, avalanches []avalanche.Avalanche, gains []float64, samplingNS float64) {
	for i, av := range avalanches {
		t0 := int(av.TimeNS / samplingNS)
		model.AddFast(dst, t0, av.Height*gains[i])
	}
}

// addPulsesBatched places every avalanche's pulse via gonum/floats'
// vectorized AddScaled instead of a manual Go loop, exercised for event
// sizes inside the [CPUThreshold, GPUMax] band. It produces results
// bit-identical to addPulsesScalar; only the inner-loop implementation
// differs.
func addPulsesBatched(dst []float64, model *pulseshape.Model, avalanches []avalanche.Avalanche, gains []float64, samplingNS float64) {
	template := model.Template()
	n := len(dst)
	for i, av := range avalanches {
		t0 := int(av.TimeNS / samplingNS)
		if t0 < 0 {
			t0 = 0
		}
		if t0 >= n {
			continue
		}
		span := n - t0
		if span > len(template) {
			span = len(template)
		}
		floats.AddScaled(dst[t0:t0+span], av.Height*gains[i], template[:span])
	}
}

// addPulsesExact recomputes the closed-form pulse shape at every sample
// for every avalanche (pulseshape.Model.AddExact), used when
// Config.ExactPulse forces full per-sample fidelity instead of the
// shifted-template approximation.
func addPulsesExact(dst []float64, model *pulseshape.Model, avalanches []avalanche.Avalanche, gains []float64, samplingNS float64) {
	for i, av := range avalanches {
		t0 := int(av.TimeNS / samplingNS)
		model.AddExact(dst, float64(t0), av.Height*gains[i])
	}
}
