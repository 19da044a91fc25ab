package feature

import "github.com/gophotonics/sipmsim/sipmconfig"

// Features is the five-value summary Extract produces for one waveform.
// Every field holds -1 when the waveform never crossed Config.Threshold
// inside the integration window and Config.Debug was not set.
type Features struct {
	Peak     float64
	Integral float64
	ToA      float64
	ToT      float64
	ToP      float64
}

const belowThreshold = -1

// Extract scans samples within the configured integration window and
// reports Peak, Integral, ToA, ToT and ToP. Times are returned in
// nanoseconds (sample index * Config.SamplingNS()); Integral and ToT are
// likewise scaled by the sample period.
//
// Complexity: O(IntGateSamples).
func Extract(cfg *sipmconfig.Config, samples []float64) Features {
	start := cfg.IntStartSamples()
	end := start + cfg.IntGateSamples()
	if start < 0 {
		start = 0
	}
	if end > len(samples) {
		end = len(samples)
	}
	if start >= end {
		return belowThresholdFeatures()
	}
	window := samples[start:end]

	peak := window[0]
	peakIdx := 0
	for i, v := range window {
		if v > peak {
			peak = v
			peakIdx = i
		}
	}

	if peak <= cfg.Threshold() && !cfg.Debug() {
		return belowThresholdFeatures()
	}

	sampling := cfg.SamplingNS()
	var sum float64
	var crossings int
	firstCrossing := -1
	for i, v := range window {
		sum += v
		if v > cfg.Threshold() {
			crossings++
			if firstCrossing == -1 {
				firstCrossing = i
			}
		}
	}

	// firstCrossing stays -1 only when Debug forced this far past a
	// sub-threshold peak and no sample crosses Threshold either: that is
	// an all-false crossing mask, and argmax over an all-false mask lands
	// on index 0, not -1, so ToA resolves to the window's first sample
	// rather than the sentinel.
	toa := 0.0
	if firstCrossing >= 0 {
		toa = float64(firstCrossing) * sampling
	}

	return Features{
		Peak:     peak,
		Integral: sum * sampling,
		ToA:      toa,
		ToT:      float64(crossings) * sampling,
		ToP:      float64(peakIdx) * sampling,
	}
}

func belowThresholdFeatures() Features {
	return Features{Peak: belowThreshold, Integral: belowThreshold, ToA: belowThreshold, ToT: belowThreshold, ToP: belowThreshold}
}
