// Package feature extracts five summary features from a digitized
// waveform: Peak, Integral, ToA (time of arrival), ToT (time over
// threshold), and ToP (time of peak).
//
// Extract scans only the configured integration window
// [IntStartSamples, IntStartSamples+IntGateSamples) of the waveform. If no
// sample in that window exceeds Config.Threshold (and Config.Debug is not
// set), every feature is reported as -1, matching the reference
// implementation's "below threshold" sentinel.
package feature
