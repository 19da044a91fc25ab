// errors.go — sentinel errors for the sipmconfig package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers use errors.Is to branch.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     New wraps them with %w at the call site to attach the offending value.
package sipmconfig

import "errors"

// ErrNonPositiveSigLen indicates SIGLEN <= 0, which would make SIGPTS <= 0
// and leave the waveform buffer with no samples.
var ErrNonPositiveSigLen = errors.New("sipmconfig: SIGLEN must be positive")

// ErrNonPositiveSampling indicates SAMPLING <= 0, making SIGPTS undefined.
var ErrNonPositiveSampling = errors.New("sipmconfig: SAMPLING must be positive")

// ErrNonPositiveCellSide indicates the derived CELLSIDE (⌊SIZE*1000/CELLSIZE⌋)
// is <= 0, so no cell grid can be formed.
var ErrNonPositiveCellSide = errors.New("sipmconfig: derived CELLSIDE must be positive")

// ErrNonPositiveDCR indicates DCR <= 0 while the DCR stage is enabled; this
// would make the exponential delay mean infinite.
var ErrNonPositiveDCR = errors.New("sipmconfig: DCR must be positive when the DCR stage is enabled")

// ErrInvalidIntegrationWindow indicates INTSTART+INTGATE > SIGLEN. This is
// clamped with a warning rather than rejected outright; New still returns
// it so the caller (cmd/sipmsim) can log the clamp via logrus before
// proceeding with the clamped window.
var ErrInvalidIntegrationWindow = errors.New("sipmconfig: integration window exceeds signal length")
