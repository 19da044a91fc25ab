package waveform

// Waveform is a reusable digitized-signal buffer, one sample per
// SAMPLING tick over SIGLEN nanoseconds. Pool workers keep one Waveform
// per goroutine and pass it to Synthesize on every event, so it exposes
// Reset rather than forcing a fresh allocation per event.
type Waveform struct {
	Samples []float64
}

// New allocates a Waveform of length sigPts.
func New(sigPts int) *Waveform {
	return &Waveform{Samples: make([]float64, sigPts)}
}

// Reset zeroes every sample so the buffer can be reused for the next
// event without reallocating.
func (w *Waveform) Reset() {
	for i := range w.Samples {
		w.Samples[i] = 0
	}
}
