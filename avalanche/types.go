package avalanche

import "github.com/gophotonics/sipmsim/cellgrid"

// Avalanche is one micro-cell firing contributing to the final waveform.
type Avalanche struct {
	Cell   cellgrid.ID // micro-cell ID; Generate does not fill it in, so it is 0 in every Set it returns
	TimeNS float64     // firing time, nanoseconds from the start of the event
	Height float64     // relative signal height in [0, 1], 1 for a fully recovered cell
}

// Counters records how many firings each stage contributed: the input
// photoelectron count plus how many dark-count, crosstalk, and afterpulse
// firings were added on top of it.
type Counters struct {
	NPE  int // input photoelectrons (the caller-supplied arrival times)
	NDCR int // dark-count firings added
	NXT  int // crosstalk firings added
	NAP  int // afterpulse firings added
}

// Set is the complete, ordered collection of firings for one event plus the
// bookkeeping Counters describing how it was built.
type Set struct {
	Avalanches []Avalanche
	Counters   Counters
}
