package avalanche

import (
	"math"
	"sort"

	"github.com/gophotonics/sipmsim/cellgrid"
	"github.com/gophotonics/sipmsim/rng"
	"github.com/gophotonics/sipmsim/sipmconfig"
)

// Generate runs the full firing-generation pipeline for one event's photon
// arrival times (nanoseconds, relative to the start of the acquisition
// window) and returns the resulting Set.
//
// Complexity: O(k log k) where k is the final firing count, dominated by
// the per-cell sort in the recovery stage; every other stage is linear in
// its input size.
func Generate(cfg *sipmconfig.Config, stream *rng.Stream, photonTimesNS []float64) *Set {
	times := append([]float64(nil), photonTimesNS...)
	counters := Counters{NPE: len(photonTimesNS)}

	if !cfg.NoDCR() {
		dcr := generateDCR(cfg.DCRHz(), cfg.SigLenNS(), stream)
		counters.NDCR = len(dcr)
		times = append(times, dcr...)
	}

	cells := hitCells(len(times), cfg.NCell(), stream)

	if !cfg.NoXT() {
		var nxt int
		times, cells, nxt = addCrosstalk(times, cells, cfg.XT(), cfg.Grid(), stream)
		counters.NXT = nxt
	}

	times, heights := recoveryHeights(times, cells, cfg.CellRecoveryNS())

	if !cfg.NoAP() {
		var nap int
		times, heights, nap = addAfterpulses(times, heights, cfg.AP(), cfg.TauAPFastNS(),
			cfg.TauAPSlowNS(), cfg.CellRecoveryNS(), cfg.SigLenNS(), stream)
		counters.NAP = nap
	}

	avalanches := make([]Avalanche, len(times))
	for i := range times {
		avalanches[i] = Avalanche{TimeNS: times[i], Height: heights[i]}
	}

	return &Set{Avalanches: avalanches, Counters: counters}
}

// generateDCR produces dark-count firing times as a homogeneous Poisson
// process over [0, sigLenNS): inter-arrival delays are drawn from an
// exponential distribution with mean 1e9/rateHz nanoseconds, accumulated
// until the running time exceeds sigLenNS, then the overshooting last
// sample is dropped.
func generateDCR(rateHz, sigLenNS float64, stream *rng.Stream) []float64 {
	meanNS := 1e9 / rateHz
	var times []float64
	last := 0.0
	for last < sigLenNS {
		last += stream.Exponential(meanNS, 1)[0]
		times = append(times, last)
	}
	if len(times) > 0 {
		times = times[:len(times)-1]
	}
	return times
}

// hitCells assigns each of n firings to a micro-cell ID, drawn
// independently and uniformly from [0, ncell].
func hitCells(n, ncell int, stream *rng.Stream) []cellgrid.ID {
	raw := stream.UniformInt(ncell, n)
	ids := make([]cellgrid.ID, n)
	for i, v := range raw {
		ids[i] = cellgrid.ID(v)
	}
	return ids
}

// addCrosstalk expands times/cells with optical crosstalk children. Each
// firing at index i (including children appended earlier in this same
// call) independently spawns Poisson(xt) children at the same time in a
// uniformly chosen one of its eight neighbouring cells; those children are
// appended to the end of the slices and are themselves visited once the
// growing loop reaches their index, so a crosstalk chain can cascade
// arbitrarily deep.
func addCrosstalk(times []float64, cells []cellgrid.ID, xt float64, grid *cellgrid.Grid, stream *rng.Stream) ([]float64, []cellgrid.ID, int) {
	n := 0
	for i := 0; i < len(times); i++ {
		children := stream.PoissonOne(xt)
		for j := 0; j < children; j++ {
			offsetIdx := stream.UniformInt(7, 1)[0]
			times = append(times, times[i])
			cells = append(cells, grid.Neighbour(cells[i], offsetIdx))
		}
		n += children
	}
	return times, cells, n
}

// recoveryHeights computes each firing's relative signal height,
// accounting for cells hit more than once in this event. All firings
// default to height 1; a cell hit multiple times has each hit after the
// first discounted by the RC-recharge curve
//
//	h(Δt) = 1 - exp(-Δt/cellRecoveryNS)
//
// keyed to the time elapsed since that same cell's previous hit, in time
// order. Firings are returned sorted by time (the reference semantics this
// stage's recovery computation itself requires).
func recoveryHeights(times []float64, cells []cellgrid.ID, cellRecoveryNS float64) ([]float64, []float64) {
	n := len(times)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return times[order[a]] < times[order[b]] })

	sortedTimes := make([]float64, n)
	sortedCells := make([]cellgrid.ID, n)
	for i, idx := range order {
		sortedTimes[i] = times[idx]
		sortedCells[i] = cells[idx]
	}

	heights := make([]float64, n)
	lastHit := make(map[cellgrid.ID]float64, n)
	for i := range sortedTimes {
		cell := sortedCells[i]
		if prev, ok := lastHit[cell]; ok {
			dt := sortedTimes[i] - prev
			heights[i] = 1 - math.Exp(-dt / cellRecoveryNS)
		} else {
			heights[i] = 1
		}
		lastHit[cell] = sortedTimes[i]
	}

	return sortedTimes, heights
}

// addAfterpulses expands times/heights with afterpulse children in a
// single forward pass: each firing present when the call starts
// independently spawns Poisson(ap) children (children appended by this
// call are not visited and spawn nothing), delayed by the sum of a
// fast- and a slow-exponential draw; a child's height follows the same
// RC-recharge curve as recoveryHeights, keyed to its own delay rather than
// to another firing in the same cell, and children landing at or beyond
// sigLenNS are dropped.
func addAfterpulses(times, heights []float64, ap, tauFastNS, tauSlowNS, cellRecoveryNS, sigLenNS float64, stream *rng.Stream) ([]float64, []float64, int) {
	n := 0
	count := len(times)
	for i := 0; i < count; i++ {
		children := stream.PoissonOne(ap)
		for j := 0; j < children; j++ {
			delay := stream.Exponential(tauFastNS, 1)[0] + stream.Exponential(tauSlowNS, 1)[0]
			apTime := times[i] + delay
			if apTime >= sigLenNS {
				continue
			}
			times = append(times, apTime)
			heights = append(heights, 1-math.Exp(-delay / cellRecoveryNS))
			n++
		}
	}
	return times, heights, n
}
