package avalanche_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophotonics/sipmsim/avalanche"
	"github.com/gophotonics/sipmsim/rng"
	"github.com/gophotonics/sipmsim/sipmconfig"
)

func TestGenerate_NoStagesPassesThroughInput(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(
		sipmconfig.WithNoDCR(true),
		sipmconfig.WithDCRHz(1),
		sipmconfig.WithXT(0),
		sipmconfig.WithAP(0),
	)
	require.NoError(t, err)

	stream := rng.FromSeed(42)
	in := []float64{10, 20, 30}
	set := avalanche.Generate(cfg, stream, in)

	require.Len(t, set.Avalanches, len(in))
	assert.EqualValues(t, 3, set.Counters.NPE)
	assert.Zero(t, set.Counters.NDCR)
	assert.Zero(t, set.Counters.NXT)
	assert.Zero(t, set.Counters.NAP)
	for _, a := range set.Avalanches {
		assert.Equal(t, 1.0, a.Height, "a single isolated firing should have height 1")
	}
}

func TestGenerate_DeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New()
	require.NoError(t, err)

	in := []float64{5, 100, 250}

	a := avalanche.Generate(cfg, rng.FromSeed(7), in)
	b := avalanche.Generate(cfg, rng.FromSeed(7), in)

	require.Len(t, b.Avalanches, len(a.Avalanches))
	for i := range a.Avalanches {
		assert.Equalf(t, a.Avalanches[i], b.Avalanches[i], "avalanche %d should be identical between identically seeded runs", i)
	}
}

func TestGenerate_RepeatedCellDiscountsHeight(t *testing.T) {
	t.Parallel()

	// A tiny grid and a pile of input times makes repeated cell hits
	// overwhelmingly likely, which should always produce at least one
	// height strictly below 1.
	cfg, err := sipmconfig.New(
		sipmconfig.WithSizeMM(0.02),
		sipmconfig.WithCellSizeUM(10), // CellSide = 2, NCell = 3
		sipmconfig.WithNoDCR(true),
		sipmconfig.WithXT(0),
		sipmconfig.WithAP(0),
	)
	require.NoError(t, err)

	in := make([]float64, 50)
	for i := range in {
		in[i] = float64(i)
	}
	set := avalanche.Generate(cfg, rng.FromSeed(1), in)

	found := false
	for _, a := range set.Avalanches {
		if a.Height < 1 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected at least one discounted height from a repeated cell hit")
}

// With photon_times empty and XT/AP disabled, every firing in the Set
// comes from the dark-count stage; over enough events the empirical rate
// should land within 5 standard deviations of the configured DCR, per the
// Poisson counting statistics of a homogeneous dark-count process.
func TestGenerate_DCRRateWithinFiveSigma(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(sipmconfig.WithXT(0), sipmconfig.WithAP(0))
	require.NoError(t, err)

	const events = 20000
	lambda := cfg.DCRHz() * cfg.SigLenNS() * 1e-9 // expected DCR count per event

	root := rng.FromSeed(42)
	total := 0
	for i := 0; i < events; i++ {
		set := avalanche.Generate(cfg, root.Derive(uint64(i)), nil)
		total += set.Counters.NDCR
	}

	expected := float64(events) * lambda
	sigma := math.Sqrt(expected)
	assert.InDelta(t, expected, float64(total), 5*sigma,
		"empirical DCR count over %d events should land within 5 sigma of the Poisson expectation", events)
}

// len(AvalancheSet) can only grow relative to the input photon count plus
// whatever the dark-count stage injected: crosstalk and afterpulses only
// append children, never remove firings.
func TestGenerate_SetNeverShrinksBelowInputPlusDCR(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(sipmconfig.WithXT(0.3), sipmconfig.WithAP(0.2))
	require.NoError(t, err)

	in := []float64{5, 40, 90, 150}
	root := rng.FromSeed(7)
	for i := 0; i < 50; i++ {
		set := avalanche.Generate(cfg, root.Derive(uint64(i)), in)
		assert.GreaterOrEqual(t, len(set.Avalanches), len(in)+set.Counters.NDCR)
	}
}

// Every produced amplitude must stay in (0, 1]: a fresh cell always fires
// at height 1, and a recovering cell's RC discount can approach but never
// reach either bound.
func TestGenerate_AmplitudesStayInUnitInterval(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(
		sipmconfig.WithSizeMM(0.03), sipmconfig.WithCellSizeUM(10), // tiny grid: frequent cell collisions
		sipmconfig.WithXT(0.4), sipmconfig.WithAP(0.3),
	)
	require.NoError(t, err)

	in := make([]float64, 40)
	for i := range in {
		in[i] = float64(i) * 5
	}

	root := rng.FromSeed(123)
	for i := 0; i < 200; i++ {
		set := avalanche.Generate(cfg, root.Derive(uint64(i)), in)
		for _, a := range set.Avalanches {
			assert.Greater(t, a.Height, 0.0)
			assert.LessOrEqual(t, a.Height, 1.0)
		}
	}
}

// Two hits on the same cell are forced by a single-cell grid (CellSide=1,
// NCell=0), which removes any dependency on a specific RNG draw sequence
// and lets the test pin the exact analytic recovery value instead of just
// its sign.
func TestGenerate_SameCellRecoveryMatchesAnalyticFormula(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(
		sipmconfig.WithSizeMM(0.01), sipmconfig.WithCellSizeUM(10), // CellSide=1 -> NCell=0
		sipmconfig.WithNoDCR(true), sipmconfig.WithNoXT(true), sipmconfig.WithNoAP(true),
	)
	require.NoError(t, err)
	require.Zero(t, cfg.NCell())

	set := avalanche.Generate(cfg, rng.FromSeed(1), []float64{20, 55})
	require.Len(t, set.Avalanches, 2)

	dt := 55.0 - 20.0
	want := 1 - math.Exp(-dt/cfg.CellRecoveryNS())
	assert.InDelta(t, 1.0, set.Avalanches[0].Height, 1e-12)
	assert.InDelta(t, want, set.Avalanches[1].Height, 1e-6)
}

// A single isolated photon with XT=0.5 and AP disabled: the crosstalk
// stage's growing-while-iterating expansion behaves like a branching
// process with offspring mean xt, so the expected total count is the
// geometric series 1/(1-xt).
func TestGenerate_CrosstalkBranchingMatchesGeometricExpectation(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(
		sipmconfig.WithNoDCR(true), sipmconfig.WithNoAP(true), sipmconfig.WithXT(0.5),
	)
	require.NoError(t, err)

	const reps = 10000
	root := rng.FromSeed(1)
	total := 0
	for i := 0; i < reps; i++ {
		set := avalanche.Generate(cfg, root.Derive(uint64(i)), []float64{20})
		total += len(set.Avalanches)
	}

	mean := float64(total) / reps
	want := 1 / (1 - cfg.XT())
	assert.InDelta(t, want, mean, 0.1, "expected avalanche count should approach 1/(1-XT)")
}

// With no input photons, XT/AP disabled, DCR=200kHz and SIGLEN=500ns, the
// dark-count process has lambda = DCR*SIGLEN = 0.1 counts/event, so both
// the sample mean and variance of the per-event count should land near
// 0.1 (a defining property of a Poisson process).
func TestGenerate_DCROnlyMeanAndVarianceMatchPoissonLambda(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New(
		sipmconfig.WithNoXT(true), sipmconfig.WithNoAP(true),
		sipmconfig.WithDCRHz(200e3), sipmconfig.WithSigLenNS(500),
	)
	require.NoError(t, err)

	const events = 20000
	root := rng.FromSeed(5)
	counts := make([]float64, events)
	var sum float64
	for i := 0; i < events; i++ {
		set := avalanche.Generate(cfg, root.Derive(uint64(i)), nil)
		counts[i] = float64(set.Counters.NDCR)
		sum += counts[i]
	}
	mean := sum / events

	var sumSq float64
	for _, c := range counts {
		d := c - mean
		sumSq += d * d
	}
	variance := sumSq / events

	const lambda = 0.1
	assert.InDelta(t, lambda, mean, 0.02, "sample mean should approach the Poisson lambda")
	assert.InDelta(t, lambda, variance, 0.03, "sample variance should approach the Poisson lambda")
}
