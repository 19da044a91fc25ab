package sipmconfig

import (
	"fmt"
	"math"

	"github.com/gophotonics/sipmsim/cellgrid"
)

// Defaults matching the standard SiPM parameter table. Every one of these
// can be overridden by an Option.
const (
	defaultSigLenNS       = 500.0
	defaultSamplingNS     = 1.0
	defaultSizeMM         = 1.0
	defaultCellSizeUM     = 10.0
	defaultDCRHz          = 200e3
	defaultXT             = 0.02
	defaultAP             = 0.01
	defaultTFallNS        = 50.0
	defaultTRiseNS        = 1.0
	defaultCellRecoveryNS = 30.0
	defaultTauAPFastNS    = 15.0
	defaultTauAPSlowNS    = 85.0
	defaultSNRdB          = 30.0
	defaultBaseSpread     = 0.0
	defaultCCGV           = 0.05
	defaultIntStartNS     = 10.0
	defaultIntGateNS      = 300.0
	defaultThreshold      = 1.5
	defaultCPUThreshold   = 100
	defaultGPUMax         = 2000
)

// New builds a Config by applying opts over the default parameter set,
// then deriving SIGPTS/CELLSIDE/NCELL and validating the result.
//
// Contract: New never returns a Config with an inconsistent derived field;
// any option combination that would produce one reports a sentinel error
// from errors.go (wrapped with the offending value via %w) instead.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		sigLenNS:       defaultSigLenNS,
		sampling:       defaultSamplingNS,
		sizeMM:         defaultSizeMM,
		cellSizeUM:     defaultCellSizeUM,
		dcrHz:          defaultDCRHz,
		xt:             defaultXT,
		ap:             defaultAP,
		tFallNS:        defaultTFallNS,
		tRiseNS:        defaultTRiseNS,
		cellRecoveryNS: defaultCellRecoveryNS,
		tauAPFastNS:    defaultTauAPFastNS,
		tauAPSlowNS:    defaultTauAPSlowNS,
		snrDB:          defaultSNRdB,
		baseSpread:     defaultBaseSpread,
		ccgv:           defaultCCGV,
		intStartNS:     defaultIntStartNS,
		intGateNS:      defaultIntGateNS,
		threshold:      defaultThreshold,
		cpuThreshold:   defaultCPUThreshold,
		gpuMax:         defaultGPUMax,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.sigLenNS <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveSigLen, c.sigLenNS)
	}
	if c.sampling <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveSampling, c.sampling)
	}
	c.sigPts = int(math.Floor(c.sigLenNS / c.sampling))
	if c.sigPts <= 0 {
		return nil, fmt.Errorf("%w: SIGLEN/SAMPLING = %v", ErrNonPositiveSigLen, c.sigLenNS/c.sampling)
	}

	c.cellSide = int(math.Floor(c.sizeMM * 1000 / c.cellSizeUM))
	if c.cellSide <= 0 {
		return nil, fmt.Errorf("%w: SIZE*1000/CELLSIZE = %v", ErrNonPositiveCellSide, c.sizeMM*1000/c.cellSizeUM)
	}
	c.ncell = c.cellSide*c.cellSide - 1
	c.grid = cellgrid.New(c.cellSide)

	if !c.noDCR && c.dcrHz <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveDCR, c.dcrHz)
	}

	// An oversized integration window is clamped rather than rejected: the
	// Config is still usable, so New returns it alongside the sentinel
	// error and leaves the decision to log or abort to the caller
	// (cmd/sipmsim logs it via logrus.Warn and proceeds with the clamp).
	var warn error
	if c.intStartNS+c.intGateNS > c.sigLenNS {
		warn = fmt.Errorf("%w: INTSTART+INTGATE = %v ns > SIGLEN = %v ns, clamping INTGATE",
			ErrInvalidIntegrationWindow, c.intStartNS+c.intGateNS, c.sigLenNS)
		c.intGateNS = c.sigLenNS - c.intStartNS
	}

	return c, warn
}
