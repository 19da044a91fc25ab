package sipmconfig

import (
	"math"

	"github.com/gophotonics/sipmsim/cellgrid"
)

// Config is the immutable parameter bundle every pipeline stage reads. It
// is built once by New and never mutated afterwards; all fields are
// unexported and reached only through the getters below so that no caller
// can accidentally break the process-wide immutability contract worker
// goroutines depend on.
type Config struct {
	// Signal sampling.
	sigLenNS  float64 // SIGLEN: waveform duration, ns
	sampling  float64 // SAMPLING: sample period, ns
	sigPts    int     // SIGPTS = floor(SIGLEN/SAMPLING), derived

	// SiPM geometry.
	sizeMM        float64 // SIZE: SiPM side, mm
	cellSizeUM    float64 // CELLSIZE: micro-cell pitch, um
	cellSide      int     // CELLSIDE = floor(SIZE*1000/CELLSIZE), derived
	ncell         int     // NCELL = CELLSIDE^2 - 1, derived
	grid          *cellgrid.Grid

	// Stochastic process parameters.
	dcrHz           float64 // DCR: dark-count rate, Hz
	xt              float64 // XT: mean crosstalk children per avalanche
	ap              float64 // AP: mean afterpulse children per avalanche
	tFallNS         float64 // TFALL: pulse-shape fall time constant, ns
	tRiseNS         float64 // TRISE: pulse-shape rise time constant, ns
	cellRecoveryNS  float64 // CELLRECOVERY: RC recharge tau, ns
	tauAPFastNS     float64 // TAUAPFAST: afterpulse delay, fast component, ns
	tauAPSlowNS     float64 // TAUAPSLOW: afterpulse delay, slow component, ns

	// Electronics/noise parameters.
	snrDB      float64 // SNR: noise level, dB
	baseSpread float64 // BASESPREAD: baseline offset sigma
	ccgv       float64 // CCGV: cell-to-cell gain variation sigma (relative)

	// Feature-extraction window.
	intStartNS float64 // INTSTART: integration window start, ns
	intGateNS  float64 // INTGATE: integration window length, ns
	threshold  float64 // THRESHOLD: feature threshold, p.e. units

	// Stage switches.
	noDCR      bool // nodcr: disable dark-count injection
	noXT       bool // noxt: disable crosstalk expansion
	noAP       bool // noap: disable afterpulse expansion
	exactPulse bool // signal: force exact (recomputed) pulse-shape mode
	debug      bool // debug: force feature computation even below threshold

	// Batched-synthesis dispatch band.
	cpuThreshold int
	gpuMax       int
}

// SigLenNS returns SIGLEN, the waveform duration in nanoseconds.
func (c *Config) SigLenNS() float64 { return c.sigLenNS }

// SamplingNS returns SAMPLING, the sample period in nanoseconds.
func (c *Config) SamplingNS() float64 { return c.sampling }

// SigPts returns the derived waveform length in samples:
// floor(SIGLEN/SAMPLING).
func (c *Config) SigPts() int { return c.sigPts }

// SizeMM returns SIZE, the SiPM side length in millimeters.
func (c *Config) SizeMM() float64 { return c.sizeMM }

// CellSizeUM returns CELLSIZE, the micro-cell pitch in micrometers.
func (c *Config) CellSizeUM() float64 { return c.cellSizeUM }

// CellSide returns the derived number of cells per SiPM side:
// floor(SIZE*1000/CELLSIZE).
func (c *Config) CellSide() int { return c.cellSide }

// NCell returns the derived maximum valid cell ID: CellSide^2 - 1.
func (c *Config) NCell() int { return c.ncell }

// Grid returns the precomputed cell-addressing grid used by the crosstalk
// stage (cellgrid.New(CellSide())).
func (c *Config) Grid() *cellgrid.Grid { return c.grid }

// DCRHz returns DCR, the dark-count rate in Hz.
func (c *Config) DCRHz() float64 { return c.dcrHz }

// XT returns the mean number of crosstalk children per avalanche.
func (c *Config) XT() float64 { return c.xt }

// AP returns the mean number of afterpulse children per avalanche.
func (c *Config) AP() float64 { return c.ap }

// TFallNS returns TFALL, the pulse-shape fall time constant in nanoseconds.
func (c *Config) TFallNS() float64 { return c.tFallNS }

// TRiseNS returns TRISE, the pulse-shape rise time constant in nanoseconds.
func (c *Config) TRiseNS() float64 { return c.tRiseNS }

// CellRecoveryNS returns CELLRECOVERY, the per-cell RC recharge time
// constant in nanoseconds.
func (c *Config) CellRecoveryNS() float64 { return c.cellRecoveryNS }

// TauAPFastNS returns TAUAPFAST, the fast afterpulse delay component in
// nanoseconds.
func (c *Config) TauAPFastNS() float64 { return c.tauAPFastNS }

// TauAPSlowNS returns TAUAPSLOW, the slow afterpulse delay component in
// nanoseconds.
func (c *Config) TauAPSlowNS() float64 { return c.tauAPSlowNS }

// SNRLinear converts the configured SNR in dB to the linear sigma of the
// baseline gaussian noise: 10^(-SNR_dB/20).
func (c *Config) SNRLinear() float64 { return dBToLinear(c.snrDB) }

// BaseSpread returns BASESPREAD, the per-waveform baseline offset sigma.
func (c *Config) BaseSpread() float64 { return c.baseSpread }

// CCGV returns the cell-to-cell gain-variation relative sigma.
func (c *Config) CCGV() float64 { return c.ccgv }

// IntStartSamples returns INTSTART converted to a sample index.
func (c *Config) IntStartSamples() int { return int(c.intStartNS / c.sampling) }

// IntGateSamples returns INTGATE converted to a sample count.
func (c *Config) IntGateSamples() int { return int(c.intGateNS / c.sampling) }

// Threshold returns THRESHOLD, the feature-extraction discriminator in p.e.
// units.
func (c *Config) Threshold() float64 { return c.threshold }

// NoDCR reports whether the dark-count injection stage is disabled.
func (c *Config) NoDCR() bool { return c.noDCR }

// NoXT reports whether the crosstalk expansion stage is disabled.
func (c *Config) NoXT() bool { return c.noXT }

// NoAP reports whether the afterpulse expansion stage is disabled.
func (c *Config) NoAP() bool { return c.noAP }

// ExactPulse reports whether the exact (recomputed per-pulse) pulse-shape
// mode is forced, as opposed to the default fast shift-and-scale mode.
func (c *Config) ExactPulse() bool { return c.exactPulse }

// Debug reports whether feature computation is forced even when no sample
// in the integration window exceeds Threshold.
func (c *Config) Debug() bool { return c.debug }

// CPUThreshold returns the avalanche-count floor below which waveform
// synthesis always uses the scalar per-pulse path.
func (c *Config) CPUThreshold() int { return c.cpuThreshold }

// GPUMax returns the avalanche-count ceiling above which waveform synthesis
// falls back to the scalar per-pulse path.
func (c *Config) GPUMax() int { return c.gpuMax }

func dBToLinear(snrDB float64) float64 {
	return math.Pow(10, -snrDB/20)
}
