package sipmconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Option mutates a Config during New. Constructors that receive a value
// that can never be physically meaningful (zero or negative where only
// positive makes sense) panic immediately: that is a programmer error in
// the caller, not a condition New's sentinel errors are meant to report.
// Values that are only wrong in combination with other options (e.g. an
// integration window that overruns the derived signal length) are left to
// New's validation pass instead.
type Option func(*Config)

func mustPositive(name string, v float64) {
	if v <= 0 {
		panic(fmt.Sprintf("sipmconfig: %s must be positive, got %v", name, v))
	}
}

// WithSigLenNS sets SIGLEN, the simulated waveform duration in nanoseconds.
func WithSigLenNS(ns float64) Option {
	mustPositive("SIGLEN", ns)
	return func(c *Config) { c.sigLenNS = ns }
}

// WithSamplingNS sets SAMPLING, the waveform sample period in nanoseconds.
func WithSamplingNS(ns float64) Option {
	mustPositive("SAMPLING", ns)
	return func(c *Config) { c.sampling = ns }
}

// WithSizeMM sets SIZE, the SiPM side length in millimeters.
func WithSizeMM(mm float64) Option {
	mustPositive("SIZE", mm)
	return func(c *Config) { c.sizeMM = mm }
}

// WithCellSizeUM sets CELLSIZE, the micro-cell pitch in micrometers.
func WithCellSizeUM(um float64) Option {
	mustPositive("CELLSIZE", um)
	return func(c *Config) { c.cellSizeUM = um }
}

// WithDCRHz sets DCR, the dark-count rate in Hz.
func WithDCRHz(hz float64) Option {
	if hz < 0 {
		panic("sipmconfig: DCR must not be negative")
	}
	return func(c *Config) { c.dcrHz = hz }
}

// WithXT sets the mean number of crosstalk children generated per
// avalanche.
func WithXT(xt float64) Option {
	if xt < 0 {
		panic("sipmconfig: XT must not be negative")
	}
	return func(c *Config) { c.xt = xt }
}

// WithAP sets the mean number of afterpulse children generated per
// avalanche.
func WithAP(ap float64) Option {
	if ap < 0 {
		panic("sipmconfig: AP must not be negative")
	}
	return func(c *Config) { c.ap = ap }
}

// WithTFallNS sets TFALL, the pulse-shape fall time constant in
// nanoseconds.
func WithTFallNS(ns float64) Option {
	mustPositive("TFALL", ns)
	return func(c *Config) { c.tFallNS = ns }
}

// WithTRiseNS sets TRISE, the pulse-shape rise time constant in
// nanoseconds.
func WithTRiseNS(ns float64) Option {
	mustPositive("TRISE", ns)
	return func(c *Config) { c.tRiseNS = ns }
}

// WithCellRecoveryNS sets CELLRECOVERY, the per-cell RC recharge time
// constant in nanoseconds.
func WithCellRecoveryNS(ns float64) Option {
	mustPositive("CELLRECOVERY", ns)
	return func(c *Config) { c.cellRecoveryNS = ns }
}

// WithTauAPFastNS sets TAUAPFAST, the fast component of the afterpulse
// delay distribution, in nanoseconds.
func WithTauAPFastNS(ns float64) Option {
	mustPositive("TAUAPFAST", ns)
	return func(c *Config) { c.tauAPFastNS = ns }
}

// WithTauAPSlowNS sets TAUAPSLOW, the slow component of the afterpulse
// delay distribution, in nanoseconds.
func WithTauAPSlowNS(ns float64) Option {
	mustPositive("TAUAPSLOW", ns)
	return func(c *Config) { c.tauAPSlowNS = ns }
}

// WithSNRdB sets SNR, the electronics noise level in dB.
func WithSNRdB(db float64) Option {
	return func(c *Config) { c.snrDB = db }
}

// WithBaseSpread sets BASESPREAD, the per-waveform baseline offset sigma.
func WithBaseSpread(sigma float64) Option {
	if sigma < 0 {
		panic("sipmconfig: BASESPREAD must not be negative")
	}
	return func(c *Config) { c.baseSpread = sigma }
}

// WithCCGV sets CCGV, the relative cell-to-cell gain-variation sigma.
func WithCCGV(sigma float64) Option {
	if sigma < 0 {
		panic("sipmconfig: CCGV must not be negative")
	}
	return func(c *Config) { c.ccgv = sigma }
}

// WithIntStartNS sets INTSTART, the integration window's start offset in
// nanoseconds.
func WithIntStartNS(ns float64) Option {
	if ns < 0 {
		panic("sipmconfig: INTSTART must not be negative")
	}
	return func(c *Config) { c.intStartNS = ns }
}

// WithIntGateNS sets INTGATE, the integration window's length in
// nanoseconds.
func WithIntGateNS(ns float64) Option {
	mustPositive("INTGATE", ns)
	return func(c *Config) { c.intGateNS = ns }
}

// WithThreshold sets THRESHOLD, the feature-extraction discriminator in
// p.e. units.
func WithThreshold(pe float64) Option {
	return func(c *Config) { c.threshold = pe }
}

// WithNoDCR disables dark-count injection entirely (the "nodcr" switch).
func WithNoDCR(disabled bool) Option {
	return func(c *Config) { c.noDCR = disabled }
}

// WithNoXT disables crosstalk expansion entirely (the "noxt" switch).
func WithNoXT(disabled bool) Option {
	return func(c *Config) { c.noXT = disabled }
}

// WithNoAP disables afterpulse expansion entirely (the "noap" switch).
func WithNoAP(disabled bool) Option {
	return func(c *Config) { c.noAP = disabled }
}

// WithExactPulse forces the exact, per-sample-recomputed pulse-shape mode
// in place of the default shift-and-scale template mode (the "signal"
// switch).
func WithExactPulse(exact bool) Option {
	return func(c *Config) { c.exactPulse = exact }
}

// WithDebug forces feature computation even for waveforms that never cross
// Threshold.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.debug = debug }
}

// WithCPUThreshold sets the avalanche-count floor below which waveform
// synthesis always takes the scalar per-pulse path.
func WithCPUThreshold(n int) Option {
	if n < 0 {
		panic("sipmconfig: CPUTHRESHOLD must not be negative")
	}
	return func(c *Config) { c.cpuThreshold = n }
}

// WithGPUMax sets the avalanche-count ceiling above which waveform
// synthesis falls back to the scalar per-pulse path.
func WithGPUMax(n int) Option {
	if n < 0 {
		panic("sipmconfig: GPUMAX must not be negative")
	}
	return func(c *Config) { c.gpuMax = n }
}

// settingsFile mirrors the subset of parameters a YAML settings file may
// override. Fields left unset in the file keep whatever the option chain
// already established.
type settingsFile struct {
	SigLen       *float64 `yaml:"siglen"`
	Sampling     *float64 `yaml:"sampling"`
	Size         *float64 `yaml:"size"`
	CellSize     *float64 `yaml:"cellsize"`
	DCR          *float64 `yaml:"dcr"`
	XT           *float64 `yaml:"xt"`
	AP           *float64 `yaml:"ap"`
	TFall        *float64 `yaml:"tfall"`
	TRise        *float64 `yaml:"trise"`
	CellRecovery *float64 `yaml:"cellrecovery"`
	TauAPFast    *float64 `yaml:"tauapfast"`
	TauAPSlow    *float64 `yaml:"tauapslow"`
	SNR          *float64 `yaml:"snr"`
	BaseSpread   *float64 `yaml:"basespread"`
	CCGV         *float64 `yaml:"ccgv"`
	IntStart     *float64 `yaml:"intstart"`
	IntGate      *float64 `yaml:"intgate"`
	Threshold    *float64 `yaml:"threshold"`
}

// WithSettingsFile loads a device settings YAML file and applies every
// field it sets, overriding whatever options were applied earlier in the
// chain. A missing or malformed file is treated the same as any other
// unrecoverable option input in this file: WithSettingsFile panics at
// construction time rather than threading a load error through New.
func WithSettingsFile(path string) Option {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("sipmconfig: reading settings file %q: %v", path, err))
	}
	var sf settingsFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		panic(fmt.Sprintf("sipmconfig: parsing settings file %q: %v", path, err))
	}
	return func(c *Config) {
		applyIfSet(&c.sigLenNS, sf.SigLen)
		applyIfSet(&c.sampling, sf.Sampling)
		applyIfSet(&c.sizeMM, sf.Size)
		applyIfSet(&c.cellSizeUM, sf.CellSize)
		applyIfSet(&c.dcrHz, sf.DCR)
		applyIfSet(&c.xt, sf.XT)
		applyIfSet(&c.ap, sf.AP)
		applyIfSet(&c.tFallNS, sf.TFall)
		applyIfSet(&c.tRiseNS, sf.TRise)
		applyIfSet(&c.cellRecoveryNS, sf.CellRecovery)
		applyIfSet(&c.tauAPFastNS, sf.TauAPFast)
		applyIfSet(&c.tauAPSlowNS, sf.TauAPSlow)
		applyIfSet(&c.snrDB, sf.SNR)
		applyIfSet(&c.baseSpread, sf.BaseSpread)
		applyIfSet(&c.ccgv, sf.CCGV)
		applyIfSet(&c.intStartNS, sf.IntStart)
		applyIfSet(&c.intGateNS, sf.IntGate)
		applyIfSet(&c.threshold, sf.Threshold)
	}
}

func applyIfSet(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
