package simworker

import (
	"github.com/gophotonics/sipmsim/avalanche"
	"github.com/gophotonics/sipmsim/feature"
	"github.com/gophotonics/sipmsim/pulseshape"
	"github.com/gophotonics/sipmsim/rng"
	"github.com/gophotonics/sipmsim/sipmconfig"
	"github.com/gophotonics/sipmsim/waveform"
)

// Event is one unit of work: the photon arrival times for a single event,
// plus an opaque Tag the caller attaches to correlate the Result that
// eventually comes back (the event ID, real photon count, etc.).
type Event struct {
	Tag           any
	PhotonTimesNS []float64
}

// Result is everything Process produces for one Event: the extracted
// Features, the generation Counters, the caller's Tag echoed back
// unchanged, and the full digitized Waveform when the Driver was built
// with KeepWaveform.
type Result struct {
	Tag      any
	Features feature.Features
	Counters avalanche.Counters
	Waveform []float64 // nil unless the Driver keeps waveforms
}

// Driver runs the avalanche -> waveform -> feature pipeline for a stream of
// Events against one fixed Config. It is not safe for concurrent use;
// pool gives each worker goroutine its own Driver instead of sharing one.
type Driver struct {
	cfg          *sipmconfig.Config
	stream       *rng.Stream
	model        *pulseshape.Model
	buf          *waveform.Waveform
	keepWaveform bool
}

// NewDriver builds a Driver for cfg, drawing all randomness from stream.
// If keepWaveform is true, every Result carries a copy of its full
// digitized waveform; otherwise Result.Waveform is left nil to avoid the
// copy.
func NewDriver(cfg *sipmconfig.Config, stream *rng.Stream, keepWaveform bool) *Driver {
	return &Driver{
		cfg:          cfg,
		stream:       stream,
		model:        pulseshape.New(cfg.TFallNS()/cfg.SamplingNS(), cfg.TRiseNS()/cfg.SamplingNS(), cfg.SigPts()),
		buf:          waveform.New(cfg.SigPts()),
		keepWaveform: keepWaveform,
	}
}

// Process runs one Event through avalanche generation, waveform synthesis
// and feature extraction, reusing the Driver's internal buffer across
// calls.
func (d *Driver) Process(ev Event) Result {
	set := avalanche.Generate(d.cfg, d.stream, ev.PhotonTimesNS)
	waveform.Synthesize(d.cfg, d.model, set, d.stream, d.buf)
	feats := feature.Extract(d.cfg, d.buf.Samples)

	res := Result{
		Tag:      ev.Tag,
		Features: feats,
		Counters: set.Counters,
	}
	if d.keepWaveform {
		res.Waveform = append([]float64(nil), d.buf.Samples...)
	}
	return res
}
