package pool

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gophotonics/sipmsim/rng"
	"github.com/gophotonics/sipmsim/simworker"
	"github.com/gophotonics/sipmsim/sipmconfig"
)

// Pool dispatches simworker.Event jobs to a fixed-size set of worker
// goroutines and collects their simworker.Result values. Submit and
// Results are the only methods safe to call concurrently with each other;
// Start must be called exactly once before either, and Close exactly once
// after the caller is done submitting.
type Pool struct {
	cfg     *sipmconfig.Config
	workers int
	root    *rng.Stream
	log     *logrus.Logger

	keepWaveform bool

	jobs    chan simworker.Event
	results chan simworker.Result
	wg      sync.WaitGroup

	startOnce sync.Once
	closeOnce sync.Once
}

// New builds a Pool with the given worker count, drawing every worker's
// RNG stream from seed via root.Derive. workers < 1 is a configuration
// error the caller (cmd/sipmsim) should validate before calling New, so
// New treats it as a programmer error and clamps to 1 rather than
// panicking, keeping Pool safe to construct defensively.
func New(cfg *sipmconfig.Config, workers int, seed int64, keepWaveform bool, log *logrus.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pool{
		cfg:          cfg,
		workers:      workers,
		root:         rng.FromSeed(seed),
		log:          log,
		keepWaveform: keepWaveform,
		jobs:         make(chan simworker.Event),
		results:      make(chan simworker.Result),
	}
}

// Start launches the worker goroutines. It is idempotent: calling it more
// than once has no additional effect.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		p.log.WithField("workers", p.workers).Info("pool: starting workers")
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.runWorker(uint64(i))
		}
		go func() {
			p.wg.Wait()
			close(p.results)
		}()
	})
}

func (p *Pool) runWorker(idx uint64) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.log.WithFields(logrus.Fields{"worker": idx, "panic": r}).Error("pool: worker recovered from panic")
		}
	}()

	stream := p.root.Derive(idx)
	driver := simworker.NewDriver(p.cfg, stream, p.keepWaveform)
	for ev := range p.jobs {
		p.results <- driver.Process(ev)
	}
}

// Submit enqueues one Event. It blocks until a worker is ready to receive
// it; callers typically run Submit from a single feeder goroutine while
// draining Results from another.
func (p *Pool) Submit(ev simworker.Event) {
	p.jobs <- ev
}

// Close signals that no further Events will be submitted. It is
// idempotent and must be called exactly once the caller has finished
// submitting, so the worker goroutines (and, after they drain, the
// results channel) can shut down.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
		p.log.Info("pool: job submission closed")
	})
}

// Results returns the channel Results are delivered on. It closes once
// every worker has drained the job channel and returned.
func (p *Pool) Results() <-chan simworker.Result {
	return p.results
}
