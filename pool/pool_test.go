package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophotonics/sipmsim/pool"
	"github.com/gophotonics/sipmsim/simworker"
	"github.com/gophotonics/sipmsim/sipmconfig"
)

func TestPool_ProcessesAllSubmittedEvents(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New()
	require.NoError(t, err)

	p := pool.New(cfg, 4, 1234, false, nil)
	p.Start()

	const n = 20
	go func() {
		for i := 0; i < n; i++ {
			p.Submit(simworker.Event{Tag: i, PhotonTimesNS: []float64{float64(10 + i)}})
		}
		p.Close()
	}()

	seen := make(map[int]bool, n)
	for res := range p.Results() {
		tag := res.Tag.(int)
		assert.Falsef(t, seen[tag], "duplicate result for tag %d", tag)
		seen[tag] = true
	}
	assert.Len(t, seen, n)
}

func TestNew_ClampsNonPositiveWorkerCount(t *testing.T) {
	t.Parallel()

	cfg, err := sipmconfig.New()
	require.NoError(t, err)

	p := pool.New(cfg, 0, 1, false, nil)
	p.Start()
	p.Close()
	for range p.Results() {
	}
}
