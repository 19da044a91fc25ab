package datasink_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophotonics/sipmsim/datasink"
	"github.com/gophotonics/sipmsim/feature"
	"github.com/gophotonics/sipmsim/simworker"
)

func TestCSVWriter_WriteFeaturesThenClose(t *testing.T) {
	t.Parallel()

	var features, geometry, waveforms bytes.Buffer
	w := datasink.NewCSVWriter(&features, &geometry, &waveforms)

	res := simworker.Result{
		Tag:      "evt-1",
		Features: feature.Features{Peak: 2, Integral: 10, ToA: 5, ToT: 3, ToP: 6},
	}
	require.NoError(t, w.WriteFeatures(res))
	require.NoError(t, w.Close())

	assert.Contains(t, features.String(), "evt-1")
}

func TestCSVWriter_RejectsWritesAfterClose(t *testing.T) {
	t.Parallel()

	var features, geometry, waveforms bytes.Buffer
	w := datasink.NewCSVWriter(&features, &geometry, &waveforms)
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.WriteFeatures(simworker.Result{}), datasink.ErrWriterClosed)
	assert.ErrorIs(t, w.Close(), datasink.ErrWriterClosed)
}

func TestCSVWriter_WriteGeometry(t *testing.T) {
	t.Parallel()

	var features, geometry, waveforms bytes.Buffer
	w := datasink.NewCSVWriter(&features, &geometry, &waveforms)
	require.NoError(t, w.WriteGeometry([]datasink.Geometry{{EventID: 9, FiberType: 2, FiberID: 1, X: 0.1, Y: 0.2, Z: 0.3}}))
	require.NoError(t, w.Close())

	row := geometry.String()
	assert.Contains(t, row, "9,2,1,0.1,0.2,0.3")
}
