package photoninput_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophotonics/sipmsim/photoninput"
)

func TestLineSource_ParsesRecords(t *testing.T) {
	t.Parallel()

	src := photoninput.NewLineSource(strings.NewReader("1 0 42 1.5 2.5 3.5 10.0 20.0 30.0\n\n2 1 7 0 0 0\n"))

	first, err := src.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.EventID)
	assert.EqualValues(t, 42, first.FiberID)
	assert.Len(t, first.PhotonTimesNS, 3)

	second, err := src.Next()
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.EventID)
	assert.Empty(t, second.PhotonTimesNS)

	_, err = src.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestLineSource_RejectsMalformedLine(t *testing.T) {
	t.Parallel()

	src := photoninput.NewLineSource(strings.NewReader("1 0 42 1.5 2.5\n"))
	_, err := src.Next()
	assert.ErrorIs(t, err, photoninput.ErrMalformedRecord)
}
