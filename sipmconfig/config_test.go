package sipmconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophotonics/sipmsim/sipmconfig"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := sipmconfig.New()
	require.NoError(t, err)
	assert.Equal(t, 500, c.SigPts())
	assert.Equal(t, 100, c.CellSide())
	assert.Equal(t, 100*100-1, c.NCell())
	assert.NotNil(t, c.Grid())
}

func TestNew_OverridesApply(t *testing.T) {
	t.Parallel()

	c, err := sipmconfig.New(
		sipmconfig.WithSigLenNS(1000),
		sipmconfig.WithSamplingNS(2),
		sipmconfig.WithDCRHz(0),
		sipmconfig.WithNoDCR(true),
	)
	require.NoError(t, err)
	assert.Equal(t, 500, c.SigPts())
	assert.True(t, c.NoDCR())
}

func TestNew_RejectsNonPositiveDCRUnlessDisabled(t *testing.T) {
	t.Parallel()

	_, err := sipmconfig.New(sipmconfig.WithDCRHz(0))
	assert.ErrorIs(t, err, sipmconfig.ErrNonPositiveDCR)
}

func TestNew_ClampsOversizedIntegrationWindow(t *testing.T) {
	t.Parallel()

	c, err := sipmconfig.New(
		sipmconfig.WithSigLenNS(100),
		sipmconfig.WithIntStartNS(50),
		sipmconfig.WithIntGateNS(300),
	)
	assert.ErrorIs(t, err, sipmconfig.ErrInvalidIntegrationWindow)
	require.NotNil(t, c, "New() must return a usable Config alongside the clamp warning")
	assert.Equal(t, 50, c.IntGateSamples())
}

func TestWithCellSizeUM_PanicsOnZero(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { sipmconfig.WithCellSizeUM(0) })
}

func TestSNRLinear_MatchesFormula(t *testing.T) {
	t.Parallel()

	c, err := sipmconfig.New(sipmconfig.WithSNRdB(20))
	require.NoError(t, err)
	// 10^(-20/20) = 0.1
	assert.InDelta(t, 0.1, c.SNRLinear(), 1e-9)
}
