package signal_test

import (
	"testing"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedTone builds a slow + fast superposition — the canonical EMD input.
func mixedTone(t *testing.T) *signal.Signal {
	t.Helper()
	slow, err := signal.Sine(2, 1, 256, 1, 0)
	require.NoError(t, err)
	fast, err := signal.Sine(25, 1, 256, 0.5, 0)
	require.NoError(t, err)

	a, b := slow.Value.Data(), fast.Value.Data()
	sum := make([]float64, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}

	return mustNew(t, sum, 256)
}

// TestDecompose_ModeShapes verifies modes keep the source length and rate.
func TestDecompose_ModeShapes(t *testing.T) {
	s := mixedTone(t)

	res, err := s.Decompose(signal.DecomposeOptions{Method: signal.EMDMethod, NumModes: 2})
	require.NoError(t, err)

	modes := res.Value
	require.NotEmpty(t, modes)
	for _, m := range modes {
		assert.Equal(t, s.Len(), m.Len())
		assert.Equal(t, s.SampleRate(), m.SampleRate())
	}
}

// TestDecompose_FirstModeIsFastest: the first IMF carries the fast
// component, so it must wiggle more than the original's slow trend.
func TestDecompose_FirstModeIsFastest(t *testing.T) {
	s := mixedTone(t)

	res, err := s.Decompose(signal.DecomposeOptions{NumModes: 2})
	require.NoError(t, err)
	require.NotEmpty(t, res.Value)

	// Zero-crossing count as a crude frequency proxy
	crossings := func(x []float64) int {
		var c int
		for i := 1; i < len(x); i++ {
			if (x[i-1] < 0 && x[i] >= 0) || (x[i-1] > 0 && x[i] <= 0) {
				c++
			}
		}

		return c
	}

	first := crossings(res.Value[0].Data())
	assert.Greater(t, first, 8, "first IMF should oscillate faster than the 2 Hz trend")
}

// TestDecompose_TooFewExtrema: a monotone ramp has no interior extrema, so
// envelope interpolation is undefined and must fail as computation kind.
func TestDecompose_TooFewExtrema(t *testing.T) {
	ramp := make([]float64, 32)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	s := mustNew(t, ramp, 100)

	_, err := s.Decompose(signal.DecomposeOptions{NumModes: 1})
	assert.ErrorIs(t, err, signal.ErrTooFewExtrema)
	assert.True(t, compute.IsKind(err, compute.Computation))
}

// TestDecompose_Invalid rejects unknown methods and bad mode counts.
func TestDecompose_Invalid(t *testing.T) {
	s := mixedTone(t)

	_, err := s.Decompose(signal.DecomposeOptions{Method: "vmd", NumModes: 1})
	assert.ErrorIs(t, err, signal.ErrUnknownDecomposeMethod)

	_, err = s.Decompose(signal.DecomposeOptions{NumModes: 0})
	assert.ErrorIs(t, err, signal.ErrBadModeCount)
}
