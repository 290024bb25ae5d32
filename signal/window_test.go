package signal_test

import (
	"math"
	"testing"

	"github.com/signalbook/signalbook/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyWindow_Hamming checks endpoint and midpoint coefficients against
// the closed form 0.54 − 0.46·cos(2πi/(N−1)).
func TestApplyWindow_Hamming(t *testing.T) {
	s := mustNew(t, []float64{1, 1, 1, 1, 1}, 100)

	res, err := s.ApplyWindow(signal.WindowOptions{Type: signal.Hamming})
	require.NoError(t, err)
	w := res.Value.Data()

	assert.InDelta(t, 0.08, w[0], 1e-12, "0.54 - 0.46·cos(0)")
	assert.InDelta(t, 1.0, w[2], 1e-12, "0.54 - 0.46·cos(π)")
	assert.InDelta(t, 0.08, w[4], 1e-12, "symmetric endpoint")
}

// TestApplyWindow_Hanning checks the 0.5·(1 − cos(2πi/(N−1))) curve.
func TestApplyWindow_Hanning(t *testing.T) {
	s := mustNew(t, []float64{2, 2, 2}, 100)

	res, err := s.ApplyWindow(signal.WindowOptions{Type: signal.Hanning})
	require.NoError(t, err)
	w := res.Value.Data()

	assert.InDelta(t, 0.0, w[0], 1e-12)
	assert.InDelta(t, 2.0, w[1], 1e-12, "peak coefficient 1.0 at the center")
	assert.InDelta(t, 0.0, w[2], 1e-12)
}

// TestApplyWindow_SingleSample is the divide-by-zero boundary: N−1 = 0.
// The sample must come back unchanged, not as NaN.
func TestApplyWindow_SingleSample(t *testing.T) {
	s := mustNew(t, []float64{7.25}, 100)

	res, err := s.ApplyWindow(signal.WindowOptions{Type: signal.Hamming})
	require.NoError(t, err)
	assert.Equal(t, []float64{7.25}, res.Value.Data())
	assert.False(t, math.IsNaN(res.Value.Data()[0]))
}

// TestApplyWindow_UnknownType rejects unsupported curves.
func TestApplyWindow_UnknownType(t *testing.T) {
	s := mustNew(t, []float64{1, 2}, 100)
	_, err := s.ApplyWindow(signal.WindowOptions{Type: "blackman"})
	assert.ErrorIs(t, err, signal.ErrUnknownWindow)
}

// TestApplyWindow_LengthMismatch rejects an explicit length that differs
// from the signal length.
func TestApplyWindow_LengthMismatch(t *testing.T) {
	s := mustNew(t, []float64{1, 2, 3}, 100)
	_, err := s.ApplyWindow(signal.WindowOptions{Type: signal.Hanning, Length: 5})
	assert.ErrorIs(t, err, signal.ErrWindowLength)
}

// TestApplyWindow_Immutable verifies the receiver is untouched.
func TestApplyWindow_Immutable(t *testing.T) {
	s := mustNew(t, []float64{1, 1, 1}, 100)
	_, err := s.ApplyWindow(signal.WindowOptions{Type: signal.Hanning})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, s.Data())
}
