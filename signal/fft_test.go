package signal_test

import (
	"testing"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFFT_RequiresPowerOfTwo rejects any other length as validation.
func TestFFT_RequiresPowerOfTwo(t *testing.T) {
	s := mustNew(t, make([]float64, 12), 100)
	_, err := s.FFT()
	assert.ErrorIs(t, err, signal.ErrNotPowerOfTwo)
	assert.True(t, compute.IsKind(err, compute.Validation))
}

// TestFFT_SingleSample exercises the N ≤ 1 base case: the sample comes back
// as a zero-imaginary complex value.
func TestFFT_SingleSample(t *testing.T) {
	s := mustNew(t, []float64{3.5}, 100)
	res, err := s.FFT()
	require.NoError(t, err)
	require.Len(t, res.Value, 1)
	assert.Equal(t, complex(3.5, 0), res.Value[0])
}

// TestFFT_DCComponent transforms a constant signal: all energy lands in
// bin 0 and equals N times the value.
func TestFFT_DCComponent(t *testing.T) {
	s := mustNew(t, []float64{2, 2, 2, 2}, 100)
	res, err := s.FFT()
	require.NoError(t, err)

	assert.InDelta(t, 8.0, real(res.Value[0]), 1e-12)
	for k := 1; k < 4; k++ {
		assert.InDelta(t, 0.0, real(res.Value[k]), 1e-12)
		assert.InDelta(t, 0.0, imag(res.Value[k]), 1e-12)
	}
}

// TestSpectrum_DominantBin verifies the bin convention: a pure
// sine of frequency f at rate r with N samples peaks at index ≈ f·N/r.
func TestSpectrum_DominantBin(t *testing.T) {
	const (
		freq = 50.0
		rate = 1024.0
	)
	gen, err := signal.Sine(freq, 1, rate, 1, 0)
	require.NoError(t, err)
	s := gen.Value
	require.Equal(t, 1024, s.Len())

	res, err := s.Spectrum()
	require.NoError(t, err)
	mags := res.Value

	// Find the dominant bin in the lower half-spectrum
	best := 0
	for k := 1; k < len(mags)/2; k++ {
		if mags[k] > mags[best] {
			best = k
		}
	}
	expected := int(freq * float64(s.Len()) / rate) // f·N/r
	assert.InDelta(t, expected, best, 1, "dominant bin within one bin of f·N/r")
}

// TestSpectrum_NonPowerOfTwo propagates the FFT length validation.
func TestSpectrum_NonPowerOfTwo(t *testing.T) {
	s := mustNew(t, make([]float64, 10), 100)
	_, err := s.Spectrum()
	assert.ErrorIs(t, err, signal.ErrNotPowerOfTwo)
}
