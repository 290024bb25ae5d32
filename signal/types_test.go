package signal_test

import (
	"math"
	"testing"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustNew builds a Signal or fails the test.
func mustNew(t *testing.T, samples []float64, rate float64) *signal.Signal {
	t.Helper()
	s, err := signal.New(samples, rate, nil)
	require.NoError(t, err)

	return s
}

// TestNew_Valid copies samples and metadata defensively.
func TestNew_Valid(t *testing.T) {
	raw := []float64{1, 2, 3}
	s, err := signal.New(raw, 100, map[string]float64{"frequency": 5})
	require.NoError(t, err)

	raw[0] = 99 // caller mutation must not reach the Signal
	assert.Equal(t, []float64{1, 2, 3}, s.Data())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 100.0, s.SampleRate())
	assert.Equal(t, map[string]float64{"frequency": 5}, s.Meta())
}

// TestNew_Invalid rejects empty input, bad rates and non-finite samples.
func TestNew_Invalid(t *testing.T) {
	_, err := signal.New(nil, 100, nil)
	assert.ErrorIs(t, err, signal.ErrEmptySignal)

	_, err = signal.New([]float64{1}, 0, nil)
	assert.ErrorIs(t, err, signal.ErrBadSampleRate)

	_, err = signal.New([]float64{1, math.NaN()}, 100, nil)
	assert.ErrorIs(t, err, signal.ErrNonFinite)
	assert.True(t, compute.IsKind(err, compute.Validation))

	_, err = signal.New([]float64{math.Inf(-1)}, 100, nil)
	assert.ErrorIs(t, err, signal.ErrNonFinite)
}

// TestTimeArray pairs t[i] = i/rate with the samples by index.
func TestTimeArray(t *testing.T) {
	s := mustNew(t, []float64{0, 0, 0, 0}, 2)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, s.TimeArray())
}

// TestFreqArray follows the f[i] = i·rate/N bin convention.
func TestFreqArray(t *testing.T) {
	s := mustNew(t, make([]float64, 4), 8)
	assert.Equal(t, []float64{0, 2, 4, 6}, s.FreqArray())
}

// TestString_Preview renders the cell format with the first five samples.
func TestString_Preview(t *testing.T) {
	s := mustNew(t, []float64{1, 2, 3, 4, 5, 6, 7}, 10)
	assert.Equal(t, "Signal[7 samples] = [1, 2, 3, 4, 5...]", s.String())

	short := mustNew(t, []float64{1.5, 2.5}, 10)
	assert.Equal(t, "Signal[2 samples] = [1.5, 2.5...]", short.String())
}

// TestClone_Independence verifies a deep copy.
func TestClone_Independence(t *testing.T) {
	s := mustNew(t, []float64{1, 2}, 10)
	c := s.Clone()
	assert.Equal(t, s.Data(), c.Data())
	assert.Equal(t, s.SampleRate(), c.SampleRate())
}
