package compute_test

import (
	"testing"
	"time"

	"github.com/signalbook/signalbook/compute"
	"github.com/stretchr/testify/assert"
)

// TestMeasure_StampsMetadata verifies payload, footprint, precision and the
// success flag on a freshly measured envelope.
func TestMeasure_StampsMetadata(t *testing.T) {
	start := time.Now()
	res := compute.Measure(start, compute.SamplesFootprint(128), []float64{1, 2, 3})

	assert.Equal(t, []float64{1, 2, 3}, res.Value)
	assert.Equal(t, int64(1024), res.MemoryBytes, "128 samples * 8 bytes")
	assert.Equal(t, compute.PrecisionBits, res.Precision)
	assert.True(t, res.OK)
	assert.Empty(t, res.ErrText)
	assert.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
}

// TestFailed_MirrorsErrorText verifies the failure envelope carries the
// error text and a zero payload.
func TestFailed_MirrorsErrorText(t *testing.T) {
	res := compute.Failed[float64](time.Now(), compute.Computationf("diverged"))

	assert.False(t, res.OK)
	assert.Equal(t, "computation: diverged", res.ErrText)
	assert.Zero(t, res.Value)
}
