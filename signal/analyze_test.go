package signal_test

import (
	"math"
	"testing"

	"github.com/signalbook/signalbook/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metricsByName flattens the ordered result for lookup-style assertions.
func metricsByName(ms []signal.Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name] = m.Value
	}

	return out
}

// TestAnalyze_KnownValues checks RMS, peak and crest on a hand-computed set.
func TestAnalyze_KnownValues(t *testing.T) {
	s := mustNew(t, []float64{3, -4, 3, -4}, 100)

	res, err := s.Analyze(signal.AnalyzeOptions{
		Metrics: []string{signal.MetricRMS, signal.MetricPeak, signal.MetricCrest},
	})
	require.NoError(t, err)

	got := metricsByName(res.Value)
	wantRMS := math.Sqrt((9 + 16 + 9 + 16) / 4.0)
	assert.InDelta(t, wantRMS, got[signal.MetricRMS], 1e-12)
	assert.Equal(t, 4.0, got[signal.MetricPeak])
	assert.InDelta(t, 4.0/wantRMS, got[signal.MetricCrest], 1e-12)
}

// TestAnalyze_SineStatistics: a full-cycle sine has RMS ≈ A/√2 and a crest
// factor ≈ √2.
func TestAnalyze_SineStatistics(t *testing.T) {
	gen, err := signal.Sine(4, 1, 1024, 1, 0)
	require.NoError(t, err)

	res, err := gen.Value.Analyze(signal.AnalyzeOptions{
		Metrics: []string{signal.MetricRMS, signal.MetricCrest},
	})
	require.NoError(t, err)

	got := metricsByName(res.Value)
	assert.InDelta(t, 1/math.Sqrt2, got[signal.MetricRMS], 1e-3)
	assert.InDelta(t, math.Sqrt2, got[signal.MetricCrest], 1e-2)
}

// TestAnalyze_Kurtosis: a symmetric two-level signal has kurtosis 1, the
// flattest possible distribution.
func TestAnalyze_Kurtosis(t *testing.T) {
	s := mustNew(t, []float64{1, -1, 1, -1}, 100)

	res, err := s.Analyze(signal.AnalyzeOptions{Metrics: []string{signal.MetricKurtosis}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Value[0].Value, 1e-12)
}

// TestAnalyze_UnknownSkipped: unknown metric names are skipped silently and
// the known ones keep their requested order.
func TestAnalyze_UnknownSkipped(t *testing.T) {
	s := mustNew(t, []float64{1, 2, 3}, 100)

	res, err := s.Analyze(signal.AnalyzeOptions{
		Metrics: []string{"entropy", signal.MetricPeak, "zcr", signal.MetricRMS},
	})
	require.NoError(t, err)

	require.Len(t, res.Value, 2)
	assert.Equal(t, signal.MetricPeak, res.Value[0].Name)
	assert.Equal(t, signal.MetricRMS, res.Value[1].Name)
}

// TestAnalyze_ZeroSignalConventions: crest and kurtosis of an all-zero
// signal report 0 instead of dividing by zero.
func TestAnalyze_ZeroSignalConventions(t *testing.T) {
	s := mustNew(t, make([]float64, 8), 100)

	res, err := s.Analyze(signal.AnalyzeOptions{
		Metrics: []string{signal.MetricCrest, signal.MetricKurtosis},
	})
	require.NoError(t, err)

	got := metricsByName(res.Value)
	assert.Zero(t, got[signal.MetricCrest])
	assert.Zero(t, got[signal.MetricKurtosis])
}
