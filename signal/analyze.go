// SPDX-License-Identifier: MIT
// Package signal: scalar statistics.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// Metric names accepted by Analyze. Unknown names are silently skipped so a
// partial metric list from the notebook still produces every metric it can.
const (
	MetricRMS      = "rms"      // root-mean-square amplitude
	MetricPeak     = "peak"     // peak absolute amplitude
	MetricCrest    = "crest"    // crest factor: peak / RMS
	MetricKurtosis = "kurtosis" // fourth central moment / squared variance
)

// AnalyzeOptions configures Analyze.
//
// Fields:
//   - Metrics    — metric names to compute, in output order; unknown names
//     are skipped without error.
//   - WindowSize — reserved for rolling statistics; the current metrics run
//     over the full sample set.
type AnalyzeOptions struct {
	Metrics    []string
	WindowSize int
}

// Metric is one named scalar statistic in the order it was requested.
type Metric struct {
	Name  string
	Value float64
}

// rms returns the root-mean-square of x. Complexity: O(n).
func rms(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(x)))
}

// peak returns the maximum absolute sample of x. Complexity: O(n).
func peak(x []float64) float64 {
	var p, a float64
	for _, v := range x {
		a = math.Abs(v)
		if a > p {
			p = a
		}
	}

	return p
}

// kurtosis returns the fourth central moment normalized by the squared
// variance. A constant signal (zero variance) reports 0 by convention so a
// flat line never divides by zero. Complexity: O(n).
func kurtosis(x []float64) float64 {
	n := float64(len(x))
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= n

	var m2, m4, d float64
	for _, v := range x {
		d = v - mean
		m2 += d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m4 /= n
	if m2 == 0 {
		return 0
	}

	return m4 / (m2 * m2)
}

// Analyze computes the requested scalar statistics over the full sample set.
// Unknown metric names are silently skipped (tolerance for partial lists is
// deliberate); duplicates are computed again in place.
// Crest factor of an all-zero signal reports 0 by convention instead of
// dividing by a zero RMS.
// Errors: none — an empty or fully unknown metric list yields an empty slice.
// Complexity: O(m·n) time, O(m) result memory.
func (s *Signal) Analyze(opts AnalyzeOptions) (compute.Result[[]Metric], error) {
	start := time.Now()

	out := make([]Metric, 0, len(opts.Metrics))
	for _, name := range opts.Metrics {
		switch name {
		case MetricRMS:
			out = append(out, Metric{Name: name, Value: rms(s.samples)})
		case MetricPeak:
			out = append(out, Metric{Name: name, Value: peak(s.samples)})
		case MetricCrest:
			r := rms(s.samples)
			if r == 0 {
				out = append(out, Metric{Name: name, Value: 0})
			} else {
				out = append(out, Metric{Name: name, Value: peak(s.samples) / r})
			}
		case MetricKurtosis:
			out = append(out, Metric{Name: name, Value: kurtosis(s.samples)})
		default:
			// Unknown metric: skipped by design.
		}
	}

	return compute.Measure(start, compute.SamplesFootprint(len(out)), out), nil
}
