// SPDX-License-Identifier: MIT
// Package signal: continuous wavelet scalogram.
//
// For each dyadic scale level j the kernel is a sampled mother wavelet
// stretched by scale = 2^j, convolved against the signal with a symmetric,
// boundary-clamped window and normalized by 1/√scale. The result is a
// matrix.Dense with one row per scale and one column per sample.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/matrix"
)

// Wavelet names a supported mother wavelet.
type Wavelet string

const (
	// Morlet: Gaussian-windowed cosine, ψ(t) = e^(−t²/2)·cos(5t).
	Morlet Wavelet = "morlet"

	// Mexican (Ricker): second derivative of a Gaussian,
	// ψ(t) = (1 − t²)·e^(−t²/2).
	Mexican Wavelet = "mexican"
)

// kernelRadiusScales is the half-support of the sampled kernel in units of
// the scale: ±4 standard deviations covers the Gaussian envelope.
const kernelRadiusScales = 4

// WaveletOptions configures WaveletTransform.
//
// Fields:
//   - Wavelet — Morlet or Mexican (Ricker).
//   - Scales  — number of dyadic scale levels (rows of the scalogram);
//     level j analyses at scale 2^j.
type WaveletOptions struct {
	Wavelet Wavelet
	Scales  int
}

const opWaveletTransform = "WaveletTransform"

// motherWavelet evaluates the named mother wavelet at normalized time t.
func motherWavelet(w Wavelet, t float64) float64 {
	g := math.Exp(-t * t / 2)
	if w == Morlet {
		return g * math.Cos(5*t)
	}

	return (1 - t*t) * g // Ricker
}

// WaveletTransform computes the scalogram of the signal.
// Stage 1 (Validate): known wavelet, positive scale count.
// Stage 2 (Execute): per scale level, sample the stretched kernel over a
// ±4·scale support and convolve with indices clamped to the signal bounds.
// Stage 3 (Finalize): assemble rows into a Dense and wrap in a Result.
// Errors: ErrUnknownWavelet, ErrBadScales (validation kind).
// Complexity: O(scales · n · support) time, O(scales · n) memory.
func (s *Signal) WaveletTransform(opts WaveletOptions) (compute.Result[*matrix.Dense], error) {
	start := time.Now()

	if opts.Wavelet != Morlet && opts.Wavelet != Mexican {
		return compute.Failed[*matrix.Dense](start, ErrUnknownWavelet),
			sigErrorf(compute.Validation, opWaveletTransform, ErrUnknownWavelet)
	}
	if opts.Scales < 1 {
		return compute.Failed[*matrix.Dense](start, ErrBadScales),
			sigErrorf(compute.Validation, opWaveletTransform, ErrBadScales)
	}

	n := len(s.samples)
	rows := make([][]float64, opts.Scales)

	var (
		level, i, k, idx int
		scale, norm, acc float64
	)
	for level = 0; level < opts.Scales; level++ {
		scale = math.Pow(2, float64(level)) // dyadic scale ladder
		radius := int(scale) * kernelRadiusScales
		norm = 1 / math.Sqrt(scale)

		row := make([]float64, n)
		for i = 0; i < n; i++ {
			acc = 0
			for k = -radius; k <= radius; k++ {
				// Symmetric window, clamped at the signal boundaries
				idx = i + k
				if idx < 0 {
					idx = 0
				} else if idx >= n {
					idx = n - 1
				}
				acc += s.samples[idx] * motherWavelet(opts.Wavelet, float64(k)/scale)
			}
			row[i] = acc * norm
		}
		rows[level] = row
	}

	scalogram, err := matrix.NewFromRows(rows)
	if err != nil {
		return compute.Failed[*matrix.Dense](start, err),
			sigErrorf(compute.Computation, opWaveletTransform, err)
	}

	return compute.Measure(start, compute.SamplesFootprint(opts.Scales*n), scalogram), nil
}
