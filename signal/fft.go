// SPDX-License-Identifier: MIT
// Package signal: spectral kernels.
//
// The transform is the textbook recursive radix-2 Cooley–Tukey: simple,
// deterministic, and restricted to power-of-two lengths by construction.
// It is a reference implementation, not a production codec.

package signal

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// Operation name constants for unified error wrapping.
const (
	opFFT      = "FFT"
	opSpectrum = "Spectrum"
)

// complexBytes is the footprint of one complex128 bin.
const complexBytes = 16

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// fftRecurse runs the radix-2 butterfly on x. len(x) must be a power of two.
// Base case N ≤ 1 returns the sample as a zero-imaginary complex value.
// Complexity: O(n log n) time, O(n log n) transient memory for the halves.
func fftRecurse(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	// Split into even and odd index subsequences
	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	even = fftRecurse(even)
	odd = fftRecurse(odd)

	// Combine with twiddle factors e^(-2πik/n)
	out := make([]complex128, n)
	var tw complex128
	for k := 0; k < half; k++ {
		tw = cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n))) * odd[k]
		out[k] = even[k] + tw
		out[k+half] = even[k] - tw
	}

	return out
}

// FFT computes the discrete Fourier transform of the signal.
// Stage 1 (Validate): sample count must be a power of two.
// Stage 2 (Execute): recursive radix-2 Cooley–Tukey.
// Stage 3 (Finalize): wrap the complex bins in a Result envelope.
// Errors: ErrNotPowerOfTwo (validation kind).
// Complexity: O(n log n) time, O(n) result memory.
func (s *Signal) FFT() (compute.Result[[]complex128], error) {
	start := time.Now()

	n := len(s.samples)
	if !isPowerOfTwo(n) {
		return compute.Failed[[]complex128](start, ErrNotPowerOfTwo),
			sigErrorf(compute.Validation, opFFT, ErrNotPowerOfTwo)
	}

	// Lift real samples into the complex plane
	x := make([]complex128, n)
	for i, v := range s.samples {
		x[i] = complex(v, 0)
	}

	bins := fftRecurse(x)

	return compute.Measure(start, int64(n)*complexBytes, bins), nil
}

// Spectrum computes the magnitude spectrum: the per-bin Euclidean norm of
// the complex FFT output. Bin k corresponds to frequency k·rate/N, matching
// FreqArray. A pure tone of frequency f therefore peaks near bin f·N/rate.
// Errors: ErrNotPowerOfTwo (validation kind), propagated from FFT.
// Complexity: O(n log n) time, O(n) result memory.
func (s *Signal) Spectrum() (compute.Result[[]float64], error) {
	start := time.Now()

	fft, err := s.FFT()
	if err != nil {
		return compute.Failed[[]float64](start, err), sigErrorf(compute.Validation, opSpectrum, err)
	}

	mags := make([]float64, len(fft.Value))
	for i, b := range fft.Value {
		mags[i] = cmplx.Abs(b)
	}

	return compute.Measure(start, compute.SamplesFootprint(len(mags)), mags), nil
}
