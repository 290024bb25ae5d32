// SPDX-License-Identifier: MIT
// Package signal: empirical-mode decomposition (EMD).
//
// Sifting loop, per intrinsic mode:
//  1. Locate strict local maxima and minima of the working signal.
//  2. Interpolate upper/lower envelopes from the extrema by
//     inverse-squared-distance weighting.
//  3. Subtract the envelope mean; repeat until the L2 norm of the change
//     between iterations drops below SiftTolerance.
//
// The sifted component becomes one intrinsic mode function (IMF); the
// residual carries forward to the next mode. Decomposition ends early when
// the residual no longer has enough extrema to define both envelopes.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// SiftTolerance is the fixed L2 threshold that stops the sifting loop.
const SiftTolerance = 0.05

// maxSiftIterations caps a single mode's sifting loop so a pathological
// input cannot spin forever.
const maxSiftIterations = 100

// envelopeEpsilon keeps the inverse-squared-distance weights finite at the
// extremum itself.
const envelopeEpsilon = 1e-12

// DecomposeMethod names a supported decomposition algorithm.
type DecomposeMethod string

// EMDMethod is the only method currently supported: empirical-mode
// decomposition by envelope sifting.
const EMDMethod DecomposeMethod = "emd"

// DecomposeOptions configures Decompose.
//
// Fields:
//   - Method   — must be EMDMethod; empty defaults to it.
//   - NumModes — maximum number of intrinsic modes to extract.
type DecomposeOptions struct {
	Method   DecomposeMethod
	NumModes int
}

const opDecompose = "Decompose"

// localExtrema returns the indices of strict local maxima and minima of x.
// Endpoints are not extrema. Complexity: O(n).
func localExtrema(x []float64) (maxima, minima []int) {
	for i := 1; i < len(x)-1; i++ {
		if x[i] > x[i-1] && x[i] > x[i+1] {
			maxima = append(maxima, i)
		} else if x[i] < x[i-1] && x[i] < x[i+1] {
			minima = append(minima, i)
		}
	}

	return maxima, minima
}

// interpolateEnvelope estimates an envelope of x through the given extrema
// by inverse-squared-distance weighting: points near an extremum follow it
// closely, distant ones blend all extrema.
// Requires len(extrema) >= 2 (caller guards). Complexity: O(n·k).
func interpolateEnvelope(x []float64, extrema []int) []float64 {
	env := make([]float64, len(x))
	var num, den, w, d float64
	for i := range x {
		num, den = 0, 0
		for _, e := range extrema {
			d = float64(i - e)
			w = 1 / (d*d + envelopeEpsilon)
			num += w * x[e]
			den += w
		}
		env[i] = num / den
	}

	return env
}

// l2Norm returns the Euclidean norm of x. Complexity: O(n).
func l2Norm(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// siftMode extracts one IMF from work in place, returning the mode and
// whether extraction was possible (false ⇒ too few extrema to start).
func siftMode(work []float64) ([]float64, bool) {
	h := make([]float64, len(work))
	copy(h, work)

	delta := make([]float64, len(work))
	for iter := 0; iter < maxSiftIterations; iter++ {
		maxima, minima := localExtrema(h)
		if len(maxima) < 2 || len(minima) < 2 {
			if iter == 0 {
				return nil, false // envelope undefined from the start
			}

			break // residual shape degenerated mid-sift; accept h as-is
		}

		upper := interpolateEnvelope(h, maxima)
		lower := interpolateEnvelope(h, minima)

		// delta is the envelope mean: the change applied this iteration
		for i := range h {
			delta[i] = (upper[i] + lower[i]) / 2
			h[i] -= delta[i]
		}
		if l2Norm(delta) < SiftTolerance {
			break
		}
	}

	return h, true
}

// Decompose splits the signal into intrinsic mode functions via EMD.
// Stage 1 (Validate): method must be emd, NumModes >= 1, and the signal
// must carry at least two maxima and two minima (explicit guard — envelope
// interpolation is undefined below that).
// Stage 2 (Execute): sift one mode at a time; subtract each mode from the
// residual; stop early when the residual runs out of extrema.
// Stage 3 (Finalize): wrap the IMFs (at least one) in a Result envelope.
// Errors: ErrUnknownDecomposeMethod, ErrBadModeCount (validation kind);
// ErrTooFewExtrema (computation kind).
// Complexity: O(modes · iterations · n · extrema) time.
func (s *Signal) Decompose(opts DecomposeOptions) (compute.Result[[]*Signal], error) {
	start := time.Now()

	method := opts.Method
	if method == "" {
		method = EMDMethod
	}
	if method != EMDMethod {
		return compute.Failed[[]*Signal](start, ErrUnknownDecomposeMethod),
			sigErrorf(compute.Validation, opDecompose, ErrUnknownDecomposeMethod)
	}
	if opts.NumModes < 1 {
		return compute.Failed[[]*Signal](start, ErrBadModeCount),
			sigErrorf(compute.Validation, opDecompose, ErrBadModeCount)
	}

	residual := make([]float64, len(s.samples))
	copy(residual, s.samples)

	modes := make([]*Signal, 0, opts.NumModes)
	for m := 0; m < opts.NumModes; m++ {
		imf, ok := siftMode(residual)
		if !ok {
			if m == 0 {
				// The input itself cannot support envelope interpolation.
				return compute.Failed[[]*Signal](start, ErrTooFewExtrema),
					sigErrorf(compute.Computation, opDecompose, ErrTooFewExtrema)
			}

			break // residual is monotone-ish: normal EMD termination
		}

		mode, err := New(imf, s.rate, nil)
		if err != nil {
			return compute.Failed[[]*Signal](start, err),
				sigErrorf(compute.Computation, opDecompose, err)
		}
		modes = append(modes, mode)

		// Residual carries forward to the next mode
		for i := range residual {
			residual[i] -= imf[i]
		}
	}

	return compute.Measure(start, compute.SamplesFootprint(len(modes)*len(s.samples)), modes), nil
}
