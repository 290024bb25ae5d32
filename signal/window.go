// SPDX-License-Identifier: MIT
// Package signal: window functions.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// WindowType names a supported window coefficient curve.
type WindowType string

const (
	// Hamming: w[i] = 0.54 − 0.46·cos(2πi/(N−1)).
	Hamming WindowType = "hamming"

	// Hanning: w[i] = 0.5·(1 − cos(2πi/(N−1))).
	Hanning WindowType = "hanning"
)

// WindowOptions configures ApplyWindow.
//
// Fields:
//   - Type   — Hamming or Hanning.
//   - Length — expected window length; 0 means "use the signal length",
//     any other value must equal it (kept as an explicit shape check for
//     notebooks that pass the length through).
type WindowOptions struct {
	Type   WindowType
	Length int
}

const opApplyWindow = "ApplyWindow"

// windowCoefficient returns w[i] for an N-point window of the given type.
// The single-sample boundary (N == 1) makes 2πi/(N−1) a division by zero;
// the coefficient is defined as 1.0 there so the sample passes unchanged.
func windowCoefficient(typ WindowType, i, n int) float64 {
	if n == 1 {
		return 1.0
	}
	x := 2 * math.Pi * float64(i) / float64(n-1)
	if typ == Hamming {
		return 0.54 - 0.46*math.Cos(x)
	}

	return 0.5 * (1 - math.Cos(x))
}

// ApplyWindow multiplies the signal elementwise by the window coefficient
// curve and returns a fresh Signal; the receiver is never mutated.
// Stage 1 (Validate): known window type, optional explicit length match.
// Stage 2 (Execute): fixed i-loop multiply.
// Stage 3 (Finalize): wrap in a Result envelope.
// Errors: ErrUnknownWindow, ErrWindowLength (validation kind).
// Complexity: O(n) time and memory.
func (s *Signal) ApplyWindow(opts WindowOptions) (compute.Result[*Signal], error) {
	start := time.Now()

	if opts.Type != Hamming && opts.Type != Hanning {
		return compute.Failed[*Signal](start, ErrUnknownWindow),
			sigErrorf(compute.Validation, opApplyWindow, ErrUnknownWindow)
	}
	n := len(s.samples)
	if opts.Length != 0 && opts.Length != n {
		return compute.Failed[*Signal](start, ErrWindowLength),
			sigErrorf(compute.Validation, opApplyWindow, ErrWindowLength)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = s.samples[i] * windowCoefficient(opts.Type, i, n)
	}

	win, err := New(out, s.rate, s.meta)
	if err != nil {
		return compute.Failed[*Signal](start, err), err
	}

	return compute.Measure(start, compute.SamplesFootprint(n), win), nil
}
