// SPDX-License-Identifier: MIT
// Package signal: Dynamic Time Warping distance between two signals.
//
// DTW measures similarity between two sampled waveforms that may vary in
// time or speed by finding an optimal warping between their sample axes —
// useful for comparing a generated reference against a stretched capture.
//
// Algorithm outline (two-row DP):
//  1. Let n = a.Len(), m = b.Len(). Keep two rows of the (n+1)×(m+1) DP grid.
//  2. D[0][0] = 0, first row/col = +∞.
//  3. D[i][j] = |a[i-1]−b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//     with p the slope penalty, restricted to |i−j| ≤ Window when set.
//  4. distance = D[n][m].
//
// Complexity: O(n·m) time, O(m) memory.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// DTWOptions configures the warping-distance kernel.
//
// Fields:
//   - Window       — maximum deviation |i−j| allowed (Sakoe–Chiba band).
//     A value of 0 (or negative) means no windowing constraint.
//   - SlopePenalty — cost added to insertion/deletion steps (locality bias).
type DTWOptions struct {
	Window       int
	SlopePenalty float64
}

const opDTW = "DTW"

// DTW computes the Dynamic Time Warping distance between s and other.
// A nil opts means no window and no slope penalty.
// Errors: ErrNilSignal (validation kind) when other is nil.
// Complexity: O(n·m) time, O(m) memory (two-row storage).
func (s *Signal) DTW(other *Signal, opts *DTWOptions) (compute.Result[float64], error) {
	start := time.Now()

	if other == nil {
		return compute.Failed[float64](start, ErrNilSignal),
			sigErrorf(compute.Validation, opDTW, ErrNilSignal)
	}

	// Apply options or defaults
	window := math.MaxInt32
	penalty := 0.0
	if opts != nil {
		if opts.Window > 0 {
			window = opts.Window
		}
		penalty = opts.SlopePenalty
	}

	a, b := s.samples, other.samples
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// Two-row DP storage
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var i, j int
	var cost, ins, del, match, best float64
	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if window < math.MaxInt32 && absInt(i-j) > window {
				curr[j] = inf

				continue
			}
			cost = math.Abs(a[i-1] - b[j-1])
			ins = prev[j] + penalty
			del = curr[j-1] + penalty
			match = prev[j-1]
			best = min3(ins, del, match)
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	return compute.Measure(start, compute.SamplesFootprint(2*(m+1)), prev[m]), nil
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
