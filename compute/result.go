// SPDX-License-Identifier: MIT
// Package compute: the Result envelope.
//
// Purpose:
//   - Give every non-trivial numeric operation one uniform success shape:
//     payload + {elapsed, approximate memory footprint, precision, ok flag}.
//   - Keep metadata informational: consumers read only the payload for
//     control flow; timing/size exist for display and diagnostics.
//
// Determinism & Performance:
//   - Stamping a Result is O(1); no hidden allocations beyond the struct.
//   - Precision is fixed at 64 (float64 throughout the module).

package compute

import "time"

// PrecisionBits is the numeric precision of every payload in the module.
// All samples, grids and scalars are IEEE-754 binary64.
const PrecisionBits = 64

// Float64Bytes is the byte width of one sample, used by memory estimates.
const Float64Bytes = 8

// Result is the uniform success envelope wrapping a computed payload.
//
// Fields:
//   - Value       — the computed payload.
//   - Elapsed     — wall-clock duration of the producing operation.
//   - MemoryBytes — approximate footprint of the payload, in bytes.
//   - Precision   — bits of numeric precision (always PrecisionBits).
//   - OK          — success flag; false only on envelopes built for display
//     of a failed attempt (operations themselves return (Result, error)).
//   - ErrText     — optional error text mirrored for display when OK=false.
type Result[T any] struct {
	Value       T
	Elapsed     time.Duration
	MemoryBytes int64
	Precision   int
	OK          bool
	ErrText     string
}

// Measure stamps a successful Result for value: elapsed time is taken from
// start to now, bytes is the caller's footprint estimate.
// Stage 1 (Prepare): read the monotonic clock.
// Stage 2 (Finalize): fill the envelope with fixed precision and OK=true.
// Complexity: O(1).
func Measure[T any](start time.Time, bytes int64, value T) Result[T] {
	return Result[T]{
		Value:       value,
		Elapsed:     time.Since(start),
		MemoryBytes: bytes,
		Precision:   PrecisionBits,
		OK:          true,
	}
}

// Failed stamps a failure envelope mirroring err's text for display.
// The zero Value is carried; callers must not read it.
// Complexity: O(1).
func Failed[T any](start time.Time, err error) Result[T] {
	var zero T

	return Result[T]{
		Value:     zero,
		Elapsed:   time.Since(start),
		Precision: PrecisionBits,
		OK:        false,
		ErrText:   err.Error(),
	}
}

// SamplesFootprint estimates the payload footprint of n float64 samples.
// Complexity: O(1).
func SamplesFootprint(n int) int64 {
	return int64(n) * Float64Bytes
}
