// SPDX-License-Identifier: MIT
// Package signal: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the signal
// package. Kernels MUST return these sentinels, classified through
// compute.Classify at the operation boundary, and tests MUST check them via
// errors.Is. No kernel should panic on user-triggered error conditions.

package signal

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "signal: ..." for consistency and to allow
// easy grepping across logs. Sentinels describe the violated rule; the
// compute.Error wrapper carries the operation context and classification.

var (
	// ErrEmptySignal indicates a signal with zero samples was requested or
	// supplied. Every Signal holds at least one sample.
	ErrEmptySignal = errors.New("signal: sample sequence must be non-empty")

	// ErrNonFinite signals a NaN or ±Inf sample at construction. The
	// finite-samples invariant is enforced at every ingestion point.
	ErrNonFinite = errors.New("signal: NaN or Inf sample encountered")

	// ErrBadSampleRate indicates a non-positive or non-finite sample rate.
	ErrBadSampleRate = errors.New("signal: sample rate must be positive and finite")

	// ErrBadDuration indicates a non-positive duration or one that yields
	// zero samples at the requested rate.
	ErrBadDuration = errors.New("signal: duration must yield at least one sample")

	// ErrBadFrequency indicates a negative or non-finite generator frequency.
	ErrBadFrequency = errors.New("signal: frequency must be non-negative and finite")

	// ErrExpChirpFrequency guards the exponential sweep against division by
	// zero: both endpoint frequencies must be strictly positive.
	ErrExpChirpFrequency = errors.New("signal: exponential chirp requires positive start and end frequencies")

	// ErrUnknownChirpMethod indicates a sweep method other than linear or
	// exponential.
	ErrUnknownChirpMethod = errors.New("signal: unknown chirp method")

	// ErrUnknownWindow indicates an unsupported window type.
	ErrUnknownWindow = errors.New("signal: unknown window type")

	// ErrWindowLength indicates an explicit window length that does not
	// match the signal length.
	ErrWindowLength = errors.New("signal: window length does not match signal length")

	// ErrNotPowerOfTwo is returned by the radix-2 FFT when the sample count
	// is not a power of two.
	ErrNotPowerOfTwo = errors.New("signal: FFT requires a power-of-two sample count")

	// ErrUnknownWavelet indicates an unsupported mother wavelet name.
	ErrUnknownWavelet = errors.New("signal: unknown wavelet")

	// ErrBadScales indicates a non-positive scale count for the scalogram.
	ErrBadScales = errors.New("signal: scale count must be > 0")

	// ErrUnknownDecomposeMethod indicates a decomposition method other
	// than emd.
	ErrUnknownDecomposeMethod = errors.New("signal: unknown decomposition method")

	// ErrBadModeCount indicates a non-positive intrinsic-mode count.
	ErrBadModeCount = errors.New("signal: mode count must be > 0")

	// ErrTooFewExtrema guards envelope interpolation: sifting needs at
	// least two maxima and two minima to define both envelopes.
	ErrTooFewExtrema = errors.New("signal: too few extrema for envelope interpolation")

	// ErrNilSignal indicates a nil *Signal receiver or argument.
	ErrNilSignal = errors.New("signal: nil signal")
)
