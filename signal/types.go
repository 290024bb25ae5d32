// SPDX-License-Identifier: MIT
// Package signal: the Signal value type.
//
// Purpose:
//   - Hold an ordered, fixed-length sequence of finite float64 samples plus
//     the sample rate and optional provenance metadata.
//   - Derive time/frequency axes on demand from the live sample count and
//     rate — never store them redundantly.
//
// Invariants (enforced at construction, preserved by every kernel):
//   - len(samples) >= 1 and every sample is finite (no NaN, no ±Inf).
//   - rate > 0 and finite.
//   - The sample count never changes after construction; kernels allocate
//     fresh Signals instead of resizing.

package signal

import (
	"fmt"
	"math"
	"strings"

	"github.com/signalbook/signalbook/compute"
)

// previewSamples is how many leading samples the textual form shows.
const previewSamples = 5

// Signal is a sampled waveform: ordered float64 samples at a fixed rate.
// Metadata records generator provenance (frequency, duration, amplitude,
// phase) and is never required for correctness of later operations.
type Signal struct {
	samples []float64          // fixed-length sample storage
	rate    float64            // samples per second, > 0
	meta    map[string]float64 // optional provenance, attached at creation
}

// sigErrorf classifies a sentinel under kind with operation context.
// Thin wrapper so every kernel wraps failures the same way.
func sigErrorf(kind compute.Kind, op string, cause error) error {
	return compute.Classify(kind, cause, "%s", op)
}

// New constructs a Signal from samples at the given rate, attaching meta as
// provenance. The sample slice is copied; callers keep ownership of theirs.
// Stage 1 (Validate): non-empty samples, finite values, positive finite rate.
// Stage 2 (Prepare): copy samples and metadata.
// Stage 3 (Finalize): return the new Signal or a classified validation error.
// Complexity: O(n) time and memory.
func New(samples []float64, rate float64, meta map[string]float64) (*Signal, error) {
	// Validate sample presence
	if len(samples) == 0 {
		return nil, sigErrorf(compute.Validation, "New", ErrEmptySignal)
	}
	// Validate rate
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, sigErrorf(compute.Validation, "New", ErrBadSampleRate)
	}
	// Validate every sample is finite
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, sigErrorf(compute.Validation, "New",
				fmt.Errorf("sample %d: %w", i, ErrNonFinite))
		}
	}

	// Copy storage so later caller mutation cannot break the invariant
	data := make([]float64, len(samples))
	copy(data, samples)

	var m map[string]float64
	if len(meta) > 0 {
		m = make(map[string]float64, len(meta))
		for k, v := range meta {
			m[k] = v
		}
	}

	return &Signal{samples: data, rate: rate, meta: m}, nil
}

// Len returns the fixed sample count. Complexity: O(1).
func (s *Signal) Len() int { return len(s.samples) }

// SampleRate returns the sample rate in samples per second. Complexity: O(1).
func (s *Signal) SampleRate() float64 { return s.rate }

// Data returns a copy of the sample sequence, paired by index with
// TimeArray for plot rendering. Complexity: O(n).
func (s *Signal) Data() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)

	return out
}

// Meta returns a copy of the provenance metadata (nil when none was
// attached). Complexity: O(k).
func (s *Signal) Meta() map[string]float64 {
	if s.meta == nil {
		return nil
	}
	out := make(map[string]float64, len(s.meta))
	for k, v := range s.meta {
		out[k] = v
	}

	return out
}

// TimeArray returns the time axis: t[i] = i / rate.
// Always recomputed from the live sample count, never cached.
// Complexity: O(n).
func (s *Signal) TimeArray() []float64 {
	out := make([]float64, len(s.samples))
	for i := range out {
		out[i] = float64(i) / s.rate
	}

	return out
}

// FreqArray returns the frequency axis: f[i] = i * rate / N.
// This matches the FFT bin convention where a pure tone of frequency f at
// rate r peaks near bin f*N/r. Always recomputed, never cached.
// Complexity: O(n).
func (s *Signal) FreqArray() []float64 {
	n := float64(len(s.samples))
	out := make([]float64, len(s.samples))
	for i := range out {
		out[i] = float64(i) * s.rate / n
	}

	return out
}

// Clone returns a deep copy of the Signal. Complexity: O(n).
func (s *Signal) Clone() *Signal {
	c, _ := New(s.samples, s.rate, s.meta) // inputs already satisfy invariants

	return c
}

// String implements fmt.Stringer in the notebook cell format:
// "Signal[N samples] = [v1, v2, v3, v4, v5...]".
// Complexity: O(1) — only the leading preview is rendered.
func (s *Signal) String() string {
	n := len(s.samples)
	limit := previewSamples
	if n < limit {
		limit = n
	}
	parts := make([]string, limit)
	for i := 0; i < limit; i++ {
		parts[i] = fmt.Sprintf("%g", s.samples[i])
	}

	return fmt.Sprintf("Signal[%d samples] = [%s...]", n, strings.Join(parts, ", "))
}
