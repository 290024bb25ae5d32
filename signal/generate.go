// SPDX-License-Identifier: MIT
// Package signal: waveform generators.
//
// Purpose:
//   - Synthesize sine, square and chirp waveforms as fresh Signals wrapped
//     in compute.Result envelopes.
//   - Record generator parameters as provenance metadata on every output.
//
// Determinism:
//   - Fixed i-loops over the sample index; no randomness anywhere.

package signal

import (
	"math"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// DefaultSampleRate is the sample rate generators use when the notebook
// omits one: 44100 samples per second (CD audio).
const DefaultSampleRate = 44100.0

// ChirpMethod selects the frequency-sweep law of Chirp.
type ChirpMethod string

const (
	// ChirpLinear sweeps the instantaneous frequency linearly from
	// StartFreq to EndFreq: phase = 2π(f0·t + k·t²/2), k = (f1-f0)/d.
	ChirpLinear ChirpMethod = "linear"

	// ChirpExponential sweeps geometrically:
	// phase = 2π·f0·(e^(k·t)-1)/k, k = ln(f1/f0)/d.
	// Requires strictly positive endpoint frequencies.
	ChirpExponential ChirpMethod = "exponential"
)

// ChirpOptions configures the Chirp generator.
//
// Fields:
//   - StartFreq  — instantaneous frequency at t=0, Hz.
//   - EndFreq    — instantaneous frequency at t=Duration, Hz.
//   - Duration   — output length in seconds (sample count = floor(d·rate)).
//   - Method     — ChirpLinear (default when empty) or ChirpExponential.
//   - SampleRate — samples per second; 0 means DefaultSampleRate.
type ChirpOptions struct {
	StartFreq  float64
	EndFreq    float64
	Duration   float64
	Method     ChirpMethod
	SampleRate float64
}

// Operation name constants for unified error wrapping.
const (
	opSine   = "Sine"
	opSquare = "Square"
	opChirp  = "Chirp"
)

// validateGen checks the shared generator parameters and resolves the
// sample count. Returns the count or a plain sentinel (caller classifies).
func validateGen(freq, duration, rate float64) (int, error) {
	if freq < 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, ErrBadFrequency
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, ErrBadSampleRate
	}
	n := int(math.Floor(duration * rate))
	if duration <= 0 || n < 1 {
		return 0, ErrBadDuration
	}

	return n, nil
}

// Sine generates a phase-shifted sinusoid:
// x[i] = amplitude · sin(2π·freq·t + phase), t = i/rate.
// Stage 1 (Validate): frequency, duration and rate via validateGen.
// Stage 2 (Execute): fill floor(duration·rate) samples in index order.
// Stage 3 (Finalize): wrap in a Result with provenance metadata.
// Errors: ErrBadFrequency, ErrBadSampleRate, ErrBadDuration (validation kind).
// Complexity: O(n) time and memory.
func Sine(freq, duration, rate, amplitude, phase float64) (compute.Result[*Signal], error) {
	start := time.Now()

	n, err := validateGen(freq, duration, rate)
	if err != nil {
		return compute.Failed[*Signal](start, err), sigErrorf(compute.Validation, opSine, err)
	}

	samples := make([]float64, n)
	omega := 2 * math.Pi * freq
	for i := 0; i < n; i++ {
		samples[i] = amplitude * math.Sin(omega*float64(i)/rate+phase)
	}

	s, err := New(samples, rate, map[string]float64{
		"frequency": freq,
		"duration":  duration,
		"amplitude": amplitude,
		"phase":     phase,
	})
	if err != nil {
		return compute.Failed[*Signal](start, err), err // non-finite amplitude/phase surface here
	}

	return compute.Measure(start, compute.SamplesFootprint(n), s), nil
}

// Square generates a sign-of-sine square wave:
// x[i] = amplitude · sign(sin(2π·freq·t + phase)).
// sign(0) is 0, matching the mathematical sign function at zero crossings.
// Errors and complexity as for Sine.
func Square(freq, duration, rate, amplitude, phase float64) (compute.Result[*Signal], error) {
	start := time.Now()

	n, err := validateGen(freq, duration, rate)
	if err != nil {
		return compute.Failed[*Signal](start, err), sigErrorf(compute.Validation, opSquare, err)
	}

	samples := make([]float64, n)
	omega := 2 * math.Pi * freq
	var v float64
	for i := 0; i < n; i++ {
		v = math.Sin(omega*float64(i)/rate + phase)
		switch {
		case v > 0:
			samples[i] = amplitude
		case v < 0:
			samples[i] = -amplitude
		default:
			samples[i] = 0
		}
	}

	s, err := New(samples, rate, map[string]float64{
		"frequency": freq,
		"duration":  duration,
		"amplitude": amplitude,
		"phase":     phase,
	})
	if err != nil {
		return compute.Failed[*Signal](start, err), err
	}

	return compute.Measure(start, compute.SamplesFootprint(n), s), nil
}

// Chirp generates a frequency sweep from StartFreq to EndFreq over Duration.
//
// Linear method:      φ(t) = 2π·(f0·t + k·t²/2),        k = (f1−f0)/d.
// Exponential method: φ(t) = 2π·f0·(e^(k·t)−1)/k,       k = ln(f1/f0)/d.
//
// Guards (explicit, never silent NaN/Inf propagation):
//   - exponential with f0 ≤ 0 or f1 ≤ 0 → computation error
//     (ln and the 1/k division are undefined there);
//   - f1 == f0 under exponential gives k = 0; the sweep degenerates to the
//     constant-frequency limit φ(t) = 2π·f0·t, handled explicitly.
//
// Errors: validation kind for shape/rate/method, computation kind for the
// exponential-frequency guard.
// Complexity: O(n) time and memory.
func Chirp(opts ChirpOptions) (compute.Result[*Signal], error) {
	start := time.Now()

	rate := opts.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	method := opts.Method
	if method == "" {
		method = ChirpLinear
	}
	if method != ChirpLinear && method != ChirpExponential {
		return compute.Failed[*Signal](start, ErrUnknownChirpMethod),
			sigErrorf(compute.Validation, opChirp, ErrUnknownChirpMethod)
	}

	n, err := validateGen(opts.StartFreq, opts.Duration, rate)
	if err != nil {
		return compute.Failed[*Signal](start, err), sigErrorf(compute.Validation, opChirp, err)
	}

	samples := make([]float64, n)
	var t, phase float64
	switch method {
	case ChirpLinear:
		slope := (opts.EndFreq - opts.StartFreq) / opts.Duration
		for i := 0; i < n; i++ {
			t = float64(i) / rate
			phase = 2 * math.Pi * (opts.StartFreq*t + slope*t*t/2)
			samples[i] = math.Sin(phase)
		}

	case ChirpExponential:
		// Explicit guard: ln(f1/f0) and the 1/k term are undefined at 0.
		if opts.StartFreq <= 0 || opts.EndFreq <= 0 {
			return compute.Failed[*Signal](start, ErrExpChirpFrequency),
				sigErrorf(compute.Computation, opChirp, ErrExpChirpFrequency)
		}
		k := math.Log(opts.EndFreq/opts.StartFreq) / opts.Duration
		for i := 0; i < n; i++ {
			t = float64(i) / rate
			if k == 0 {
				// f1 == f0: constant-frequency limit of the sweep.
				phase = 2 * math.Pi * opts.StartFreq * t
			} else {
				phase = 2 * math.Pi * opts.StartFreq * (math.Exp(k*t) - 1) / k
			}
			samples[i] = math.Sin(phase)
		}
	}

	s, err := New(samples, rate, map[string]float64{
		"startFreq":  opts.StartFreq,
		"endFreq":    opts.EndFreq,
		"duration":   opts.Duration,
		"sampleRate": rate,
	})
	if err != nil {
		return compute.Failed[*Signal](start, err), err
	}

	return compute.Measure(start, compute.SamplesFootprint(n), s), nil
}
