// Package signal defines the sampled-waveform value type behind every
// notebook cell and the DSP kernels that operate on it.
//
// The signal package provides:
//
//   - Signal: a fixed-length sequence of finite float64 samples plus a
//     positive sample rate and optional provenance metadata.
//   - Generators: Sine, Square and Chirp (linear or exponential sweep).
//   - Spectral kernels: recursive radix-2 FFT, magnitude Spectrum, and
//     Hamming/Hanning windowing.
//   - WaveletTransform: Morlet/Ricker scalograms over dyadic scales.
//   - Decompose: empirical-mode decomposition (EMD) by envelope sifting.
//   - Analyze: RMS, peak, crest factor and kurtosis statistics.
//   - DTW: Dynamic Time Warping distance between two signals.
//
// Every non-trivial kernel returns a compute.Result envelope stamped with
// timing and footprint metadata, alongside a classified error on failure.
// Derived axes (time, frequency) are always recomputed from the live sample
// count and rate, never cached.
//
// All kernels are synchronous and run to completion: a large transform
// blocks its caller for the full duration.
package signal
