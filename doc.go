// Package signalbook is the computation core of a browser notebook whose
// cells speak a tiny DSL for signal and matrix work — from waveform
// generators to spectral, wavelet and modal analysis.
//
// 🚀 What is signalbook?
//
//	A small, deterministic library that brings together:
//		• Numeric values: Signal (sampled waveform + rate) & dense matrices
//		• Generators: sine, square, linear/exponential chirp
//		• Spectral tools: radix-2 FFT, magnitude spectrum, Hamming/Hanning windows
//		• Wavelets: Morlet & Ricker scalograms
//		• Modal analysis: empirical-mode decomposition (EMD)
//		• Statistics: RMS, peak, crest factor, kurtosis
//		• Time-series: Dynamic Time Warping distance between signals
//		• A line evaluator (Workspace) binding it all to notebook cells
//
// ✨ Why choose signalbook?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – classified errors, strict input validation
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible numeric results
//
// Under the hood, everything is organized under four subpackages:
//
//	compute/   — ComputationResult envelope & classified errors
//	matrix/    — dense row-major float64 grids + linear-algebra kernels
//	signal/    — the Signal type & every DSP kernel
//	workspace/ — the per-session evaluator behind each notebook cell
//
// Quick cell example:
//
//	s = sine(440, 1)
//	w = s.applyWindow({type: hamming})
//	w.getSpectrum()
//
//	generates one second of A440, windows it and prints its spectrum.
//
// Dive into README.md for full examples and the DSL reference.
//
//	go get github.com/signalbook/signalbook
package signalbook
