// Package compute defines the uniform success/failure envelope shared by
// every numeric operation in signalbook.
//
// The compute package provides:
//
//   - Result[T]: a typed payload plus timing, memory-footprint and precision
//     metadata stamped at the moment an operation finishes.
//   - Error: a classified error (Validation, Computation, Runtime, Memory)
//     carrying a human-readable message and, where applicable, the wrapped
//     lower-level cause for diagnostic chaining via errors.Is / errors.As.
//
// Metadata is informational: consumers (the workspace evaluator) use only the
// payload for control flow. Classification is the contract — validation means
// malformed input shape, computation means an algorithm failed mid-flight,
// runtime means an evaluator-level failure, and memory is reserved for
// allocation-failure reporting.
//
// See the examples in this package and signal for usage patterns.
package compute
