// Package matrix provides the rectangular numeric grid used by notebook
// cells and the wavelet scalogram, plus the linear-algebra kernels the
// evaluator dispatches to.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 grid with O(1) element access, built either
//     empty (NewDense) or from nested row literals (NewFromRows).
//   - Element-wise kernels (Add, Sub, Hadamard, Scale) and the standard
//     matrix product (Mul), all with strict fail-fast shape validation.
//   - Transpose, MatVec, and a deterministic Doolittle LU/Inverse pair.
//
// Matrices are immutable-by-convention: every kernel allocates a fresh
// result and never mutates its operands. The one sanctioned mutation is the
// explicit indexed Set used for in-place edits from the notebook.
//
// Every dimension mismatch is an error naming the violated shape rule —
// never a silent truncation.
package matrix
