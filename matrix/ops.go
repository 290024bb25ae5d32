// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over Dense — element-wise addition and
// subtraction, Hadamard product, matrix multiplication, transpose and scalar
// scaling. All kernels perform strict fail-fast validation and return clear
// errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via opErrorf.
//   - Loop orders are fixed (flat 0..n-1 or i→j) for deterministic results.
//   - Every exported kernel returns its payload inside a compute.Result
//     envelope stamped with elapsed time and memory footprint, matching the
//     signal kernels; the unexported kernels underneath stay envelope-free.

package matrix

import (
	"fmt"
	"time"

	"github.com/signalbook/signalbook/compute"
)

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
)

// opErrorf wraps err with an operation tag, preserving the original error via
// %w so errors.Is/As keep matching. Call only with err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// footprint reports the payload size of a Dense in bytes.
func footprint(m *Dense) int64 {
	return int64(len(m.data)) * compute.Float64Bytes
}

// measured stamps a successful kernel result into the envelope.
func measured(start time.Time, out *Dense) (compute.Result[*Dense], error) {
	return compute.Measure(start, footprint(out), out), nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
// Complexity: O(r*c) time and space.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	// Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opTag, err)
	}

	// Allocate result and run a single flat loop; fixed 0..n-1 order.
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, opErrorf(opTag, err)
	}
	n := len(a.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Add(a, b *Dense) (compute.Result[*Dense], error) {
	start := time.Now()
	res, err := addSub(a, b, +1, opAdd)
	if err != nil {
		return compute.Failed[*Dense](start, err), err
	}

	return measured(start, res)
}

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Inputs are never mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Sub(a, b *Dense) (compute.Result[*Dense], error) {
	start := time.Now()
	res, err := addSub(a, b, -1, opSub)
	if err != nil {
		return compute.Failed[*Dense](start, err), err
	}

	return measured(start, res)
}

// hadamard is the element-wise product kernel.
func hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, opErrorf(opHadamard, err)
	}
	n := len(a.data)
	for idx := 0; idx < n; idx++ { // fixed order ensures deterministic results
		res.data[idx] = a.data[idx] * b.data[idx]
	}

	return res, nil
}

// Hadamard computes the element-wise product C[i,j] = A[i,j] * B[i,j].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time and space.
func Hadamard(a, b *Dense) (compute.Result[*Dense], error) {
	start := time.Now()
	res, err := hadamard(a, b)
	if err != nil {
		return compute.Failed[*Dense](start, err), err
	}

	return measured(start, res)
}

// mul is the row-major multiplication kernel.
func mul(a, b *Dense) (*Dense, error) {
	// Validate inner dimensions via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Allocate result Dense
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Row-major multiplication into res.data
	// a.data layout: i*a.c + k; b.data layout: k*b.c + j
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Stage 1 (Validate): non-nil operands, A.Cols == B.Rows.
// Stage 2 (Execute): i→k→j loops with row-major strides, skipping zero A[i,k].
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c) time, O(r*c) space.
func Mul(a, b *Dense) (compute.Result[*Dense], error) {
	start := time.Now()
	res, err := mul(a, b)
	if err != nil {
		return compute.Failed[*Dense](start, err), err
	}

	return measured(start, res)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Scale(m *Dense, alpha float64) (compute.Result[*Dense], error) {
	start := time.Now()
	if err := ValidateNotNil(m); err != nil {
		err = opErrorf(opScale, err)

		return compute.Failed[*Dense](start, err), err
	}
	res, err := NewDense(m.r, m.c)
	if err != nil {
		err = opErrorf(opScale, err)

		return compute.Failed[*Dense](start, err), err
	}
	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		res.data[idx] = m.data[idx] * alpha
	}

	return measured(start, res)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and space.
func Transpose(m *Dense) (compute.Result[*Dense], error) {
	start := time.Now()
	if err := ValidateNotNil(m); err != nil {
		err = opErrorf(opTranspose, err)

		return compute.Failed[*Dense](start, err), err
	}
	res, err := NewDense(m.c, m.r) // dims flipped
	if err != nil {
		err = opErrorf(opTranspose, err)

		return compute.Failed[*Dense](start, err), err
	}

	// data[i*c + j] → res.data[j*r + i]
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return measured(start, res)
}

// MatVec computes y = m * x for a column vector x with len(x) == m.Cols().
// Skipping zero x[j] avoids useless multiplies on sparse-ish vectors.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) space for y.
func MatVec(m *Dense, x []float64) (compute.Result[[]float64], error) {
	start := time.Now()
	if err := ValidateNotNil(m); err != nil {
		err = opErrorf(opMatVec, err)

		return compute.Failed[[]float64](start, err), err
	}
	if x == nil || len(x) != m.c {
		err := opErrorf(opMatVec, ErrDimensionMismatch)

		return compute.Failed[[]float64](start, err), err
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		acc = ZeroSum
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return compute.Measure(start, int64(len(y))*compute.Float64Bytes, y), nil
}
