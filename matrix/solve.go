// SPDX-License-Identifier: MIT
// Package matrix: Doolittle LU factorization and inversion.
//
// Both kernels are deliberately non-pivoting: for identical inputs they
// produce bit-for-bit identical outputs. Numerical stability on
// ill-conditioned inputs is traded for that determinism; a zero pivot is
// detected and reported as ErrSingular instead of propagating Inf/NaN.

package matrix

import (
	"time"

	"github.com/signalbook/signalbook/compute"
)

// ZeroPivot is the sentinel value for detecting a zero pivot in LU/Inverse.
const ZeroPivot = 0.0

// LUFactors carries the unit-lower-triangular L and upper-triangular U of a
// Doolittle factorization A = L*U.
type LUFactors struct {
	L *Dense
	U *Dense
}

// lu is the factorization kernel shared by LU and Inverse.
func lu(m *Dense) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}

	n := m.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, nil, opErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, opErrorf(opLU, err)
	}

	// Unit lower-triangular diagonal
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1.0
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		baseI = i * n
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection)
		pivot = u.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, opErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
// Stage 1 (Validate): non-nil square input; allocate L, U; set diag(L)=1.
// Stage 2 (Execute): for i=0..n-1 build row i of U, then column i of L,
// in fixed order; guard each pivot against zero.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n^3) time, O(n^2) space.
func LU(m *Dense) (compute.Result[LUFactors], error) {
	start := time.Now()
	l, u, err := lu(m)
	if err != nil {
		return compute.Failed[LUFactors](start, err), err
	}

	return compute.Measure(start, footprint(l)+footprint(u), LUFactors{L: l, U: u}), nil
}

// Inverse computes A^{-1} by solving L*U*x = e_col for each canonical basis
// column via forward and backward substitution over the LU factors.
// The input is read-only; a fresh Dense is returned.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m *Dense) (compute.Result[*Dense], error) {
	start := time.Now()

	// Factorize first; validation happens inside lu.
	l, u, err := lu(m)
	if err != nil {
		err = opErrorf(opInverse, err)

		return compute.Failed[*Dense](start, err), err
	}

	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		err = opErrorf(opInverse, err)

		return compute.Failed[*Dense](start, err), err
	}

	var (
		col, i, k int
		sum, piv  float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col (top-down)
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y (bottom-up)
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			piv = u.data[i*n+i]
			if piv == ZeroPivot {
				err = opErrorf(opInverse, ErrSingular)

				return compute.Failed[*Dense](start, err), err
			}
			x[i] = (y[i] - sum) / piv
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return measured(start, inv)
}
