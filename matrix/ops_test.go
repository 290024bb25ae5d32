package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/signalbook/signalbook/compute"
	"github.com/signalbook/signalbook/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a Dense or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomDense fills an r×c matrix with deterministic pseudo-random values.
func randomDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*10-5))
		}
	}

	return m
}

// assertClose compares two matrices element-wise within a tolerance.
func assertClose(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			require.NoError(t, err)
			gv, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, wv, gv, tol, "element (%d,%d)", i, j)
		}
	}
}

// TestAdd_Elementwise verifies the sum and that operands stay untouched.
func TestAdd_Elementwise(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{10, 20}, {30, 40}})

	res, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 22}, {33, 44}}, res.Value.Grid())
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.Grid(), "operand must not mutate")
}

// TestAdd_ShapeMismatch always fails with the dimension sentinel.
func TestAdd_ShapeMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})
	b := mustFromRows(t, [][]float64{{1}, {2}})

	_, err := matrix.Add(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_Known checks a hand-computed 2×3 · 3×2 product.
func TestMul_Known(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, res.Value.Grid())
}

// TestMul_Envelope verifies the result envelope metadata on success and
// failure: timing, footprint and precision on success, the error text and
// cleared OK flag on failure.
func TestMul_Envelope(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Empty(t, res.ErrText)
	assert.Equal(t, compute.PrecisionBits, res.Precision)
	assert.Equal(t, int64(2*2*compute.Float64Bytes), res.MemoryBytes)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))

	bad := mustFromRows(t, [][]float64{{1, 2, 3}})
	res, err = matrix.Mul(a, bad)
	require.Error(t, err)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.ErrText)
	assert.Nil(t, res.Value)
}

// TestMul_InnerMismatch verifies mismatched inner dimensions always error.
func TestMul_InnerMismatch(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}})    // 1×2
	b := mustFromRows(t, [][]float64{{1, 2, 3}}) // 1×3

	_, err := matrix.Mul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_AssociativeDistributive checks (AB)C == A(BC) and
// A(B+C) == AB + AC on random conformant matrices within tolerance.
func TestMul_AssociativeDistributive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomDense(t, rng, 4, 3)
	b := randomDense(t, rng, 3, 5)
	c := randomDense(t, rng, 5, 2)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	abc1, err := matrix.Mul(ab.Value, c)
	require.NoError(t, err)
	bc, err := matrix.Mul(b, c)
	require.NoError(t, err)
	abc2, err := matrix.Mul(a, bc.Value)
	require.NoError(t, err)
	assertClose(t, abc1.Value, abc2.Value, 1e-9)

	d := randomDense(t, rng, 3, 5)
	bd, err := matrix.Add(b, d)
	require.NoError(t, err)
	left, err := matrix.Mul(a, bd.Value)
	require.NoError(t, err)
	ad, err := matrix.Mul(a, d)
	require.NoError(t, err)
	right, err := matrix.Add(ab.Value, ad.Value)
	require.NoError(t, err)
	assertClose(t, left.Value, right.Value, 1e-9)
}

// TestScale_Broadcast checks scalar broadcast multiplication.
func TestScale_Broadcast(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -2}, {0.5, 4}})
	res, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, -4}, {1, 8}}, res.Value.Grid())
}

// TestTranspose_RoundTrip verifies transpose() twice is the identity.
func TestTranspose_RoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Value.Rows())
	assert.Equal(t, 2, tr.Value.Cols())

	back, err := matrix.Transpose(tr.Value)
	require.NoError(t, err)
	assert.Equal(t, m.Grid(), back.Value.Grid())
}

// TestHadamard_Elementwise checks the element-wise product and shape guard.
func TestHadamard_Elementwise(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{2, 2}, {0.5, 10}})

	res, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2, 4}, {1.5, 40}}, res.Value.Grid())

	c := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Hadamard(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVec verifies y = m*x and the length guard.
func TestMatVec(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	res, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, res.Value)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNilOperands verifies every kernel rejects nil inputs.
func TestNilOperands(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1}})

	_, err := matrix.Add(nil, m)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
