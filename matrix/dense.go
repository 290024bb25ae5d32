// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is the concrete row-major grid type, storing elements in a flat slice
// for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps an underlying error with method context and indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows builds a Dense from nested row slices, the shape notebook
// grid literals deserialize to.
// Stage 1 (Validate): non-empty grid, equal row lengths, finite entries.
// Stage 2 (Prepare): allocate flat storage and copy row by row.
// Stage 3 (Finalize): return new Dense or a sentinel describing the violation.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	// Validate rectangularity before any allocation
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrRagged
		}
	}

	// Copy into flat storage, rejecting non-finite values
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			if err := ValidateFinite(rows[i][j]); err != nil {
				return nil, matrixErrorf("NewFromRows", i, j, err)
			}
			m.data[i*cols+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col). This is the one sanctioned in-place
// mutation; every kernel in the package allocates fresh results instead.
// Stage 1 (Validate): bounds check via indexOf, finite check on v.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if err = ValidateFinite(v); err != nil {
		return matrixErrorf("Set", row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Useful for plot extraction of scalogram rows.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Grid returns a deep [][]float64 copy of the matrix, row-major.
// Complexity: O(r*c) time and memory.
func (m *Dense) Grid() [][]float64 {
	rows := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		rows[i] = make([]float64, m.c)
		copy(rows[i], m.data[i*m.c:(i+1)*m.c])
	}

	return rows
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer; this is the textual form notebook cells
// display, one bracketed comma-separated row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.c; j++ { // iterate over columns
			b.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
