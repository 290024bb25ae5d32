// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/signalbook/signalbook/matrix"
)

// ExampleMul demonstrates a standard matrix product and the Result envelope
// around it.
func ExampleMul() {
	// 1) Two conformant operands
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{5, 6}, {7, 8}})

	// 2) Multiply; the payload rides inside the envelope
	res, _ := matrix.Mul(a, b)

	fmt.Print(res.Value.String())
	fmt.Println("ok:", res.OK)
	// Output:
	// [19, 22]
	// [43, 50]
	// ok: true
}

// ExampleTranspose demonstrates the dimension flip.
func ExampleTranspose() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	res, _ := matrix.Transpose(m)

	fmt.Print(res.Value.String())
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}

// ExampleInverse inverts a diagonal matrix; diagonal inputs keep the output
// exactly representable.
func ExampleInverse() {
	m, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 4}})
	res, _ := matrix.Inverse(m)

	fmt.Print(res.Value.String())
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}
