// SPDX-License-Identifier: MIT
package workspace_test

import (
	"fmt"

	"github.com/signalbook/signalbook/workspace"
)

// ExampleWorkspace_Execute runs a small notebook cell: bindings echo as
// "name = value", one output line per statement.
func ExampleWorkspace_Execute() {
	w := workspace.New()

	out, err := w.Execute(`a = 2
m = matrix([[1, 2], [3, 4]]) // grid literal
r = m.rows()`)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(out)
	// Output:
	// a = 2
	// m = [1, 2]
	// [3, 4]
	// r = 2
}

// ExampleWorkspace_GetValue shows the read-only lookup the plot layer uses
// to extract a Signal's series after execution.
func ExampleWorkspace_GetValue() {
	w := workspace.New()
	if _, err := w.Execute("s = sine(10, 0.5, 100)"); err != nil {
		fmt.Println("error:", err)

		return
	}

	v, ok := w.GetValue("s")
	s, _ := v.Signal()
	fmt.Println("bound:", ok)
	fmt.Println("samples:", s.Len())
	fmt.Println("paired series:", len(s.Data()) == len(s.TimeArray()))
	// Output:
	// bound: true
	// samples: 50
	// paired series: true
}
