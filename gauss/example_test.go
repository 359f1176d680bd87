// SPDX-License-Identifier: MIT
package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/gauss"
	"github.com/katalvlaran/lvgeom/matrix"
)

// ExampleInvert prints the recorded operations and the inverse.
func ExampleInvert() {
	a, _ := matrix.NewFromRows([][]float64{
		{0, 2},
		{1, 0},
	})
	res, err := gauss.Invert(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(res.Trace)
	fmt.Print(res.Inverse)
	// Output:
	// swap(0, 1)
	// scale(0, 1)
	// combine(1, 0, -0)
	// scale(1, 0.5)
	// combine(0, 1, -0)
	// solved
	// [0, 1]
	// [0.5, 0]
}

// ExampleInvert_degenerate shows the early stop on a singular matrix.
func ExampleInvert_degenerate() {
	a, _ := matrix.NewFromRows([][]float64{
		{1, 2},
		{2, 4},
	})
	res, _ := gauss.Invert(a)
	fmt.Println(res.Trace.Status(), res.Inverse == nil)
	// Output:
	// degenerate true
}
