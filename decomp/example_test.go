// SPDX-License-Identifier: MIT
package decomp_test

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
)

// ExampleDecompose classifies the singular values of a rank-one matrix.
func ExampleDecompose() {
	m, _ := matrix.NewFromRows([][]float64{
		{1, 2},
		{2, 4},
		{3, 6},
	})
	svd, err := decomp.Decompose(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("rank=%d nullity=%d sigma0=%.4f\n", svd.Rank, svd.Nullity(), svd.Values[0])
	// Output:
	// rank=1 nullity=1 sigma0=8.3666
}

// ExampleColumnBasis orthonormalizes a redundant spanning set.
func ExampleColumnBasis() {
	span, _ := matrix.NewColumns(3,
		[]float64{1, 0, 0},
		[]float64{2, 0, 0},
		[]float64{0, 0, 1},
	)
	b, _ := decomp.ColumnBasis(span)
	fmt.Println(b.Dim(), b.Ambient())
	// Output:
	// 2 3
}
