// SPDX-License-Identifier: MIT

package nullspace

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
)

const opNullSpace = "NullSpace"

// NullSpace returns an orthonormal basis of the kernel of d over ℝⁿ.
//
// Implementation:
//   - Stage 1: full SVD of d (decomp.Decompose, same options).
//   - Stage 2: rows Rank..n-1 of Vt form the basis.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, decomp.ErrFactorization.
//
// Complexity:
//   - Time O(m²·n + n³), Space O(m² + n²).
func NullSpace(d matrix.Matrix, opts ...decomp.Option) (decomp.Basis, error) {
	svd, err := decomp.Decompose(d, opts...)
	if err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	_, n := svd.Shape()

	return svd.RightVectors(svd.Rank, n)
}

// Dimension returns n − rank(d) without materializing the basis vectors.
//
// Errors: as NullSpace.
func Dimension(d matrix.Matrix, opts ...decomp.Option) (int, error) {
	svd, err := decomp.Decompose(d, opts...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opNullSpace, err)
	}

	return svd.Nullity(), nil
}
