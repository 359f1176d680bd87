// SPDX-License-Identifier: MIT

// Package decomp provides the rank-tolerant singular value decomposition
// shared by every solver in lvgeom, plus the orthonormal Basis value that
// those solvers return.
//
// What & Why:
//
//	Kernels, pseudo-inverses and subspace intersections all reduce to one
//	pattern: factor M = U·Σ·Vᵗ, then split the singular vectors into the
//	"numerically non-zero" head and the "numerically zero" tail under a
//	fixed tolerance. Decompose performs that split once, so every caller
//	agrees on what rank means.
//
// Rank policy:
//
//	Rank = number of singular values strictly greater than the tolerance
//	(DefaultTolerance = 1e-10, override with WithTolerance). The zero
//	matrix has rank 0. Rank never exceeds min(m, n).
//
// Shapes:
//
//	The factorization is FULL: U is m×m and Vt is n×n even when M is
//	rectangular. Inputs with a zero dimension (m×0 or 0×n) are legal and
//	produce identity singular-vector matrices with no singular values.
//
// Errors:
//
//	Only caller bugs are errors: nil input (matrix.ErrNilMatrix), NaN/±Inf
//	entries (matrix.ErrNaNInf), or a factorization that fails to converge
//	(ErrFactorization). Rank deficiency is never an error.
//
// Example:
//
//	svd, err := decomp.Decompose(m)
//	if err != nil {
//	    return err
//	}
//	kernel, _ := svd.RightVectors(svd.Rank, svd.Vt.Rows())
//
// Complexity: O(m²·n + n³) time, O(m² + n²) space, dominated by the SVD.
package decomp
