// SPDX-License-Identifier: MIT
// Package decomp - full SVD with rank classification.

package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"gonum.org/v1/gonum/mat"
)

// SVD holds a full singular value decomposition M = U·Σ·Vt together with
// the rank of M under the tolerance the decomposition was computed with.
//
//   - U is m×m orthogonal; its first Rank columns span the column space of M.
//   - Values are the min(m,n) singular values in descending order.
//   - Vt is n×n orthogonal; its rows Rank..n-1 span the kernel of M.
//
// A decomposition is never mutated by this package after Decompose returns.
type SVD struct {
	U         *matrix.Dense
	Values    []float64
	Vt        *matrix.Dense
	Rank      int
	Tolerance float64
}

// Decompose computes the full SVD of m and classifies its singular values.
//
// Implementation:
//   - Stage 1: reject nil and non-finite input (ValidateFinite).
//   - Stage 2: zero-dimension shortcut (identity singular vectors, no values).
//   - Stage 3: gonum mat.SVD with mat.SVDFull; copy U and Vᵗ back into *matrix.Dense.
//   - Stage 4: Rank = count of Values strictly greater than the tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf for invalid input.
//   - ErrFactorization if the SVD fails to converge.
//
// Determinism:
//   - Identical input yields bit-identical output.
//
// Complexity:
//   - Time O(m²·n + n³), Space O(m² + n²).
func Decompose(m matrix.Matrix, opts ...Option) (*SVD, error) {
	o := gatherOptions(opts)

	if err := matrix.ValidateFinite(m); err != nil {
		return nil, decompErrorf(opDecompose, err)
	}
	d, err := matrix.ToDense(m)
	if err != nil {
		return nil, decompErrorf(opDecompose, err)
	}

	rows, cols := d.Shape()
	if rows == 0 || cols == 0 {
		return emptySVD(rows, cols, o.Tolerance)
	}

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(rows, cols, d.RowMajor()), mat.SVDFull); !ok {
		return nil, decompErrorf(opDecompose, ErrFactorization)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	res := &SVD{Values: svd.Values(nil), Tolerance: o.Tolerance}
	if res.U, err = fromGonum(&u, false); err != nil {
		return nil, decompErrorf(opDecompose, err)
	}
	if res.Vt, err = fromGonum(&v, true); err != nil {
		return nil, decompErrorf(opDecompose, err)
	}
	res.Rank = countAbove(res.Values, o.Tolerance)

	return res, nil
}

// ColumnBasis returns an orthonormal basis of the column space of m, i.e. the
// first Rank left-singular vectors. The columns of m need not be independent
// or normalized; this is how a spanning set is orthonormalized.
//
// Errors: as Decompose.
func ColumnBasis(m matrix.Matrix, opts ...Option) (Basis, error) {
	svd, err := Decompose(m, opts...)
	if err != nil {
		return Basis{}, decompErrorf(opColumnBasis, err)
	}

	return svd.LeftVectors(0, svd.Rank)
}

// Shape returns the (rows, cols) of the decomposed matrix.
func (s *SVD) Shape() (rows, cols int) { return s.U.Rows(), s.Vt.Rows() }

// Nullity returns cols − Rank, the dimension of the kernel.
func (s *SVD) Nullity() int { return s.Vt.Rows() - s.Rank }

// Sigma materializes the m×n diagonal matrix Σ.
func (s *SVD) Sigma() (*matrix.Dense, error) {
	rows, cols := s.Shape()
	out, err := matrix.NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, v := range s.Values {
		if err = out.Set(i, i, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// LeftVectors returns columns from..to-1 of U as a Basis over ℝᵐ.
//
// Errors:
//   - matrix.ErrOutOfRange unless 0 <= from <= to <= m.
func (s *SVD) LeftVectors(from, to int) (Basis, error) {
	m := s.U.Rows()
	if from < 0 || to < from || to > m {
		return Basis{}, decompErrorf(opLeftVectors, fmt.Errorf("[%d,%d) of %d: %w", from, to, m, matrix.ErrOutOfRange))
	}

	vecs := make([][]float64, 0, to-from)
	for j := from; j < to; j++ {
		col, err := s.U.Col(j)
		if err != nil {
			return Basis{}, decompErrorf(opLeftVectors, err)
		}
		vecs = append(vecs, col)
	}

	return Basis{ambient: m, vecs: vecs}, nil
}

// RightVectors returns rows from..to-1 of Vt as a Basis over ℝⁿ.
//
// Errors:
//   - matrix.ErrOutOfRange unless 0 <= from <= to <= n.
func (s *SVD) RightVectors(from, to int) (Basis, error) {
	n := s.Vt.Rows()
	if from < 0 || to < from || to > n {
		return Basis{}, decompErrorf(opRightVectors, fmt.Errorf("[%d,%d) of %d: %w", from, to, n, matrix.ErrOutOfRange))
	}

	vecs := make([][]float64, 0, to-from)
	for i := from; i < to; i++ {
		row, err := s.Vt.Row(i)
		if err != nil {
			return Basis{}, decompErrorf(opRightVectors, err)
		}
		vecs = append(vecs, row)
	}

	return Basis{ambient: n, vecs: vecs}, nil
}

// emptySVD handles m×0 and 0×n inputs, which gonum cannot allocate.
func emptySVD(rows, cols int, tol float64) (*SVD, error) {
	u, err := identityOrEmpty(rows)
	if err != nil {
		return nil, decompErrorf(opDecompose, err)
	}
	vt, err := identityOrEmpty(cols)
	if err != nil {
		return nil, decompErrorf(opDecompose, err)
	}

	return &SVD{U: u, Values: []float64{}, Vt: vt, Rank: 0, Tolerance: tol}, nil
}

func identityOrEmpty(n int) (*matrix.Dense, error) {
	if n == 0 {
		return matrix.NewEmpty(0, 0)
	}

	return matrix.NewIdentity(n)
}

// fromGonum copies g (or gᵗ when transpose is set) into a new *matrix.Dense.
// A non-finite value here means the factorization broke down.
func fromGonum(g mat.Matrix, transpose bool) (*matrix.Dense, error) {
	r, c := g.Dims()
	if transpose {
		r, c = c, r
	}
	out, err := matrix.NewEmpty(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if transpose {
				v = g.At(j, i)
			} else {
				v = g.At(i, j)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFactorization, err)
			}
		}
	}

	return out, nil
}

// countAbove returns the number of values strictly greater than tol.
func countAbove(values []float64, tol float64) int {
	var n int
	for _, v := range values {
		if v > tol {
			n++
		}
	}

	return n
}
