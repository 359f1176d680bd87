// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/matrix"
)

const (
	opInvert = "Invert"
	opVerify = "Verify"
)

// Invert runs Gauss–Jordan elimination with partial pivoting on [a | I].
//
// Implementation:
//   - Stage 1: validate (nil, square, finite) and copy a into the augmented buffer.
//   - Stage 2: per column: pivot search, optional swap, scale, combine all other rows.
//   - Stage 3: extract the right half and verify a·R ≈ I.
//
// Behavior highlights:
//   - A pivot below PivotTolerance terminates immediately with Degenerate;
//     no further steps are recorded.
//   - Combine steps are recorded for every other row, including those whose
//     factor is zero.
//   - A 0×0 input is Solved with an empty trace and a 0×0 inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf.
//
// Determinism:
//   - Fixed loop orders; ties in the pivot search keep the lowest row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Invert(a matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	src, err := matrix.ToDense(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	res := &Result{}
	n := src.Rows()
	if n == 0 {
		if res.Inverse, err = matrix.NewEmpty(0, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", opInvert, err)
		}
		res.Trace.finish(Solved)

		return res, nil
	}

	w := newAugmented(src)
	var i, j, k int
	var f float64
	for i = 0; i < n; i++ {
		k = w.pivotRow(i)
		if math.Abs(w.at(k, i)) < o.PivotTolerance {
			res.Trace.finish(Degenerate)
			return res, nil
		}
		if k != i {
			w.swap(i, k)
			res.Trace.record(Step{Op: Swap, Row: i, Other: k})
		}

		f = 1 / w.at(i, i)
		w.scale(i, f)
		res.Trace.record(Step{Op: Scale, Row: i, Factor: f})

		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			f = -w.at(j, i)
			w.combine(j, i, f)
			res.Trace.record(Step{Op: Combine, Row: j, Other: i, Factor: f})
		}
	}

	candidate, err := w.right()
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			// overflow during elimination: the candidate cannot be an inverse
			res.Trace.finish(Degenerate)
			return res, nil
		}
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	ok, err := Verify(src, candidate, o.VerifyRTol, o.VerifyATol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	if !ok {
		res.Trace.finish(Degenerate)
		return res, nil
	}
	res.Inverse = candidate
	res.Trace.finish(Solved)

	return res, nil
}

// Verify reports whether a·r equals the identity within allclose(rtol, atol),
// the identity being the reference operand.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
func Verify(a, r matrix.Matrix, rtol, atol float64) (bool, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}
	product, err := matrix.Mul(a, r)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}
	if a.Rows() == 0 {
		return product.Cols() == 0, nil
	}
	id, err := matrix.IdentityLike(a)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}
	ok, err := matrix.AllClose(product, id, rtol, atol)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opVerify, err)
	}

	return ok, nil
}

// augmented is the private n×2n working copy [A | I] in row-major order.
type augmented struct {
	n    int
	data []float64
}

func newAugmented(a *matrix.Dense) *augmented {
	n := a.Rows()
	w := &augmented{n: n, data: make([]float64, 2*n*n)}
	src := a.RowMajor()
	var i int
	for i = 0; i < n; i++ {
		copy(w.data[i*2*n:i*2*n+n], src[i*n:(i+1)*n])
		w.data[i*2*n+n+i] = 1
	}

	return w
}

func (w *augmented) at(i, j int) float64 { return w.data[i*2*w.n+j] }

func (w *augmented) row(i int) []float64 { return w.data[i*2*w.n : (i+1)*2*w.n] }

// pivotRow returns the row k >= col maximizing |w[k,col]|; the first wins ties.
func (w *augmented) pivotRow(col int) int {
	best := col
	for k := col + 1; k < w.n; k++ {
		if math.Abs(w.at(k, col)) > math.Abs(w.at(best, col)) {
			best = k
		}
	}

	return best
}

func (w *augmented) swap(i, k int) {
	ri, rk := w.row(i), w.row(k)
	for c := range ri {
		ri[c], rk[c] = rk[c], ri[c]
	}
}

func (w *augmented) scale(i int, f float64) {
	r := w.row(i)
	for c := range r {
		r[c] *= f
	}
}

// combine performs row[j] += f·row[i].
func (w *augmented) combine(j, i int, f float64) {
	rj, ri := w.row(j), w.row(i)
	for c := range rj {
		rj[c] += ri[c] * f
	}
}

// right extracts the right n×n half; it fails with matrix.ErrNaNInf on overflow.
func (w *augmented) right() (*matrix.Dense, error) {
	n := w.n
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(out[i*n:(i+1)*n], w.data[i*2*n+n:(i+1)*2*n])
	}

	return matrix.NewDenseFrom(n, n, out)
}
