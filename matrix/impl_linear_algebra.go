// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, matrix multiplication, transpose,
// matrix-vector products and vertical stacking. All kernels
// perform strict fail-fast validation and return a freshly allocated *Dense.
//
// Notes:
//   - Kernels run on the flat row-major buffer. Non-*Dense inputs are
//     materialized once through At (asDense), so every kernel has one code path.
//   - Errors are wrapped with the op* tag via matrixErrorf.

package matrix

import (
	"fmt"
)

// zeroSum is the initial value for dot-product accumulators.
const zeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opVStack    = "VStack"
	opAllClose  = "AllClose"
	opIdentity  = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it already is a *Dense, otherwise a Dense
// copy read through At in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix for nil input; any error surfaced by m.At.
//
// Complexity:
//   - O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// ToDense returns a *Dense holding the same values as m. A *Dense input is
// returned as a clone, so the result is always independent of m.
//
// Errors:
//   - ErrNilMatrix; errors surfaced by m.At.
func ToDense(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if d == m {
		return d.Clone().(*Dense), nil
	}

	return d, nil
}

// Sub computes the element-wise difference C = A − B.
// Operands are not mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res, err := NewEmpty(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero inner dimension (r×0 times 0×c) yields an r×c zero matrix.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewEmpty(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := NewEmpty(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < d.r; i++ {
		acc = zeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}

// VStack stacks matrices vertically: the result has the shared column count
// and the summed row count, block i occupying the rows of ms[i] in order.
//
// Errors:
//   - ErrInvalidDimensions when ms is empty.
//   - ErrNilMatrix for a nil block; ErrDimensionMismatch when column counts differ.
//
// Complexity:
//   - Time O(R*c), Space O(R*c) with R = Σ rows.
func VStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opVStack, ErrInvalidDimensions)
	}

	blocks := make([]*Dense, len(ms))
	var total int
	for i, m := range ms {
		d, err := asDense(m)
		if err != nil {
			return nil, matrixErrorf(opVStack, fmt.Errorf("block %d: %w", i, err))
		}
		if d.c != ms[0].Cols() {
			return nil, matrixErrorf(opVStack, fmt.Errorf("block %d: %w", i, ErrDimensionMismatch))
		}
		blocks[i] = d
		total += d.r
	}

	res, err := NewEmpty(total, blocks[0].c)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	off := 0
	for _, d := range blocks {
		off += copy(res.data[off:], d.data)
	}

	return res, nil
}
