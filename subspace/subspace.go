// SPDX-License-Identifier: MIT

package subspace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/nullspace"
	"gonum.org/v1/gonum/floats"
)

// ErrAmbientMismatch indicates that the two spanning sets live in spaces of
// different dimension (different row counts).
var ErrAmbientMismatch = errors.New("subspace: spanning sets have different ambient dimensions")

const (
	opIntersect      = "Intersect"
	opIntersectBasis = "IntersectBasis"
)

// IntersectBasis returns an orthonormal basis of span(a) ∩ span(b), where
// the columns of a and b span the two subspaces of ℝᵐ.
//
// Implementation:
//   - Stage 1: orthonormal bases of both spans (same rank tolerance as opts).
//   - Stage 2: complement projectors, stacked vertically (2m×m).
//   - Stage 3: kernel of the stack.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrAmbientMismatch.
//
// Complexity:
//   - Time O(m³ + m²·(kA+kB)), Space O(m²).
func IntersectBasis(a, b matrix.Matrix, opts ...decomp.Option) (decomp.Basis, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: %w", opIntersectBasis, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: %w", opIntersectBasis, err)
	}
	if a.Rows() != b.Rows() {
		return decomp.Basis{}, fmt.Errorf("%s: %d vs %d rows: %w", opIntersectBasis, a.Rows(), b.Rows(), ErrAmbientMismatch)
	}

	projA, err := complementOf(a, opts)
	if err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: A: %w", opIntersectBasis, err)
	}
	projB, err := complementOf(b, opts)
	if err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: B: %w", opIntersectBasis, err)
	}
	stacked, err := matrix.VStack(projA, projB)
	if err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: %w", opIntersectBasis, err)
	}

	kernel, err := nullspace.NullSpace(stacked, opts...)
	if err != nil {
		return decomp.Basis{}, fmt.Errorf("%s: %w", opIntersectBasis, err)
	}

	return kernel, nil
}

// Intersect returns span(a) ∩ span(b) in the tiered matrix form described in
// the package documentation: m×0, an m×1 unit vector, or an m×k basis.
//
// Errors: as IntersectBasis.
func Intersect(a, b matrix.Matrix, opts ...decomp.Option) (*matrix.Dense, error) {
	basis, err := IntersectBasis(a, b, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIntersect, err)
	}

	tol := decomp.ResolveOptions(opts...).Tolerance
	var out *matrix.Dense
	switch basis.Dim() {
	case 0:
		out, err = matrix.NewEmpty(basis.Ambient(), 0)
	case 1:
		var v []float64
		if v, err = basis.Vector(0); err != nil {
			break
		}
		if n := floats.Norm(v, 2); n > tol {
			floats.Scale(1/n, v)
		}
		out, err = matrix.NewColumns(basis.Ambient(), v)
	default:
		out, err = basis.Matrix()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIntersect, err)
	}

	return out, nil
}

// complementOf orthonormalizes the columns of span and returns I − Q·Qᵗ.
func complementOf(span matrix.Matrix, opts []decomp.Option) (*matrix.Dense, error) {
	q, err := decomp.ColumnBasis(span, opts...)
	if err != nil {
		return nil, err
	}

	return q.ComplementProjector()
}
