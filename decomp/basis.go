// SPDX-License-Identifier: MIT
// Package decomp - orthonormal basis value type.

package decomp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/matrix"
	"gonum.org/v1/gonum/floats"
)

// Basis is an ordered set of orthonormal vectors of a fixed ambient dimension.
// Bases are produced by Decompose-derived operations and are immutable:
// every accessor returns a copy.
//
// The zero-dimensional Basis (Dim() == 0) is a legal value meaning
// "only the origin", e.g. a trivial kernel.
type Basis struct {
	ambient int
	vecs    [][]float64
}

// Dim returns the number of basis vectors.
func (b Basis) Dim() int { return len(b.vecs) }

// Ambient returns the length of every basis vector.
func (b Basis) Ambient() int { return b.ambient }

// Vector returns a copy of the i-th basis vector.
//
// Errors:
//   - matrix.ErrOutOfRange for i outside [0, Dim()).
func (b Basis) Vector(i int) ([]float64, error) {
	if i < 0 || i >= len(b.vecs) {
		return nil, decompErrorf(opBasis, fmt.Errorf("vector %d of %d: %w", i, len(b.vecs), matrix.ErrOutOfRange))
	}
	out := make([]float64, b.ambient)
	copy(out, b.vecs[i])

	return out, nil
}

// Matrix returns the basis as an ambient×dim matrix whose columns are the
// basis vectors. A zero-dimensional basis yields an ambient×0 matrix.
func (b Basis) Matrix() (*matrix.Dense, error) {
	return matrix.NewColumns(b.ambient, b.vecs...)
}

// Rows returns the basis as a dim×ambient matrix whose rows are the basis vectors.
func (b Basis) Rows() (*matrix.Dense, error) {
	out, err := matrix.NewEmpty(len(b.vecs), b.ambient)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(b.vecs); i++ {
		for j = 0; j < b.ambient; j++ {
			if err = out.Set(i, j, b.vecs[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Project returns the orthogonal projection Σ (vᵢ·x) vᵢ of x onto the span.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(x) != Ambient().
//   - matrix.ErrNaNInf for non-finite x.
func (b Basis) Project(x []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(x, b.ambient); err != nil {
		return nil, decompErrorf(opBasis, err)
	}
	if err := matrix.ValidateFiniteVec(x); err != nil {
		return nil, decompErrorf(opBasis, err)
	}

	p := make([]float64, b.ambient)
	for _, v := range b.vecs {
		floats.AddScaled(p, floats.Dot(v, x), v)
	}

	return p, nil
}

// Contains reports whether x lies in the span, i.e. whether the residual of
// its projection is at most tol·max(1, ‖x‖).
//
// Errors: as Project.
func (b Basis) Contains(x []float64, tol float64) (bool, error) {
	p, err := b.Project(x)
	if err != nil {
		return false, err
	}
	if b.ambient == 0 {
		return true, nil
	}

	return floats.Distance(x, p, 2) <= tol*math.Max(1, floats.Norm(x, 2)), nil
}

// ComplementProjector returns P⊥ = I − Q·Qᵗ, the orthogonal projector onto
// the orthogonal complement of the span (ambient×ambient), where Q is
// Matrix(). A zero-dimensional basis yields the identity.
//
// Complexity: O(dim·ambient²).
func (b Basis) ComplementProjector() (*matrix.Dense, error) {
	n := b.ambient
	if n == 0 {
		return matrix.NewEmpty(0, 0)
	}

	q, err := b.Matrix()
	if err != nil {
		return nil, decompErrorf(opBasis, err)
	}
	qt, err := matrix.Transpose(q)
	if err != nil {
		return nil, decompErrorf(opBasis, err)
	}
	qqt, err := matrix.Mul(q, qt)
	if err != nil {
		return nil, decompErrorf(opBasis, err)
	}
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, decompErrorf(opBasis, err)
	}
	p, err := matrix.Sub(id, qqt)
	if err != nil {
		return nil, decompErrorf(opBasis, err)
	}

	return p, nil
}
