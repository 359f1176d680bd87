// SPDX-License-Identifier: MIT

package pinv

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
)

const (
	opPseudoInverse = "PseudoInverse"
	opSolve         = "Solve"
)

// PseudoInverse returns the n×m pseudo-inverse of the m×n matrix d.
//
// Implementation:
//   - Stage 1: full SVD (decomp.Decompose with opts).
//   - Stage 2: Σ⁺ from Σᵗ, inverting only σₖ > tolerance.
//   - Stage 3: D⁺ = V·Σ⁺·Uᵗ via matrix.Transpose and matrix.Mul.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, decomp.ErrFactorization.
//
// Complexity:
//   - Time O(m²·n + n²·m + n³ + m³), Space O(m² + n² + m·n).
func PseudoInverse(d matrix.Matrix, opts ...decomp.Option) (*matrix.Dense, error) {
	svd, err := decomp.Decompose(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPseudoInverse, err)
	}
	out, err := fromSVD(svd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPseudoInverse, err)
	}

	return out, nil
}

// Solve returns x = D⁺·b together with D⁺.
//
// Errors:
//   - matrix.ErrDimensionMismatch when len(b) != d.Rows().
//   - matrix.ErrNaNInf for non-finite b; otherwise as PseudoInverse.
func Solve(d matrix.Matrix, b []float64, opts ...decomp.Option) (x []float64, dPinv *matrix.Dense, err error) {
	if err = matrix.ValidateNotNil(d); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err = matrix.ValidateVecLen(b, d.Rows()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	if dPinv, err = PseudoInverse(d, opts...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if x, err = matrix.MatVec(dPinv, b); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, dPinv, nil
}

// fromSVD assembles V·Σ⁺·Uᵗ. Σ⁺ is Σᵗ with every singular value above the
// tolerance inverted and the rest set to zero.
func fromSVD(svd *decomp.SVD) (*matrix.Dense, error) {
	sigma, err := svd.Sigma()
	if err != nil {
		return nil, err
	}
	sigmaPlus, err := matrix.Transpose(sigma)
	if err != nil {
		return nil, err
	}
	var inv float64
	for k, v := range svd.Values {
		inv = 0
		if v > svd.Tolerance {
			inv = 1 / v
		}
		if err = sigmaPlus.Set(k, k, inv); err != nil {
			return nil, err
		}
	}

	v, err := matrix.Transpose(svd.Vt)
	if err != nil {
		return nil, err
	}
	ut, err := matrix.Transpose(svd.U)
	if err != nil {
		return nil, err
	}
	vs, err := matrix.Mul(v, sigmaPlus)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(vs, ut)
}
