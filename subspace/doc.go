// SPDX-License-Identifier: MIT

// Package subspace intersects two linear subspaces of a common ℝᵐ, each
// given by a (not necessarily independent or normalized) spanning set
// stored as the columns of a matrix.
//
// Algorithm:
//
//  1. Orthonormalize each spanning set (decomp.ColumnBasis).
//  2. Form the complement projectors P⊥ = I − Q·Qᵗ.
//  3. Stack them into a 2m×m matrix [P⊥A; P⊥B].
//  4. A vector lies in both subspaces iff both projectors annihilate it, so
//     the intersection is the kernel of the stack (nullspace.NullSpace).
//
// Return shapes:
//
//	Intersect keeps a tiered contract, chosen by the intersection dimension:
//	  - 0  → an m×0 matrix (only the origin is shared);
//	  - 1  → an m×1 matrix holding a unit vector (sign unconstrained);
//	  - ≥2 → the m×k orthonormal basis.
//	IntersectBasis returns the same result as a decomp.Basis, whose Dim()
//	carries the dimension explicitly.
package subspace
