// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage and the small set of
// linear-algebra kernels shared by every solver in lvgeom.
//
// What & Why:
//
//	Solvers (decomp, nullspace, pinv, subspace, gauss, align) exchange plain
//	matrices and vectors. This package owns that data model: a Matrix
//	interface with bounds-checked accessors, a concrete *Dense with a flat
//	buffer, sentinel errors, central validators and the kernels the solvers
//	compose: Mul, Transpose, Sub and NewIdentity build projectors and the
//	pseudo-inverse, VStack and MatVec serve subspace and least squares,
//	AllClose verifies inverses.
//
// Immutability:
//
//	Every kernel allocates a fresh result and never mutates its operands.
//	Only Set mutates, and solvers call it on private working copies.
//
// Shapes:
//
//	NewDense forbids empty shapes. NewEmpty and NewColumns accept zero rows
//	or zero columns so a solver can return a legal m×0 result
//	("no basis vectors"), e.g. the trivial kernel or an origin-only
//	subspace intersection.
//
// Complexity quicksheet:
//   - At/Set/Rows/Cols: O(1); Clone: O(r*c); Mul: O(r*k*c); Transpose: O(r*c).
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf for non-finite v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
