// SPDX-License-Identifier: MIT

// Package gauss inverts square matrices by Gauss–Jordan elimination with
// partial pivoting and records every elementary row operation it performs.
//
// Algorithm (n×n input A, augmented working copy [A | I]):
//
//	for each pivot column i = 0..n-1:
//	  1. pick the row k ≥ i with the largest |A[k,i]| (first one on ties);
//	     if that magnitude is below the pivot tolerance, stop: Degenerate;
//	  2. if k ≠ i, swap rows i and k                 → Step{Swap, i, k, 0}
//	  3. scale row i by f = 1/pivot                   → Step{Scale, i, 0, f}
//	  4. for every j ≠ i, row j += f·row i with
//	     f = −A[j,i]                                  → Step{Combine, j, i, f}
//	finally verify A·R ≈ I (allclose, rtol = atol = 1e-10 by default):
//	Solved with R, or Degenerate without an inverse.
//
// Degeneracy is a status, not an error. Errors are reserved for caller bugs:
// nil (matrix.ErrNilMatrix), non-square (matrix.ErrNonSquare) or non-finite
// (matrix.ErrNaNInf) input.
//
// The input is never mutated; elimination runs on a private copy.
//
// Complexity: O(n³) time, O(n²) working space, O(n²) trace steps.
package gauss
