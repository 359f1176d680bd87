// SPDX-License-Identifier: MIT

// Package nullspace computes an orthonormal basis of the kernel
// {x : D·x = 0} of a matrix D.
//
// The basis is read off the full SVD: the rows Rank..n-1 of Vᵗ are exactly
// the right-singular vectors whose singular values are numerically zero
// (or missing, when D has fewer rows than columns). Rank classification is
// delegated to decomp, so the kernel dimension is always n − rank(D).
//
// A trivial kernel (full column rank) is returned as a zero-dimensional
// Basis, never as an error.
package nullspace
