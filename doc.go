// SPDX-License-Identifier: MIT

// Package lvgeom is a small toolkit for rank-tolerant linear algebra and
// the 3D geometry built on top of it.
//
// What is inside?
//
//	matrix/     - row-major Dense storage, validators, core kernels
//	decomp/     - full SVD with numerical rank under a fixed tolerance, orthonormal Basis
//	nullspace/  - kernel basis from the trailing right-singular vectors
//	pinv/       - Moore–Penrose pseudo-inverse and minimum-norm least squares
//	subspace/   - intersection of two spanned subspaces
//	gauss/      - Gauss–Jordan inversion with an operation trace
//	align/      - rigid Procrustes alignment of corresponding point clouds
//	sdf/        - signed-distance primitives and grid sampling over [-1,1]³
//	pointcloud/ - area-weighted uniform sampling of triangle meshes
//
// Numerical policy
//
//	Every threshold is absolute and fixed (1e-10 by default). A singular
//	value at or below the threshold counts as zero; a Gauss–Jordan pivot
//	below it stops elimination with a Degenerate status. Rank deficiency is
//	an outcome, never an error: errors are reserved for nil input, NaN/Inf
//	entries and shape mismatches.
//
// Quick start:
//
//	d, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
//	svd, _ := decomp.Decompose(d)
//	fmt.Println(svd.Rank) // 1
//
//	ns, _ := nullspace.NullSpace(d)
//	fmt.Println(ns.Dim()) // 1
//
// All operations are pure functions of their inputs and are safe to call
// from multiple goroutines.
package lvgeom
