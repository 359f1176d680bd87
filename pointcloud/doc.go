// SPDX-License-Identifier: MIT

// Package pointcloud samples points uniformly from the surface of a
// triangle mesh.
//
// Each sample first picks a triangle with probability proportional to its
// area, then draws barycentric weights
//
//	u = 1 − √r₁,  v = √r₁·(1 − r₂),  w = √r₁·r₂   with r₁, r₂ ~ U[0,1)
//
// and returns u·v₀ + v·v₁ + w·v₂, which is uniform over the triangle.
//
// Determinism:
//
//	All randomness comes from a math/rand source seeded by WithSeed.
//	Seed 0 maps to a fixed default seed, so calls without options are
//	reproducible too. A fresh source is created per call; concurrent calls
//	never share RNG state.
package pointcloud
