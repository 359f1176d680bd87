// SPDX-License-Identifier: MIT

// Package sdf provides signed distance fields and their sampling on a
// regular grid over the cube [-1,1]³.
//
// A Field returns a negative value inside a shape, zero on its surface and a
// positive value outside. Primitives:
//
//   - Sphere(center, r):   ‖p − c‖ − r
//   - Torus(center, R, r): ring in the plane z = c.z around the z axis,
//     √((√(dx²+dy²) − R)² + dz²) − r
//   - Union(fs...):        pointwise minimum
//
// HydrogenAtom composes a proton, an orbit ring and an electron.
//
// Sample evaluates a Field at linspace(-1, 1, res) along each axis with
// 'ij' ordering: the first index walks x, the last walks z.
package sdf
