// SPDX-License-Identifier: MIT

// Package align estimates the rigid transform between two corresponding
// point clouds with the orthogonal Procrustes (Kabsch) method.
//
// Given src = {xᵢ} and dst = {yᵢ} with xᵢ ↔ yᵢ, Procrustes finds the
// rotation R (det R = +1) and translation t minimizing Σ‖R·xᵢ + t − yᵢ‖²:
//
//  1. center both clouds on their centroids c_src, c_dst;
//  2. cross-covariance H = Σ x̃ᵢ·ỹᵢᵗ (3×3);
//  3. H = U·Σ·Vᵗ (decomp.Decompose), R = V·Uᵗ;
//  4. if det R < 0 the solution is a reflection: negate the last row of Vᵗ
//     and recompute R;
//  5. t = c_dst − R·c_src.
//
// Points are github.com/golang/geo/r3 vectors.
package align
