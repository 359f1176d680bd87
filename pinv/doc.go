// SPDX-License-Identifier: MIT

// Package pinv computes the Moore–Penrose pseudo-inverse D⁺ = V·Σ⁺·Uᵗ and
// the minimum-norm least-squares solution x = D⁺·b of D·x = b.
//
// Σ⁺ inverts only the singular values above the rank tolerance and zeroes
// the rest, so rank-deficient, rectangular and even all-zero matrices have a
// well-defined result:
//
//   - full-rank square D: D⁺ = D⁻¹ and x is the exact solution;
//   - singular or rectangular D: x minimizes ‖D·x − b‖ and, among all such
//     minimizers, has the smallest ‖x‖.
//
// Errors are reserved for caller bugs (nil or non-finite input, len(b) ≠ m).
package pinv
