// SPDX-License-Identifier: MIT

package pointcloud

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by the pointcloud package.
var (
	// ErrNoFaces indicates a mesh without triangles.
	ErrNoFaces = errors.New("pointcloud: mesh has no faces")

	// ErrBadFace indicates a face referencing a vertex index out of range.
	ErrBadFace = errors.New("pointcloud: face index out of range")

	// ErrDegenerateMesh indicates a mesh whose total surface area is zero.
	ErrDegenerateMesh = errors.New("pointcloud: mesh has zero surface area")

	// ErrBadCount indicates a negative sample count.
	ErrBadCount = errors.New("pointcloud: sample count must be >= 0")

	// ErrNonFinite indicates a vertex with NaN or ±Inf coordinates.
	ErrNonFinite = errors.New("pointcloud: non-finite vertex")
)

// Areas returns the area of every face.
//
// Errors:
//   - ErrNoFaces, ErrBadFace, ErrNonFinite.
//
// Complexity: O(F).
func Areas(vertices []r3.Vector, faces [][3]int) ([]float64, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	for i, v := range vertices {
		if !finite(v) {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrNonFinite)
		}
	}

	areas := make([]float64, len(faces))
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex %d of %d: %w", i, idx, len(vertices), ErrBadFace)
			}
		}
		v0, v1, v2 := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		areas[i] = 0.5 * v1.Sub(v0).Cross(v2.Sub(v0)).Norm()
	}

	return areas, nil
}

// SurfaceArea returns the total area of the mesh.
//
// Errors: as Areas.
func SurfaceArea(vertices []r3.Vector, faces [][3]int) (float64, error) {
	areas, err := Areas(vertices, faces)
	if err != nil {
		return 0, err
	}

	return floats.Sum(areas), nil
}

// SampleSurface draws n points uniformly from the mesh surface.
//
// Implementation:
//   - Stage 1: per-face areas and their running sum (CDF).
//   - Stage 2: per point: pick the face whose CDF bucket contains U·total,
//     then map (r₁, r₂) to barycentric weights.
//
// Behavior highlights:
//   - Zero-area faces are never selected.
//   - n == 0 returns an empty, non-nil slice once the mesh is validated.
//
// Errors:
//   - ErrBadCount, ErrNoFaces, ErrBadFace, ErrNonFinite, ErrDegenerateMesh.
//
// Complexity:
//   - Time O(F + n·log F), Space O(F + n).
func SampleSurface(vertices []r3.Vector, faces [][3]int, n int, opts ...Option) ([]r3.Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadCount)
	}
	areas, err := Areas(vertices, faces)
	if err != nil {
		return nil, err
	}
	cdf := floats.CumSum(make([]float64, len(areas)), areas)
	total := cdf[len(cdf)-1]
	if total <= 0 {
		return nil, ErrDegenerateMesh
	}

	rng := rngFromSeed(gatherOptions(opts).Seed)
	out := make([]r3.Vector, n)
	var x, r1, r2, s float64
	var fi int
	for i := range out {
		x = rng.Float64() * total
		// first face whose cumulative area exceeds x; skips zero-area faces
		fi = sort.Search(len(cdf), func(k int) bool { return cdf[k] > x })
		if fi == len(cdf) {
			fi = lastPositive(areas)
		}

		r1, r2 = rng.Float64(), rng.Float64()
		s = math.Sqrt(r1)
		f := faces[fi]
		out[i] = vertices[f[0]].Mul(1 - s).
			Add(vertices[f[1]].Mul(s * (1 - r2))).
			Add(vertices[f[2]].Mul(s * r2))
	}

	return out, nil
}

// lastPositive returns the index of the last face with positive area.
// Only reached when rounding puts x at the very top of the CDF.
func lastPositive(areas []float64) int {
	for i := len(areas) - 1; i >= 0; i-- {
		if areas[i] > 0 {
			return i
		}
	}

	return 0
}

func finite(v r3.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
