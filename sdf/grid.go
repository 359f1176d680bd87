// SPDX-License-Identifier: MIT

package sdf

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
)

// Bounds of the sampled cube along every axis.
const (
	GridMin = -1.0
	GridMax = 1.0
)

var (
	// ErrBadResolution indicates a grid resolution below 1.
	ErrBadResolution = errors.New("sdf: resolution must be >= 1")

	// ErrNilField indicates a nil Field.
	ErrNilField = errors.New("sdf: nil field")

	// ErrOutOfRange indicates a grid index outside [0, Resolution()).
	ErrOutOfRange = errors.New("sdf: grid index out of range")
)

// Grid holds res³ field samples. Index (i, j, k) is the point
// (Coord(i), Coord(j), Coord(k)); storage is k-fastest.
type Grid struct {
	res    int
	coords []float64
	values []float64
}

// Sample evaluates f on the res×res×res grid over [GridMin, GridMax]³.
// A resolution of 1 samples the single coordinate GridMin.
//
// Errors:
//   - ErrNilField, ErrBadResolution.
//
// Complexity:
//   - res³ evaluations of f, Space O(res³).
func Sample(f Field, res int) (*Grid, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if res < 1 {
		return nil, fmt.Errorf("resolution %d: %w", res, ErrBadResolution)
	}

	coords := make([]float64, res)
	if res == 1 {
		coords[0] = GridMin
	} else {
		floats.Span(coords, GridMin, GridMax)
	}

	g := &Grid{res: res, coords: coords, values: make([]float64, res*res*res)}
	var i, j, k int
	for i = 0; i < res; i++ {
		for j = 0; j < res; j++ {
			for k = 0; k < res; k++ {
				g.values[g.offset(i, j, k)] = f(r3.Vector{X: coords[i], Y: coords[j], Z: coords[k]})
			}
		}
	}

	return g, nil
}

// Resolution returns the number of samples per axis.
func (g *Grid) Resolution() int { return g.res }

// Coord returns the coordinate of index i along any axis.
func (g *Grid) Coord(i int) (float64, error) {
	if i < 0 || i >= g.res {
		return 0, fmt.Errorf("coord %d: %w", i, ErrOutOfRange)
	}

	return g.coords[i], nil
}

// At returns the field value at grid index (i, j, k).
func (g *Grid) At(i, j, k int) (float64, error) {
	if !g.valid(i, j, k) {
		return 0, fmt.Errorf("(%d,%d,%d): %w", i, j, k, ErrOutOfRange)
	}

	return g.values[g.offset(i, j, k)], nil
}

// Inside reports whether the sample at (i, j, k) is strictly inside the
// shape; indices out of range are outside.
func (g *Grid) Inside(i, j, k int) bool {
	return g.valid(i, j, k) && g.values[g.offset(i, j, k)] < 0
}

// Occupied returns the number of samples strictly inside the shape.
func (g *Grid) Occupied() int {
	var n int
	for _, v := range g.values {
		if v < 0 {
			n++
		}
	}

	return n
}

// Values returns a copy of all samples in (i, j, k) row-major order.
func (g *Grid) Values() []float64 {
	out := make([]float64, len(g.values))
	copy(out, g.values)

	return out
}

func (g *Grid) valid(i, j, k int) bool {
	return i >= 0 && i < g.res && j >= 0 && j < g.res && k >= 0 && k < g.res
}

func (g *Grid) offset(i, j, k int) int { return (i*g.res+j)*g.res + k }
