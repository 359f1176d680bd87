// SPDX-License-Identifier: MIT

package sdf

import (
	"math"

	"github.com/golang/geo/r3"
)

// Field is a signed distance function.
type Field func(p r3.Vector) float64

// Hydrogen atom geometry.
const (
	ProtonRadius   = 0.1
	OrbitRadius    = 0.35 // major radius of the orbit ring
	OrbitThickness = 0.01 // minor radius of the orbit ring
	ElectronRadius = 0.05
)

// Sphere returns the field of a sphere of radius r centered at c.
func Sphere(c r3.Vector, r float64) Field {
	return func(p r3.Vector) float64 {
		return p.Sub(c).Norm() - r
	}
}

// Torus returns the field of a torus centered at c whose ring of major
// radius bigR lies in the plane z = c.Z, with tube radius r.
func Torus(c r3.Vector, bigR, r float64) Field {
	return func(p r3.Vector) float64 {
		d := p.Sub(c)
		q := math.Hypot(d.X, d.Y) - bigR

		return math.Hypot(q, d.Z) - r
	}
}

// Union returns the pointwise minimum of fs. The union of no fields is
// empty space: +Inf everywhere.
func Union(fs ...Field) Field {
	return func(p r3.Vector) float64 {
		best := math.Inf(1)
		for _, f := range fs {
			if v := f(p); v < best {
				best = v
			}
		}

		return best
	}
}

// HydrogenAtom returns the union of a proton at the origin, an orbit ring
// around it in the xy plane and an electron sitting on the ring at
// (OrbitRadius, 0, 0).
func HydrogenAtom() Field {
	var origin r3.Vector

	return Union(
		Sphere(origin, ProtonRadius),
		Torus(origin, OrbitRadius, OrbitThickness),
		Sphere(r3.Vector{X: OrbitRadius}, ElectronRadius),
	)
}
