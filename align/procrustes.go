// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the align package.
var (
	// ErrEmptyCloud indicates a point cloud without points.
	ErrEmptyCloud = errors.New("align: empty point cloud")

	// ErrLengthMismatch indicates that src and dst do not pair up one-to-one.
	ErrLengthMismatch = errors.New("align: point clouds differ in length")
)

const (
	opProcrustes = "Procrustes"
	opMeanError  = "MeanError"
	opRotation   = "Rotation"
)

// Transform is a rigid motion p ↦ R·p + T.
type Transform struct {
	rot [3][3]float64
	T   r3.Vector
}

// Identity returns the transform that leaves every point unchanged.
func Identity() *Transform {
	return &Transform{rot: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// Apply maps p to R·p + T.
func (tr *Transform) Apply(p r3.Vector) r3.Vector {
	return r3.Vector{
		X: tr.rot[0][0]*p.X + tr.rot[0][1]*p.Y + tr.rot[0][2]*p.Z + tr.T.X,
		Y: tr.rot[1][0]*p.X + tr.rot[1][1]*p.Y + tr.rot[1][2]*p.Z + tr.T.Y,
		Z: tr.rot[2][0]*p.X + tr.rot[2][1]*p.Y + tr.rot[2][2]*p.Z + tr.T.Z,
	}
}

// ApplyAll maps every point of ps; ps is not modified.
func (tr *Transform) ApplyAll(ps []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(ps))
	for i, p := range ps {
		out[i] = tr.Apply(p)
	}

	return out
}

// Rotation returns R as a new 3×3 matrix.
//
// Errors:
//   - matrix.ErrNaNInf for a non-finite entry of R.
func (tr *Transform) Rotation() (*matrix.Dense, error) {
	r, err := matrix.NewDenseFrom(3, 3, flatten(tr.rot))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRotation, err)
	}

	return r, nil
}

// Procrustes returns the rigid transform that best maps src onto dst in the
// least-squares sense. opts tune the rank tolerance of the inner SVD.
//
// Behavior highlights:
//   - A reflection is never returned: det(R) == +1.
//   - Degenerate clouds (a single point, coincident points) are legal; the
//     rotation is then whatever the SVD of the rank-deficient H yields.
//
// Errors:
//   - ErrEmptyCloud, ErrLengthMismatch.
//   - matrix.ErrNaNInf for non-finite coordinates.
//
// Complexity:
//   - Time O(N), Space O(1) beyond the 3×3 SVD.
func Procrustes(src, dst []r3.Vector, opts ...decomp.Option) (*Transform, error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", opProcrustes, ErrEmptyCloud)
	}
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%s: %d vs %d points: %w", opProcrustes, len(src), len(dst), ErrLengthMismatch)
	}

	cs, cd := centroid(src), centroid(dst)

	// H[a][b] = Σ x̃ᵢ[a]·ỹᵢ[b]
	h := make([]float64, 9)
	var x, y [3]float64
	var a, b int
	for i := range src {
		x = coords(src[i].Sub(cs))
		y = coords(dst[i].Sub(cd))
		for a = 0; a < 3; a++ {
			for b = 0; b < 3; b++ {
				h[a*3+b] += x[a] * y[b]
			}
		}
	}
	hm, err := matrix.NewDenseFrom(3, 3, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProcrustes, err)
	}

	svd, err := decomp.Decompose(hm, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProcrustes, err)
	}
	u := svd.U.RowMajor()
	vt := svd.Vt.RowMajor()

	rot := rotationFrom(u, vt)
	if mat.Det(mat.NewDense(3, 3, flatten(rot))) < 0 {
		for b = 0; b < 3; b++ {
			vt[6+b] = -vt[6+b]
		}
		rot = rotationFrom(u, vt)
	}

	tr := &Transform{rot: rot}
	rc := tr.Apply(cs) // T is still zero here
	tr.T = cd.Sub(rc)

	return tr, nil
}

// MeanError returns the mean absolute coordinate residual
// (1/3N)·Σᵢ Σₐ |(R·xᵢ + T − yᵢ)ₐ|.
//
// Errors:
//   - ErrEmptyCloud, ErrLengthMismatch.
func (tr *Transform) MeanError(src, dst []r3.Vector) (float64, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%s: %w", opMeanError, ErrEmptyCloud)
	}
	if len(src) != len(dst) {
		return 0, fmt.Errorf("%s: %w", opMeanError, ErrLengthMismatch)
	}

	var sum float64
	for i := range src {
		d := tr.Apply(src[i]).Sub(dst[i])
		sum += math.Abs(d.X) + math.Abs(d.Y) + math.Abs(d.Z)
	}

	return sum / float64(3*len(src)), nil
}

// rotationFrom computes R = V·Uᵗ from row-major U and Vᵗ:
// R[a][b] = Σₖ Vt[k][a]·U[b][k].
func rotationFrom(u, vt []float64) [3][3]float64 {
	var r [3][3]float64
	var a, b, k int
	for a = 0; a < 3; a++ {
		for b = 0; b < 3; b++ {
			for k = 0; k < 3; k++ {
				r[a][b] += vt[k*3+a] * u[b*3+k]
			}
		}
	}

	return r
}

func centroid(ps []r3.Vector) r3.Vector {
	var c r3.Vector
	for _, p := range ps {
		c = c.Add(p)
	}

	return c.Mul(1 / float64(len(ps)))
}

func coords(p r3.Vector) [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func flatten(r [3][3]float64) []float64 {
	return []float64{r[0][0], r[0][1], r[0][2], r[1][0], r[1][1], r[1][2], r[2][0], r[2][1], r[2][2]}
}
