// SPDX-License-Identifier: MIT
package decomp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/stretchr/testify/require"
)

// tol8 is the property tolerance used for reconstruction checks.
const tol8 = 1e-8

// nanAt wraps a Matrix and reports NaN at (0,0), bypassing Dense.Set's policy.
type nanAt struct{ matrix.Matrix }

func (n nanAt) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.NaN(), nil
	}

	return n.Matrix.At(i, j)
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustMul(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

func mustT(t testing.TB, a matrix.Matrix) *matrix.Dense {
	t.Helper()
	at, err := matrix.Transpose(a)
	require.NoError(t, err)

	return at
}

func requireClose(t testing.TB, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "got\n%v\nwant\n%v", got, want)
}

func requireOrthogonal(t testing.TB, q *matrix.Dense) {
	t.Helper()
	n := q.Rows()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	requireClose(t, id, mustMul(t, q, mustT(t, q)), tol8)
}
