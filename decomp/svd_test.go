// SPDX-License-Identifier: MIT
package decomp_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvgeom/decomp"
	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose_Reconstructs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rows [][]float64
		rank int
	}{
		{"square full rank", [][]float64{{2, 1}, {1, 3}}, 2},
		{"tall rank one", [][]float64{{1, 2}, {2, 4}, {3, 6}}, 1},
		{"wide full row rank", [][]float64{{1, 0, 1}, {0, 1, 1}}, 2},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, 0},
		{"single value", [][]float64{{-5}}, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustRows(t, tc.rows)
			svd, err := decomp.Decompose(m)
			require.NoError(t, err)

			rows, cols := svd.Shape()
			require.Equal(t, m.Rows(), rows)
			require.Equal(t, m.Cols(), cols)
			require.Equal(t, tc.rank, svd.Rank)
			require.Equal(t, cols-tc.rank, svd.Nullity())
			require.Len(t, svd.Values, min(rows, cols))
			require.Equal(t, decomp.DefaultTolerance, svd.Tolerance)
			for i := 1; i < len(svd.Values); i++ {
				assert.GreaterOrEqual(t, svd.Values[i-1], svd.Values[i])
			}

			requireOrthogonal(t, svd.U)
			requireOrthogonal(t, svd.Vt)

			sigma, err := svd.Sigma()
			require.NoError(t, err)
			requireClose(t, m, mustMul(t, mustMul(t, svd.U, sigma), svd.Vt), tol8)
		})
	}
}

func TestDecompose_Tolerance(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 0}, {0, 1e-8}})

	svd, err := decomp.Decompose(m)
	require.NoError(t, err)
	require.Equal(t, 2, svd.Rank)

	svd, err = decomp.Decompose(m, decomp.WithTolerance(1e-6))
	require.NoError(t, err)
	require.Equal(t, 1, svd.Rank)

	// strict comparison: a value equal to the tolerance counts as zero
	svd, err = decomp.Decompose(m, decomp.WithTolerance(1))
	require.NoError(t, err)
	require.Equal(t, 0, svd.Rank)
}

func TestResolveOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, decomp.DefaultTolerance, decomp.ResolveOptions().Tolerance)
	require.Equal(t, 1e-4, decomp.ResolveOptions(decomp.WithTolerance(1e-4)).Tolerance)
	// later options win
	got := decomp.ResolveOptions(decomp.WithTolerance(1e-4), decomp.WithTolerance(0))
	require.Equal(t, 0.0, got.Tolerance)
}

func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	for _, bad := range []float64{-1, nanValue(), infValue()} {
		bad := bad
		require.Panics(t, func() {
			_, _ = decomp.Decompose(mustRows(t, [][]float64{{1}}), decomp.WithTolerance(bad))
		})
	}
}

func TestDecompose_ZeroColumns(t *testing.T) {
	t.Parallel()

	empty, err := matrix.NewEmpty(3, 0)
	require.NoError(t, err)

	svd, err := decomp.Decompose(empty)
	require.NoError(t, err)
	require.Equal(t, 0, svd.Rank)
	require.Empty(t, svd.Values)
	require.Equal(t, 3, svd.U.Rows())
	require.Equal(t, 0, svd.Vt.Rows())

	basis, err := decomp.ColumnBasis(empty)
	require.NoError(t, err)
	require.Equal(t, 0, basis.Dim())
	require.Equal(t, 3, basis.Ambient())
}

func TestDecompose_Errors(t *testing.T) {
	t.Parallel()

	_, err := decomp.Decompose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = decomp.Decompose(nanAt{mustRows(t, [][]float64{{1, 2}})})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = decomp.ColumnBasis(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSingularVectorRanges(t *testing.T) {
	t.Parallel()

	svd, err := decomp.Decompose(mustRows(t, [][]float64{{1, 2}, {2, 4}, {3, 6}}))
	require.NoError(t, err)

	left, err := svd.LeftVectors(0, svd.Rank)
	require.NoError(t, err)
	require.Equal(t, 1, left.Dim())
	require.Equal(t, 3, left.Ambient())

	kernel, err := svd.RightVectors(svd.Rank, 2)
	require.NoError(t, err)
	require.Equal(t, 1, kernel.Dim())
	require.Equal(t, 2, kernel.Ambient())

	_, err = svd.LeftVectors(2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = svd.RightVectors(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = svd.RightVectors(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDecompose_Idempotent checks bit-identical output across repeated and
// concurrent calls on shared read-only input.
func TestDecompose_Idempotent(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{4, 1, 2}, {1, 0, 3}, {2, 3, 1}, {0, 1, 1}})
	ref, err := decomp.Decompose(m)
	require.NoError(t, err)

	const workers = 8
	results := make([]*decomp.SVD, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = decomp.Decompose(m)
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		require.NoError(t, errs[w], "worker %d", w)
		require.Equal(t, ref.Values, got.Values)
		require.Equal(t, ref.U.RowMajor(), got.U.RowMajor())
		require.Equal(t, ref.Vt.RowMajor(), got.Vt.RowMajor())
	}
}
