package linalg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/stretchr/testify/require"
)

func TestGaussianElimination_Known(t *testing.T) {
	t.Parallel()

	x, err := linalg.GaussianElimination(MustFrom(t, [][]float64{{2, 1}, {1, 3}}), []float64{4, 7})
	require.NoError(t, err)
	RequireVecInDelta(t, []float64{1, 2}, x, tol)

	// zero on the diagonal forces a row swap
	x, err = linalg.GaussianElimination(MustFrom(t, [][]float64{{0, 1}, {1, 0}}), []float64{3, 4})
	require.NoError(t, err)
	RequireVecInDelta(t, []float64{4, 3}, x, tol)
}

func TestGaussianElimination_Singular(t *testing.T) {
	t.Parallel()

	_, err := linalg.GaussianElimination(MustFrom(t, [][]float64{{1, 1}, {1, 1}}), []float64{1, 2})
	require.ErrorIs(t, err, linalg.ErrSingular)

	// rows 0 and 3 are identical
	a := MustFrom(t, [][]float64{
		{16, -11, -1, -6, -1},
		{12, 5, 0, -19, -10},
		{-11, -5, 1, -13, -11},
		{16, -11, -1, -6, -1},
		{-8, 15, -2, 17, -11},
	})
	_, err = linalg.GaussianElimination(a, []float64{-3, -3, 17, 10, -13})
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestGaussianElimination_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0, 1, 2}, {3, 0, 1}, {1, 1, 0}}
	a := MustFrom(t, rows)
	b := []float64{1, 2, 3}
	_, err := linalg.GaussianElimination(a, b)
	require.NoError(t, err)
	require.Equal(t, rows, a.ToRows())
	require.Equal(t, []float64{1, 2, 3}, b)
}

func TestGaussianElimination_Dimensions(t *testing.T) {
	t.Parallel()

	_, err := linalg.GaussianElimination(MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), []float64{1, 2})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.GaussianElimination(MustFrom(t, [][]float64{{1, 2}, {3, 4}}), []float64{1, 2, 3})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.GaussianElimination(nil, []float64{1})
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	// shape errors win over singularity
	_, err = linalg.GaussianElimination(MustFrom(t, [][]float64{{0, 0}, {0, 0}}), []float64{1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	require.NotErrorIs(t, err, linalg.ErrSingular)
}

// nanAt reports NaN at (0,0), a value a *Dense would refuse to store.
type nanAt struct{ linalg.Matrix }

func (m nanAt) At(i, j int) (float64, error) {
	if i == 0 && j == 0 {
		return math.NaN(), nil
	}

	return m.Matrix.At(i, j)
}

func TestSolve_RejectsNonFiniteFallbackValues(t *testing.T) {
	t.Parallel()

	a := nanAt{MustFrom(t, [][]float64{{2, 1}, {1, 3}})}
	b := []float64{4, 7}

	x, err := linalg.GaussianElimination(a, b)
	require.ErrorIs(t, err, linalg.ErrNaNInf)
	require.Nil(t, x)

	x, err = linalg.SolveLU(a, b)
	require.ErrorIs(t, err, linalg.ErrNaNInf)
	require.Nil(t, x)

	_, err = linalg.Decompose(a)
	require.ErrorIs(t, err, linalg.ErrNaNInf)
}

func TestGaussianElimination_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	a, b := RandomSystem(t, 7, 21)
	fast, err := linalg.GaussianElimination(a, b)
	require.NoError(t, err)
	slow, err := linalg.GaussianElimination(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}
