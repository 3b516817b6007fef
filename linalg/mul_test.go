package linalg_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/stretchr/testify/require"
)

func TestMul_Known(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{5, 6}, {7, 8}})
	c, err := linalg.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{19, 22}, {43, 50}}, c.ToRows())

	// rectangular: 2×3 · 3×1
	a = MustFrom(t, [][]float64{{1, 0, 2}, {-1, 3, 1}})
	b = MustFrom(t, [][]float64{{3}, {2}, {1}})
	c, err = linalg.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5}, {4}}, c.ToRows())
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()

	a := RandomMatrix(t, 5, 5, 3)
	id, err := linalg.NewIdentity(5)
	require.NoError(t, err)

	left, err := linalg.Mul(id, a)
	require.NoError(t, err)
	right, err := linalg.Mul(a, id)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), left.ToRows())
	require.Equal(t, a.ToRows(), right.ToRows())
}

func TestMul_Errors(t *testing.T) {
	t.Parallel()

	_, err := linalg.Mul(MustDense(t, 2, 2), MustDense(t, 3, 1))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Mul(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	var typed *linalg.Dense
	_, err = linalg.Mul(MustDense(t, 1, 1), typed)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)
}

func TestMul_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	a := RandomMatrix(t, 4, 6, 10)
	b := RandomMatrix(t, 6, 3, 11)
	fast, err := linalg.Mul(a, b)
	require.NoError(t, err)
	slow, err := linalg.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	RequireClose(t, fast, slow, 1e-12)
}

func TestMatVecAndResidual(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{2, 1}, {1, 3}})
	y, err := linalg.MatVec(a, []float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 7}, y)

	r, err := linalg.Residual(a, []float64{1, 2}, []float64{4, 6})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1}, r)
	require.Equal(t, 1.0, linalg.NormInf(r))
	require.Equal(t, 0.0, linalg.NormInf(nil))

	_, err = linalg.MatVec(a, []float64{1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	_, err = linalg.Residual(a, []float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}})
	b := MustFrom(t, [][]float64{{1, 2.05}})
	ok, err := linalg.AllClose(a, b, 0.1)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = linalg.AllClose(a, b, 0.01)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = linalg.AllClose(a, MustDense(t, 2, 1), 1)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
