package linalg_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/stretchr/testify/require"
)

func TestPermute(t *testing.T) {
	t.Parallel()

	b := []float64{10, 20, 30}
	pb, err := linalg.Permute(b, linalg.Permutation{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{30, 10, 20}, pb)
	require.Equal(t, []float64{10, 20, 30}, b, "input must not be mutated")

	id, err := linalg.Permute(b, linalg.IdentityPermutation(3))
	require.NoError(t, err)
	require.Equal(t, b, id)
}

func TestPermute_Errors(t *testing.T) {
	t.Parallel()

	_, err := linalg.Permute([]float64{1, 2}, linalg.Permutation{0, 1, 2})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = linalg.Permute(nil, linalg.Permutation{0})
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	_, err = linalg.Permute([]float64{1, 2}, linalg.Permutation{1, 1})
	require.ErrorIs(t, err, linalg.ErrBadPermutation)

	_, err = linalg.Permute([]float64{1, 2}, linalg.Permutation{0, 2})
	require.ErrorIs(t, err, linalg.ErrBadPermutation)
}

func TestPermutation_SignAndMatrix(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, linalg.IdentityPermutation(4).Sign())
	require.Equal(t, -1, linalg.Permutation{1, 0, 2}.Sign())
	require.Equal(t, 1, linalg.Permutation{1, 2, 0}.Sign())

	P, err := linalg.Permutation{2, 0, 1}.Matrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, P.ToRows())

	_, err = linalg.Permutation{0, 0}.Matrix()
	require.ErrorIs(t, err, linalg.ErrBadPermutation)
}

func TestPermuteRows_MatchesPermutationMatrix(t *testing.T) {
	t.Parallel()

	a := RandomMatrix(t, 4, 3, 7)
	p := linalg.Permutation{3, 1, 0, 2}

	got, err := linalg.PermuteRows(a, p)
	require.NoError(t, err)

	P, err := p.Matrix()
	require.NoError(t, err)
	want, err := linalg.Mul(P, a)
	require.NoError(t, err)
	RequireClose(t, want, got, 0)

	_, err = linalg.PermuteRows(a, linalg.Permutation{0, 1})
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}
