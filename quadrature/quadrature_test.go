package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/quadrature"
	"github.com/stretchr/testify/require"
)

// monomial returns x ↦ xᵏ.
func monomial(k int) quadrature.Func {
	return func(x float64) float64 { return math.Pow(x, float64(k)) }
}

// TestGaussLegendre_ExactForLowDegree checks that an n-point rule integrates
// every monomial of degree ≤ 2n−1 exactly on a non-symmetric interval.
func TestGaussLegendre_ExactForLowDegree(t *testing.T) {
	t.Parallel()

	const a, b = -0.5, 2.0
	for n := quadrature.MinPoints; n <= quadrature.MaxPoints; n++ {
		for k := 0; k <= 2*n-1; k++ {
			want := (math.Pow(b, float64(k+1)) - math.Pow(a, float64(k+1))) / float64(k+1)
			got, err := quadrature.GaussLegendre(monomial(k), a, b, n)
			require.NoError(t, err)
			require.InDeltaf(t, want, got, 1e-12*math.Max(1, math.Abs(want)), "n=%d k=%d", n, k)
		}
	}
}

func TestGaussLegendre_WeightsSumToTwo(t *testing.T) {
	t.Parallel()

	for n := quadrature.MinPoints; n <= quadrature.MaxPoints; n++ {
		x, w, err := quadrature.Rule(n)
		require.NoError(t, err)
		require.Len(t, x, n)
		sum := 0.0
		for i := range w {
			sum += w[i]
			// nodes are symmetric about 0
			require.InDelta(t, -x[i], x[n-1-i], 1e-15)
		}
		require.InDelta(t, 2.0, sum, 1e-14)
	}
}

func TestGaussLegendre_Orientation(t *testing.T) {
	t.Parallel()

	fwd, err := quadrature.GaussLegendre(math.Exp, 0, 1, 5)
	require.NoError(t, err)
	rev, err := quadrature.GaussLegendre(math.Exp, 1, 0, 5)
	require.NoError(t, err)
	require.InDelta(t, -fwd, rev, 1e-15)

	zero, err := quadrature.GaussLegendre(math.Exp, 3, 3, 5)
	require.NoError(t, err)
	require.Equal(t, 0.0, zero)
}

func TestComposite_Converges(t *testing.T) {
	t.Parallel()

	v, err := quadrature.Composite(math.Sin, 0, math.Pi, quadrature.DefaultPoints, quadrature.DefaultPartitions)
	require.NoError(t, err)
	require.InDelta(t, 2.0, v, 1e-13)

	// one partition equals the plain rule
	single, err := quadrature.Composite(math.Cos, 0, 1, 3, 1)
	require.NoError(t, err)
	plain, err := quadrature.GaussLegendre(math.Cos, 0, 1, 3)
	require.NoError(t, err)
	require.Equal(t, plain, single)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, 0, 1, 7} {
		_, err := quadrature.GaussLegendre(math.Sin, 0, 1, n)
		require.ErrorIs(t, err, quadrature.ErrPoints)
		_, err = quadrature.Composite(math.Sin, 0, 1, n, 10)
		require.ErrorIs(t, err, quadrature.ErrPoints)
		_, _, err = quadrature.Rule(n)
		require.ErrorIs(t, err, quadrature.ErrPoints)
	}

	_, err := quadrature.Composite(math.Sin, 0, 1, 4, 0)
	require.ErrorIs(t, err, quadrature.ErrPartitions)

	_, err = quadrature.GaussLegendre(nil, 0, 1, 4)
	require.ErrorIs(t, err, quadrature.ErrNilFunc)
	_, err = quadrature.Composite(nil, 0, 1, 4, 1)
	require.ErrorIs(t, err, quadrature.ErrNilFunc)
}
