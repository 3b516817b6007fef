// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the solver kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for solutions of well-conditioned systems.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto the At/Set fallback path.
type hide struct{ linalg.Matrix }

// MustFrom builds a *Dense from nested rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *linalg.Dense {
	t.Helper()
	m, err := linalg.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// RandomSystem returns a strictly diagonally dominant n×n matrix (hence
// nonsingular and well-conditioned) and a right-hand side, from a fixed seed.
func RandomSystem(t testing.TB, n int, seed int64) (*linalg.Dense, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		sum := 0.0
		for j := 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			rows[i][j] = v
			if v < 0 {
				sum -= v
			} else {
				sum += v
			}
		}
		// shuffle the dominant entry's sign so pivoting has real work to do
		if rng.Intn(2) == 0 {
			rows[i][i] = sum + 1
		} else {
			rows[i][i] = -(sum + 1)
		}
		b[i] = rng.Float64()*20 - 10
	}

	return MustFrom(t, rows), b
}

// RandomMatrix returns an r×c matrix with entries in [-1, 1).
func RandomMatrix(t testing.TB, r, c int, seed int64) *linalg.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// RequireVecInDelta compares two vectors element-wise within delta.
func RequireVecInDelta(t testing.TB, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "index %d", i)
	}
}

// RequireClose asserts two matrices agree element-wise within delta.
func RequireClose(t testing.TB, want, got linalg.Matrix, delta float64) {
	t.Helper()
	ok, err := linalg.AllClose(want, got, delta)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
