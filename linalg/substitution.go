// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// ForwardSubstitution solves L·y = pb for y, top-down, where L is unit lower
// triangular. The diagonal of L is assumed to be 1 and is never read, so no
// division takes place; entries above the diagonal are ignored.
//
//	y[i] = pb[i] − Σ_{j<i} L[i][j]·y[j]
//
// Errors:
//   - ErrNilMatrix (nil l or pb).
//   - ErrDimensionMismatch (l not square, len(pb) != n).
//
// Complexity: Time O(n²), Space O(n).
func ForwardSubstitution(l Matrix, pb []float64) ([]float64, error) {
	if err := ValidateSystem(l, pb); err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	ld, err := toDense(l)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	return forwardUnit(ld, pb), nil
}

// forwardUnit is the unchecked kernel behind ForwardSubstitution.
func forwardUnit(l *Dense, pb []float64) []float64 {
	n := l.r
	y := make([]float64, n)
	var (
		i, j int
		sum  float64
		base int
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for j = 0; j < i; j++ {
			sum += l.data[base+j] * y[j]
		}
		y[i] = pb[i] - sum
	}

	return y
}

// BackwardSubstitution solves U·x = y for x, bottom-up, where U is upper
// triangular. Entries below the diagonal are ignored.
//
//	x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i]
//
// Errors:
//   - ErrNilMatrix (nil u or y).
//   - ErrDimensionMismatch (u not square, len(y) != n).
//   - ErrSingular when |U[i][i]| < Epsilon for some i.
//
// Complexity: Time O(n²), Space O(n).
func BackwardSubstitution(u Matrix, y []float64) ([]float64, error) {
	if err := ValidateSystem(u, y); err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	ud, err := toDense(u)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	x, err := backwardUpper(ud, y)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	return x, nil
}

// backwardUpper is the unchecked kernel behind BackwardSubstitution.
// The diagonal guard runs before the row is used, so a singular U fails
// at the lowest offending row without producing Inf/NaN.
func backwardUpper(u *Dense, y []float64) ([]float64, error) {
	n := u.r
	x := make([]float64, n)
	var (
		i, j  int
		sum   float64
		pivot float64
		base  int
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		pivot = u.data[base+i]
		if math.Abs(pivot) < Epsilon {
			return nil, fmt.Errorf("U[%d][%d]=%g: %w", i, i, pivot, ErrSingular)
		}
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += u.data[base+j] * x[j]
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
