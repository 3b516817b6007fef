// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// GaussianElimination solves A·x = b on the augmented matrix [A|b].
// MAIN DESCRIPTION:
//   - Self-contained alternative to SolveLU; it shares only the shape guard and
//     the pivot selection rule, so both paths agree on what "singular" means.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b); build a private n×(n+1) flat augmented
//     buffer and a row label slice (swaps exchange labels, not contents).
//   - Stage 2: for k = 0..n-1 pick the pivot by max |aug[i][k]|, i in [k,n),
//     lowest index on ties; fail with ErrSingular if it is below Epsilon;
//     subtract multiples of the pivot row from every row below it.
//   - Stage 3: back-substitute directly on the triangularized buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (checked before numeric work).
//   - ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²). Neither a nor b is mutated.
func GaussianElimination(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opGauss, err)
	}
	src, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opGauss, err)
	}

	// Stage 1: augmented workspace [A|b], stride n+1.
	n := src.r
	stride := n + 1
	aug := make([]float64, n*stride)
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug[i*stride:i*stride+n], src.data[i*n:(i+1)*n])
		aug[i*stride+n] = b[i]
	}
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}

	// Stage 2: forward elimination with partial pivoting.
	var (
		p, pk, ri      int
		pivot, f, best float64
	)
	for k = 0; k < n; k++ {
		p, best = pivotRow(aug, order, k, stride)
		order[k], order[p] = order[p], order[k]
		if best < Epsilon {
			return nil, matrixErrorf(opGauss,
				fmt.Errorf("column %d: |pivot|=%g: %w", k, best, ErrSingular))
		}
		pk = order[k] * stride
		pivot = aug[pk+k]
		for i = k + 1; i < n; i++ {
			ri = order[i] * stride
			f = aug[ri+k] / pivot
			if f == 0 {
				continue
			}
			for j = k; j <= n; j++ {
				aug[ri+j] -= f * aug[pk+j]
			}
		}
	}

	// Stage 3: back-substitution on the augmented rows.
	x := make([]float64, n)
	var sum float64
	for i = n - 1; i >= 0; i-- {
		ri = order[i] * stride
		sum = aug[ri+n]
		for j = i + 1; j < n; j++ {
			sum -= aug[ri+j] * x[j]
		}
		x[i] = sum / aug[ri+i]
	}

	return x, nil
}
