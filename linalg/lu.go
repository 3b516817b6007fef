// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
)

// pivotRow returns the position in [k, n) whose row holds the largest |value|
// in column k, together with that magnitude. Rows are addressed through the
// label slice order, so the caller never has to move row contents.
//
// Ties resolve to the lowest position: the comparison is strict, so a later
// row must be strictly larger to replace the current candidate. Every solve
// path goes through this helper, which keeps results reproducible.
func pivotRow(work []float64, order []int, k, stride int) (int, float64) {
	best := k
	bestAbs := math.Abs(work[order[k]*stride+k])
	var v float64
	for i := k + 1; i < len(order); i++ {
		v = math.Abs(work[order[i]*stride+k])
		if v > bestAbs {
			best, bestAbs = i, v
		}
	}

	return best, bestAbs
}

// Decompose computes the partial-pivoting factorization P·A = L·U.
// MAIN DESCRIPTION:
//   - U starts as a copy of A, L as the identity and P as the identity order.
//   - For each column k the row with the largest |U[i][k]|, i in [k,n), becomes
//     the pivot row; multipliers L[i][k] = U[i][k]/U[k][k] eliminate below it.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a); copy A into a flat n×n workspace.
//   - Stage 2: keep a row label slice `order` (order[k] = physical row that
//     currently sits at position k). Row swaps exchange labels only; the
//     multipliers already stored in columns < k of a physical row travel with
//     it, which is exactly the "swap L[k][0:k] with L[p][0:k]" bookkeeping.
//   - Stage 3: unpack the compact workspace into L (unit lower) and U (upper);
//     the final label slice is P.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (before any numeric work).
//   - ErrSingular when the largest candidate pivot in a column is below Epsilon.
//
// Determinism:
//   - Fixed k→i→j loop order; lowest-index tie-break (see pivotRow).
//
// Complexity:
//   - Time O(n³), Space O(n²). The input is never mutated.
func Decompose(a Matrix) (*LU, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}
	work, err := denseCopy(a)
	if err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}

	n := work.r
	w := work.data
	order := IdentityPermutation(n)

	var (
		i, j, k, p   int
		pk, ri       int // row offsets of the pivot row and of row i
		pivot, f     float64
		maxMagnitude float64
	)
	for k = 0; k < n; k++ {
		p, maxMagnitude = pivotRow(w, order, k, n)
		if maxMagnitude < Epsilon {
			return nil, matrixErrorf(opDecompose,
				fmt.Errorf("column %d: max |pivot|=%g: %w", k, maxMagnitude, ErrSingular))
		}
		if p != k {
			order[k], order[p] = order[p], order[k]
		}

		pk = order[k] * n
		pivot = w[pk+k]
		for i = k + 1; i < n; i++ {
			ri = order[i] * n
			f = w[ri+k] / pivot
			w[ri+k] = f // multiplier stored where U[i][k] is eliminated
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w[ri+j] -= f * w[pk+j]
			}
		}
	}

	return unpackLU(w, order)
}

// unpackLU splits the compact workspace into explicit L and U factors.
func unpackLU(w []float64, order Permutation) (*LU, error) {
	n := len(order)
	L, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}

	var i, j, src int
	for i = 0; i < n; i++ {
		src = order[i] * n
		for j = 0; j < i; j++ {
			L.data[i*n+j] = w[src+j]
		}
		copy(U.data[i*n+i:(i+1)*n], w[src+i:src+n])
	}

	return &LU{L: L, U: U, P: order}, nil
}

// TryDecompose is Decompose for callers that only need success/failure:
// it reports (nil, false) instead of an error for any invalid or singular
// input and never panics.
func TryDecompose(a Matrix) (*LU, bool) {
	lu, err := Decompose(a)
	if err != nil {
		return nil, false
	}

	return lu, true
}

// Dim returns n for an n×n factorization (0 for a nil receiver).
func (lu *LU) Dim() int {
	if lu == nil {
		return 0
	}

	return len(lu.P)
}

// Solve reuses the factorization to solve A·x = b for another right-hand side:
// pb = P·b, L·y = pb, U·x = y.
//
// Errors: ErrNilMatrix (nil receiver or b), ErrDimensionMismatch, ErrSingular.
// Complexity: O(n²) per call.
func (lu *LU) Solve(b []float64) ([]float64, error) {
	if err := lu.validate(); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateVecLen(b, lu.Dim()); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	pb, err := Permute(b, lu.P)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	y := forwardUnit(lu.L, pb)
	x, err := backwardUpper(lu.U, y)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return x, nil
}

// validate checks that L, U and P describe one n×n factorization, so the
// unchecked kernels can index them freely. LU values built by hand pass
// through here too.
func (lu *LU) validate() error {
	if lu == nil || lu.L == nil || lu.U == nil {
		return ErrNilMatrix
	}
	n := len(lu.P)
	if lu.L.r != n || lu.L.c != n || lu.U.r != n || lu.U.c != n {
		return fmt.Errorf("L %dx%d, U %dx%d, len(P)=%d: %w",
			lu.L.r, lu.L.c, lu.U.r, lu.U.c, n, ErrDimensionMismatch)
	}

	return nil
}

// Det returns det(A) = sign(P)·Π U[i][i], or 0 for an inconsistent LU
// (mismatched sizes or a P that is not a bijection).
func (lu *LU) Det() float64 {
	if lu.validate() != nil || lu.P.Validate() != nil {
		return 0
	}
	det := float64(lu.P.Sign())
	n := lu.Dim()
	for i := 0; i < n; i++ {
		det *= lu.U.data[i*n+i]
	}

	return det
}
