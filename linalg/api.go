// SPDX-License-Identifier: MIT
// Package linalg: constructors and verification facades.
//
// Purpose:
//   - Thin entry points for building neutral matrices and for checking a
//     solution or a factorization after the fact.
//   - Facades only compose kernels; no loop here changes numeric policy.

package linalg

import (
	"math"
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Intention-revealing alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Residual returns r = A·x − b. A small NormInf(r) confirms a solution.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// NormInf returns max_i |v[i]| (0 for an empty vector).
func NormInf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}

	return m
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every element.
// tol is taken as |tol|; NaN never compares close.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func AllClose(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	tol = math.Abs(tol)
	for i := range ad.data {
		// written as !(≤) so that NaN differences fail
		if !(math.Abs(ad.data[i]-bd.data[i]) <= tol) {
			return false, nil
		}
	}

	return true, nil
}

// Reconstruct returns L·U for a factorization; compare it against
// PermuteRows(A, lu.P) to check P·A = L·U.
func Reconstruct(lu *LU) (*Dense, error) {
	if lu == nil || lu.L == nil || lu.U == nil {
		return nil, matrixErrorf(opDecompose, ErrNilMatrix)
	}

	return Mul(lu.L, lu.U)
}
