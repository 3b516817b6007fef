// SPDX-License-Identifier: MIT

// Package linalg: domain types shared by the solver kernels.
// Storage lives in dense.go, errors in errors.go, numeric defaults in options.go.
package linalg

// Matrix is a two-dimensional mutable array of float64 values.
// Kernels accept Matrix and take a flat-slice fast path when the dynamic
// type is *Dense; any other implementation goes through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	Clone() Matrix
}

// Permutation records the net row reordering performed by pivoting:
// row i of the factored matrix is row p[i] of the original.
// A valid Permutation of length n is a bijection over [0, n).
type Permutation []int

// LU holds the factors of a partial-pivoting decomposition, P·A = L·U.
//   - L is unit lower triangular; its diagonal is stored explicitly as 1.
//   - U is upper triangular.
//   - P maps factored rows to original rows (see Permutation).
//
// An LU is produced by Decompose and owned by the caller; the kernels never
// keep a reference to it.
type LU struct {
	L *Dense      // unit lower triangular multipliers
	U *Dense      // upper triangular factor
	P Permutation // row order applied to A
}
