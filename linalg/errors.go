// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag
// via %w) and tests match them with errors.Is. No kernel panics on
// user-triggered conditions.

package linalg

import "errors"

// Every message is prefixed with "linalg: ..." for easy grepping.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (square / lengths) -> numeric (singular).

var (
	// ErrDimensionMismatch reports inputs that violate a shape invariant:
	// a non-square system matrix, a vector whose length differs from the
	// matrix dimension, or Mul operands with a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular reports a pivot or a diagonal entry whose magnitude fell
	// below Epsilon during elimination, decomposition or back-substitution.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNilMatrix reports a nil matrix or vector argument.
	ErrNilMatrix = errors.New("linalg: nil matrix or vector")

	// ErrInvalidDimensions reports a requested shape with rows<=0 or cols<=0.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange reports a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNaNInf reports a NaN or ±Inf where a finite value is required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrBadPermutation reports a permutation that is not a bijection over [0,n).
	ErrBadPermutation = errors.New("linalg: invalid permutation")
)
