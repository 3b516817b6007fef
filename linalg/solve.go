// SPDX-License-Identifier: MIT

package linalg

// SolveLU solves A·x = b through the factorization P·A = L·U:
// decompose, permute b by P, forward-substitute, backward-substitute.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (before any numeric work).
//   - ErrSingular when the decomposition finds no usable pivot or U has a
//     near-zero diagonal entry.
//
// Complexity: Time O(n³), Space O(n²). Inputs are not mutated.
func SolveLU(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	lu, err := Decompose(a)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	return lu.Solve(b)
}

// Solve is the unified entry point. It dispatches to SolveLU (default) or to
// GaussianElimination according to WithMethod; both return a fresh x owned by
// the caller and report failures through the same sentinels.
//
// Example:
//
//	x, err := linalg.Solve(a, b, linalg.WithMethod(linalg.MethodGauss))
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	switch o.method {
	case MethodGauss:
		return GaussianElimination(a, b)
	default:
		return SolveLU(a, b)
	}
}
