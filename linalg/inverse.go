// SPDX-License-Identifier: MIT

package linalg

const opInverse = "Inverse"

// Inverse returns A⁻¹ from the factorization by solving A·x = e_col for every
// unit vector. Each column costs one permutation lookup plus two O(n²)
// substitutions on the shared factors.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func (lu *LU) Inverse() (*Dense, error) {
	if err := lu.validate(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := lu.P.Validate(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := lu.Dim()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		row, col int
		x        []float64
	)
	pe := make([]float64, n) // P·e_col
	for col = 0; col < n; col++ {
		for row = 0; row < n; row++ {
			pe[row] = 0
			if lu.P[row] == col {
				pe[row] = 1
			}
		}
		if x, err = backwardUpper(lu.U, forwardUnit(lu.L, pe)); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for row = 0; row < n; row++ {
			inv.data[row*n+col] = x[row]
		}
	}

	return inv, nil
}

// Inverse factors a and returns its inverse.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
func Inverse(a Matrix) (*Dense, error) {
	lu, err := Decompose(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return lu.Inverse()
}
