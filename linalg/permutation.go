// SPDX-License-Identifier: MIT

package linalg

import "fmt"

const opPermute = "Permute"

// IdentityPermutation returns [0, 1, ..., n-1].
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate checks that p is a bijection over [0, len(p)).
// Returns ErrBadPermutation naming the first offending position.
// Complexity: O(n) time, O(n) space.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("p[%d]=%d out of [0,%d): %w", i, v, len(p), ErrBadPermutation)
		}
		if seen[v] {
			return fmt.Errorf("p[%d]=%d repeated: %w", i, v, ErrBadPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// Sign returns +1 for an even permutation and -1 for an odd one.
// Assumes p is valid. Complexity: O(n) via cycle decomposition.
func (p Permutation) Sign() int {
	visited := make([]bool, len(p))
	sign := 1
	var i, j, length int
	for i = range p {
		if visited[i] {
			continue
		}
		length = 0
		for j = i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		// a cycle of length L contributes L-1 transpositions
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// Matrix materializes P as an n×n 0/1 matrix with P[i][p[i]] = 1, so that
// (P·A)[i] = A[p[i]].
//
// Errors: ErrBadPermutation, ErrInvalidDimensions (empty p).
func (p Permutation) Matrix() (*Dense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := len(p)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i, src := range p {
		m.data[i*n+src] = 1
	}

	return m, nil
}

// Permute returns pb with pb[i] = b[p[i]]. b is left untouched.
//
// Errors:
//   - ErrNilMatrix if b is nil.
//   - ErrDimensionMismatch if len(b) != len(p).
//   - ErrBadPermutation if p is not a bijection.
//
// Complexity: O(n).
func Permute(b []float64, p Permutation) ([]float64, error) {
	if err := ValidateVecLen(b, len(p)); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if err := p.Validate(); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}

	pb := make([]float64, len(b))
	for i, src := range p {
		pb[i] = b[src]
	}

	return pb, nil
}

// PermuteRows returns P·A: row i of the result is row p[i] of a.
// Used to check P·A ≈ L·U.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(p) != a.Rows()), ErrBadPermutation.
func PermuteRows(a Matrix, p Permutation) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	if len(p) != a.Rows() {
		return nil, matrixErrorf(opPermute, ErrDimensionMismatch)
	}
	if err := p.Validate(); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}

	src, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	rows, cols := src.r, src.c
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	for i, from := range p {
		copy(out.data[i*cols:(i+1)*cols], src.data[from*cols:(from+1)*cols])
	}

	return out, nil
}
