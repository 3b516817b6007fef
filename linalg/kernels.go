// SPDX-License-Identifier: MIT
// Package linalg: shared kernel plumbing.
//
// Purpose:
//   - Operation tags and accumulator constants used by every kernel.
//   - One error wrapper (matrixErrorf) so all kernels expose the same
//     "<Op>: <cause>" surface while errors.Is still reaches the sentinel.
//   - Conversion of an arbitrary Matrix into a flat *Dense view.

package linalg

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opGauss     = "GaussianElimination"
	opDecompose = "Decompose"
	opSolveLU   = "SolveLU"
	opForward   = "ForwardSubstitution"
	opBackward  = "BackwardSubstitution"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opResidual  = "Residual"
	opAllClose  = "AllClose"
	opFormat    = "Format"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is a *Dense, otherwise a flat
// copy read through At. The result must be treated as read-only: callers
// that intend to write use denseCopy.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return denseCopy(m)
}

// denseCopy always allocates a new *Dense holding the values of m.
// Values read through At obey the same NaN/Inf policy as Dense.Set.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("At(%d,%d)=%g: %w", i, j, v, ErrNaNInf)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
