// Package linalg solves small-to-medium dense real linear systems A·x = b.
//
// 🚀 What is inside?
//
//	Two interchangeable solve paths plus the pieces they are built from:
//	  • GaussianElimination: elimination on the augmented matrix [A|b]
//	  • SolveLU:            Decompose + Permute + Forward/BackwardSubstitution
//	  • Decompose:          P·A = L·U with partial pivoting (reusable via LU.Solve)
//	  • Inverse:            A⁻¹ column by column from one factorization
//	  • Mul / MatVec:       dense products for residual and identity checks
//
// ✨ Guarantees:
//   - inputs are never mutated; every result is a fresh value owned by the caller
//   - pivots are chosen by largest magnitude, lowest row index on ties
//   - a pivot or U diagonal below Epsilon (1e-12) yields ErrSingular
//   - shape problems yield ErrDimensionMismatch before any arithmetic
//   - no panics on user input, no shared mutable state: safe for concurrent
//     use as long as callers do not share the matrices they pass in
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/linalg"
//
//	a, _ := linalg.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
//	x, err := linalg.Solve(a, []float64{4, 7})           // LU path
//	x, err = linalg.Solve(a, []float64{4, 7},
//	    linalg.WithMethod(linalg.MethodGauss))           // elimination path
//
// Performance:
//
//   - Decompose / GaussianElimination / Mul: O(n³)
//   - substitutions, Permute, MatVec:        O(n²) or O(n)
//
// Storage is a flat row-major buffer; pivoting swaps row labels instead of
// copying row contents.
package linalg
