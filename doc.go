// Package linsolve is a small numerical toolkit for dense linear systems
// A·x = b with real coefficients.
//
// 🚀 What is inside?
//
//	linalg/:     Dense matrices, Gaussian elimination and LU decomposition
//	             with partial pivoting, permutations, substitutions, products
//	quadrature/: Gauss–Legendre rules (2..6 nodes) and their composite form
//	approx/:     continuous least-squares polynomial fits solved through LU
//	cmd/linsolve: CLI: solve, decompose, multiply, approx (YAML input)
//
// ✨ Guarantees:
//
//   - Inputs are never mutated; every call returns fresh results.
//   - Failures are values: linalg.ErrDimensionMismatch and
//     linalg.ErrSingular, matched with errors.Is.
//   - Pivot choice is deterministic: the lowest row index wins ties.
//   - A single tolerance, linalg.Epsilon = 1e-12, decides singularity.
//
// Quick example:
//
//	a, _ := linalg.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
//	x, err := linalg.Solve(a, []float64{4, 7}) // x = [1 2]
//
//	go get github.com/katalvlaran/linsolve/linalg
package linsolve
