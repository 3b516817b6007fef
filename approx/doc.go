// SPDX-License-Identifier: MIT
//
// Package approx fits polynomials to functions in the continuous
// least-squares sense on an interval [a,b].
//
// 🚀 How does it work?
//
//	For a degree-d polynomial W(x) = Σ cᵢ·xⁱ the coefficients minimising
//	∫ (f(x) − W(x))² dx satisfy the normal equations G·c = r with
//	G[i][j] = ∫ x^(i+j) dx and r[i] = ∫ f(x)·xⁱ dx. Integrals come from a
//	composite Gauss–Legendre rule (package quadrature) and the system is
//	solved by LU with partial pivoting (package linalg).
//
// ✨ Key features:
//   - Polynomial: coefficients in ascending powers
//   - Horner: stable evaluation of the fitted polynomial
//   - Evaluate: max and RMS error on an even sample grid
//
// ⚠️ The monomial Gram matrix is a scaled Hilbert matrix: its conditioning
// grows quickly with the degree, so high degrees on wide intervals lose
// accuracy or are reported as linalg.ErrSingular.
//
// ⚙️ Usage:
//
//	c, err := approx.Polynomial(math.Exp, 3, 0, 1, approx.WithPartitions(200))
//	if err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Println(approx.Horner(c, 0.5))
package approx
