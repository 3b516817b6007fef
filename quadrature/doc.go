// SPDX-License-Identifier: MIT

// Package quadrature integrates real functions on a closed interval with
// Gauss–Legendre rules.
//
// 🚀 What is it for?
//
//	The least-squares approximation in package approx needs inner products
//	∫ f(x)·xⁱ dx over [a,b]. A Gauss–Legendre rule with n nodes integrates
//	polynomials of degree ≤ 2n−1 exactly, so the Gram matrix of a monomial
//	basis is computed without truncation error once enough nodes are used.
//
// ✨ Key features:
//   - 2..6 node rules from fixed node/weight tables
//   - composite rule over equal-width partitions
//   - sentinel errors (ErrPoints, ErrPartitions), no panics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/quadrature"
//
//	v, err := quadrature.Composite(math.Sin, 0, math.Pi, 4, 100)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	fmt.Println(v) // ≈ 2
package quadrature
