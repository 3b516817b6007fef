// SPDX-License-Identifier: MIT

package approx

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/linalg"
	"github.com/katalvlaran/linsolve/quadrature"
)

var (
	// ErrDegree indicates a negative polynomial degree.
	ErrDegree = errors.New("approx: degree must be non-negative")

	// ErrSamples indicates fewer than two evaluation samples.
	ErrSamples = errors.New("approx: at least two samples are required")
)

// Polynomial returns the coefficients c[0..degree] (ascending powers) of the
// continuous least-squares polynomial of f on [a,b].
//
// Steps:
//  1. Moments mₖ = ∫ xᵏ dx for k = 0..2·degree; the Gram matrix is Hankel,
//     G[i][j] = m_(i+j), so each moment is integrated once.
//  2. Right-hand side r[i] = ∫ f(x)·xⁱ dx.
//  3. Solve G·c = r with linalg.SolveLU.
//
// Errors:
//   - ErrDegree for degree < 0.
//   - quadrature.ErrNilFunc, quadrature.ErrPoints, quadrature.ErrPartitions.
//   - linalg.ErrSingular when G has no usable pivot (a == b, or a degree too
//     high for the interval).
func Polynomial(f quadrature.Func, degree int, a, b float64, opts ...Option) ([]float64, error) {
	if degree < 0 {
		return nil, fmt.Errorf("Polynomial(%d): %w", degree, ErrDegree)
	}
	if f == nil {
		return nil, fmt.Errorf("Polynomial: %w", quadrature.ErrNilFunc)
	}
	o := gatherOptions(opts...)
	integrate := func(g quadrature.Func) (float64, error) {
		return quadrature.Composite(g, a, b, o.Points, o.Partitions)
	}

	n := degree + 1
	moments := make([]float64, 2*n-1)
	var err error
	for k := range moments {
		if moments[k], err = integrate(power(k)); err != nil {
			return nil, fmt.Errorf("Polynomial: moment %d: %w", k, err)
		}
	}

	gram, err := linalg.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Polynomial: %w", err)
	}
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = gram.Set(i, j, moments[i+j]); err != nil {
				return nil, fmt.Errorf("Polynomial: %w", err)
			}
		}
		pi := power(i)
		if rhs[i], err = integrate(func(x float64) float64 { return f(x) * pi(x) }); err != nil {
			return nil, fmt.Errorf("Polynomial: rhs %d: %w", i, err)
		}
	}

	c, err := linalg.SolveLU(gram, rhs)
	if err != nil {
		return nil, fmt.Errorf("Polynomial(%d) on [%g, %g]: %w", degree, a, b, err)
	}

	return c, nil
}

// power returns x ↦ xᵏ.
func power(k int) quadrature.Func {
	if k == 0 {
		return func(float64) float64 { return 1 }
	}
	fk := float64(k)

	return func(x float64) float64 { return math.Pow(x, fk) }
}

// Horner evaluates Σ coeffs[i]·xⁱ. An empty slice evaluates to 0.
func Horner(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}
