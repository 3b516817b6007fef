// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/quadrature"
)

// Sample is one grid point of an error report.
type Sample struct {
	X, F, W float64 // abscissa, f(x), fitted W(x)
}

// Err returns |f(x) − W(x)|.
func (s Sample) Err() float64 { return math.Abs(s.F - s.W) }

// Report summarises how well coefficients reproduce f on [a,b].
type Report struct {
	Samples []Sample
	Max     float64 // max |f − W|
	RMS     float64 // sqrt(mean (f − W)²)
}

// Evaluate samples f and the polynomial on samples evenly spaced points
// x_i = a + i·(b−a)/(samples−1), endpoints included.
//
// Errors: quadrature.ErrNilFunc, ErrSamples (samples < 2).
func Evaluate(f quadrature.Func, coeffs []float64, a, b float64, samples int) (Report, error) {
	if f == nil {
		return Report{}, fmt.Errorf("Evaluate: %w", quadrature.ErrNilFunc)
	}
	if samples < 2 {
		return Report{}, fmt.Errorf("Evaluate(%d): %w", samples, ErrSamples)
	}

	rep := Report{Samples: make([]Sample, samples)}
	step := (b - a) / float64(samples-1)
	sumSq := 0.0
	for i := 0; i < samples; i++ {
		x := a + float64(i)*step
		s := Sample{X: x, F: f(x), W: Horner(coeffs, x)}
		rep.Samples[i] = s
		e := s.Err()
		rep.Max = math.Max(rep.Max, e)
		sumSq += e * e
	}
	rep.RMS = math.Sqrt(sumSq / float64(samples))

	return rep, nil
}
