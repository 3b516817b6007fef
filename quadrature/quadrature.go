// SPDX-License-Identifier: MIT

package quadrature

import (
	"errors"
	"fmt"
)

// Func is an integrand.
type Func func(x float64) float64

const (
	// MinPoints and MaxPoints bound the supported rule sizes.
	MinPoints = 2
	MaxPoints = 6

	// DefaultPoints and DefaultPartitions are the composite-rule defaults
	// used by callers that do not choose their own.
	DefaultPoints     = 4
	DefaultPartitions = 100
)

var (
	// ErrPoints indicates a rule size outside [MinPoints, MaxPoints].
	ErrPoints = errors.New("quadrature: points must be between 2 and 6")

	// ErrPartitions indicates a non-positive partition count.
	ErrPartitions = errors.New("quadrature: partitions must be positive")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("quadrature: nil integrand")
)

// nodes[n-MinPoints] and weights[n-MinPoints] hold the n-point rule on [-1,1].
var (
	nodes = [MaxPoints - MinPoints + 1][]float64{
		{-0.5773502691896257, 0.5773502691896257},
		{-0.7745966692414834, 0, 0.7745966692414834},
		{-0.8611363115940526, -0.3399810435848563, 0.3399810435848563, 0.8611363115940526},
		{-0.9061798459386640, -0.5384693101056831, 0, 0.5384693101056831, 0.9061798459386640},
		{-0.9324695142031521, -0.6612093864662645, -0.2386191860831969, 0.2386191860831969, 0.6612093864662645, 0.9324695142031521},
	}
	weights = [MaxPoints - MinPoints + 1][]float64{
		{1, 1},
		{0.5555555555555556, 0.8888888888888888, 0.5555555555555556},
		{0.3478548451374538, 0.6521451548625461, 0.6521451548625461, 0.3478548451374538},
		{0.2369268850561891, 0.4786286704993665, 0.5688888888888889, 0.4786286704993665, 0.2369268850561891},
		{0.1713244923791704, 0.3607615730481386, 0.4679139345726910, 0.4679139345726910, 0.3607615730481386, 0.1713244923791704},
	}
)

// Rule returns copies of the nodes and weights of the n-point rule on [-1,1].
func Rule(points int) (x, w []float64, err error) {
	if points < MinPoints || points > MaxPoints {
		return nil, nil, fmt.Errorf("Rule(%d): %w", points, ErrPoints)
	}
	idx := points - MinPoints

	return append([]float64(nil), nodes[idx]...), append([]float64(nil), weights[idx]...), nil
}

// GaussLegendre integrates f over [a,b] with a single n-point rule, mapping
// the nodes by x = (b−a)/2·t + (a+b)/2.
//
// Exact (up to rounding) for polynomials of degree ≤ 2·points−1.
// b < a yields the negated integral; a == b yields 0.
//
// Errors: ErrNilFunc, ErrPoints.
func GaussLegendre(f Func, a, b float64, points int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if points < MinPoints || points > MaxPoints {
		return 0, fmt.Errorf("GaussLegendre(%d): %w", points, ErrPoints)
	}

	return rule(f, a, b, points-MinPoints), nil
}

// rule evaluates table idx on [a,b]; arguments are already validated.
func rule(f Func, a, b float64, idx int) float64 {
	half := 0.5 * (b - a)
	mid := 0.5 * (a + b)
	sum := 0.0
	for i, t := range nodes[idx] {
		sum += weights[idx][i] * f(half*t+mid)
	}

	return sum * half
}

// Composite splits [a,b] into equal partitions and sums an n-point rule over
// each. Sub-interval bounds are computed as a + p·h so rounding does not
// accumulate across partitions.
//
// Errors: ErrNilFunc, ErrPoints, ErrPartitions.
//
// Complexity: O(points·partitions) evaluations of f.
func Composite(f Func, a, b float64, points, partitions int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if points < MinPoints || points > MaxPoints {
		return 0, fmt.Errorf("Composite(%d, %d): %w", points, partitions, ErrPoints)
	}
	if partitions <= 0 {
		return 0, fmt.Errorf("Composite(%d, %d): %w", points, partitions, ErrPartitions)
	}

	idx := points - MinPoints
	h := (b - a) / float64(partitions)
	total := 0.0
	var lo float64
	for p := 0; p < partitions; p++ {
		lo = a + float64(p)*h
		total += rule(f, lo, lo+h, idx)
	}

	return total, nil
}
