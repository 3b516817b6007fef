// SPDX-License-Identifier: MIT

package approx

import "github.com/katalvlaran/linsolve/quadrature"

// Option customises Polynomial.
type Option func(*Options)

// Options holds the quadrature settings used to build the normal equations.
// Values are not checked here; Polynomial reports out-of-range settings
// through quadrature.ErrPoints and quadrature.ErrPartitions.
type Options struct {
	Points     int // Gauss–Legendre nodes per partition
	Partitions int // equal-width sub-intervals of [a,b]
}

// DefaultOptions returns the composite 4-node rule over 100 partitions.
func DefaultOptions() Options {
	return Options{
		Points:     quadrature.DefaultPoints,
		Partitions: quadrature.DefaultPartitions,
	}
}

// WithPoints sets the number of Gauss–Legendre nodes per partition.
func WithPoints(n int) Option {
	return func(o *Options) { o.Points = n }
}

// WithPartitions sets the number of composite-rule partitions.
func WithPartitions(n int) Option {
	return func(o *Options) { o.Partitions = n }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
