// SPDX-License-Identifier: MIT

// Package linalg: numeric policy and functional configuration for Solve.
// This file defines:
//   - Epsilon, the process-wide singularity tolerance (read-only),
//   - documented defaults (constants),
//   - Option / Options and WithX constructors (panic only on programmer error),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The tolerance is intentionally NOT an option: every entry point shares
//     the same threshold so that the LU and elimination paths agree on what
//     "singular" means.
package linalg

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// Epsilon is the magnitude below which a pivot or a diagonal entry of U
	// is treated as zero (singular matrix).
	Epsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)

// Method selects the algorithm used by Solve.
type Method int

const (
	// MethodLU factors P·A = L·U and runs the two triangular solves.
	MethodLU Method = iota
	// MethodGauss eliminates on the augmented matrix [A|b].
	MethodGauss
)

// DefaultMethod is the algorithm Solve uses when no WithMethod is given.
const DefaultMethod = MethodLU

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodLU:
		return "lu"
	case MethodGauss:
		return "gauss"
	default:
		return "unknown"
	}
}

// ParseMethod maps "lu" / "gauss" to a Method. The boolean is false for
// unknown names.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "lu", "LU":
		return MethodLU, true
	case "gauss", "gaussian", "GAUSS":
		return MethodGauss, true
	default:
		return DefaultMethod, false
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const panicMethodInvalid = "linalg: WithMethod: unknown method"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	method Method // DefaultMethod
}

// Method returns the resolved solve method.
func (o Options) Method() Method { return o.method }

// WithMethod selects the solve algorithm.
// Panics on a value outside {MethodLU, MethodGauss}.
func WithMethod(m Method) Option {
	if m != MethodLU && m != MethodGauss {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{method: DefaultMethod}
}

// gatherOptions applies setters on top of defaults, last-writer-wins.
// A nil setter is skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
