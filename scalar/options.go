// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for tolerance-based comparisons.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package scalar

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the tolerance used by ApproximatelyEqual when no option is given.
const DefaultEpsilon = 0.001

// Options holds the resolved comparison settings. Fields are unexported;
// callers build it through Option values.
type Options struct {
	epsilon float64 // strict upper bound on |a-b|
}

// Option mutates Options during gatherOptions.
type Option func(*Options)

// WithEpsilon sets the comparison tolerance.
// Panics if eps is negative, NaN or +Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 1) {
		panic(fmt.Sprintf("scalar: WithEpsilon(%v): tolerance must be finite and >= 0", eps))
	}

	return func(o *Options) { o.epsilon = eps }
}

// NewOptions resolves opts over the defaults.
// Exposed so vector and matrix packages can resolve once and reuse.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.epsilon }

// Equal reports |a-b| < Epsilon().
func (o Options) Equal(a, b float64) bool { return math.Abs(a-b) < o.epsilon }

func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
