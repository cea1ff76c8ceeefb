// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Operand is the right-hand side accepted by component-wise operations.
//
// The accepted shapes form a closed sum:
//   - Scalar: broadcast to every component;
//   - Values: a flat sequence, used as-is;
//   - Nested: a sequence of sequences, flattened one level;
//   - Vector2D/3D/4D and the matrix types, which report their components.
//
// Operand reports the components and whether they came from a scalar.
// Implementations must not expect callers to mutate the returned slice.
type Operand interface {
	Operand() (vals []float64, isScalar bool)
}

// Scalar is a single number broadcast across every component.
type Scalar float64

// Operand implements Operand.
func (s Scalar) Operand() ([]float64, bool) { return []float64{float64(s)}, true }

// Values is a flat sequence of components.
type Values []float64

// Operand implements Operand.
func (v Values) Operand() ([]float64, bool) { return v, false }

// Nested is a sequence of sequences; it is flattened one level, in order.
type Nested [][]float64

// Operand implements Operand.
func (n Nested) Operand() ([]float64, bool) {
	var out []float64
	for _, row := range n {
		out = append(out, row...)
	}

	return out, false
}

// Of widens integer or float inputs into Values.
func Of[T scalar.Real](vals ...T) Values { return Values(scalar.Widen(vals)) }

// Coerce resolves o into exactly n components: a scalar broadcasts, a sequence
// must have length n. Any other shape is a DimensionError (ErrDimension).
func Coerce(o Operand, n int, op, context string) ([]float64, error) {
	if o == nil {
		return nil, NewDimensionError(op, context, ErrUnsupportedOperand, "nil operand")
	}
	vals, isScalar := o.Operand()
	if isScalar {
		if len(vals) != 1 {
			return nil, dimErrorf(op, context, ErrUnsupportedOperand, "scalar operand with %d values", len(vals))
		}
		return broadcast(n, vals[0]), nil
	}
	if len(vals) != n {
		return nil, dimErrorf(op, context, ErrDimension, "expected %d values, got %d", n, len(vals))
	}

	return vals, nil
}

// CoerceSequence is Coerce without scalar broadcasting: o must be a sequence of length n.
func CoerceSequence(o Operand, n int, op, context string) ([]float64, error) {
	if o == nil {
		return nil, NewDimensionError(op, context, ErrUnsupportedOperand, "nil operand")
	}
	vals, isScalar := o.Operand()
	if isScalar {
		return nil, dimErrorf(op, context, ErrDimension, "expected %d values, got a scalar", n)
	}
	if len(vals) != n {
		return nil, dimErrorf(op, context, ErrDimension, "expected %d values, got %d", n, len(vals))
	}

	return vals, nil
}

// coerceBounds resolves a (lo, hi) pair that must share a shape.
func coerceBounds(lo, hi Operand, n int, op, context string) ([]float64, []float64, error) {
	if lo == nil || hi == nil {
		return nil, nil, NewDimensionError(op, context, ErrUnsupportedOperand, "nil bound")
	}
	_, loScalar := lo.Operand()
	_, hiScalar := hi.Operand()
	if loScalar != hiScalar {
		return nil, nil, NewDimensionError(op, context, ErrMixedBounds, "")
	}
	l, err := Coerce(lo, n, op, context)
	if err != nil {
		return nil, nil, err
	}
	h, err := Coerce(hi, n, op, context)
	if err != nil {
		return nil, nil, err
	}

	return l, h, nil
}

func broadcast(n int, s float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s
	}

	return out
}
