// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/linalg/internal/kernel"
	"github.com/katalvlaran/linalg/vector"
)

// operandValues unpacks o, rejecting nil and malformed scalars.
func operandValues(o vector.Operand, op, context string) ([]float64, bool, error) {
	if o == nil {
		return nil, false, matrixErrorf(op, context, ErrUnsupportedOperand, "nil operand")
	}
	vals, isScalar := o.Operand()
	if isScalar && len(vals) != 1 {
		return nil, false, matrixErrorf(op, context, ErrUnsupportedOperand, "scalar operand with %d values", len(vals))
	}

	return vals, isScalar, nil
}

// shape resolves a sequence into n×n storage: n values go on the diagonal
// with 0 elsewhere, n² values are taken in row-major argument order.
func shape(vals []float64, n int, op, context string) ([]float64, error) {
	switch len(vals) {
	case n:
		return diagonal(vals, n), nil
	case n * n:
		return fromRowMajor(vals, n), nil
	default:
		return nil, matrixErrorf(op, context, ErrDimension, "expected %d or %d values, got %d", n, n*n, len(vals))
	}
}

// coerce resolves an arithmetic operand into n×n storage. A scalar is
// broadcast to every entry.
func coerce(o vector.Operand, n int, op, context string) ([]float64, error) {
	vals, isScalar, err := operandValues(o, op, context)
	if err != nil {
		return nil, err
	}
	if isScalar {
		return kernel.Broadcast(n*n, vals[0]), nil
	}

	return shape(vals, n, op, context)
}

// coerceMatrixLike resolves an operand of the matrix-valued functions
// (Determinant, Inverse, …). A scalar fills the diagonal.
func coerceMatrixLike(o vector.Operand, n int, op, context string) ([]float64, error) {
	vals, isScalar, err := operandValues(o, op, context)
	if err != nil {
		return nil, err
	}
	if isScalar {
		return diagonal(kernel.Broadcast(n, vals[0]), n), nil
	}

	return shape(vals, n, op, context)
}

// diagonalOperand reports the values of o when it is a sequence of exactly
// n values, the shape that Mod applies to the diagonal only.
func diagonalOperand(o vector.Operand, n int) ([]float64, bool) {
	if o == nil {
		return nil, false
	}
	vals, isScalar := o.Operand()
	if isScalar || len(vals) != n {
		return nil, false
	}

	return vals, true
}

// coerceBounds resolves a (lo, hi) pair that must share a shape.
func coerceBounds(lo, hi vector.Operand, n int, op, context string) ([]float64, []float64, error) {
	if lo == nil || hi == nil {
		return nil, nil, matrixErrorf(op, context, ErrUnsupportedOperand, "nil bound")
	}
	_, loScalar := lo.Operand()
	_, hiScalar := hi.Operand()
	if loScalar != hiScalar {
		return nil, nil, matrixErrorf(op, context, ErrMixedBounds, "")
	}
	l, err := coerce(lo, n, op, context)
	if err != nil {
		return nil, nil, err
	}
	h, err := coerce(hi, n, op, context)
	if err != nil {
		return nil, nil, err
	}

	return l, h, nil
}
