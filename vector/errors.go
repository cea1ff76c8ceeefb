// SPDX-License-Identifier: MIT
// Package vector: the single error kind of linalg.
// Every failure path in vector and matrix returns a *DimensionError. Callers
// distinguish causes with errors.Is against the reason sentinels below and
// read the dimension context from the error itself. No operation panics on a
// dimension mismatch.

package vector

import (
	"errors"
	"fmt"
)

// Reason sentinels carried by DimensionError.Reason. Match with errors.Is.
var (
	// ErrDimension reports an operand or input sequence of the wrong length.
	ErrDimension = errors.New("dimension mismatch")

	// ErrIndexOutOfRange reports an index outside -N..N-1.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrWrapped reports a write attempted on a wrapped (read-only) vector.
	ErrWrapped = errors.New("cannot set on wrapped vector")

	// ErrMissingAttribute reports a host object lacking X/Y/Z/W.
	ErrMissingAttribute = errors.New("host object is missing a required attribute")

	// ErrNoInverse reports an inverse requested for a zero-determinant matrix.
	ErrNoInverse = errors.New("matrix has no inverse")

	// ErrMixedBounds reports clamp bounds of different shapes (scalar vs sequence).
	ErrMixedBounds = errors.New("bounds must both be scalars or both sequences")

	// ErrUnsupportedOperand reports a nil operand or an operand shape the
	// operation does not accept (e.g. vector·matrix).
	ErrUnsupportedOperand = errors.New("unsupported operand")
)

// Dimension context tags.
const (
	Context2D  = "2D"
	Context3D  = "3D"
	Context4D  = "4D"
	Context2x2 = "2x2"
	Context3x3 = "3x3"
	Context4x4 = "4x4"
)

// DimensionError is the only error kind produced by linalg.
//   - Op names the failing operation ("Vector3D.Add", "Matrix2x2.Inverse").
//   - Context is the dimension tag (Context2D … Context4x4).
//   - Reason is one of the sentinels above.
//   - Detail is optional human-readable context ("expected 3 values, got 4").
type DimensionError struct {
	Op      string
	Context string
	Reason  error
	Detail  string
}

// NewDimensionError builds a DimensionError; detail may be empty.
func NewDimensionError(op, context string, reason error, detail string) *DimensionError {
	return &DimensionError{Op: op, Context: context, Reason: reason, Detail: detail}
}

// dimErrorf is NewDimensionError with a formatted detail.
func dimErrorf(op, context string, reason error, format string, args ...any) error {
	return NewDimensionError(op, context, reason, fmt.Sprintf(format, args...))
}

// Error formats "<Op> (<Context>): <reason>[: <detail>]".
func (e *DimensionError) Error() string {
	msg := fmt.Sprintf("%s (%s): %v", e.Op, e.Context, e.Reason)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes Reason to errors.Is.
func (e *DimensionError) Unwrap() error { return e.Reason }

// IsDimensionError reports whether err (or anything it wraps) is a *DimensionError.
func IsDimensionError(err error) bool {
	var de *DimensionError

	return errors.As(err, &de)
}
