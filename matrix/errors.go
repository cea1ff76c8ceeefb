// SPDX-License-Identifier: MIT
// Package matrix: error surface.
// Matrices share the single error kind of package vector. The aliases below let
// callers match matrix failures without importing vector:
//
//	if errors.Is(err, matrix.ErrNoInverse) { … }
//
// Every failure carries the matrix dimension tag ("2x2", "3x3", "4x4") in
// DimensionError.Context. Nothing in this package panics on user input.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// DimensionError is vector.DimensionError.
type DimensionError = vector.DimensionError

// Reason sentinels, identical to the vector package values.
var (
	ErrDimension          = vector.ErrDimension
	ErrIndexOutOfRange    = vector.ErrIndexOutOfRange
	ErrNoInverse          = vector.ErrNoInverse
	ErrMixedBounds        = vector.ErrMixedBounds
	ErrUnsupportedOperand = vector.ErrUnsupportedOperand
)

// Dimension context tags.
const (
	Context2x2 = vector.Context2x2
	Context3x3 = vector.Context3x3
	Context4x4 = vector.Context4x4
)

// matrixErrorf builds a *DimensionError tagged with op and context.
//
// Implementation:
//   - Stage 1: Format the optional detail (empty format → no detail).
//   - Stage 2: Delegate to vector.NewDimensionError so errors.Is sees reason.
//
// Notes:
//   - Keep op to "<Type>.<Method>" so messages read "Matrix3x3.Inverse (3x3): …".
func matrixErrorf(op, context string, reason error, format string, args ...any) error {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}

	return vector.NewDimensionError(op, context, reason, detail)
}
