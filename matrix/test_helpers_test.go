// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures with known determinants.
//   • Compare storage or operand values entry-wise under a tolerance.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

const (
	tightTol = 1e-12
	looseTol = 1e-9
)

// fixture3x3 has determinant -306.
func fixture3x3() matrix.Matrix3x3 {
	return matrix.New3x3(
		6, 1, 1,
		4, -2, 5,
		2, 8, 7,
	)
}

// fixture4x4 has determinant 30.
func fixture4x4() matrix.Matrix4x4 {
	return matrix.New4x4(
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0,
	)
}

// rowMajor reads the values of any operand in row-major argument order.
func rowMajor(o vector.Operand) []float64 {
	vals, _ := o.Operand()

	return vals
}

// requireClose asserts entry-wise |want_i - got_i| <= delta.
func requireClose(t *testing.T, want, got []float64, delta float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, msgAndArgs...)
	}
}

// MustInverse3x3 inverts m or fails the test.
func MustInverse3x3(t *testing.T, m matrix.Matrix3x3) matrix.Matrix3x3 {
	t.Helper()
	inv, err := m.Inverse()
	require.NoError(t, err)

	return inv
}
