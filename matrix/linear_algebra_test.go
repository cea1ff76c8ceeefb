// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

func TestInverse2x2_KnownValues(t *testing.T) {
	inv, err := matrix.New2x2(4, 7, 2, 6).Inverse()
	require.NoError(t, err)
	requireClose(t, []float64{0.6, -0.7, -0.2, 0.4}, rowMajor(inv), tightTol)

	viaOperand, err := matrix.Inverse2x2(vector.Values{4, 7, 2, 6})
	require.NoError(t, err)
	require.Equal(t, inv, viaOperand)
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.New3x3(1, 2, 3, 4, 5, 6, 7, 8, 9).Inverse()
	require.ErrorIs(t, err, matrix.ErrNoInverse)
	require.EqualError(t, err, "Matrix3x3.Inverse (3x3): matrix has no inverse")

	_, err = matrix.Zero2x2().Inverse()
	require.ErrorIs(t, err, matrix.ErrNoInverse)

	_, err = matrix.Inverse4x4(vector.Scalar(0))
	require.ErrorIs(t, err, matrix.ErrNoInverse)
}

func TestInverse_IsTwoSided(t *testing.T) {
	m3 := fixture3x3()
	inv3 := MustInverse3x3(t, m3)
	requireClose(t, rowMajor(matrix.Identity3x3()), rowMajor(inv3.MatMul(m3)), looseTol)
	requireClose(t, rowMajor(matrix.Identity3x3()), rowMajor(m3.MatMul(inv3)), looseTol)

	m4 := fixture4x4()
	inv4, err := m4.Inverse()
	require.NoError(t, err)
	requireClose(t, rowMajor(matrix.Identity4x4()), rowMajor(inv4.MatMul(m4)), looseTol)
	requireClose(t, rowMajor(matrix.Identity4x4()), rowMajor(m4.MatMul(inv4)), looseTol)

	m2 := matrix.New2x2(3, -1, 2.5, 7)
	inv2, err := m2.Inverse()
	require.NoError(t, err)
	requireClose(t, rowMajor(matrix.Identity2x2()), rowMajor(inv2.MatMul(m2)), looseTol)
	requireClose(t, rowMajor(matrix.Identity2x2()), rowMajor(m2.MatMul(inv2)), looseTol)
}

func TestDeterminant(t *testing.T) {
	require.Equal(t, 10.0, matrix.New2x2(4, 7, 2, 6).Determinant())
	require.Equal(t, -306.0, fixture3x3().Determinant())
	require.Equal(t, 30.0, fixture4x4().Determinant())
	require.Equal(t, 24.0, matrix.Scale4x4(1, 2, 3, 4).Determinant())

	d, err := matrix.Determinant3x3(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, 8.0, d)

	d, err = matrix.Determinant2x2(vector.Values{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, -2.0, d)

	d, err = matrix.Determinant4x4(fixture4x4())
	require.NoError(t, err)
	require.Equal(t, 30.0, d)

	_, err = matrix.Determinant3x3(vector.Values{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimension)
}

func TestTranspose(t *testing.T) {
	m := fixture3x3()
	tr := m.Transpose()
	require.Equal(t, matrix.New3x3(6, 4, 2, 1, -2, 8, 1, 5, 7), tr)
	require.Equal(t, m, tr.Transpose())
	require.InDelta(t, m.Determinant(), tr.Determinant(), looseTol)

	m4 := fixture4x4()
	require.Equal(t, m4, m4.Transpose().Transpose())
	require.InDelta(t, m4.Determinant(), m4.Transpose().Determinant(), looseTol)

	viaOperand, err := matrix.Transpose2x2(vector.Values{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, matrix.New2x2(1, 3, 2, 4), viaOperand)

	diag, err := matrix.Transpose2x2(vector.Scalar(3))
	require.NoError(t, err)
	require.Equal(t, matrix.Scale2x2(3, 3), diag)
}

func TestNormalizeAndTrace(t *testing.T) {
	m := matrix.New2x2(4, 7, 2, 6)
	requireClose(t, []float64{0.4, 0.7, 0.2, 0.6}, rowMajor(m.Normalize()), tightTol)

	n, err := matrix.Normalize2x2(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, matrix.Scale2x2(0.5, 0.5), n)

	require.Equal(t, 10.0, m.Trace())
	require.Equal(t, 11.0, fixture3x3().Trace())
	require.Equal(t, 4.0, matrix.Identity4x4().Trace())
}

func TestClearRotationAndScale(t *testing.T) {
	rot := matrix.RotationZ3x3(0.3)
	m := rot.MatMul(matrix.Scale3x3(2, 3, 4))

	requireClose(t, rowMajor(matrix.Scale3x3(2, 3, 4)), rowMajor(m.ClearRotation()), tightTol)
	requireClose(t, rowMajor(rot), rowMajor(m.ClearScale()), tightTol)

	cr, err := matrix.ClearRotation2x2(vector.Values{3, 0, 4, 0})
	require.NoError(t, err)
	require.Equal(t, matrix.Scale2x2(5, 0), cr)

	cs, err := matrix.ClearScale4x4(vector.Scalar(5))
	require.NoError(t, err)
	require.Equal(t, matrix.Identity4x4(), cs)
}

func TestProduct(t *testing.T) {
	a := matrix.New2x2(1, 2, 3, 4)
	b := matrix.New2x2(5, 6, 7, 8)
	require.Equal(t, matrix.New2x2(19, 22, 43, 50), a.MatMul(b))
	require.Equal(t, vector.New2D(17, 39), a.MulVec(vector.New2D(5, 6)))

	for name, o := range map[string]vector.Operand{
		"vector": vector.New2D(5, 6),
		"values": vector.Values{5, 6},
	} {
		got, err := a.MatMulOp(o)
		require.NoError(t, err, name)
		require.Equal(t, vector.New2D(17, 39), got, name)
	}
	for name, o := range map[string]vector.Operand{
		"matrix": b,
		"values": vector.Values{5, 6, 7, 8},
		"nested": vector.Nested{{5, 6}, {7, 8}},
	} {
		got, err := a.MatMulOp(o)
		require.NoError(t, err, name)
		require.Equal(t, matrix.New2x2(19, 22, 43, 50), got, name)
	}

	_, err := a.MatMulOp(vector.Scalar(2))
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperand)
	_, err = a.MatMulOp(vector.Values{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimension)
	_, err = a.MatMulOp(nil)
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperand)

	left, err := a.RMatMulOp(b)
	require.NoError(t, err)
	require.Equal(t, matrix.New2x2(23, 34, 31, 46), left)

	left, err = a.RMatMulOp(vector.Values{5, 6, 7, 8})
	require.NoError(t, err)
	require.Equal(t, matrix.New2x2(23, 34, 31, 46), left)

	_, err = a.RMatMulOp(vector.New2D(1, 2))
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperand)
	require.True(t, vector.IsDimensionError(err))
}

func TestRotations(t *testing.T) {
	r := matrix.Rotation2x2(0.5)
	require.InDelta(t, math.Sin(0.5), r.M12(), tightTol)
	require.InDelta(t, -math.Sin(0.5), r.M21(), tightTol)
	require.InDelta(t, math.Cos(0.5), r.M11(), tightTol)

	for _, theta := range []float64{0, 0.1, 1, math.Pi / 3, -2.5, 7} {
		id := matrix.Rotation2x2(theta).MatMul(matrix.Rotation2x2(-theta))
		requireClose(t, rowMajor(matrix.Identity2x2()), rowMajor(id), looseTol, "theta=%v", theta)
	}

	got := matrix.RotationZ3x3(math.Pi / 2).MulVec(vector.New3D(1, 0, 0))
	requireClose(t, []float64{0, -1, 0}, got.Components(), tightTol)

	got = matrix.RotationX3x3(math.Pi / 2).MulVec(vector.New3D(0, 1, 0))
	requireClose(t, []float64{0, 0, -1}, got.Components(), tightTol)

	got = matrix.RotationY3x3(math.Pi / 2).MulVec(vector.New3D(0, 0, 1))
	requireClose(t, []float64{-1, 0, 0}, got.Components(), tightTol)
}

func TestRotation3x3_Axis(t *testing.T) {
	for _, theta := range []float64{0.3, -1.2, math.Pi} {
		for name, tc := range map[string]struct {
			axis vector.Operand
			want matrix.Matrix3x3
		}{
			"X": {vector.Values{2, 0, 0}, matrix.RotationX3x3(theta)},
			"Y": {vector.New3D(0, 1, 0), matrix.RotationY3x3(theta)},
			"Z": {vector.Values{0, 0, 0.5}, matrix.RotationZ3x3(theta)},
		} {
			got, err := matrix.Rotation3x3(tc.axis, theta)
			require.NoError(t, err, name)
			requireClose(t, rowMajor(tc.want), rowMajor(got), tightTol, "axis %s theta %v", name, theta)
		}
	}

	axis := vector.Values{1, 1, 1}
	r, err := matrix.Rotation3x3(axis, 2*math.Pi/3)
	require.NoError(t, err)
	require.InDelta(t, 1.0, r.Determinant(), looseTol)
	requireClose(t, rowMajor(matrix.Identity3x3()), rowMajor(r.MatMul(r.Transpose())), looseTol)
	// One third of a turn about (1,1,1) permutes the axes.
	requireClose(t, []float64{0, 0, 1}, r.MulVec(vector.New3D(1, 0, 0)).Components(), looseTol)

	_, err = matrix.Rotation3x3(vector.Scalar(1), 1)
	require.ErrorIs(t, err, matrix.ErrDimension)
	_, err = matrix.Rotation3x3(vector.Values{1, 2}, 1)
	require.ErrorIs(t, err, matrix.ErrDimension)
}
