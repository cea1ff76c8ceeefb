// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// MatrixSuite groups construction, access and arithmetic tests.
type MatrixSuite struct {
	suite.Suite
}

func TestMatrixSuite(t *testing.T) {
	suite.Run(t, new(MatrixSuite))
}

// TestConstructorOrder: arguments are row-first, storage is column-major.
func (s *MatrixSuite) TestConstructorOrder() {
	m := matrix.New2x2(1, 2, 3, 4)
	require.Equal(s.T(), 2.0, m.M12())
	require.Equal(s.T(), 3.0, m.M21())
	require.Equal(s.T(), []float64{1, 3, 2, 4}, m.Components())
	require.Equal(s.T(), []float64{1, 2, 3, 4}, rowMajor(m))
}

// TestFactories covers the constant and diagonal builders.
func (s *MatrixSuite) TestFactories() {
	require.Equal(s.T(), matrix.New2x2(1, 0, 0, 1), matrix.Identity2x2())
	require.Equal(s.T(), matrix.New2x2(0, 0, 0, 0), matrix.Zero2x2())
	require.Equal(s.T(), matrix.Broadcast3x3(1), matrix.One3x3())

	d, err := matrix.Diagonal3x3(vector.Scalar(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Scale3x3(2, 2, 2), d)

	d, err = matrix.Diagonal3x3(vector.Values{1, 2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Scale3x3(1, 2, 3), d)

	_, err = matrix.Diagonal3x3(vector.Values{1, 2})
	require.ErrorIs(s.T(), err, matrix.ErrDimension)

	require.Equal(s.T(), matrix.New4x4(
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		0, 0, 0, 5,
	), matrix.Scale4x4(2, 3, 4, 5))
}

// TestFromRoundTrip: From(m.Components()) == m, including nested columns.
func (s *MatrixSuite) TestFromRoundTrip() {
	m := fixture3x3()
	back, err := matrix.From3x3(m.Components())
	require.NoError(s.T(), err)
	require.Equal(s.T(), m, back)

	var cols [][]float64
	for _, col := range m.All() {
		cols = append(cols, col.Components())
	}
	nested, err := matrix.FromNested3x3(cols)
	require.NoError(s.T(), err)
	require.Equal(s.T(), m, nested)

	ints, err := matrix.From2x2([]int{1, 3, 2, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(1, 2, 3, 4), ints)

	_, err = matrix.From3x3([]float64{1, 2, 3})
	require.ErrorIs(s.T(), err, matrix.ErrDimension)
	_, err = matrix.FromNested2x2([][]float64{{1, 2}, {3}})
	require.ErrorIs(s.T(), err, matrix.ErrDimension)
}

// TestEmbedding pads with the identity.
func (s *MatrixSuite) TestEmbedding() {
	m3 := matrix.From2x2To3x3(matrix.New2x2(1, 2, 3, 4))
	require.Equal(s.T(), matrix.New3x3(1, 2, 0, 3, 4, 0, 0, 0, 1), m3)

	m4 := matrix.From3x3To4x4(m3)
	require.Equal(s.T(), matrix.New4x4(
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), m4)
}

// TestColumnIndexing: integer access addresses columns.
func (s *MatrixSuite) TestColumnIndexing() {
	m := fixture3x3()
	require.Equal(s.T(), 3, m.Len())

	first, err := m.At(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.New3D(6, 4, 2), first)

	last, err := m.At(-1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.New3D(1, 5, 7), last)

	for _, i := range []int{3, -4} {
		_, err = m.At(i)
		require.ErrorIs(s.T(), err, matrix.ErrIndexOutOfRange, "At(%d)", i)

		var de *matrix.DimensionError
		require.True(s.T(), errors.As(err, &de))
		require.Equal(s.T(), matrix.Context3x3, de.Context)
	}

	cols := m.Slice(1, 10)
	require.Equal(s.T(), []vector.Vector3D{vector.New3D(1, -2, 8), vector.New3D(1, 5, 7)}, cols)
	require.Empty(s.T(), m.Slice(2, 1))

	n := 0
	for k, col := range m.All() {
		want, err := m.Column(k)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, col)
		n++
	}
	require.Equal(s.T(), 3, n)

	require.True(s.T(), m.Contains(-2))
	require.False(s.T(), m.Contains(3))
}

// TestNamedAccessors covers Mrc, ColumnK and RowK.
func (s *MatrixSuite) TestNamedAccessors() {
	m := fixture3x3()
	require.Equal(s.T(), 5.0, m.M23())
	require.Equal(s.T(), 8.0, m.M32())
	require.Equal(s.T(), vector.New3D(1, -2, 8), m.Column2())
	require.Equal(s.T(), vector.New3D(4, -2, 5), m.Row2())

	row, err := m.Row(-1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), vector.New3D(2, 8, 7), row)

	x, err := m.Entry(1, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, x)

	_, err = m.Entry(0, 3)
	require.ErrorIs(s.T(), err, matrix.ErrIndexOutOfRange)
	_, err = m.Row(3)
	require.ErrorIs(s.T(), err, matrix.ErrIndexOutOfRange)

	m.SetM23(-1)
	require.Equal(s.T(), -1.0, m.M23())
	m.SetM11(math.Copysign(0, -1))
	require.False(s.T(), math.Signbit(m.M11()))
}

// TestSetters: column/row assignment takes exactly N values; bad indices are recovered.
func (s *MatrixSuite) TestSetters() {
	m := matrix.Zero2x2()

	require.NoError(s.T(), m.SetColumn1(vector.Values{1, 2}))
	require.NoError(s.T(), m.SetRow2(vector.New2D(7, 8)))
	require.Equal(s.T(), matrix.New2x2(1, 0, 7, 8), m)

	require.NoError(s.T(), m.Set(0, 1, 9))
	require.NoError(s.T(), m.Set(-1, -1, 5))
	require.Equal(s.T(), matrix.New2x2(1, 9, 7, 5), m)

	require.NoError(s.T(), m.SetColumn(-1, vector.Values{3, 4}))
	require.Equal(s.T(), matrix.New2x2(1, 3, 7, 4), m)

	for name, err := range map[string]error{
		"Set row":         m.Set(2, 0, 1),
		"Set column":      m.Set(0, -3, 1),
		"SetColumn index": m.SetColumn(2, vector.Values{1, 2}),
		"SetRow index":    m.SetRow(-3, vector.Values{1, 2}),
	} {
		require.ErrorIs(s.T(), err, matrix.ErrIndexOutOfRange, name)
	}
	require.ErrorIs(s.T(), m.SetColumn2(vector.Scalar(1)), matrix.ErrDimension)
	require.ErrorIs(s.T(), m.SetRow1(vector.Values{1, 2, 3}), matrix.ErrDimension)
	require.Equal(s.T(), matrix.New2x2(1, 3, 7, 4), m)
}

// TestCoercion: scalar broadcasts, N values go on the diagonal, N² values are row-major.
func (s *MatrixSuite) TestCoercion() {
	m := matrix.New2x2(1, 2, 3, 4)

	got, err := m.Add(vector.Scalar(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(2, 3, 4, 5), got)

	got, err = m.Add(vector.Values{10, 20})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(11, 2, 3, 24), got)

	got, err = m.Add(vector.Values{1, 2, 3, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(2, 4, 6, 8), got)

	got, err = m.Sub(vector.Nested{{1, 2}, {3, 4}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Zero2x2(), got)

	got, err = m.Mul(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(1, 4, 9, 16), got)

	_, err = m.Add(vector.Values{1, 2, 3})
	require.ErrorIs(s.T(), err, matrix.ErrDimension)
	_, err = m.Add(nil)
	require.ErrorIs(s.T(), err, matrix.ErrUnsupportedOperand)
	_, err = m.Add(matrix.Identity3x3())
	require.ErrorIs(s.T(), err, matrix.ErrDimension)
}

// TestArithmeticForms covers the remaining operators and their reverse forms.
func (s *MatrixSuite) TestArithmeticForms() {
	m := matrix.New2x2(-7, 7, 2, 4)

	for _, tc := range []struct {
		name string
		op   func(vector.Operand) (matrix.Matrix2x2, error)
		o    vector.Operand
		want matrix.Matrix2x2
	}{
		{"Div", m.Div, vector.Scalar(2), matrix.New2x2(-3.5, 3.5, 1, 2)},
		{"FloorDiv", m.FloorDiv, vector.Scalar(2), matrix.New2x2(-4, 3, 1, 2)},
		{"Mod", m.Mod, vector.Scalar(3), matrix.New2x2(2, 1, 2, 1)},
		{"Pow", m.Pow, vector.Scalar(2), matrix.New2x2(49, 49, 4, 16)},
		{"RSub", m.RSub, vector.Scalar(1), matrix.New2x2(8, -6, -1, -3)},
		{"RDiv", m.RDiv, vector.Scalar(28), matrix.New2x2(-4, 4, 14, 7)},
		{"RAdd", m.RAdd, vector.Scalar(1), matrix.New2x2(-6, 8, 3, 5)},
		{"RMul", m.RMul, vector.Scalar(-1), matrix.New2x2(7, -7, -2, -4)},
		{"RFloorDiv", m.RFloorDiv, vector.Scalar(9), matrix.New2x2(-2, 1, 4, 2)},
		{"RMod", m.RMod, vector.Scalar(9), matrix.New2x2(-5, 2, 1, 1)},
		{"RPow", m.RPow, vector.Scalar(2), matrix.New2x2(1.0/128, 128, 4, 16)},
		{"Min", m.Min, vector.Scalar(3), matrix.New2x2(-7, 3, 2, 3)},
		{"Max", m.Max, vector.Scalar(3), matrix.New2x2(3, 7, 3, 4)},
	} {
		s.Run(tc.name, func() {
			got, err := tc.op(tc.o)
			require.NoError(s.T(), err)
			requireClose(s.T(), rowMajor(tc.want), rowMajor(got), tightTol)
		})
	}

	require.Equal(s.T(), matrix.New2x2(7, 7, 2, 4), m.Abs())
	require.Equal(s.T(), matrix.New2x2(7, -7, -2, -4), m.Neg())
	require.Equal(s.T(), m, m.Pos())
}

// TestModDiagonalOnly: N values reduce only the diagonal.
func (s *MatrixSuite) TestModDiagonalOnly() {
	m := matrix.New2x2(5, 7, 9, 11)
	got, err := m.Mod(vector.Values{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(1, 7, 9, 2), got)

	got, err = m.Mod(vector.Values{2, 2, 2, 2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(1, 1, 1, 1), got)
}

// TestComponentFunctions spot-checks the per-entry function set.
func (s *MatrixSuite) TestComponentFunctions() {
	m := matrix.New2x2(-1.5, 0.25, 2, 4)

	c, err := m.Clamp(vector.Scalar(0), vector.Scalar(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(0, 0.25, 1, 1), c)

	_, err = m.Clamp(vector.Scalar(0), vector.Values{1, 1})
	require.ErrorIs(s.T(), err, matrix.ErrMixedBounds)

	lerp, err := matrix.Zero2x2().Interpolate(matrix.Broadcast2x2(8), 0.25)
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.Broadcast2x2(2), lerp)

	step, err := m.Step(vector.Scalar(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(0, 0, 1, 1), step)

	ss, err := matrix.New2x2(0, 0.5, 1, 2).SmoothStep(vector.Scalar(0), vector.Scalar(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.New2x2(0, 0.5, 1, 1), ss)

	a2, err := matrix.Broadcast2x2(1).Atan2(vector.Scalar(1))
	require.NoError(s.T(), err)
	requireClose(s.T(), rowMajor(matrix.Broadcast2x2(math.Pi/4)), rowMajor(a2), tightTol)

	require.Equal(s.T(), matrix.New2x2(-1, 1, 1, 1), m.Sign())
	require.Equal(s.T(), matrix.New2x2(-2, 0, 2, 4), m.Floor())
	require.Equal(s.T(), matrix.New2x2(-1, 1, 2, 4), m.Ceil())
	require.Equal(s.T(), matrix.New2x2(0.5, 0.25, 0, 0), m.Fract())
	require.Equal(s.T(), matrix.New2x2(1, 2, 3, 4), matrix.New2x2(1, 4, 9, 16).Sqrt())

	eq, err := m.ApproxEqual(vector.Values{-1.5, 0.2505, 2, 5})
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{true, true, true, false}, eq)

	eq, err = m.ApproxEqual(vector.Values{-1.5, 0.2505, 2, 5}, scalar.WithEpsilon(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{true, true, true, true}, eq)
}

// TestComparisons: tuples come back in storage order.
func (s *MatrixSuite) TestComparisons() {
	m := matrix.New2x2(1, 2, 3, 4)

	lt, err := m.Lt(vector.Scalar(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{true, false, true, false}, lt)

	eq, err := m.Eq(matrix.New2x2(1, 0, 3, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{true, true, false, false}, eq)

	ne, err := m.Ne(vector.Values{1, 4})
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{false, true, true, false}, ne)

	le, err := m.Le(vector.Scalar(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{true, false, true, false}, le)

	gt, err := m.Gt(vector.Scalar(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{false, true, false, true}, gt)

	ge, err := m.Ge(vector.Scalar(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [4]bool{false, true, true, true}, ge)
}

// TestFormatting: storage walked column-major, N per line.
func (s *MatrixSuite) TestFormatting() {
	m := matrix.New2x2(1, 2, 3, 4)
	require.Equal(s.T(), "(1, 3,\n 2, 4)", m.String())
	require.Equal(s.T(), "(1.0, 3.0,\n 2.0, 4.0)", fmt.Sprintf("%.1f", m))
	require.Equal(s.T(), "Matrix2x2(1, 2, 3, 4)", fmt.Sprintf("%#v", m))
	require.Equal(s.T(), "Matrix3x3(1, 0, 0, 0, 1, 0, 0, 0, 1)", matrix.Identity3x3().GoString())
}

// TestNegativeZero: results never carry -0.0.
func (s *MatrixSuite) TestNegativeZero() {
	for _, x := range matrix.Zero3x3().Neg().Components() {
		require.False(s.T(), math.Signbit(x))
	}
	got, err := matrix.Zero2x2().Mul(vector.Scalar(-1))
	require.NoError(s.T(), err)
	for _, x := range got.Components() {
		require.False(s.T(), math.Signbit(x))
	}
}
