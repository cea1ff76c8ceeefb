// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/linalg/internal/kernel"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix4x4 is a 4x4 float64 matrix stored column-major.
//
// Entry Mrc (1-based row r, column c) lives at storage index (c-1)*4 + (r-1).
// Integer indexing (At, Slice, All) addresses columns. The zero value is the
// zero matrix; every operation returns a fresh value.
type Matrix4x4 struct {
	c [16]float64
}

// New4x4 builds a matrix from its entries in row-first order (m11, m12, …).
func New4x4(m11, m12, m13, m14, m21, m22, m23, m24, m31, m32, m33, m34, m41, m42, m43, m44 float64) Matrix4x4 {
	var m Matrix4x4
	kernel.Copy(m.c[:], fromRowMajor([]float64{m11, m12, m13, m14, m21, m22, m23, m24, m31, m32, m33, m34, m41, m42, m43, m44}, 4))

	return m
}

// Broadcast4x4 builds a matrix with every entry set to s.
func Broadcast4x4(s float64) Matrix4x4 {
	var m Matrix4x4
	kernel.Copy(m.c[:], kernel.Broadcast(16, s))

	return m
}

// Diagonal4x4 builds a matrix with o on the diagonal and 0 elsewhere.
// o is a scalar (repeated) or exactly 4 values.
func Diagonal4x4(o vector.Operand) (Matrix4x4, error) {
	op := opName(name4x4, opDiagonal)
	vals, isScalar, err := operandValues(o, op, Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	if isScalar {
		vals = kernel.Broadcast(4, vals[0])
	}
	if len(vals) != 4 {
		return Matrix4x4{}, matrixErrorf(op, Context4x4, ErrDimension, "expected 4 values, got %d", len(vals))
	}
	var m Matrix4x4
	kernel.Copy(m.c[:], diagonal(vals, 4))

	return m, nil
}

// From4x4 builds a matrix from exactly 16 values in storage (column-major)
// order, so From4x4(m.Components()) == m.
func From4x4[T scalar.Real](vals []T) (Matrix4x4, error) {
	if len(vals) != 16 {
		return Matrix4x4{}, matrixErrorf(opName(name4x4, opFrom), Context4x4, ErrDimension, "expected 16 values, got %d", len(vals))
	}
	var m Matrix4x4
	kernel.Copy(m.c[:], scalar.Widen(vals))

	return m, nil
}

// FromNested4x4 flattens cols one level and builds the matrix from the
// resulting 16 values in storage order; each inner slice is normally a column.
func FromNested4x4(cols [][]float64) (Matrix4x4, error) {
	vals, _ := vector.Nested(cols).Operand()
	if len(vals) != 16 {
		return Matrix4x4{}, matrixErrorf(opName(name4x4, opFromNested), Context4x4, ErrDimension, "expected 16 values, got %d", len(vals))
	}
	var m Matrix4x4
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Identity4x4 returns the identity matrix.
func Identity4x4() Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		kernel.Store(m.c[:], i*4+i, 1)
	}

	return m
}

// Zero4x4 returns the zero matrix.
func Zero4x4() Matrix4x4 { return Matrix4x4{} }

// One4x4 returns the matrix with every entry set to 1.
func One4x4() Matrix4x4 { return Broadcast4x4(1) }

// Len returns the number of columns, 4.
func (m Matrix4x4) Len() int { return 4 }

// At returns column i; negative i counts from the end.
func (m Matrix4x4) At(i int) (vector.Vector4D, error) { return m.Column(i) }

// Slice returns copies of columns [start:stop) with negative indices and clamping.
func (m Matrix4x4) Slice(start, stop int) []vector.Vector4D {
	lo, hi := kernel.SliceBounds(start, stop, 4)
	out := make([]vector.Vector4D, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, vec4(column(m.c[:], 4, k)))
	}

	return out
}

// All iterates (index, column) pairs.
func (m Matrix4x4) All() iter.Seq2[int, vector.Vector4D] {
	return func(yield func(int, vector.Vector4D) bool) {
		for k := 0; k < 4; k++ {
			if !yield(k, vec4(column(m.c[:], 4, k))) {
				return
			}
		}
	}
}

// Components returns a copy of the storage in column-major order.
func (m Matrix4x4) Components() []float64 { return slices.Clone(m.c[:]) }

// Contains reports whether some entry equals x.
func (m Matrix4x4) Contains(x float64) bool { return slices.Contains(m.c[:], x) }

// Operand implements vector.Operand; values are reported in row-major
// argument order, the order arithmetic operands are read in.
func (m Matrix4x4) Operand() ([]float64, bool) { return toRowMajor(m.c[:], 4), false }

func (m Matrix4x4) M11() float64 { return m.c[0] }
func (m Matrix4x4) M12() float64 { return m.c[4] }
func (m Matrix4x4) M13() float64 { return m.c[8] }
func (m Matrix4x4) M14() float64 { return m.c[12] }
func (m Matrix4x4) M21() float64 { return m.c[1] }
func (m Matrix4x4) M22() float64 { return m.c[5] }
func (m Matrix4x4) M23() float64 { return m.c[9] }
func (m Matrix4x4) M24() float64 { return m.c[13] }
func (m Matrix4x4) M31() float64 { return m.c[2] }
func (m Matrix4x4) M32() float64 { return m.c[6] }
func (m Matrix4x4) M33() float64 { return m.c[10] }
func (m Matrix4x4) M34() float64 { return m.c[14] }
func (m Matrix4x4) M41() float64 { return m.c[3] }
func (m Matrix4x4) M42() float64 { return m.c[7] }
func (m Matrix4x4) M43() float64 { return m.c[11] }
func (m Matrix4x4) M44() float64 { return m.c[15] }

func (m *Matrix4x4) SetM11(x float64) { kernel.Store(m.c[:], 0, x) }
func (m *Matrix4x4) SetM12(x float64) { kernel.Store(m.c[:], 4, x) }
func (m *Matrix4x4) SetM13(x float64) { kernel.Store(m.c[:], 8, x) }
func (m *Matrix4x4) SetM14(x float64) { kernel.Store(m.c[:], 12, x) }
func (m *Matrix4x4) SetM21(x float64) { kernel.Store(m.c[:], 1, x) }
func (m *Matrix4x4) SetM22(x float64) { kernel.Store(m.c[:], 5, x) }
func (m *Matrix4x4) SetM23(x float64) { kernel.Store(m.c[:], 9, x) }
func (m *Matrix4x4) SetM24(x float64) { kernel.Store(m.c[:], 13, x) }
func (m *Matrix4x4) SetM31(x float64) { kernel.Store(m.c[:], 2, x) }
func (m *Matrix4x4) SetM32(x float64) { kernel.Store(m.c[:], 6, x) }
func (m *Matrix4x4) SetM33(x float64) { kernel.Store(m.c[:], 10, x) }
func (m *Matrix4x4) SetM34(x float64) { kernel.Store(m.c[:], 14, x) }
func (m *Matrix4x4) SetM41(x float64) { kernel.Store(m.c[:], 3, x) }
func (m *Matrix4x4) SetM42(x float64) { kernel.Store(m.c[:], 7, x) }
func (m *Matrix4x4) SetM43(x float64) { kernel.Store(m.c[:], 11, x) }
func (m *Matrix4x4) SetM44(x float64) { kernel.Store(m.c[:], 15, x) }

// Column1 returns column 1.
func (m Matrix4x4) Column1() vector.Vector4D { return vec4(column(m.c[:], 4, 0)) }

// Row1 returns row 1.
func (m Matrix4x4) Row1() vector.Vector4D { return vec4(row(m.c[:], 4, 0)) }

// SetColumn1 assigns column 1 from exactly 4 values.
func (m *Matrix4x4) SetColumn1(o vector.Operand) error { return m.SetColumn(0, o) }

// SetRow1 assigns row 1 from exactly 4 values.
func (m *Matrix4x4) SetRow1(o vector.Operand) error { return m.SetRow(0, o) }

// Column2 returns column 2.
func (m Matrix4x4) Column2() vector.Vector4D { return vec4(column(m.c[:], 4, 1)) }

// Row2 returns row 2.
func (m Matrix4x4) Row2() vector.Vector4D { return vec4(row(m.c[:], 4, 1)) }

// SetColumn2 assigns column 2 from exactly 4 values.
func (m *Matrix4x4) SetColumn2(o vector.Operand) error { return m.SetColumn(1, o) }

// SetRow2 assigns row 2 from exactly 4 values.
func (m *Matrix4x4) SetRow2(o vector.Operand) error { return m.SetRow(1, o) }

// Column3 returns column 3.
func (m Matrix4x4) Column3() vector.Vector4D { return vec4(column(m.c[:], 4, 2)) }

// Row3 returns row 3.
func (m Matrix4x4) Row3() vector.Vector4D { return vec4(row(m.c[:], 4, 2)) }

// SetColumn3 assigns column 3 from exactly 4 values.
func (m *Matrix4x4) SetColumn3(o vector.Operand) error { return m.SetColumn(2, o) }

// SetRow3 assigns row 3 from exactly 4 values.
func (m *Matrix4x4) SetRow3(o vector.Operand) error { return m.SetRow(2, o) }

// Column4 returns column 4.
func (m Matrix4x4) Column4() vector.Vector4D { return vec4(column(m.c[:], 4, 3)) }

// Row4 returns row 4.
func (m Matrix4x4) Row4() vector.Vector4D { return vec4(row(m.c[:], 4, 3)) }

// SetColumn4 assigns column 4 from exactly 4 values.
func (m *Matrix4x4) SetColumn4(o vector.Operand) error { return m.SetColumn(3, o) }

// SetRow4 assigns row 4 from exactly 4 values.
func (m *Matrix4x4) SetRow4(o vector.Operand) error { return m.SetRow(3, o) }


// Column returns column k (0-based; negative counts from the end).
func (m Matrix4x4) Column(k int) (vector.Vector4D, error) {
	idx, ok := kernel.Index(k, 4)
	if !ok {
		return vector.Vector4D{}, matrixErrorf(opName(name4x4, opColumn), Context4x4, ErrIndexOutOfRange, "column %d not in [-4, 4)", k)
	}

	return vec4(column(m.c[:], 4, idx)), nil
}

// Row returns row k (0-based; negative counts from the end).
func (m Matrix4x4) Row(k int) (vector.Vector4D, error) {
	idx, ok := kernel.Index(k, 4)
	if !ok {
		return vector.Vector4D{}, matrixErrorf(opName(name4x4, opRow), Context4x4, ErrIndexOutOfRange, "row %d not in [-4, 4)", k)
	}

	return vec4(row(m.c[:], 4, idx)), nil
}

// Entry returns the entry at row r, column c (0-based; negatives allowed).
func (m Matrix4x4) Entry(r, c int) (float64, error) {
	ri, rok := kernel.Index(r, 4)
	ci, cok := kernel.Index(c, 4)
	if !rok || !cok {
		return 0, matrixErrorf(opName(name4x4, opEntry), Context4x4, ErrIndexOutOfRange, "entry (%d, %d)", r, c)
	}

	return m.c[ci*4+ri], nil
}

// Set writes x at row r, column c (0-based; negatives allowed).
func (m *Matrix4x4) Set(r, c int, x float64) error {
	return safeApply(opName(name4x4, opSet), Context4x4, func() {
		kernel.Store(column(m.c[:], 4, resolve(c, 4)), resolve(r, 4), x)
	})
}

// SetColumn assigns column k from exactly 4 values.
func (m *Matrix4x4) SetColumn(k int, o vector.Operand) error {
	op := opName(name4x4, opSetColumn)
	vals, err := vector.CoerceSequence(o, 4, op, Context4x4)
	if err != nil {
		return err
	}

	return safeApply(op, Context4x4, func() {
		kernel.Copy(column(m.c[:], 4, resolve(k, 4)), vals)
	})
}

// SetRow assigns row k from exactly 4 values.
func (m *Matrix4x4) SetRow(k int, o vector.Operand) error {
	op := opName(name4x4, opSetRow)
	vals, err := vector.CoerceSequence(o, 4, op, Context4x4)
	if err != nil {
		return err
	}

	return safeApply(op, Context4x4, func() {
		r := resolve(k, 4)
		for j, x := range vals {
			kernel.Store(column(m.c[:], 4, j), r, x)
		}
	})
}

// Eq compares entry-wise for equality, in storage order.
func (m Matrix4x4) Eq(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Eq) }

// Ne compares entry-wise for inequality, in storage order.
func (m Matrix4x4) Ne(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Ne) }

// Lt compares entry-wise with <, in storage order.
func (m Matrix4x4) Lt(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Lt) }

// Le compares entry-wise with <=, in storage order.
func (m Matrix4x4) Le(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Le) }

// Gt compares entry-wise with >, in storage order.
func (m Matrix4x4) Gt(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Gt) }

// Ge compares entry-wise with >=, in storage order.
func (m Matrix4x4) Ge(o vector.Operand) ([16]bool, error) { return m.compare(o, kernel.Ge) }

// ApproxEqual reports |m_i - o_i| < eps per entry, in storage order.
func (m Matrix4x4) ApproxEqual(o vector.Operand, opts ...scalar.Option) ([16]bool, error) {
	tol := scalar.NewOptions(opts...)

	return m.compareAs(opApproxEqual, o, tol.Equal)
}

func (m Matrix4x4) compare(o vector.Operand, pred kernel.Predicate) ([16]bool, error) {
	return m.compareAs(opCompare, o, pred)
}

func (m Matrix4x4) compareAs(op string, o vector.Operand, pred kernel.Predicate) ([16]bool, error) {
	var out [16]bool
	rhs, err := coerce(o, 4, opName(name4x4, op), Context4x4)
	if err != nil {
		return out, err
	}
	kernel.Compare(out[:], m.c[:], rhs, pred)

	return out, nil
}

// Format implements fmt.Formatter. Storage is walked column-major, 4
// values per line; %#v prints the constructor form.
func (m Matrix4x4) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, m.GoString())

		return
	}
	kernel.FormatTuple(f, verb, m.c[:], 4)
}

// String renders the %v form.
func (m Matrix4x4) String() string { return fmt.Sprintf("%v", m) }

// GoString renders "Matrix4x4(m11, m12, …)" in constructor argument order.
func (m Matrix4x4) GoString() string { return kernel.Repr(name4x4, toRowMajor(m.c[:], 4)) }

// binary resolves o and combines it with m; reverse swaps the operand order.
func (m Matrix4x4) binary(op string, o vector.Operand, k combiner, reverse bool) (Matrix4x4, error) {
	rhs, err := coerce(o, 4, opName(name4x4, op), Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	var out Matrix4x4
	if reverse {
		k(out.c[:], rhs, m.c[:])
	} else {
		k(out.c[:], m.c[:], rhs)
	}

	return out, nil
}

func (m Matrix4x4) unary(f kernel.Unary) Matrix4x4 {
	var out Matrix4x4
	kernel.Map(out.c[:], m.c[:], f)

	return out
}

// Add returns m + o entry-wise.
func (m Matrix4x4) Add(o vector.Operand) (Matrix4x4, error) { return m.binary(opAdd, o, combineAdd, false) }

// Sub returns m - o entry-wise.
func (m Matrix4x4) Sub(o vector.Operand) (Matrix4x4, error) { return m.binary(opSub, o, combineSub, false) }

// Mul returns the entry-wise product; see MatMul for the matrix product.
func (m Matrix4x4) Mul(o vector.Operand) (Matrix4x4, error) { return m.binary(opMul, o, combineMul, false) }

// Div returns m / o entry-wise.
func (m Matrix4x4) Div(o vector.Operand) (Matrix4x4, error) { return m.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(m / o) entry-wise.
func (m Matrix4x4) FloorDiv(o vector.Operand) (Matrix4x4, error) {
	return m.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns m mod o entry-wise. A sequence of exactly 4 values reduces
// only the diagonal; off-diagonal entries pass through.
func (m Matrix4x4) Mod(o vector.Operand) (Matrix4x4, error) {
	if d, ok := diagonalOperand(o, 4); ok {
		out := m
		for i, x := range d {
			kernel.Store(out.c[:], i*4+i, scalar.Mod(m.c[i*4+i], x))
		}

		return out, nil
	}

	return m.binary(opMod, o, combineMod, false)
}

// Pow returns m ** o entry-wise.
func (m Matrix4x4) Pow(o vector.Operand) (Matrix4x4, error) { return m.binary(opPow, o, combinePow, false) }

// RAdd returns o + m.
func (m Matrix4x4) RAdd(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - m.
func (m Matrix4x4) RSub(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * m entry-wise.
func (m Matrix4x4) RMul(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / m entry-wise.
func (m Matrix4x4) RDiv(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / m) entry-wise.
func (m Matrix4x4) RFloorDiv(o vector.Operand) (Matrix4x4, error) {
	return m.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod m entry-wise.
func (m Matrix4x4) RMod(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** m entry-wise.
func (m Matrix4x4) RPow(o vector.Operand) (Matrix4x4, error) { return m.binary("R"+opPow, o, combinePow, true) }

func (m Matrix4x4) Abs() Matrix4x4 { return m.unary(math.Abs) }
func (m Matrix4x4) Pos() Matrix4x4 { return m.unary(identity) }
func (m Matrix4x4) Neg() Matrix4x4 { return m.unary(neg) }

// Min returns the entry-wise minimum of m and o.
func (m Matrix4x4) Min(o vector.Operand) (Matrix4x4, error) { return m.binary(opMin, o, combineMin, false) }

// Max returns the entry-wise maximum of m and o.
func (m Matrix4x4) Max(o vector.Operand) (Matrix4x4, error) { return m.binary(opMax, o, combineMax, false) }

// Clamp limits every entry to [lo, hi]; both bounds must share a shape.
func (m Matrix4x4) Clamp(lo, hi vector.Operand) (Matrix4x4, error) {
	l, h, err := coerceBounds(lo, hi, 4, opName(name4x4, opClamp), Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	var out Matrix4x4
	kernel.Zip3(out.c[:], m.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns m*(1-t) + to*t.
func (m Matrix4x4) Interpolate(to vector.Operand, t float64) (Matrix4x4, error) {
	rhs, err := coerce(to, 4, opName(name4x4, opInterpolate), Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	var out Matrix4x4
	kernel.Zip(out.c[:], m.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > m and 1 elsewhere.
func (m Matrix4x4) Step(edge vector.Operand) (Matrix4x4, error) {
	return m.binary(opStep, edge, combineStep, true)
}

// SmoothStep applies scalar.SmoothStep(e0, e1, m) per entry.
func (m Matrix4x4) SmoothStep(e0, e1 vector.Operand) (Matrix4x4, error) {
	op := opName(name4x4, opSmoothStep)
	lo, err := coerce(e0, 4, op, Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	hi, err := coerce(e1, 4, op, Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	var out Matrix4x4
	kernel.Zip3(out.c[:], lo, hi, m.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(m, o) per entry.
func (m Matrix4x4) Atan2(o vector.Operand) (Matrix4x4, error) {
	return m.binary(opAtan2, o, combineAtan2, false)
}

func (m Matrix4x4) Sign() Matrix4x4        { return m.unary(scalar.Sign) }
func (m Matrix4x4) Floor() Matrix4x4       { return m.unary(math.Floor) }
func (m Matrix4x4) Ceil() Matrix4x4        { return m.unary(math.Ceil) }
func (m Matrix4x4) Fract() Matrix4x4       { return m.unary(scalar.Fract) }
func (m Matrix4x4) Sqrt() Matrix4x4        { return m.unary(math.Sqrt) }
func (m Matrix4x4) InverseSqrt() Matrix4x4 { return m.unary(scalar.InverseSqrt) }
func (m Matrix4x4) Exp() Matrix4x4         { return m.unary(math.Exp) }
func (m Matrix4x4) Exp2() Matrix4x4        { return m.unary(math.Exp2) }
func (m Matrix4x4) Exp10() Matrix4x4       { return m.unary(scalar.Exp10) }
func (m Matrix4x4) Log() Matrix4x4         { return m.unary(math.Log) }
func (m Matrix4x4) Log2() Matrix4x4        { return m.unary(math.Log2) }
func (m Matrix4x4) Log10() Matrix4x4       { return m.unary(math.Log10) }
func (m Matrix4x4) Radians() Matrix4x4     { return m.unary(scalar.Radians) }
func (m Matrix4x4) Degrees() Matrix4x4     { return m.unary(scalar.Degrees) }
func (m Matrix4x4) Sin() Matrix4x4         { return m.unary(math.Sin) }
func (m Matrix4x4) Cos() Matrix4x4         { return m.unary(math.Cos) }
func (m Matrix4x4) Tan() Matrix4x4         { return m.unary(math.Tan) }
func (m Matrix4x4) Sinh() Matrix4x4        { return m.unary(math.Sinh) }
func (m Matrix4x4) Cosh() Matrix4x4        { return m.unary(math.Cosh) }
func (m Matrix4x4) Tanh() Matrix4x4        { return m.unary(math.Tanh) }
func (m Matrix4x4) Asin() Matrix4x4        { return m.unary(math.Asin) }
func (m Matrix4x4) Acos() Matrix4x4        { return m.unary(math.Acos) }
func (m Matrix4x4) Atan() Matrix4x4        { return m.unary(math.Atan) }
func (m Matrix4x4) Asinh() Matrix4x4       { return m.unary(math.Asinh) }
func (m Matrix4x4) Acosh() Matrix4x4       { return m.unary(math.Acosh) }
func (m Matrix4x4) Atanh() Matrix4x4       { return m.unary(math.Atanh) }

// MatMul returns the matrix product m·o; column k of the result is
// m·(column k of o).
func (m Matrix4x4) MatMul(o Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	kernel.MatMul(out.c[:], m.c[:], o.c[:], 4)

	return out
}

// MulVec returns m·v with v treated as a column.
func (m Matrix4x4) MulVec(v vector.Vector4D) vector.Vector4D {
	var out [4]float64
	kernel.MatVec(out[:], m.c[:], v.Components(), 4)

	return vec4(out[:])
}

// MatMulOp is the operand form of the product. A Matrix4x4 or 16 values
// (row-major) yield a Matrix4x4; a vector.Vector4D or 4 values yield a vector.Vector4D.
func (m Matrix4x4) MatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name4x4, opMatMul)
	switch rhs := o.(type) {
	case Matrix4x4:
		return m.MatMul(rhs), nil
	case vector.Vector4D:
		return m.MulVec(rhs), nil
	}
	vals, isScalar, err := operandValues(o, op, Context4x4)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar:
		return nil, matrixErrorf(op, Context4x4, ErrUnsupportedOperand, "scalar operand; use Mul")
	case len(vals) == 4:
		return m.MulVec(vec4(vals)), nil
	case len(vals) == 16:
		var rhs Matrix4x4
		kernel.Copy(rhs.c[:], fromRowMajor(vals, 4))

		return m.MatMul(rhs), nil
	default:
		return nil, matrixErrorf(op, Context4x4, ErrDimension, "expected 4 or 16 values, got %d", len(vals))
	}
}

// RMatMulOp returns o·m. Only matrix operands (Matrix4x4 or 16 row-major values)
// are accepted; a vector on the left is ErrUnsupportedOperand.
func (m Matrix4x4) RMatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name4x4, opRMatMul)
	if lhs, ok := o.(Matrix4x4); ok {
		return lhs.MatMul(m), nil
	}
	vals, isScalar, err := operandValues(o, op, Context4x4)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar || len(vals) == 4:
		return nil, matrixErrorf(op, Context4x4, ErrUnsupportedOperand, "vector·matrix is not defined")
	case len(vals) == 16:
		var lhs Matrix4x4
		kernel.Copy(lhs.c[:], fromRowMajor(vals, 4))

		return lhs.MatMul(m), nil
	default:
		return nil, matrixErrorf(op, Context4x4, ErrDimension, "expected 16 values, got %d", len(vals))
	}
}

// Determinant returns det(m).
func (m Matrix4x4) Determinant() float64 { return determinant(m.c[:], 4) }

// Trace returns the sum of the diagonal.
func (m Matrix4x4) Trace() float64 { return trace(m.c[:], 4) }

// Transpose returns mᵀ.
func (m Matrix4x4) Transpose() Matrix4x4 {
	var out Matrix4x4
	transpose(out.c[:], m.c[:], 4)

	return out
}

// Inverse returns m⁻¹ as adj(m)/det(m); a zero determinant is ErrNoInverse.
func (m Matrix4x4) Inverse() (Matrix4x4, error) {
	var out Matrix4x4
	if !inverse(out.c[:], m.c[:], 4) {
		return Matrix4x4{}, matrixErrorf(opName(name4x4, opInverse), Context4x4, ErrNoInverse, "")
	}

	return out, nil
}

// Normalize divides every column by det(m).
func (m Matrix4x4) Normalize() Matrix4x4 {
	det := m.Determinant()

	return m.unary(func(x float64) float64 { return x / det })
}

// ClearRotation keeps only the column magnitudes: column k becomes
// (…, |column k|, …) with the length at row k.
func (m Matrix4x4) ClearRotation() Matrix4x4 {
	var out Matrix4x4
	clearRotation(out.c[:], m.c[:], 4)

	return out
}

// ClearScale normalises every column to unit length.
func (m Matrix4x4) ClearScale() Matrix4x4 {
	var out Matrix4x4
	clearScale(out.c[:], m.c[:], 4)

	return out
}

// as4x4 resolves a matrix-like operand: a Matrix4x4 is used as-is, a scalar fills
// the diagonal, 4 values form the diagonal, 16 values are row-major.
func as4x4(o vector.Operand, op string) (Matrix4x4, error) {
	if m, ok := o.(Matrix4x4); ok {
		return m, nil
	}
	vals, err := coerceMatrixLike(o, 4, opName(name4x4, op), Context4x4)
	if err != nil {
		return Matrix4x4{}, err
	}
	var m Matrix4x4
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Determinant4x4 returns the determinant of a matrix-like operand.
func Determinant4x4(o vector.Operand) (float64, error) {
	m, err := as4x4(o, opDeterminant)
	if err != nil {
		return 0, err
	}

	return m.Determinant(), nil
}

// Transpose4x4 returns the transpose of a matrix-like operand.
func Transpose4x4(o vector.Operand) (Matrix4x4, error) {
	m, err := as4x4(o, opTranspose)
	if err != nil {
		return Matrix4x4{}, err
	}

	return m.Transpose(), nil
}

// Inverse4x4 returns the inverse of a matrix-like operand.
func Inverse4x4(o vector.Operand) (Matrix4x4, error) {
	m, err := as4x4(o, opInverse)
	if err != nil {
		return Matrix4x4{}, err
	}

	return m.Inverse()
}

// Normalize4x4 divides a matrix-like operand by its determinant.
func Normalize4x4(o vector.Operand) (Matrix4x4, error) {
	m, err := as4x4(o, opNormalize)
	if err != nil {
		return Matrix4x4{}, err
	}

	return m.Normalize(), nil
}

// ClearRotation4x4 is ClearRotation on a matrix-like operand.
func ClearRotation4x4(o vector.Operand) (Matrix4x4, error) {
	m, err := as4x4(o, opClearRot)
	if err != nil {
		return Matrix4x4{}, err
	}

	return m.ClearRotation(), nil
}

// ClearScale4x4 is ClearScale on a matrix-like operand.
func ClearScale4x4(o vector.Operand) (Matrix4x4, error) {
	m, err := as4x4(o, opClearScale)
	if err != nil {
		return Matrix4x4{}, err
	}

	return m.ClearScale(), nil
}

func vec4(c []float64) vector.Vector4D { return vector.New4D(c[0], c[1], c[2], c[3]) }

// Scale4x4 returns diag(x, y, z, w).
func Scale4x4(x, y, z, w float64) Matrix4x4 {
	return New4x4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, w,
	)
}

// From3x3To4x4 embeds m into the top-left corner of the 4x4 identity.
func From3x3To4x4(m Matrix3x3) Matrix4x4 {
	return New4x4(
		m.M11(), m.M12(), m.M13(), 0,
		m.M21(), m.M22(), m.M23(), 0,
		m.M31(), m.M32(), m.M33(), 0,
		0, 0, 0, 1,
	)
}
