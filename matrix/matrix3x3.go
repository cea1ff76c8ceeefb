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

// Matrix3x3 is a 3x3 float64 matrix stored column-major.
//
// Entry Mrc (1-based row r, column c) lives at storage index (c-1)*3 + (r-1).
// Integer indexing (At, Slice, All) addresses columns. The zero value is the
// zero matrix; every operation returns a fresh value.
type Matrix3x3 struct {
	c [9]float64
}

// New3x3 builds a matrix from its entries in row-first order (m11, m12, …).
func New3x3(m11, m12, m13, m21, m22, m23, m31, m32, m33 float64) Matrix3x3 {
	var m Matrix3x3
	kernel.Copy(m.c[:], fromRowMajor([]float64{m11, m12, m13, m21, m22, m23, m31, m32, m33}, 3))

	return m
}

// Broadcast3x3 builds a matrix with every entry set to s.
func Broadcast3x3(s float64) Matrix3x3 {
	var m Matrix3x3
	kernel.Copy(m.c[:], kernel.Broadcast(9, s))

	return m
}

// Diagonal3x3 builds a matrix with o on the diagonal and 0 elsewhere.
// o is a scalar (repeated) or exactly 3 values.
func Diagonal3x3(o vector.Operand) (Matrix3x3, error) {
	op := opName(name3x3, opDiagonal)
	vals, isScalar, err := operandValues(o, op, Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	if isScalar {
		vals = kernel.Broadcast(3, vals[0])
	}
	if len(vals) != 3 {
		return Matrix3x3{}, matrixErrorf(op, Context3x3, ErrDimension, "expected 3 values, got %d", len(vals))
	}
	var m Matrix3x3
	kernel.Copy(m.c[:], diagonal(vals, 3))

	return m, nil
}

// From3x3 builds a matrix from exactly 9 values in storage (column-major)
// order, so From3x3(m.Components()) == m.
func From3x3[T scalar.Real](vals []T) (Matrix3x3, error) {
	if len(vals) != 9 {
		return Matrix3x3{}, matrixErrorf(opName(name3x3, opFrom), Context3x3, ErrDimension, "expected 9 values, got %d", len(vals))
	}
	var m Matrix3x3
	kernel.Copy(m.c[:], scalar.Widen(vals))

	return m, nil
}

// FromNested3x3 flattens cols one level and builds the matrix from the
// resulting 9 values in storage order; each inner slice is normally a column.
func FromNested3x3(cols [][]float64) (Matrix3x3, error) {
	vals, _ := vector.Nested(cols).Operand()
	if len(vals) != 9 {
		return Matrix3x3{}, matrixErrorf(opName(name3x3, opFromNested), Context3x3, ErrDimension, "expected 9 values, got %d", len(vals))
	}
	var m Matrix3x3
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Identity3x3 returns the identity matrix.
func Identity3x3() Matrix3x3 {
	var m Matrix3x3
	for i := 0; i < 3; i++ {
		kernel.Store(m.c[:], i*3+i, 1)
	}

	return m
}

// Zero3x3 returns the zero matrix.
func Zero3x3() Matrix3x3 { return Matrix3x3{} }

// One3x3 returns the matrix with every entry set to 1.
func One3x3() Matrix3x3 { return Broadcast3x3(1) }

// Len returns the number of columns, 3.
func (m Matrix3x3) Len() int { return 3 }

// At returns column i; negative i counts from the end.
func (m Matrix3x3) At(i int) (vector.Vector3D, error) { return m.Column(i) }

// Slice returns copies of columns [start:stop) with negative indices and clamping.
func (m Matrix3x3) Slice(start, stop int) []vector.Vector3D {
	lo, hi := kernel.SliceBounds(start, stop, 3)
	out := make([]vector.Vector3D, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, vec3(column(m.c[:], 3, k)))
	}

	return out
}

// All iterates (index, column) pairs.
func (m Matrix3x3) All() iter.Seq2[int, vector.Vector3D] {
	return func(yield func(int, vector.Vector3D) bool) {
		for k := 0; k < 3; k++ {
			if !yield(k, vec3(column(m.c[:], 3, k))) {
				return
			}
		}
	}
}

// Components returns a copy of the storage in column-major order.
func (m Matrix3x3) Components() []float64 { return slices.Clone(m.c[:]) }

// Contains reports whether some entry equals x.
func (m Matrix3x3) Contains(x float64) bool { return slices.Contains(m.c[:], x) }

// Operand implements vector.Operand; values are reported in row-major
// argument order, the order arithmetic operands are read in.
func (m Matrix3x3) Operand() ([]float64, bool) { return toRowMajor(m.c[:], 3), false }

func (m Matrix3x3) M11() float64 { return m.c[0] }
func (m Matrix3x3) M12() float64 { return m.c[3] }
func (m Matrix3x3) M13() float64 { return m.c[6] }
func (m Matrix3x3) M21() float64 { return m.c[1] }
func (m Matrix3x3) M22() float64 { return m.c[4] }
func (m Matrix3x3) M23() float64 { return m.c[7] }
func (m Matrix3x3) M31() float64 { return m.c[2] }
func (m Matrix3x3) M32() float64 { return m.c[5] }
func (m Matrix3x3) M33() float64 { return m.c[8] }

func (m *Matrix3x3) SetM11(x float64) { kernel.Store(m.c[:], 0, x) }
func (m *Matrix3x3) SetM12(x float64) { kernel.Store(m.c[:], 3, x) }
func (m *Matrix3x3) SetM13(x float64) { kernel.Store(m.c[:], 6, x) }
func (m *Matrix3x3) SetM21(x float64) { kernel.Store(m.c[:], 1, x) }
func (m *Matrix3x3) SetM22(x float64) { kernel.Store(m.c[:], 4, x) }
func (m *Matrix3x3) SetM23(x float64) { kernel.Store(m.c[:], 7, x) }
func (m *Matrix3x3) SetM31(x float64) { kernel.Store(m.c[:], 2, x) }
func (m *Matrix3x3) SetM32(x float64) { kernel.Store(m.c[:], 5, x) }
func (m *Matrix3x3) SetM33(x float64) { kernel.Store(m.c[:], 8, x) }

// Column1 returns column 1.
func (m Matrix3x3) Column1() vector.Vector3D { return vec3(column(m.c[:], 3, 0)) }

// Row1 returns row 1.
func (m Matrix3x3) Row1() vector.Vector3D { return vec3(row(m.c[:], 3, 0)) }

// SetColumn1 assigns column 1 from exactly 3 values.
func (m *Matrix3x3) SetColumn1(o vector.Operand) error { return m.SetColumn(0, o) }

// SetRow1 assigns row 1 from exactly 3 values.
func (m *Matrix3x3) SetRow1(o vector.Operand) error { return m.SetRow(0, o) }

// Column2 returns column 2.
func (m Matrix3x3) Column2() vector.Vector3D { return vec3(column(m.c[:], 3, 1)) }

// Row2 returns row 2.
func (m Matrix3x3) Row2() vector.Vector3D { return vec3(row(m.c[:], 3, 1)) }

// SetColumn2 assigns column 2 from exactly 3 values.
func (m *Matrix3x3) SetColumn2(o vector.Operand) error { return m.SetColumn(1, o) }

// SetRow2 assigns row 2 from exactly 3 values.
func (m *Matrix3x3) SetRow2(o vector.Operand) error { return m.SetRow(1, o) }

// Column3 returns column 3.
func (m Matrix3x3) Column3() vector.Vector3D { return vec3(column(m.c[:], 3, 2)) }

// Row3 returns row 3.
func (m Matrix3x3) Row3() vector.Vector3D { return vec3(row(m.c[:], 3, 2)) }

// SetColumn3 assigns column 3 from exactly 3 values.
func (m *Matrix3x3) SetColumn3(o vector.Operand) error { return m.SetColumn(2, o) }

// SetRow3 assigns row 3 from exactly 3 values.
func (m *Matrix3x3) SetRow3(o vector.Operand) error { return m.SetRow(2, o) }


// Column returns column k (0-based; negative counts from the end).
func (m Matrix3x3) Column(k int) (vector.Vector3D, error) {
	idx, ok := kernel.Index(k, 3)
	if !ok {
		return vector.Vector3D{}, matrixErrorf(opName(name3x3, opColumn), Context3x3, ErrIndexOutOfRange, "column %d not in [-3, 3)", k)
	}

	return vec3(column(m.c[:], 3, idx)), nil
}

// Row returns row k (0-based; negative counts from the end).
func (m Matrix3x3) Row(k int) (vector.Vector3D, error) {
	idx, ok := kernel.Index(k, 3)
	if !ok {
		return vector.Vector3D{}, matrixErrorf(opName(name3x3, opRow), Context3x3, ErrIndexOutOfRange, "row %d not in [-3, 3)", k)
	}

	return vec3(row(m.c[:], 3, idx)), nil
}

// Entry returns the entry at row r, column c (0-based; negatives allowed).
func (m Matrix3x3) Entry(r, c int) (float64, error) {
	ri, rok := kernel.Index(r, 3)
	ci, cok := kernel.Index(c, 3)
	if !rok || !cok {
		return 0, matrixErrorf(opName(name3x3, opEntry), Context3x3, ErrIndexOutOfRange, "entry (%d, %d)", r, c)
	}

	return m.c[ci*3+ri], nil
}

// Set writes x at row r, column c (0-based; negatives allowed).
func (m *Matrix3x3) Set(r, c int, x float64) error {
	return safeApply(opName(name3x3, opSet), Context3x3, func() {
		kernel.Store(column(m.c[:], 3, resolve(c, 3)), resolve(r, 3), x)
	})
}

// SetColumn assigns column k from exactly 3 values.
func (m *Matrix3x3) SetColumn(k int, o vector.Operand) error {
	op := opName(name3x3, opSetColumn)
	vals, err := vector.CoerceSequence(o, 3, op, Context3x3)
	if err != nil {
		return err
	}

	return safeApply(op, Context3x3, func() {
		kernel.Copy(column(m.c[:], 3, resolve(k, 3)), vals)
	})
}

// SetRow assigns row k from exactly 3 values.
func (m *Matrix3x3) SetRow(k int, o vector.Operand) error {
	op := opName(name3x3, opSetRow)
	vals, err := vector.CoerceSequence(o, 3, op, Context3x3)
	if err != nil {
		return err
	}

	return safeApply(op, Context3x3, func() {
		r := resolve(k, 3)
		for j, x := range vals {
			kernel.Store(column(m.c[:], 3, j), r, x)
		}
	})
}

// Eq compares entry-wise for equality, in storage order.
func (m Matrix3x3) Eq(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Eq) }

// Ne compares entry-wise for inequality, in storage order.
func (m Matrix3x3) Ne(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Ne) }

// Lt compares entry-wise with <, in storage order.
func (m Matrix3x3) Lt(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Lt) }

// Le compares entry-wise with <=, in storage order.
func (m Matrix3x3) Le(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Le) }

// Gt compares entry-wise with >, in storage order.
func (m Matrix3x3) Gt(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Gt) }

// Ge compares entry-wise with >=, in storage order.
func (m Matrix3x3) Ge(o vector.Operand) ([9]bool, error) { return m.compare(o, kernel.Ge) }

// ApproxEqual reports |m_i - o_i| < eps per entry, in storage order.
func (m Matrix3x3) ApproxEqual(o vector.Operand, opts ...scalar.Option) ([9]bool, error) {
	tol := scalar.NewOptions(opts...)

	return m.compareAs(opApproxEqual, o, tol.Equal)
}

func (m Matrix3x3) compare(o vector.Operand, pred kernel.Predicate) ([9]bool, error) {
	return m.compareAs(opCompare, o, pred)
}

func (m Matrix3x3) compareAs(op string, o vector.Operand, pred kernel.Predicate) ([9]bool, error) {
	var out [9]bool
	rhs, err := coerce(o, 3, opName(name3x3, op), Context3x3)
	if err != nil {
		return out, err
	}
	kernel.Compare(out[:], m.c[:], rhs, pred)

	return out, nil
}

// Format implements fmt.Formatter. Storage is walked column-major, 3
// values per line; %#v prints the constructor form.
func (m Matrix3x3) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, m.GoString())

		return
	}
	kernel.FormatTuple(f, verb, m.c[:], 3)
}

// String renders the %v form.
func (m Matrix3x3) String() string { return fmt.Sprintf("%v", m) }

// GoString renders "Matrix3x3(m11, m12, …)" in constructor argument order.
func (m Matrix3x3) GoString() string { return kernel.Repr(name3x3, toRowMajor(m.c[:], 3)) }

// binary resolves o and combines it with m; reverse swaps the operand order.
func (m Matrix3x3) binary(op string, o vector.Operand, k combiner, reverse bool) (Matrix3x3, error) {
	rhs, err := coerce(o, 3, opName(name3x3, op), Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	var out Matrix3x3
	if reverse {
		k(out.c[:], rhs, m.c[:])
	} else {
		k(out.c[:], m.c[:], rhs)
	}

	return out, nil
}

func (m Matrix3x3) unary(f kernel.Unary) Matrix3x3 {
	var out Matrix3x3
	kernel.Map(out.c[:], m.c[:], f)

	return out
}

// Add returns m + o entry-wise.
func (m Matrix3x3) Add(o vector.Operand) (Matrix3x3, error) { return m.binary(opAdd, o, combineAdd, false) }

// Sub returns m - o entry-wise.
func (m Matrix3x3) Sub(o vector.Operand) (Matrix3x3, error) { return m.binary(opSub, o, combineSub, false) }

// Mul returns the entry-wise product; see MatMul for the matrix product.
func (m Matrix3x3) Mul(o vector.Operand) (Matrix3x3, error) { return m.binary(opMul, o, combineMul, false) }

// Div returns m / o entry-wise.
func (m Matrix3x3) Div(o vector.Operand) (Matrix3x3, error) { return m.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(m / o) entry-wise.
func (m Matrix3x3) FloorDiv(o vector.Operand) (Matrix3x3, error) {
	return m.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns m mod o entry-wise. A sequence of exactly 3 values reduces
// only the diagonal; off-diagonal entries pass through.
func (m Matrix3x3) Mod(o vector.Operand) (Matrix3x3, error) {
	if d, ok := diagonalOperand(o, 3); ok {
		out := m
		for i, x := range d {
			kernel.Store(out.c[:], i*3+i, scalar.Mod(m.c[i*3+i], x))
		}

		return out, nil
	}

	return m.binary(opMod, o, combineMod, false)
}

// Pow returns m ** o entry-wise.
func (m Matrix3x3) Pow(o vector.Operand) (Matrix3x3, error) { return m.binary(opPow, o, combinePow, false) }

// RAdd returns o + m.
func (m Matrix3x3) RAdd(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - m.
func (m Matrix3x3) RSub(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * m entry-wise.
func (m Matrix3x3) RMul(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / m entry-wise.
func (m Matrix3x3) RDiv(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / m) entry-wise.
func (m Matrix3x3) RFloorDiv(o vector.Operand) (Matrix3x3, error) {
	return m.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod m entry-wise.
func (m Matrix3x3) RMod(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** m entry-wise.
func (m Matrix3x3) RPow(o vector.Operand) (Matrix3x3, error) { return m.binary("R"+opPow, o, combinePow, true) }

func (m Matrix3x3) Abs() Matrix3x3 { return m.unary(math.Abs) }
func (m Matrix3x3) Pos() Matrix3x3 { return m.unary(identity) }
func (m Matrix3x3) Neg() Matrix3x3 { return m.unary(neg) }

// Min returns the entry-wise minimum of m and o.
func (m Matrix3x3) Min(o vector.Operand) (Matrix3x3, error) { return m.binary(opMin, o, combineMin, false) }

// Max returns the entry-wise maximum of m and o.
func (m Matrix3x3) Max(o vector.Operand) (Matrix3x3, error) { return m.binary(opMax, o, combineMax, false) }

// Clamp limits every entry to [lo, hi]; both bounds must share a shape.
func (m Matrix3x3) Clamp(lo, hi vector.Operand) (Matrix3x3, error) {
	l, h, err := coerceBounds(lo, hi, 3, opName(name3x3, opClamp), Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	var out Matrix3x3
	kernel.Zip3(out.c[:], m.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns m*(1-t) + to*t.
func (m Matrix3x3) Interpolate(to vector.Operand, t float64) (Matrix3x3, error) {
	rhs, err := coerce(to, 3, opName(name3x3, opInterpolate), Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	var out Matrix3x3
	kernel.Zip(out.c[:], m.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > m and 1 elsewhere.
func (m Matrix3x3) Step(edge vector.Operand) (Matrix3x3, error) {
	return m.binary(opStep, edge, combineStep, true)
}

// SmoothStep applies scalar.SmoothStep(e0, e1, m) per entry.
func (m Matrix3x3) SmoothStep(e0, e1 vector.Operand) (Matrix3x3, error) {
	op := opName(name3x3, opSmoothStep)
	lo, err := coerce(e0, 3, op, Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	hi, err := coerce(e1, 3, op, Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	var out Matrix3x3
	kernel.Zip3(out.c[:], lo, hi, m.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(m, o) per entry.
func (m Matrix3x3) Atan2(o vector.Operand) (Matrix3x3, error) {
	return m.binary(opAtan2, o, combineAtan2, false)
}

func (m Matrix3x3) Sign() Matrix3x3        { return m.unary(scalar.Sign) }
func (m Matrix3x3) Floor() Matrix3x3       { return m.unary(math.Floor) }
func (m Matrix3x3) Ceil() Matrix3x3        { return m.unary(math.Ceil) }
func (m Matrix3x3) Fract() Matrix3x3       { return m.unary(scalar.Fract) }
func (m Matrix3x3) Sqrt() Matrix3x3        { return m.unary(math.Sqrt) }
func (m Matrix3x3) InverseSqrt() Matrix3x3 { return m.unary(scalar.InverseSqrt) }
func (m Matrix3x3) Exp() Matrix3x3         { return m.unary(math.Exp) }
func (m Matrix3x3) Exp2() Matrix3x3        { return m.unary(math.Exp2) }
func (m Matrix3x3) Exp10() Matrix3x3       { return m.unary(scalar.Exp10) }
func (m Matrix3x3) Log() Matrix3x3         { return m.unary(math.Log) }
func (m Matrix3x3) Log2() Matrix3x3        { return m.unary(math.Log2) }
func (m Matrix3x3) Log10() Matrix3x3       { return m.unary(math.Log10) }
func (m Matrix3x3) Radians() Matrix3x3     { return m.unary(scalar.Radians) }
func (m Matrix3x3) Degrees() Matrix3x3     { return m.unary(scalar.Degrees) }
func (m Matrix3x3) Sin() Matrix3x3         { return m.unary(math.Sin) }
func (m Matrix3x3) Cos() Matrix3x3         { return m.unary(math.Cos) }
func (m Matrix3x3) Tan() Matrix3x3         { return m.unary(math.Tan) }
func (m Matrix3x3) Sinh() Matrix3x3        { return m.unary(math.Sinh) }
func (m Matrix3x3) Cosh() Matrix3x3        { return m.unary(math.Cosh) }
func (m Matrix3x3) Tanh() Matrix3x3        { return m.unary(math.Tanh) }
func (m Matrix3x3) Asin() Matrix3x3        { return m.unary(math.Asin) }
func (m Matrix3x3) Acos() Matrix3x3        { return m.unary(math.Acos) }
func (m Matrix3x3) Atan() Matrix3x3        { return m.unary(math.Atan) }
func (m Matrix3x3) Asinh() Matrix3x3       { return m.unary(math.Asinh) }
func (m Matrix3x3) Acosh() Matrix3x3       { return m.unary(math.Acosh) }
func (m Matrix3x3) Atanh() Matrix3x3       { return m.unary(math.Atanh) }

// MatMul returns the matrix product m·o; column k of the result is
// m·(column k of o).
func (m Matrix3x3) MatMul(o Matrix3x3) Matrix3x3 {
	var out Matrix3x3
	kernel.MatMul(out.c[:], m.c[:], o.c[:], 3)

	return out
}

// MulVec returns m·v with v treated as a column.
func (m Matrix3x3) MulVec(v vector.Vector3D) vector.Vector3D {
	var out [3]float64
	kernel.MatVec(out[:], m.c[:], v.Components(), 3)

	return vec3(out[:])
}

// MatMulOp is the operand form of the product. A Matrix3x3 or 9 values
// (row-major) yield a Matrix3x3; a vector.Vector3D or 3 values yield a vector.Vector3D.
func (m Matrix3x3) MatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name3x3, opMatMul)
	switch rhs := o.(type) {
	case Matrix3x3:
		return m.MatMul(rhs), nil
	case vector.Vector3D:
		return m.MulVec(rhs), nil
	}
	vals, isScalar, err := operandValues(o, op, Context3x3)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar:
		return nil, matrixErrorf(op, Context3x3, ErrUnsupportedOperand, "scalar operand; use Mul")
	case len(vals) == 3:
		return m.MulVec(vec3(vals)), nil
	case len(vals) == 9:
		var rhs Matrix3x3
		kernel.Copy(rhs.c[:], fromRowMajor(vals, 3))

		return m.MatMul(rhs), nil
	default:
		return nil, matrixErrorf(op, Context3x3, ErrDimension, "expected 3 or 9 values, got %d", len(vals))
	}
}

// RMatMulOp returns o·m. Only matrix operands (Matrix3x3 or 9 row-major values)
// are accepted; a vector on the left is ErrUnsupportedOperand.
func (m Matrix3x3) RMatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name3x3, opRMatMul)
	if lhs, ok := o.(Matrix3x3); ok {
		return lhs.MatMul(m), nil
	}
	vals, isScalar, err := operandValues(o, op, Context3x3)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar || len(vals) == 3:
		return nil, matrixErrorf(op, Context3x3, ErrUnsupportedOperand, "vector·matrix is not defined")
	case len(vals) == 9:
		var lhs Matrix3x3
		kernel.Copy(lhs.c[:], fromRowMajor(vals, 3))

		return lhs.MatMul(m), nil
	default:
		return nil, matrixErrorf(op, Context3x3, ErrDimension, "expected 9 values, got %d", len(vals))
	}
}

// Determinant returns det(m).
func (m Matrix3x3) Determinant() float64 { return determinant(m.c[:], 3) }

// Trace returns the sum of the diagonal.
func (m Matrix3x3) Trace() float64 { return trace(m.c[:], 3) }

// Transpose returns mᵀ.
func (m Matrix3x3) Transpose() Matrix3x3 {
	var out Matrix3x3
	transpose(out.c[:], m.c[:], 3)

	return out
}

// Inverse returns m⁻¹ as adj(m)/det(m); a zero determinant is ErrNoInverse.
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	var out Matrix3x3
	if !inverse(out.c[:], m.c[:], 3) {
		return Matrix3x3{}, matrixErrorf(opName(name3x3, opInverse), Context3x3, ErrNoInverse, "")
	}

	return out, nil
}

// Normalize divides every column by det(m).
func (m Matrix3x3) Normalize() Matrix3x3 {
	det := m.Determinant()

	return m.unary(func(x float64) float64 { return x / det })
}

// ClearRotation keeps only the column magnitudes: column k becomes
// (…, |column k|, …) with the length at row k.
func (m Matrix3x3) ClearRotation() Matrix3x3 {
	var out Matrix3x3
	clearRotation(out.c[:], m.c[:], 3)

	return out
}

// ClearScale normalises every column to unit length.
func (m Matrix3x3) ClearScale() Matrix3x3 {
	var out Matrix3x3
	clearScale(out.c[:], m.c[:], 3)

	return out
}

// as3x3 resolves a matrix-like operand: a Matrix3x3 is used as-is, a scalar fills
// the diagonal, 3 values form the diagonal, 9 values are row-major.
func as3x3(o vector.Operand, op string) (Matrix3x3, error) {
	if m, ok := o.(Matrix3x3); ok {
		return m, nil
	}
	vals, err := coerceMatrixLike(o, 3, opName(name3x3, op), Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	var m Matrix3x3
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Determinant3x3 returns the determinant of a matrix-like operand.
func Determinant3x3(o vector.Operand) (float64, error) {
	m, err := as3x3(o, opDeterminant)
	if err != nil {
		return 0, err
	}

	return m.Determinant(), nil
}

// Transpose3x3 returns the transpose of a matrix-like operand.
func Transpose3x3(o vector.Operand) (Matrix3x3, error) {
	m, err := as3x3(o, opTranspose)
	if err != nil {
		return Matrix3x3{}, err
	}

	return m.Transpose(), nil
}

// Inverse3x3 returns the inverse of a matrix-like operand.
func Inverse3x3(o vector.Operand) (Matrix3x3, error) {
	m, err := as3x3(o, opInverse)
	if err != nil {
		return Matrix3x3{}, err
	}

	return m.Inverse()
}

// Normalize3x3 divides a matrix-like operand by its determinant.
func Normalize3x3(o vector.Operand) (Matrix3x3, error) {
	m, err := as3x3(o, opNormalize)
	if err != nil {
		return Matrix3x3{}, err
	}

	return m.Normalize(), nil
}

// ClearRotation3x3 is ClearRotation on a matrix-like operand.
func ClearRotation3x3(o vector.Operand) (Matrix3x3, error) {
	m, err := as3x3(o, opClearRot)
	if err != nil {
		return Matrix3x3{}, err
	}

	return m.ClearRotation(), nil
}

// ClearScale3x3 is ClearScale on a matrix-like operand.
func ClearScale3x3(o vector.Operand) (Matrix3x3, error) {
	m, err := as3x3(o, opClearScale)
	if err != nil {
		return Matrix3x3{}, err
	}

	return m.ClearScale(), nil
}

func vec3(c []float64) vector.Vector3D { return vector.New3D(c[0], c[1], c[2]) }

// RotationX3x3 rotates about X with the Rotation2x2 convention on the (Y, Z) plane.
func RotationX3x3(theta float64) Matrix3x3 {
	s, c := math.Sincos(theta)

	return New3x3(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// RotationY3x3 rotates about Y with the Rotation2x2 convention on the (Z, X) plane.
func RotationY3x3(theta float64) Matrix3x3 {
	s, c := math.Sincos(theta)

	return New3x3(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// RotationZ3x3 rotates about Z with the Rotation2x2 convention on the (X, Y) plane.
func RotationZ3x3(theta float64) Matrix3x3 {
	s, c := math.Sincos(theta)

	return New3x3(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Rotation3x3 rotates about an arbitrary axis by the Rodrigues formula
// evaluated at -theta. The axis is normalised first and must be a sequence
// of exactly 3 values. For the coordinate axes the result equals
// RotationX3x3, RotationY3x3 and RotationZ3x3.
func Rotation3x3(axis vector.Operand, theta float64) (Matrix3x3, error) {
	vals, err := vector.CoerceSequence(axis, 3, opName(name3x3, opRotation), Context3x3)
	if err != nil {
		return Matrix3x3{}, err
	}
	k := vector.New3D(vals[0], vals[1], vals[2]).Normalize()
	x, y, z := k.X(), k.Y(), k.Z()
	s, c := math.Sincos(-theta)
	t := 1 - c

	return New3x3(
		c+x*x*t, x*y*t-z*s, x*z*t+y*s,
		x*y*t+z*s, c+y*y*t, y*z*t-x*s,
		x*z*t-y*s, y*z*t+x*s, c+z*z*t,
	), nil
}

// Scale3x3 returns diag(x, y, z).
func Scale3x3(x, y, z float64) Matrix3x3 {
	return New3x3(
		x, 0, 0,
		0, y, 0,
		0, 0, z,
	)
}

// From2x2To3x3 embeds m into the top-left corner of the 3x3 identity.
func From2x2To3x3(m Matrix2x2) Matrix3x3 {
	return New3x3(
		m.M11(), m.M12(), 0,
		m.M21(), m.M22(), 0,
		0, 0, 1,
	)
}
