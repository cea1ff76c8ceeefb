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

// Matrix2x2 is a 2x2 float64 matrix stored column-major.
//
// Entry Mrc (1-based row r, column c) lives at storage index (c-1)*2 + (r-1).
// Integer indexing (At, Slice, All) addresses columns. The zero value is the
// zero matrix; every operation returns a fresh value.
type Matrix2x2 struct {
	c [4]float64
}

// New2x2 builds a matrix from its entries in row-first order (m11, m12, …).
func New2x2(m11, m12, m21, m22 float64) Matrix2x2 {
	var m Matrix2x2
	kernel.Copy(m.c[:], fromRowMajor([]float64{m11, m12, m21, m22}, 2))

	return m
}

// Broadcast2x2 builds a matrix with every entry set to s.
func Broadcast2x2(s float64) Matrix2x2 {
	var m Matrix2x2
	kernel.Copy(m.c[:], kernel.Broadcast(4, s))

	return m
}

// Diagonal2x2 builds a matrix with o on the diagonal and 0 elsewhere.
// o is a scalar (repeated) or exactly 2 values.
func Diagonal2x2(o vector.Operand) (Matrix2x2, error) {
	op := opName(name2x2, opDiagonal)
	vals, isScalar, err := operandValues(o, op, Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	if isScalar {
		vals = kernel.Broadcast(2, vals[0])
	}
	if len(vals) != 2 {
		return Matrix2x2{}, matrixErrorf(op, Context2x2, ErrDimension, "expected 2 values, got %d", len(vals))
	}
	var m Matrix2x2
	kernel.Copy(m.c[:], diagonal(vals, 2))

	return m, nil
}

// From2x2 builds a matrix from exactly 4 values in storage (column-major)
// order, so From2x2(m.Components()) == m.
func From2x2[T scalar.Real](vals []T) (Matrix2x2, error) {
	if len(vals) != 4 {
		return Matrix2x2{}, matrixErrorf(opName(name2x2, opFrom), Context2x2, ErrDimension, "expected 4 values, got %d", len(vals))
	}
	var m Matrix2x2
	kernel.Copy(m.c[:], scalar.Widen(vals))

	return m, nil
}

// FromNested2x2 flattens cols one level and builds the matrix from the
// resulting 4 values in storage order; each inner slice is normally a column.
func FromNested2x2(cols [][]float64) (Matrix2x2, error) {
	vals, _ := vector.Nested(cols).Operand()
	if len(vals) != 4 {
		return Matrix2x2{}, matrixErrorf(opName(name2x2, opFromNested), Context2x2, ErrDimension, "expected 4 values, got %d", len(vals))
	}
	var m Matrix2x2
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Identity2x2 returns the identity matrix.
func Identity2x2() Matrix2x2 {
	var m Matrix2x2
	for i := 0; i < 2; i++ {
		kernel.Store(m.c[:], i*2+i, 1)
	}

	return m
}

// Zero2x2 returns the zero matrix.
func Zero2x2() Matrix2x2 { return Matrix2x2{} }

// One2x2 returns the matrix with every entry set to 1.
func One2x2() Matrix2x2 { return Broadcast2x2(1) }

// Len returns the number of columns, 2.
func (m Matrix2x2) Len() int { return 2 }

// At returns column i; negative i counts from the end.
func (m Matrix2x2) At(i int) (vector.Vector2D, error) { return m.Column(i) }

// Slice returns copies of columns [start:stop) with negative indices and clamping.
func (m Matrix2x2) Slice(start, stop int) []vector.Vector2D {
	lo, hi := kernel.SliceBounds(start, stop, 2)
	out := make([]vector.Vector2D, 0, hi-lo)
	for k := lo; k < hi; k++ {
		out = append(out, vec2(column(m.c[:], 2, k)))
	}

	return out
}

// All iterates (index, column) pairs.
func (m Matrix2x2) All() iter.Seq2[int, vector.Vector2D] {
	return func(yield func(int, vector.Vector2D) bool) {
		for k := 0; k < 2; k++ {
			if !yield(k, vec2(column(m.c[:], 2, k))) {
				return
			}
		}
	}
}

// Components returns a copy of the storage in column-major order.
func (m Matrix2x2) Components() []float64 { return slices.Clone(m.c[:]) }

// Contains reports whether some entry equals x.
func (m Matrix2x2) Contains(x float64) bool { return slices.Contains(m.c[:], x) }

// Operand implements vector.Operand; values are reported in row-major
// argument order, the order arithmetic operands are read in.
func (m Matrix2x2) Operand() ([]float64, bool) { return toRowMajor(m.c[:], 2), false }

func (m Matrix2x2) M11() float64 { return m.c[0] }
func (m Matrix2x2) M12() float64 { return m.c[2] }
func (m Matrix2x2) M21() float64 { return m.c[1] }
func (m Matrix2x2) M22() float64 { return m.c[3] }

func (m *Matrix2x2) SetM11(x float64) { kernel.Store(m.c[:], 0, x) }
func (m *Matrix2x2) SetM12(x float64) { kernel.Store(m.c[:], 2, x) }
func (m *Matrix2x2) SetM21(x float64) { kernel.Store(m.c[:], 1, x) }
func (m *Matrix2x2) SetM22(x float64) { kernel.Store(m.c[:], 3, x) }

// Column1 returns column 1.
func (m Matrix2x2) Column1() vector.Vector2D { return vec2(column(m.c[:], 2, 0)) }

// Row1 returns row 1.
func (m Matrix2x2) Row1() vector.Vector2D { return vec2(row(m.c[:], 2, 0)) }

// SetColumn1 assigns column 1 from exactly 2 values.
func (m *Matrix2x2) SetColumn1(o vector.Operand) error { return m.SetColumn(0, o) }

// SetRow1 assigns row 1 from exactly 2 values.
func (m *Matrix2x2) SetRow1(o vector.Operand) error { return m.SetRow(0, o) }

// Column2 returns column 2.
func (m Matrix2x2) Column2() vector.Vector2D { return vec2(column(m.c[:], 2, 1)) }

// Row2 returns row 2.
func (m Matrix2x2) Row2() vector.Vector2D { return vec2(row(m.c[:], 2, 1)) }

// SetColumn2 assigns column 2 from exactly 2 values.
func (m *Matrix2x2) SetColumn2(o vector.Operand) error { return m.SetColumn(1, o) }

// SetRow2 assigns row 2 from exactly 2 values.
func (m *Matrix2x2) SetRow2(o vector.Operand) error { return m.SetRow(1, o) }


// Column returns column k (0-based; negative counts from the end).
func (m Matrix2x2) Column(k int) (vector.Vector2D, error) {
	idx, ok := kernel.Index(k, 2)
	if !ok {
		return vector.Vector2D{}, matrixErrorf(opName(name2x2, opColumn), Context2x2, ErrIndexOutOfRange, "column %d not in [-2, 2)", k)
	}

	return vec2(column(m.c[:], 2, idx)), nil
}

// Row returns row k (0-based; negative counts from the end).
func (m Matrix2x2) Row(k int) (vector.Vector2D, error) {
	idx, ok := kernel.Index(k, 2)
	if !ok {
		return vector.Vector2D{}, matrixErrorf(opName(name2x2, opRow), Context2x2, ErrIndexOutOfRange, "row %d not in [-2, 2)", k)
	}

	return vec2(row(m.c[:], 2, idx)), nil
}

// Entry returns the entry at row r, column c (0-based; negatives allowed).
func (m Matrix2x2) Entry(r, c int) (float64, error) {
	ri, rok := kernel.Index(r, 2)
	ci, cok := kernel.Index(c, 2)
	if !rok || !cok {
		return 0, matrixErrorf(opName(name2x2, opEntry), Context2x2, ErrIndexOutOfRange, "entry (%d, %d)", r, c)
	}

	return m.c[ci*2+ri], nil
}

// Set writes x at row r, column c (0-based; negatives allowed).
func (m *Matrix2x2) Set(r, c int, x float64) error {
	return safeApply(opName(name2x2, opSet), Context2x2, func() {
		kernel.Store(column(m.c[:], 2, resolve(c, 2)), resolve(r, 2), x)
	})
}

// SetColumn assigns column k from exactly 2 values.
func (m *Matrix2x2) SetColumn(k int, o vector.Operand) error {
	op := opName(name2x2, opSetColumn)
	vals, err := vector.CoerceSequence(o, 2, op, Context2x2)
	if err != nil {
		return err
	}

	return safeApply(op, Context2x2, func() {
		kernel.Copy(column(m.c[:], 2, resolve(k, 2)), vals)
	})
}

// SetRow assigns row k from exactly 2 values.
func (m *Matrix2x2) SetRow(k int, o vector.Operand) error {
	op := opName(name2x2, opSetRow)
	vals, err := vector.CoerceSequence(o, 2, op, Context2x2)
	if err != nil {
		return err
	}

	return safeApply(op, Context2x2, func() {
		r := resolve(k, 2)
		for j, x := range vals {
			kernel.Store(column(m.c[:], 2, j), r, x)
		}
	})
}

// Eq compares entry-wise for equality, in storage order.
func (m Matrix2x2) Eq(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Eq) }

// Ne compares entry-wise for inequality, in storage order.
func (m Matrix2x2) Ne(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Ne) }

// Lt compares entry-wise with <, in storage order.
func (m Matrix2x2) Lt(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Lt) }

// Le compares entry-wise with <=, in storage order.
func (m Matrix2x2) Le(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Le) }

// Gt compares entry-wise with >, in storage order.
func (m Matrix2x2) Gt(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Gt) }

// Ge compares entry-wise with >=, in storage order.
func (m Matrix2x2) Ge(o vector.Operand) ([4]bool, error) { return m.compare(o, kernel.Ge) }

// ApproxEqual reports |m_i - o_i| < eps per entry, in storage order.
func (m Matrix2x2) ApproxEqual(o vector.Operand, opts ...scalar.Option) ([4]bool, error) {
	tol := scalar.NewOptions(opts...)

	return m.compareAs(opApproxEqual, o, tol.Equal)
}

func (m Matrix2x2) compare(o vector.Operand, pred kernel.Predicate) ([4]bool, error) {
	return m.compareAs(opCompare, o, pred)
}

func (m Matrix2x2) compareAs(op string, o vector.Operand, pred kernel.Predicate) ([4]bool, error) {
	var out [4]bool
	rhs, err := coerce(o, 2, opName(name2x2, op), Context2x2)
	if err != nil {
		return out, err
	}
	kernel.Compare(out[:], m.c[:], rhs, pred)

	return out, nil
}

// Format implements fmt.Formatter. Storage is walked column-major, 2
// values per line; %#v prints the constructor form.
func (m Matrix2x2) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, m.GoString())

		return
	}
	kernel.FormatTuple(f, verb, m.c[:], 2)
}

// String renders the %v form.
func (m Matrix2x2) String() string { return fmt.Sprintf("%v", m) }

// GoString renders "Matrix2x2(m11, m12, …)" in constructor argument order.
func (m Matrix2x2) GoString() string { return kernel.Repr(name2x2, toRowMajor(m.c[:], 2)) }

// binary resolves o and combines it with m; reverse swaps the operand order.
func (m Matrix2x2) binary(op string, o vector.Operand, k combiner, reverse bool) (Matrix2x2, error) {
	rhs, err := coerce(o, 2, opName(name2x2, op), Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	var out Matrix2x2
	if reverse {
		k(out.c[:], rhs, m.c[:])
	} else {
		k(out.c[:], m.c[:], rhs)
	}

	return out, nil
}

func (m Matrix2x2) unary(f kernel.Unary) Matrix2x2 {
	var out Matrix2x2
	kernel.Map(out.c[:], m.c[:], f)

	return out
}

// Add returns m + o entry-wise.
func (m Matrix2x2) Add(o vector.Operand) (Matrix2x2, error) { return m.binary(opAdd, o, combineAdd, false) }

// Sub returns m - o entry-wise.
func (m Matrix2x2) Sub(o vector.Operand) (Matrix2x2, error) { return m.binary(opSub, o, combineSub, false) }

// Mul returns the entry-wise product; see MatMul for the matrix product.
func (m Matrix2x2) Mul(o vector.Operand) (Matrix2x2, error) { return m.binary(opMul, o, combineMul, false) }

// Div returns m / o entry-wise.
func (m Matrix2x2) Div(o vector.Operand) (Matrix2x2, error) { return m.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(m / o) entry-wise.
func (m Matrix2x2) FloorDiv(o vector.Operand) (Matrix2x2, error) {
	return m.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns m mod o entry-wise. A sequence of exactly 2 values reduces
// only the diagonal; off-diagonal entries pass through.
func (m Matrix2x2) Mod(o vector.Operand) (Matrix2x2, error) {
	if d, ok := diagonalOperand(o, 2); ok {
		out := m
		for i, x := range d {
			kernel.Store(out.c[:], i*2+i, scalar.Mod(m.c[i*2+i], x))
		}

		return out, nil
	}

	return m.binary(opMod, o, combineMod, false)
}

// Pow returns m ** o entry-wise.
func (m Matrix2x2) Pow(o vector.Operand) (Matrix2x2, error) { return m.binary(opPow, o, combinePow, false) }

// RAdd returns o + m.
func (m Matrix2x2) RAdd(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - m.
func (m Matrix2x2) RSub(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * m entry-wise.
func (m Matrix2x2) RMul(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / m entry-wise.
func (m Matrix2x2) RDiv(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / m) entry-wise.
func (m Matrix2x2) RFloorDiv(o vector.Operand) (Matrix2x2, error) {
	return m.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod m entry-wise.
func (m Matrix2x2) RMod(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** m entry-wise.
func (m Matrix2x2) RPow(o vector.Operand) (Matrix2x2, error) { return m.binary("R"+opPow, o, combinePow, true) }

func (m Matrix2x2) Abs() Matrix2x2 { return m.unary(math.Abs) }
func (m Matrix2x2) Pos() Matrix2x2 { return m.unary(identity) }
func (m Matrix2x2) Neg() Matrix2x2 { return m.unary(neg) }

// Min returns the entry-wise minimum of m and o.
func (m Matrix2x2) Min(o vector.Operand) (Matrix2x2, error) { return m.binary(opMin, o, combineMin, false) }

// Max returns the entry-wise maximum of m and o.
func (m Matrix2x2) Max(o vector.Operand) (Matrix2x2, error) { return m.binary(opMax, o, combineMax, false) }

// Clamp limits every entry to [lo, hi]; both bounds must share a shape.
func (m Matrix2x2) Clamp(lo, hi vector.Operand) (Matrix2x2, error) {
	l, h, err := coerceBounds(lo, hi, 2, opName(name2x2, opClamp), Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	var out Matrix2x2
	kernel.Zip3(out.c[:], m.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns m*(1-t) + to*t.
func (m Matrix2x2) Interpolate(to vector.Operand, t float64) (Matrix2x2, error) {
	rhs, err := coerce(to, 2, opName(name2x2, opInterpolate), Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	var out Matrix2x2
	kernel.Zip(out.c[:], m.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > m and 1 elsewhere.
func (m Matrix2x2) Step(edge vector.Operand) (Matrix2x2, error) {
	return m.binary(opStep, edge, combineStep, true)
}

// SmoothStep applies scalar.SmoothStep(e0, e1, m) per entry.
func (m Matrix2x2) SmoothStep(e0, e1 vector.Operand) (Matrix2x2, error) {
	op := opName(name2x2, opSmoothStep)
	lo, err := coerce(e0, 2, op, Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	hi, err := coerce(e1, 2, op, Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	var out Matrix2x2
	kernel.Zip3(out.c[:], lo, hi, m.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(m, o) per entry.
func (m Matrix2x2) Atan2(o vector.Operand) (Matrix2x2, error) {
	return m.binary(opAtan2, o, combineAtan2, false)
}

func (m Matrix2x2) Sign() Matrix2x2        { return m.unary(scalar.Sign) }
func (m Matrix2x2) Floor() Matrix2x2       { return m.unary(math.Floor) }
func (m Matrix2x2) Ceil() Matrix2x2        { return m.unary(math.Ceil) }
func (m Matrix2x2) Fract() Matrix2x2       { return m.unary(scalar.Fract) }
func (m Matrix2x2) Sqrt() Matrix2x2        { return m.unary(math.Sqrt) }
func (m Matrix2x2) InverseSqrt() Matrix2x2 { return m.unary(scalar.InverseSqrt) }
func (m Matrix2x2) Exp() Matrix2x2         { return m.unary(math.Exp) }
func (m Matrix2x2) Exp2() Matrix2x2        { return m.unary(math.Exp2) }
func (m Matrix2x2) Exp10() Matrix2x2       { return m.unary(scalar.Exp10) }
func (m Matrix2x2) Log() Matrix2x2         { return m.unary(math.Log) }
func (m Matrix2x2) Log2() Matrix2x2        { return m.unary(math.Log2) }
func (m Matrix2x2) Log10() Matrix2x2       { return m.unary(math.Log10) }
func (m Matrix2x2) Radians() Matrix2x2     { return m.unary(scalar.Radians) }
func (m Matrix2x2) Degrees() Matrix2x2     { return m.unary(scalar.Degrees) }
func (m Matrix2x2) Sin() Matrix2x2         { return m.unary(math.Sin) }
func (m Matrix2x2) Cos() Matrix2x2         { return m.unary(math.Cos) }
func (m Matrix2x2) Tan() Matrix2x2         { return m.unary(math.Tan) }
func (m Matrix2x2) Sinh() Matrix2x2        { return m.unary(math.Sinh) }
func (m Matrix2x2) Cosh() Matrix2x2        { return m.unary(math.Cosh) }
func (m Matrix2x2) Tanh() Matrix2x2        { return m.unary(math.Tanh) }
func (m Matrix2x2) Asin() Matrix2x2        { return m.unary(math.Asin) }
func (m Matrix2x2) Acos() Matrix2x2        { return m.unary(math.Acos) }
func (m Matrix2x2) Atan() Matrix2x2        { return m.unary(math.Atan) }
func (m Matrix2x2) Asinh() Matrix2x2       { return m.unary(math.Asinh) }
func (m Matrix2x2) Acosh() Matrix2x2       { return m.unary(math.Acosh) }
func (m Matrix2x2) Atanh() Matrix2x2       { return m.unary(math.Atanh) }

// MatMul returns the matrix product m·o; column k of the result is
// m·(column k of o).
func (m Matrix2x2) MatMul(o Matrix2x2) Matrix2x2 {
	var out Matrix2x2
	kernel.MatMul(out.c[:], m.c[:], o.c[:], 2)

	return out
}

// MulVec returns m·v with v treated as a column.
func (m Matrix2x2) MulVec(v vector.Vector2D) vector.Vector2D {
	var out [2]float64
	kernel.MatVec(out[:], m.c[:], v.Components(), 2)

	return vec2(out[:])
}

// MatMulOp is the operand form of the product. A Matrix2x2 or 4 values
// (row-major) yield a Matrix2x2; a vector.Vector2D or 2 values yield a vector.Vector2D.
func (m Matrix2x2) MatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name2x2, opMatMul)
	switch rhs := o.(type) {
	case Matrix2x2:
		return m.MatMul(rhs), nil
	case vector.Vector2D:
		return m.MulVec(rhs), nil
	}
	vals, isScalar, err := operandValues(o, op, Context2x2)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar:
		return nil, matrixErrorf(op, Context2x2, ErrUnsupportedOperand, "scalar operand; use Mul")
	case len(vals) == 2:
		return m.MulVec(vec2(vals)), nil
	case len(vals) == 4:
		var rhs Matrix2x2
		kernel.Copy(rhs.c[:], fromRowMajor(vals, 2))

		return m.MatMul(rhs), nil
	default:
		return nil, matrixErrorf(op, Context2x2, ErrDimension, "expected 2 or 4 values, got %d", len(vals))
	}
}

// RMatMulOp returns o·m. Only matrix operands (Matrix2x2 or 4 row-major values)
// are accepted; a vector on the left is ErrUnsupportedOperand.
func (m Matrix2x2) RMatMulOp(o vector.Operand) (vector.Operand, error) {
	op := opName(name2x2, opRMatMul)
	if lhs, ok := o.(Matrix2x2); ok {
		return lhs.MatMul(m), nil
	}
	vals, isScalar, err := operandValues(o, op, Context2x2)
	if err != nil {
		return nil, err
	}
	switch {
	case isScalar || len(vals) == 2:
		return nil, matrixErrorf(op, Context2x2, ErrUnsupportedOperand, "vector·matrix is not defined")
	case len(vals) == 4:
		var lhs Matrix2x2
		kernel.Copy(lhs.c[:], fromRowMajor(vals, 2))

		return lhs.MatMul(m), nil
	default:
		return nil, matrixErrorf(op, Context2x2, ErrDimension, "expected 4 values, got %d", len(vals))
	}
}

// Determinant returns det(m).
func (m Matrix2x2) Determinant() float64 { return determinant(m.c[:], 2) }

// Trace returns the sum of the diagonal.
func (m Matrix2x2) Trace() float64 { return trace(m.c[:], 2) }

// Transpose returns mᵀ.
func (m Matrix2x2) Transpose() Matrix2x2 {
	var out Matrix2x2
	transpose(out.c[:], m.c[:], 2)

	return out
}

// Inverse returns m⁻¹ as adj(m)/det(m); a zero determinant is ErrNoInverse.
func (m Matrix2x2) Inverse() (Matrix2x2, error) {
	var out Matrix2x2
	if !inverse(out.c[:], m.c[:], 2) {
		return Matrix2x2{}, matrixErrorf(opName(name2x2, opInverse), Context2x2, ErrNoInverse, "")
	}

	return out, nil
}

// Normalize divides every column by det(m).
func (m Matrix2x2) Normalize() Matrix2x2 {
	det := m.Determinant()

	return m.unary(func(x float64) float64 { return x / det })
}

// ClearRotation keeps only the column magnitudes: column k becomes
// (…, |column k|, …) with the length at row k.
func (m Matrix2x2) ClearRotation() Matrix2x2 {
	var out Matrix2x2
	clearRotation(out.c[:], m.c[:], 2)

	return out
}

// ClearScale normalises every column to unit length.
func (m Matrix2x2) ClearScale() Matrix2x2 {
	var out Matrix2x2
	clearScale(out.c[:], m.c[:], 2)

	return out
}

// as2x2 resolves a matrix-like operand: a Matrix2x2 is used as-is, a scalar fills
// the diagonal, 2 values form the diagonal, 4 values are row-major.
func as2x2(o vector.Operand, op string) (Matrix2x2, error) {
	if m, ok := o.(Matrix2x2); ok {
		return m, nil
	}
	vals, err := coerceMatrixLike(o, 2, opName(name2x2, op), Context2x2)
	if err != nil {
		return Matrix2x2{}, err
	}
	var m Matrix2x2
	kernel.Copy(m.c[:], vals)

	return m, nil
}

// Determinant2x2 returns the determinant of a matrix-like operand.
func Determinant2x2(o vector.Operand) (float64, error) {
	m, err := as2x2(o, opDeterminant)
	if err != nil {
		return 0, err
	}

	return m.Determinant(), nil
}

// Transpose2x2 returns the transpose of a matrix-like operand.
func Transpose2x2(o vector.Operand) (Matrix2x2, error) {
	m, err := as2x2(o, opTranspose)
	if err != nil {
		return Matrix2x2{}, err
	}

	return m.Transpose(), nil
}

// Inverse2x2 returns the inverse of a matrix-like operand.
func Inverse2x2(o vector.Operand) (Matrix2x2, error) {
	m, err := as2x2(o, opInverse)
	if err != nil {
		return Matrix2x2{}, err
	}

	return m.Inverse()
}

// Normalize2x2 divides a matrix-like operand by its determinant.
func Normalize2x2(o vector.Operand) (Matrix2x2, error) {
	m, err := as2x2(o, opNormalize)
	if err != nil {
		return Matrix2x2{}, err
	}

	return m.Normalize(), nil
}

// ClearRotation2x2 is ClearRotation on a matrix-like operand.
func ClearRotation2x2(o vector.Operand) (Matrix2x2, error) {
	m, err := as2x2(o, opClearRot)
	if err != nil {
		return Matrix2x2{}, err
	}

	return m.ClearRotation(), nil
}

// ClearScale2x2 is ClearScale on a matrix-like operand.
func ClearScale2x2(o vector.Operand) (Matrix2x2, error) {
	m, err := as2x2(o, opClearScale)
	if err != nil {
		return Matrix2x2{}, err
	}

	return m.ClearScale(), nil
}

func vec2(c []float64) vector.Vector2D { return vector.New2D(c[0], c[1]) }

// Rotation2x2 returns the rotation by theta in the package convention:
// m11 = cos, m12 = sin, m21 = -sin, m22 = cos. Applied with MulVec it turns
// vectors clockwise for positive theta.
func Rotation2x2(theta float64) Matrix2x2 {
	s, c := math.Sincos(theta)

	return New2x2(
		c, s,
		-s, c,
	)
}

// Scale2x2 returns diag(x, y).
func Scale2x2(x, y float64) Matrix2x2 {
	return New2x2(
		x, 0,
		0, y,
	)
}
