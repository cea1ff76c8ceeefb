// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/linalg/internal/kernel"
	"github.com/katalvlaran/linalg/scalar"
)

// Vector3D is a 3-component float64 vector with named components X, Y and Z.
//
// The zero value is the zero vector. Vector3D is a value type: every
// operation returns a fresh vector and never aliases the receiver.
// Vectors built by Wrap3D are read-only; their setters return ErrWrapped.
type Vector3D struct {
	c       [3]float64
	wrapped bool
}

// New3D builds a vector from its components.
func New3D(x, y, z float64) Vector3D {
	var v Vector3D
	kernel.Copy(v.c[:], []float64{x, y, z})

	return v
}

// Broadcast3D builds a vector with every component set to s.
func Broadcast3D(s float64) Vector3D {
	var v Vector3D
	for i := range v.c {
		kernel.Store(v.c[:], i, s)
	}

	return v
}

// From3D builds a vector from exactly 3 values, widening integers to float64.
func From3D[T scalar.Real](vals []T) (Vector3D, error) {
	if len(vals) != 3 {
		return Vector3D{}, dimErrorf(opName(name3D, opFrom), Context3D, ErrDimension, "expected 3 values, got %d", len(vals))
	}
	var v Vector3D
	kernel.Copy(v.c[:], scalar.Widen(vals))

	return v, nil
}

// Zero3D returns the zero vector.
func Zero3D() Vector3D { return Vector3D{} }

// One3D returns the vector with every component set to 1.
func One3D() Vector3D { return Broadcast3D(1) }

// Len returns 3.
func (v Vector3D) Len() int { return 3 }

// At returns component i; negative i counts from the end.
func (v Vector3D) At(i int) (float64, error) {
	return at(v.c[:], i, opName(name3D, opAt), Context3D)
}

// Slice returns a copy of components [start:stop) with negative indices and clamping.
func (v Vector3D) Slice(start, stop int) []float64 { return sliceOf(v.c[:], start, stop) }

// All iterates (index, component) pairs in positional order.
func (v Vector3D) All() iter.Seq2[int, float64] { return allOf(v.c[:]) }

// Components returns a copy of the components.
func (v Vector3D) Components() []float64 { return slices.Clone(v.c[:]) }

// Contains reports whether some component equals x.
func (v Vector3D) Contains(x float64) bool { return containsValue(v.c[:], x) }

// Operand implements Operand.
func (v Vector3D) Operand() ([]float64, bool) { return v.c[:], false }

// IsWrapped reports whether v was built from a host object.
func (v Vector3D) IsWrapped() bool { return v.wrapped }

// X returns component 0.
func (v Vector3D) X() float64 { return v.c[0] }

// Y returns component 1.
func (v Vector3D) Y() float64 { return v.c[1] }

// Z returns component 2.
func (v Vector3D) Z() float64 { return v.c[2] }

// SetX writes component 0.
func (v *Vector3D) SetX(x float64) error {
	return setIndex(v.c[:], v.wrapped, 0, x, opName(name3D, "SetX"), Context3D)
}

// SetY writes component 1.
func (v *Vector3D) SetY(x float64) error {
	return setIndex(v.c[:], v.wrapped, 1, x, opName(name3D, "SetY"), Context3D)
}

// SetZ writes component 2.
func (v *Vector3D) SetZ(x float64) error {
	return setIndex(v.c[:], v.wrapped, 2, x, opName(name3D, "SetZ"), Context3D)
}

// Set writes component i; negative i counts from the end.
func (v *Vector3D) Set(i int, x float64) error {
	return setIndex(v.c[:], v.wrapped, i, x, opName(name3D, opSet), Context3D)
}

// SetAll assigns every component from o (scalar broadcast or 3 values).
func (v *Vector3D) SetAll(o Operand) error {
	return setComponents(v.c[:], v.wrapped, o, opName(name3D, opSetAll), Context3D, 0, 1, 2)
}

// Eq compares component-wise for equality.
func (v Vector3D) Eq(o Operand) ([3]bool, error) { return v.compare(o, kernel.Eq) }

// Ne compares component-wise for inequality.
func (v Vector3D) Ne(o Operand) ([3]bool, error) { return v.compare(o, kernel.Ne) }

// Lt compares component-wise with <.
func (v Vector3D) Lt(o Operand) ([3]bool, error) { return v.compare(o, kernel.Lt) }

// Le compares component-wise with <=.
func (v Vector3D) Le(o Operand) ([3]bool, error) { return v.compare(o, kernel.Le) }

// Gt compares component-wise with >.
func (v Vector3D) Gt(o Operand) ([3]bool, error) { return v.compare(o, kernel.Gt) }

// Ge compares component-wise with >=.
func (v Vector3D) Ge(o Operand) ([3]bool, error) { return v.compare(o, kernel.Ge) }

// ApproxEqual reports |v_i - o_i| < eps per component (eps defaults to scalar.DefaultEpsilon).
func (v Vector3D) ApproxEqual(o Operand, opts ...scalar.Option) ([3]bool, error) {
	var out [3]bool
	err := approxEqual(out[:], v.c[:], o, opName(name3D, opApproxEqual), Context3D, opts)

	return out, err
}

func (v Vector3D) compare(o Operand, pred kernel.Predicate) ([3]bool, error) {
	var out [3]bool
	err := compare(out[:], v.c[:], o, opName(name3D, opCompare), Context3D, pred)

	return out, err
}

// Format implements fmt.Formatter: the verb and flags apply to each
// component, and %#v prints the constructor form.
func (v Vector3D) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, v.GoString())

		return
	}
	kernel.FormatTuple(f, verb, v.c[:], 0)
}

// String renders "(x, y, …)".
func (v Vector3D) String() string { return fmt.Sprintf("%v", v) }

// GoString renders "Vector3D(x, y, …)".
func (v Vector3D) GoString() string { return kernel.Repr(name3D, v.c[:]) }

// binary resolves o and combines it with v; reverse swaps the operand order.
func (v Vector3D) binary(op string, o Operand, k combiner, reverse bool) (Vector3D, error) {
	rhs, err := Coerce(o, 3, opName(name3D, op), Context3D)
	if err != nil {
		return Vector3D{}, err
	}
	var out Vector3D
	if reverse {
		k(out.c[:], rhs, v.c[:])
	} else {
		k(out.c[:], v.c[:], rhs)
	}

	return out, nil
}

func (v Vector3D) unary(f kernel.Unary) Vector3D {
	var out Vector3D
	kernel.Map(out.c[:], v.c[:], f)

	return out
}

// Add returns v + o.
func (v Vector3D) Add(o Operand) (Vector3D, error) { return v.binary(opAdd, o, combineAdd, false) }

// Sub returns v - o.
func (v Vector3D) Sub(o Operand) (Vector3D, error) { return v.binary(opSub, o, combineSub, false) }

// Mul returns v * o component-wise.
func (v Vector3D) Mul(o Operand) (Vector3D, error) { return v.binary(opMul, o, combineMul, false) }

// Div returns v / o component-wise; division by zero follows IEEE-754.
func (v Vector3D) Div(o Operand) (Vector3D, error) { return v.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(v / o) component-wise.
func (v Vector3D) FloorDiv(o Operand) (Vector3D, error) {
	return v.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns v mod o with the sign of the divisor.
func (v Vector3D) Mod(o Operand) (Vector3D, error) { return v.binary(opMod, o, combineMod, false) }

// Pow returns v ** o component-wise.
func (v Vector3D) Pow(o Operand) (Vector3D, error) { return v.binary(opPow, o, combinePow, false) }

// RAdd returns o + v.
func (v Vector3D) RAdd(o Operand) (Vector3D, error) { return v.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - v.
func (v Vector3D) RSub(o Operand) (Vector3D, error) { return v.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * v.
func (v Vector3D) RMul(o Operand) (Vector3D, error) { return v.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / v.
func (v Vector3D) RDiv(o Operand) (Vector3D, error) { return v.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / v).
func (v Vector3D) RFloorDiv(o Operand) (Vector3D, error) {
	return v.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod v.
func (v Vector3D) RMod(o Operand) (Vector3D, error) { return v.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** v.
func (v Vector3D) RPow(o Operand) (Vector3D, error) { return v.binary("R"+opPow, o, combinePow, true) }

// Abs returns |v|.
func (v Vector3D) Abs() Vector3D { return v.unary(math.Abs) }

// Pos returns an unwrapped copy of v.
func (v Vector3D) Pos() Vector3D { return v.unary(identity) }

// Neg returns -v.
func (v Vector3D) Neg() Vector3D { return v.unary(neg) }

// Min returns the component-wise minimum of v and o.
func (v Vector3D) Min(o Operand) (Vector3D, error) { return v.binary(opMin, o, combineMin, false) }

// Max returns the component-wise maximum of v and o.
func (v Vector3D) Max(o Operand) (Vector3D, error) { return v.binary(opMax, o, combineMax, false) }

// Clamp limits every component to [lo, hi]. Both bounds must be scalars
// or both sequences of 3 values; mixing them is ErrMixedBounds.
func (v Vector3D) Clamp(lo, hi Operand) (Vector3D, error) {
	l, h, err := coerceBounds(lo, hi, 3, opName(name3D, opClamp), Context3D)
	if err != nil {
		return Vector3D{}, err
	}
	var out Vector3D
	kernel.Zip3(out.c[:], v.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns v*(1-t) + to*t.
func (v Vector3D) Interpolate(to Operand, t float64) (Vector3D, error) {
	rhs, err := Coerce(to, 3, opName(name3D, opInterpolate), Context3D)
	if err != nil {
		return Vector3D{}, err
	}
	var out Vector3D
	kernel.Zip(out.c[:], v.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > v and 1 elsewhere.
func (v Vector3D) Step(edge Operand) (Vector3D, error) { return v.binary(opStep, edge, combineStep, true) }

// SmoothStep applies scalar.SmoothStep(e0, e1, v) per component.
func (v Vector3D) SmoothStep(e0, e1 Operand) (Vector3D, error) {
	op := opName(name3D, opSmoothStep)
	lo, err := Coerce(e0, 3, op, Context3D)
	if err != nil {
		return Vector3D{}, err
	}
	hi, err := Coerce(e1, 3, op, Context3D)
	if err != nil {
		return Vector3D{}, err
	}
	var out Vector3D
	kernel.Zip3(out.c[:], lo, hi, v.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(v, o) per component.
func (v Vector3D) Atan2(o Operand) (Vector3D, error) { return v.binary(opAtan2, o, combineAtan2, false) }

func (v Vector3D) Sign() Vector3D        { return v.unary(scalar.Sign) }
func (v Vector3D) Floor() Vector3D       { return v.unary(math.Floor) }
func (v Vector3D) Ceil() Vector3D        { return v.unary(math.Ceil) }
func (v Vector3D) Fract() Vector3D       { return v.unary(scalar.Fract) }
func (v Vector3D) Sqrt() Vector3D        { return v.unary(math.Sqrt) }
func (v Vector3D) InverseSqrt() Vector3D { return v.unary(scalar.InverseSqrt) }
func (v Vector3D) Exp() Vector3D         { return v.unary(math.Exp) }
func (v Vector3D) Exp2() Vector3D        { return v.unary(math.Exp2) }
func (v Vector3D) Exp10() Vector3D       { return v.unary(scalar.Exp10) }
func (v Vector3D) Log() Vector3D         { return v.unary(math.Log) }
func (v Vector3D) Log2() Vector3D        { return v.unary(math.Log2) }
func (v Vector3D) Log10() Vector3D       { return v.unary(math.Log10) }
func (v Vector3D) Radians() Vector3D     { return v.unary(scalar.Radians) }
func (v Vector3D) Degrees() Vector3D     { return v.unary(scalar.Degrees) }
func (v Vector3D) Sin() Vector3D         { return v.unary(math.Sin) }
func (v Vector3D) Cos() Vector3D         { return v.unary(math.Cos) }
func (v Vector3D) Tan() Vector3D         { return v.unary(math.Tan) }
func (v Vector3D) Sinh() Vector3D        { return v.unary(math.Sinh) }
func (v Vector3D) Cosh() Vector3D        { return v.unary(math.Cosh) }
func (v Vector3D) Tanh() Vector3D        { return v.unary(math.Tanh) }
func (v Vector3D) Asin() Vector3D        { return v.unary(math.Asin) }
func (v Vector3D) Acos() Vector3D        { return v.unary(math.Acos) }
func (v Vector3D) Atan() Vector3D        { return v.unary(math.Atan) }
func (v Vector3D) Asinh() Vector3D       { return v.unary(math.Asinh) }
func (v Vector3D) Acosh() Vector3D       { return v.unary(math.Acosh) }
func (v Vector3D) Atanh() Vector3D       { return v.unary(math.Atanh) }

// Dot returns Σ v_i·w_i.
func (v Vector3D) Dot(w Vector3D) float64 { return kernel.Dot(v.c[:], w.c[:]) }

// Length returns √(v·v).
func (v Vector3D) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns |v - w|.
func (v Vector3D) Distance(w Vector3D) float64 {
	var d Vector3D
	kernel.Sub(d.c[:], v.c[:], w.c[:])

	return d.Length()
}

// Normalize returns v / |v|. A zero vector yields NaN components.
func (v Vector3D) Normalize() Vector3D {
	var out Vector3D
	l := v.Length()
	kernel.Map(out.c[:], v.c[:], func(x float64) float64 { return x / l })

	return out
}

// FaceForward returns v if ref·i < 0, otherwise -v.
func (v Vector3D) FaceForward(i, ref Vector3D) Vector3D {
	if ref.Dot(i) < 0 {
		return v.Pos()
	}

	return v.Neg()
}

// Reflect returns v - 2·(n·v)·n. n is expected to be unit length.
func (v Vector3D) Reflect(n Vector3D) Vector3D {
	var out, t Vector3D
	kernel.Scale(t.c[:], n.c[:], 2*n.Dot(v))
	kernel.Sub(out.c[:], v.c[:], t.c[:])

	return out
}

// RefractVector refracts v through a surface with normal n and index ratio r.
// ok is false on total internal reflection.
func (v Vector3D) RefractVector(n Vector3D, r float64) (out Vector3D, ok bool) {
	c := n.Dot(v)
	d := 1 - r*r*(1-c*c)
	if d < 0 {
		return Vector3D{}, false
	}
	var a, b Vector3D
	kernel.Scale(a.c[:], v.c[:], r)
	kernel.Scale(b.c[:], n.c[:], r*c+math.Sqrt(d))
	kernel.Sub(out.c[:], a.c[:], b.c[:])

	return out, true
}

// Refract is RefractVector reporting total internal reflection as Scalar(0).
// Any other result is the refracted Vector3D.
func (v Vector3D) Refract(n Vector3D, r float64) Operand {
	out, ok := v.RefractVector(n, r)
	if !ok {
		return Scalar(0)
	}

	return out
}

// Cross returns v × w.
func (v Vector3D) Cross(w Vector3D) Vector3D {
	return New3D(
		v.c[1]*w.c[2]-v.c[2]*w.c[1],
		v.c[2]*w.c[0]-v.c[0]*w.c[2],
		v.c[0]*w.c[1]-v.c[1]*w.c[0],
	)
}
