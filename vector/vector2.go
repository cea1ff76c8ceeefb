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

// Vector2D is a 2-component float64 vector with named components X and Y.
//
// The zero value is the zero vector. Vector2D is a value type: every
// operation returns a fresh vector and never aliases the receiver.
// Vectors built by Wrap2D are read-only; their setters return ErrWrapped.
type Vector2D struct {
	c       [2]float64
	wrapped bool
}

// New2D builds a vector from its components.
func New2D(x, y float64) Vector2D {
	var v Vector2D
	kernel.Copy(v.c[:], []float64{x, y})

	return v
}

// Broadcast2D builds a vector with every component set to s.
func Broadcast2D(s float64) Vector2D {
	var v Vector2D
	for i := range v.c {
		kernel.Store(v.c[:], i, s)
	}

	return v
}

// From2D builds a vector from exactly 2 values, widening integers to float64.
func From2D[T scalar.Real](vals []T) (Vector2D, error) {
	if len(vals) != 2 {
		return Vector2D{}, dimErrorf(opName(name2D, opFrom), Context2D, ErrDimension, "expected 2 values, got %d", len(vals))
	}
	var v Vector2D
	kernel.Copy(v.c[:], scalar.Widen(vals))

	return v, nil
}

// Zero2D returns the zero vector.
func Zero2D() Vector2D { return Vector2D{} }

// One2D returns the vector with every component set to 1.
func One2D() Vector2D { return Broadcast2D(1) }

// Len returns 2.
func (v Vector2D) Len() int { return 2 }

// At returns component i; negative i counts from the end.
func (v Vector2D) At(i int) (float64, error) {
	return at(v.c[:], i, opName(name2D, opAt), Context2D)
}

// Slice returns a copy of components [start:stop) with negative indices and clamping.
func (v Vector2D) Slice(start, stop int) []float64 { return sliceOf(v.c[:], start, stop) }

// All iterates (index, component) pairs in positional order.
func (v Vector2D) All() iter.Seq2[int, float64] { return allOf(v.c[:]) }

// Components returns a copy of the components.
func (v Vector2D) Components() []float64 { return slices.Clone(v.c[:]) }

// Contains reports whether some component equals x.
func (v Vector2D) Contains(x float64) bool { return containsValue(v.c[:], x) }

// Operand implements Operand.
func (v Vector2D) Operand() ([]float64, bool) { return v.c[:], false }

// IsWrapped reports whether v was built from a host object.
func (v Vector2D) IsWrapped() bool { return v.wrapped }

// X returns component 0.
func (v Vector2D) X() float64 { return v.c[0] }

// Y returns component 1.
func (v Vector2D) Y() float64 { return v.c[1] }

// SetX writes component 0.
func (v *Vector2D) SetX(x float64) error {
	return setIndex(v.c[:], v.wrapped, 0, x, opName(name2D, "SetX"), Context2D)
}

// SetY writes component 1.
func (v *Vector2D) SetY(x float64) error {
	return setIndex(v.c[:], v.wrapped, 1, x, opName(name2D, "SetY"), Context2D)
}

// Set writes component i; negative i counts from the end.
func (v *Vector2D) Set(i int, x float64) error {
	return setIndex(v.c[:], v.wrapped, i, x, opName(name2D, opSet), Context2D)
}

// SetAll assigns every component from o (scalar broadcast or 2 values).
func (v *Vector2D) SetAll(o Operand) error {
	return setComponents(v.c[:], v.wrapped, o, opName(name2D, opSetAll), Context2D, 0, 1)
}

// Eq compares component-wise for equality.
func (v Vector2D) Eq(o Operand) ([2]bool, error) { return v.compare(o, kernel.Eq) }

// Ne compares component-wise for inequality.
func (v Vector2D) Ne(o Operand) ([2]bool, error) { return v.compare(o, kernel.Ne) }

// Lt compares component-wise with <.
func (v Vector2D) Lt(o Operand) ([2]bool, error) { return v.compare(o, kernel.Lt) }

// Le compares component-wise with <=.
func (v Vector2D) Le(o Operand) ([2]bool, error) { return v.compare(o, kernel.Le) }

// Gt compares component-wise with >.
func (v Vector2D) Gt(o Operand) ([2]bool, error) { return v.compare(o, kernel.Gt) }

// Ge compares component-wise with >=.
func (v Vector2D) Ge(o Operand) ([2]bool, error) { return v.compare(o, kernel.Ge) }

// ApproxEqual reports |v_i - o_i| < eps per component (eps defaults to scalar.DefaultEpsilon).
func (v Vector2D) ApproxEqual(o Operand, opts ...scalar.Option) ([2]bool, error) {
	var out [2]bool
	err := approxEqual(out[:], v.c[:], o, opName(name2D, opApproxEqual), Context2D, opts)

	return out, err
}

func (v Vector2D) compare(o Operand, pred kernel.Predicate) ([2]bool, error) {
	var out [2]bool
	err := compare(out[:], v.c[:], o, opName(name2D, opCompare), Context2D, pred)

	return out, err
}

// Format implements fmt.Formatter: the verb and flags apply to each
// component, and %#v prints the constructor form.
func (v Vector2D) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, v.GoString())

		return
	}
	kernel.FormatTuple(f, verb, v.c[:], 0)
}

// String renders "(x, y, …)".
func (v Vector2D) String() string { return fmt.Sprintf("%v", v) }

// GoString renders "Vector2D(x, y, …)".
func (v Vector2D) GoString() string { return kernel.Repr(name2D, v.c[:]) }

// binary resolves o and combines it with v; reverse swaps the operand order.
func (v Vector2D) binary(op string, o Operand, k combiner, reverse bool) (Vector2D, error) {
	rhs, err := Coerce(o, 2, opName(name2D, op), Context2D)
	if err != nil {
		return Vector2D{}, err
	}
	var out Vector2D
	if reverse {
		k(out.c[:], rhs, v.c[:])
	} else {
		k(out.c[:], v.c[:], rhs)
	}

	return out, nil
}

func (v Vector2D) unary(f kernel.Unary) Vector2D {
	var out Vector2D
	kernel.Map(out.c[:], v.c[:], f)

	return out
}

// Add returns v + o.
func (v Vector2D) Add(o Operand) (Vector2D, error) { return v.binary(opAdd, o, combineAdd, false) }

// Sub returns v - o.
func (v Vector2D) Sub(o Operand) (Vector2D, error) { return v.binary(opSub, o, combineSub, false) }

// Mul returns v * o component-wise.
func (v Vector2D) Mul(o Operand) (Vector2D, error) { return v.binary(opMul, o, combineMul, false) }

// Div returns v / o component-wise; division by zero follows IEEE-754.
func (v Vector2D) Div(o Operand) (Vector2D, error) { return v.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(v / o) component-wise.
func (v Vector2D) FloorDiv(o Operand) (Vector2D, error) {
	return v.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns v mod o with the sign of the divisor.
func (v Vector2D) Mod(o Operand) (Vector2D, error) { return v.binary(opMod, o, combineMod, false) }

// Pow returns v ** o component-wise.
func (v Vector2D) Pow(o Operand) (Vector2D, error) { return v.binary(opPow, o, combinePow, false) }

// RAdd returns o + v.
func (v Vector2D) RAdd(o Operand) (Vector2D, error) { return v.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - v.
func (v Vector2D) RSub(o Operand) (Vector2D, error) { return v.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * v.
func (v Vector2D) RMul(o Operand) (Vector2D, error) { return v.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / v.
func (v Vector2D) RDiv(o Operand) (Vector2D, error) { return v.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / v).
func (v Vector2D) RFloorDiv(o Operand) (Vector2D, error) {
	return v.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod v.
func (v Vector2D) RMod(o Operand) (Vector2D, error) { return v.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** v.
func (v Vector2D) RPow(o Operand) (Vector2D, error) { return v.binary("R"+opPow, o, combinePow, true) }

// Abs returns |v|.
func (v Vector2D) Abs() Vector2D { return v.unary(math.Abs) }

// Pos returns an unwrapped copy of v.
func (v Vector2D) Pos() Vector2D { return v.unary(identity) }

// Neg returns -v.
func (v Vector2D) Neg() Vector2D { return v.unary(neg) }

// Min returns the component-wise minimum of v and o.
func (v Vector2D) Min(o Operand) (Vector2D, error) { return v.binary(opMin, o, combineMin, false) }

// Max returns the component-wise maximum of v and o.
func (v Vector2D) Max(o Operand) (Vector2D, error) { return v.binary(opMax, o, combineMax, false) }

// Clamp limits every component to [lo, hi]. Both bounds must be scalars
// or both sequences of 2 values; mixing them is ErrMixedBounds.
func (v Vector2D) Clamp(lo, hi Operand) (Vector2D, error) {
	l, h, err := coerceBounds(lo, hi, 2, opName(name2D, opClamp), Context2D)
	if err != nil {
		return Vector2D{}, err
	}
	var out Vector2D
	kernel.Zip3(out.c[:], v.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns v*(1-t) + to*t.
func (v Vector2D) Interpolate(to Operand, t float64) (Vector2D, error) {
	rhs, err := Coerce(to, 2, opName(name2D, opInterpolate), Context2D)
	if err != nil {
		return Vector2D{}, err
	}
	var out Vector2D
	kernel.Zip(out.c[:], v.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > v and 1 elsewhere.
func (v Vector2D) Step(edge Operand) (Vector2D, error) { return v.binary(opStep, edge, combineStep, true) }

// SmoothStep applies scalar.SmoothStep(e0, e1, v) per component.
func (v Vector2D) SmoothStep(e0, e1 Operand) (Vector2D, error) {
	op := opName(name2D, opSmoothStep)
	lo, err := Coerce(e0, 2, op, Context2D)
	if err != nil {
		return Vector2D{}, err
	}
	hi, err := Coerce(e1, 2, op, Context2D)
	if err != nil {
		return Vector2D{}, err
	}
	var out Vector2D
	kernel.Zip3(out.c[:], lo, hi, v.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(v, o) per component.
func (v Vector2D) Atan2(o Operand) (Vector2D, error) { return v.binary(opAtan2, o, combineAtan2, false) }

func (v Vector2D) Sign() Vector2D        { return v.unary(scalar.Sign) }
func (v Vector2D) Floor() Vector2D       { return v.unary(math.Floor) }
func (v Vector2D) Ceil() Vector2D        { return v.unary(math.Ceil) }
func (v Vector2D) Fract() Vector2D       { return v.unary(scalar.Fract) }
func (v Vector2D) Sqrt() Vector2D        { return v.unary(math.Sqrt) }
func (v Vector2D) InverseSqrt() Vector2D { return v.unary(scalar.InverseSqrt) }
func (v Vector2D) Exp() Vector2D         { return v.unary(math.Exp) }
func (v Vector2D) Exp2() Vector2D        { return v.unary(math.Exp2) }
func (v Vector2D) Exp10() Vector2D       { return v.unary(scalar.Exp10) }
func (v Vector2D) Log() Vector2D         { return v.unary(math.Log) }
func (v Vector2D) Log2() Vector2D        { return v.unary(math.Log2) }
func (v Vector2D) Log10() Vector2D       { return v.unary(math.Log10) }
func (v Vector2D) Radians() Vector2D     { return v.unary(scalar.Radians) }
func (v Vector2D) Degrees() Vector2D     { return v.unary(scalar.Degrees) }
func (v Vector2D) Sin() Vector2D         { return v.unary(math.Sin) }
func (v Vector2D) Cos() Vector2D         { return v.unary(math.Cos) }
func (v Vector2D) Tan() Vector2D         { return v.unary(math.Tan) }
func (v Vector2D) Sinh() Vector2D        { return v.unary(math.Sinh) }
func (v Vector2D) Cosh() Vector2D        { return v.unary(math.Cosh) }
func (v Vector2D) Tanh() Vector2D        { return v.unary(math.Tanh) }
func (v Vector2D) Asin() Vector2D        { return v.unary(math.Asin) }
func (v Vector2D) Acos() Vector2D        { return v.unary(math.Acos) }
func (v Vector2D) Atan() Vector2D        { return v.unary(math.Atan) }
func (v Vector2D) Asinh() Vector2D       { return v.unary(math.Asinh) }
func (v Vector2D) Acosh() Vector2D       { return v.unary(math.Acosh) }
func (v Vector2D) Atanh() Vector2D       { return v.unary(math.Atanh) }

// Dot returns Σ v_i·w_i.
func (v Vector2D) Dot(w Vector2D) float64 { return kernel.Dot(v.c[:], w.c[:]) }

// Length returns √(v·v).
func (v Vector2D) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns |v - w|.
func (v Vector2D) Distance(w Vector2D) float64 {
	var d Vector2D
	kernel.Sub(d.c[:], v.c[:], w.c[:])

	return d.Length()
}

// Normalize returns v / |v|. A zero vector yields NaN components.
func (v Vector2D) Normalize() Vector2D {
	var out Vector2D
	l := v.Length()
	kernel.Map(out.c[:], v.c[:], func(x float64) float64 { return x / l })

	return out
}

// FaceForward returns v if ref·i < 0, otherwise -v.
func (v Vector2D) FaceForward(i, ref Vector2D) Vector2D {
	if ref.Dot(i) < 0 {
		return v.Pos()
	}

	return v.Neg()
}

// Reflect returns v - 2·(n·v)·n. n is expected to be unit length.
func (v Vector2D) Reflect(n Vector2D) Vector2D {
	var out, t Vector2D
	kernel.Scale(t.c[:], n.c[:], 2*n.Dot(v))
	kernel.Sub(out.c[:], v.c[:], t.c[:])

	return out
}

// RefractVector refracts v through a surface with normal n and index ratio r.
// ok is false on total internal reflection.
func (v Vector2D) RefractVector(n Vector2D, r float64) (out Vector2D, ok bool) {
	c := n.Dot(v)
	d := 1 - r*r*(1-c*c)
	if d < 0 {
		return Vector2D{}, false
	}
	var a, b Vector2D
	kernel.Scale(a.c[:], v.c[:], r)
	kernel.Scale(b.c[:], n.c[:], r*c+math.Sqrt(d))
	kernel.Sub(out.c[:], a.c[:], b.c[:])

	return out, true
}

// Refract is RefractVector reporting total internal reflection as Scalar(0).
// Any other result is the refracted Vector2D.
func (v Vector2D) Refract(n Vector2D, r float64) Operand {
	out, ok := v.RefractVector(n, r)
	if !ok {
		return Scalar(0)
	}

	return out
}
