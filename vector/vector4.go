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

// Vector4D is a 4-component float64 vector with named components X, Y, Z and W.
//
// The zero value is the zero vector. Vector4D is a value type: every
// operation returns a fresh vector and never aliases the receiver.
// Vectors built by Wrap4D are read-only; their setters return ErrWrapped.
type Vector4D struct {
	c       [4]float64
	wrapped bool
}

// New4D builds a vector from its components.
func New4D(x, y, z, w float64) Vector4D {
	var v Vector4D
	kernel.Copy(v.c[:], []float64{x, y, z, w})

	return v
}

// Broadcast4D builds a vector with every component set to s.
func Broadcast4D(s float64) Vector4D {
	var v Vector4D
	for i := range v.c {
		kernel.Store(v.c[:], i, s)
	}

	return v
}

// From4D builds a vector from exactly 4 values, widening integers to float64.
func From4D[T scalar.Real](vals []T) (Vector4D, error) {
	if len(vals) != 4 {
		return Vector4D{}, dimErrorf(opName(name4D, opFrom), Context4D, ErrDimension, "expected 4 values, got %d", len(vals))
	}
	var v Vector4D
	kernel.Copy(v.c[:], scalar.Widen(vals))

	return v, nil
}

// Zero4D returns the zero vector.
func Zero4D() Vector4D { return Vector4D{} }

// One4D returns the vector with every component set to 1.
func One4D() Vector4D { return Broadcast4D(1) }

// Len returns 4.
func (v Vector4D) Len() int { return 4 }

// At returns component i; negative i counts from the end.
func (v Vector4D) At(i int) (float64, error) {
	return at(v.c[:], i, opName(name4D, opAt), Context4D)
}

// Slice returns a copy of components [start:stop) with negative indices and clamping.
func (v Vector4D) Slice(start, stop int) []float64 { return sliceOf(v.c[:], start, stop) }

// All iterates (index, component) pairs in positional order.
func (v Vector4D) All() iter.Seq2[int, float64] { return allOf(v.c[:]) }

// Components returns a copy of the components.
func (v Vector4D) Components() []float64 { return slices.Clone(v.c[:]) }

// Contains reports whether some component equals x.
func (v Vector4D) Contains(x float64) bool { return containsValue(v.c[:], x) }

// Operand implements Operand.
func (v Vector4D) Operand() ([]float64, bool) { return v.c[:], false }

// IsWrapped reports whether v was built from a host object.
func (v Vector4D) IsWrapped() bool { return v.wrapped }

// X returns component 0.
func (v Vector4D) X() float64 { return v.c[0] }

// Y returns component 1.
func (v Vector4D) Y() float64 { return v.c[1] }

// Z returns component 2.
func (v Vector4D) Z() float64 { return v.c[2] }

// W returns component 3.
func (v Vector4D) W() float64 { return v.c[3] }

// SetX writes component 0.
func (v *Vector4D) SetX(x float64) error {
	return setIndex(v.c[:], v.wrapped, 0, x, opName(name4D, "SetX"), Context4D)
}

// SetY writes component 1.
func (v *Vector4D) SetY(x float64) error {
	return setIndex(v.c[:], v.wrapped, 1, x, opName(name4D, "SetY"), Context4D)
}

// SetZ writes component 2.
func (v *Vector4D) SetZ(x float64) error {
	return setIndex(v.c[:], v.wrapped, 2, x, opName(name4D, "SetZ"), Context4D)
}

// SetW writes component 3.
func (v *Vector4D) SetW(x float64) error {
	return setIndex(v.c[:], v.wrapped, 3, x, opName(name4D, "SetW"), Context4D)
}

// Set writes component i; negative i counts from the end.
func (v *Vector4D) Set(i int, x float64) error {
	return setIndex(v.c[:], v.wrapped, i, x, opName(name4D, opSet), Context4D)
}

// SetAll assigns every component from o (scalar broadcast or 4 values).
func (v *Vector4D) SetAll(o Operand) error {
	return setComponents(v.c[:], v.wrapped, o, opName(name4D, opSetAll), Context4D, 0, 1, 2, 3)
}

// Eq compares component-wise for equality.
func (v Vector4D) Eq(o Operand) ([4]bool, error) { return v.compare(o, kernel.Eq) }

// Ne compares component-wise for inequality.
func (v Vector4D) Ne(o Operand) ([4]bool, error) { return v.compare(o, kernel.Ne) }

// Lt compares component-wise with <.
func (v Vector4D) Lt(o Operand) ([4]bool, error) { return v.compare(o, kernel.Lt) }

// Le compares component-wise with <=.
func (v Vector4D) Le(o Operand) ([4]bool, error) { return v.compare(o, kernel.Le) }

// Gt compares component-wise with >.
func (v Vector4D) Gt(o Operand) ([4]bool, error) { return v.compare(o, kernel.Gt) }

// Ge compares component-wise with >=.
func (v Vector4D) Ge(o Operand) ([4]bool, error) { return v.compare(o, kernel.Ge) }

// ApproxEqual reports |v_i - o_i| < eps per component (eps defaults to scalar.DefaultEpsilon).
func (v Vector4D) ApproxEqual(o Operand, opts ...scalar.Option) ([4]bool, error) {
	var out [4]bool
	err := approxEqual(out[:], v.c[:], o, opName(name4D, opApproxEqual), Context4D, opts)

	return out, err
}

func (v Vector4D) compare(o Operand, pred kernel.Predicate) ([4]bool, error) {
	var out [4]bool
	err := compare(out[:], v.c[:], o, opName(name4D, opCompare), Context4D, pred)

	return out, err
}

// Format implements fmt.Formatter: the verb and flags apply to each
// component, and %#v prints the constructor form.
func (v Vector4D) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = io.WriteString(f, v.GoString())

		return
	}
	kernel.FormatTuple(f, verb, v.c[:], 0)
}

// String renders "(x, y, …)".
func (v Vector4D) String() string { return fmt.Sprintf("%v", v) }

// GoString renders "Vector4D(x, y, …)".
func (v Vector4D) GoString() string { return kernel.Repr(name4D, v.c[:]) }

// binary resolves o and combines it with v; reverse swaps the operand order.
func (v Vector4D) binary(op string, o Operand, k combiner, reverse bool) (Vector4D, error) {
	rhs, err := Coerce(o, 4, opName(name4D, op), Context4D)
	if err != nil {
		return Vector4D{}, err
	}
	var out Vector4D
	if reverse {
		k(out.c[:], rhs, v.c[:])
	} else {
		k(out.c[:], v.c[:], rhs)
	}

	return out, nil
}

func (v Vector4D) unary(f kernel.Unary) Vector4D {
	var out Vector4D
	kernel.Map(out.c[:], v.c[:], f)

	return out
}

// Add returns v + o.
func (v Vector4D) Add(o Operand) (Vector4D, error) { return v.binary(opAdd, o, combineAdd, false) }

// Sub returns v - o.
func (v Vector4D) Sub(o Operand) (Vector4D, error) { return v.binary(opSub, o, combineSub, false) }

// Mul returns v * o component-wise.
func (v Vector4D) Mul(o Operand) (Vector4D, error) { return v.binary(opMul, o, combineMul, false) }

// Div returns v / o component-wise; division by zero follows IEEE-754.
func (v Vector4D) Div(o Operand) (Vector4D, error) { return v.binary(opDiv, o, combineDiv, false) }

// FloorDiv returns floor(v / o) component-wise.
func (v Vector4D) FloorDiv(o Operand) (Vector4D, error) {
	return v.binary(opFloorDiv, o, combineFloorDiv, false)
}

// Mod returns v mod o with the sign of the divisor.
func (v Vector4D) Mod(o Operand) (Vector4D, error) { return v.binary(opMod, o, combineMod, false) }

// Pow returns v ** o component-wise.
func (v Vector4D) Pow(o Operand) (Vector4D, error) { return v.binary(opPow, o, combinePow, false) }

// RAdd returns o + v.
func (v Vector4D) RAdd(o Operand) (Vector4D, error) { return v.binary("R"+opAdd, o, combineAdd, true) }

// RSub returns o - v.
func (v Vector4D) RSub(o Operand) (Vector4D, error) { return v.binary("R"+opSub, o, combineSub, true) }

// RMul returns o * v.
func (v Vector4D) RMul(o Operand) (Vector4D, error) { return v.binary("R"+opMul, o, combineMul, true) }

// RDiv returns o / v.
func (v Vector4D) RDiv(o Operand) (Vector4D, error) { return v.binary("R"+opDiv, o, combineDiv, true) }

// RFloorDiv returns floor(o / v).
func (v Vector4D) RFloorDiv(o Operand) (Vector4D, error) {
	return v.binary("R"+opFloorDiv, o, combineFloorDiv, true)
}

// RMod returns o mod v.
func (v Vector4D) RMod(o Operand) (Vector4D, error) { return v.binary("R"+opMod, o, combineMod, true) }

// RPow returns o ** v.
func (v Vector4D) RPow(o Operand) (Vector4D, error) { return v.binary("R"+opPow, o, combinePow, true) }

// Abs returns |v|.
func (v Vector4D) Abs() Vector4D { return v.unary(math.Abs) }

// Pos returns an unwrapped copy of v.
func (v Vector4D) Pos() Vector4D { return v.unary(identity) }

// Neg returns -v.
func (v Vector4D) Neg() Vector4D { return v.unary(neg) }

// Min returns the component-wise minimum of v and o.
func (v Vector4D) Min(o Operand) (Vector4D, error) { return v.binary(opMin, o, combineMin, false) }

// Max returns the component-wise maximum of v and o.
func (v Vector4D) Max(o Operand) (Vector4D, error) { return v.binary(opMax, o, combineMax, false) }

// Clamp limits every component to [lo, hi]. Both bounds must be scalars
// or both sequences of 4 values; mixing them is ErrMixedBounds.
func (v Vector4D) Clamp(lo, hi Operand) (Vector4D, error) {
	l, h, err := coerceBounds(lo, hi, 4, opName(name4D, opClamp), Context4D)
	if err != nil {
		return Vector4D{}, err
	}
	var out Vector4D
	kernel.Zip3(out.c[:], v.c[:], l, h, scalar.Clamp)

	return out, nil
}

// Interpolate returns v*(1-t) + to*t.
func (v Vector4D) Interpolate(to Operand, t float64) (Vector4D, error) {
	rhs, err := Coerce(to, 4, opName(name4D, opInterpolate), Context4D)
	if err != nil {
		return Vector4D{}, err
	}
	var out Vector4D
	kernel.Zip(out.c[:], v.c[:], rhs, func(a, b float64) float64 { return lerp(a, b, t) })

	return out, nil
}

// Step returns 0 where edge > v and 1 elsewhere.
func (v Vector4D) Step(edge Operand) (Vector4D, error) { return v.binary(opStep, edge, combineStep, true) }

// SmoothStep applies scalar.SmoothStep(e0, e1, v) per component.
func (v Vector4D) SmoothStep(e0, e1 Operand) (Vector4D, error) {
	op := opName(name4D, opSmoothStep)
	lo, err := Coerce(e0, 4, op, Context4D)
	if err != nil {
		return Vector4D{}, err
	}
	hi, err := Coerce(e1, 4, op, Context4D)
	if err != nil {
		return Vector4D{}, err
	}
	var out Vector4D
	kernel.Zip3(out.c[:], lo, hi, v.c[:], scalar.SmoothStep)

	return out, nil
}

// Atan2 returns atan2(v, o) per component.
func (v Vector4D) Atan2(o Operand) (Vector4D, error) { return v.binary(opAtan2, o, combineAtan2, false) }

func (v Vector4D) Sign() Vector4D        { return v.unary(scalar.Sign) }
func (v Vector4D) Floor() Vector4D       { return v.unary(math.Floor) }
func (v Vector4D) Ceil() Vector4D        { return v.unary(math.Ceil) }
func (v Vector4D) Fract() Vector4D       { return v.unary(scalar.Fract) }
func (v Vector4D) Sqrt() Vector4D        { return v.unary(math.Sqrt) }
func (v Vector4D) InverseSqrt() Vector4D { return v.unary(scalar.InverseSqrt) }
func (v Vector4D) Exp() Vector4D         { return v.unary(math.Exp) }
func (v Vector4D) Exp2() Vector4D        { return v.unary(math.Exp2) }
func (v Vector4D) Exp10() Vector4D       { return v.unary(scalar.Exp10) }
func (v Vector4D) Log() Vector4D         { return v.unary(math.Log) }
func (v Vector4D) Log2() Vector4D        { return v.unary(math.Log2) }
func (v Vector4D) Log10() Vector4D       { return v.unary(math.Log10) }
func (v Vector4D) Radians() Vector4D     { return v.unary(scalar.Radians) }
func (v Vector4D) Degrees() Vector4D     { return v.unary(scalar.Degrees) }
func (v Vector4D) Sin() Vector4D         { return v.unary(math.Sin) }
func (v Vector4D) Cos() Vector4D         { return v.unary(math.Cos) }
func (v Vector4D) Tan() Vector4D         { return v.unary(math.Tan) }
func (v Vector4D) Sinh() Vector4D        { return v.unary(math.Sinh) }
func (v Vector4D) Cosh() Vector4D        { return v.unary(math.Cosh) }
func (v Vector4D) Tanh() Vector4D        { return v.unary(math.Tanh) }
func (v Vector4D) Asin() Vector4D        { return v.unary(math.Asin) }
func (v Vector4D) Acos() Vector4D        { return v.unary(math.Acos) }
func (v Vector4D) Atan() Vector4D        { return v.unary(math.Atan) }
func (v Vector4D) Asinh() Vector4D       { return v.unary(math.Asinh) }
func (v Vector4D) Acosh() Vector4D       { return v.unary(math.Acosh) }
func (v Vector4D) Atanh() Vector4D       { return v.unary(math.Atanh) }

// Dot returns Σ v_i·w_i.
func (v Vector4D) Dot(w Vector4D) float64 { return kernel.Dot(v.c[:], w.c[:]) }

// Length returns √(v·v).
func (v Vector4D) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns |v - w|.
func (v Vector4D) Distance(w Vector4D) float64 {
	var d Vector4D
	kernel.Sub(d.c[:], v.c[:], w.c[:])

	return d.Length()
}

// Normalize returns v / |v|. A zero vector yields NaN components.
func (v Vector4D) Normalize() Vector4D {
	var out Vector4D
	l := v.Length()
	kernel.Map(out.c[:], v.c[:], func(x float64) float64 { return x / l })

	return out
}

// FaceForward returns v if ref·i < 0, otherwise -v.
func (v Vector4D) FaceForward(i, ref Vector4D) Vector4D {
	if ref.Dot(i) < 0 {
		return v.Pos()
	}

	return v.Neg()
}

// Reflect returns v - 2·(n·v)·n. n is expected to be unit length.
func (v Vector4D) Reflect(n Vector4D) Vector4D {
	var out, t Vector4D
	kernel.Scale(t.c[:], n.c[:], 2*n.Dot(v))
	kernel.Sub(out.c[:], v.c[:], t.c[:])

	return out
}

// RefractVector refracts v through a surface with normal n and index ratio r.
// ok is false on total internal reflection.
func (v Vector4D) RefractVector(n Vector4D, r float64) (out Vector4D, ok bool) {
	c := n.Dot(v)
	d := 1 - r*r*(1-c*c)
	if d < 0 {
		return Vector4D{}, false
	}
	var a, b Vector4D
	kernel.Scale(a.c[:], v.c[:], r)
	kernel.Scale(b.c[:], n.c[:], r*c+math.Sqrt(d))
	kernel.Sub(out.c[:], a.c[:], b.c[:])

	return out, true
}

// Refract is RefractVector reporting total internal reflection as Scalar(0).
// Any other result is the refracted Vector4D.
func (v Vector4D) Refract(n Vector4D, r float64) Operand {
	out, ok := v.RefractVector(n, r)
	if !ok {
		return Scalar(0)
	}

	return out
}
