package vector_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

const tol = 1e-12

// samples3D is a fixed set of non-zero vectors for property checks.
var samples3D = []vector.Vector3D{
	vector.New3D(1, 2, 3),
	vector.New3D(-4, 0.5, 2),
	vector.New3D(0, 3, 4),
	vector.New3D(1e-3, -7, 11),
	vector.New3D(100, -250, 0.25),
}

func requireComponents(t *testing.T, want []float64, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], delta, "component %d", i)
	}
}

func TestVector2D_Add(t *testing.T) {
	got, err := vector.New2D(1, 2).Add(vector.New2D(3, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6}, got.Components())
}

func TestVector3D_Normalize(t *testing.T) {
	got := vector.New3D(0, 3, 4).Normalize()
	requireComponents(t, []float64{0, 0.6, 0.8}, got.Components(), tol)

	zero := vector.Zero3D().Normalize()
	require.True(t, math.IsNaN(zero.X()))
}

func TestVector4D_Reflect(t *testing.T) {
	got := vector.New4D(1, -1, 0, 0).Reflect(vector.New4D(0, 1, 0, 0))
	require.Equal(t, []float64{1, 1, 0, 0}, got.Components())
}

func TestConstruction(t *testing.T) {
	require.Equal(t, []float64{7, 7, 7}, vector.Broadcast3D(7).Components())
	require.Equal(t, []float64{0, 0}, vector.Zero2D().Components())
	require.Equal(t, []float64{1, 1, 1, 1}, vector.One4D().Components())

	v, err := vector.From3D([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, vector.New3D(1, 2, 3), v)

	_, err = vector.From3D([]float64{1, 2})
	require.ErrorIs(t, err, vector.ErrDimension)
	require.True(t, vector.IsDimensionError(err))

	var de *vector.DimensionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, vector.Context3D, de.Context)
	require.Equal(t, "Vector3D.From (3D): dimension mismatch: expected 3 values, got 2", err.Error())

	_, err = vector.From4D([]float32{1, 2, 3, 4, 5})
	require.ErrorIs(t, err, vector.ErrDimension)
}

func TestNegativeZeroIsCanonical(t *testing.T) {
	negZero := math.Copysign(0, -1)
	v := vector.New2D(negZero, 1)
	require.False(t, math.Signbit(v.X()))

	n := vector.Zero3D().Neg()
	for _, x := range n.Components() {
		require.False(t, math.Signbit(x))
	}

	m, err := vector.New2D(0, 1).Mul(vector.Scalar(-1))
	require.NoError(t, err)
	require.False(t, math.Signbit(m.X()))

	require.NoError(t, v.SetY(negZero))
	require.False(t, math.Signbit(v.Y()))
}

func TestIndexingAndIteration(t *testing.T) {
	v := vector.New4D(1, 2, 3, 4)
	require.Equal(t, 4, v.Len())

	x, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, x)

	last, err := v.At(-1)
	require.NoError(t, err)
	require.Equal(t, 4.0, last)

	for _, i := range []int{4, -5, 100} {
		_, err = v.At(i)
		require.ErrorIs(t, err, vector.ErrIndexOutOfRange, "At(%d)", i)
	}

	require.Equal(t, []float64{2, 3}, v.Slice(1, -1))
	require.Equal(t, []float64{1, 2, 3, 4}, v.Slice(-10, 10))
	require.Empty(t, v.Slice(3, 1))

	var got []float64
	for i, c := range v.All() {
		require.Equal(t, float64(i+1), c)
		got = append(got, c)
	}
	require.Equal(t, v.Components(), got)

	require.True(t, v.Contains(3))
	require.False(t, v.Contains(5))
}

func TestSetters(t *testing.T) {
	v := vector.Zero3D()
	require.NoError(t, v.SetX(1))
	require.NoError(t, v.SetY(2))
	require.NoError(t, v.SetZ(3))
	require.Equal(t, vector.New3D(1, 2, 3), v)

	require.NoError(t, v.Set(-1, 9))
	require.Equal(t, 9.0, v.Z())
	require.ErrorIs(t, v.Set(3, 0), vector.ErrIndexOutOfRange)

	require.NoError(t, v.SetAll(vector.Scalar(5)))
	require.Equal(t, vector.Broadcast3D(5), v)
	require.NoError(t, v.SetAll(vector.Values{4, 5, 6}))
	require.Equal(t, vector.New3D(4, 5, 6), v)
	require.ErrorIs(t, v.SetAll(vector.Values{1}), vector.ErrDimension)
	require.Equal(t, vector.New3D(4, 5, 6), v)
}

func TestSwizzles(t *testing.T) {
	v := vector.New4D(1, 2, 3, 4)
	require.Equal(t, vector.New4D(4, 3, 2, 1), v.WZYX())
	require.Equal(t, vector.New3D(1, 1, 4), v.XXW())
	require.Equal(t, vector.New2D(3, 2), v.ZY())

	u := vector.New2D(5, 6)
	require.Equal(t, vector.New4D(6, 5, 6, 5), u.YXYX())

	require.NoError(t, v.SetZX(vector.Values{9, 8}))
	require.Equal(t, vector.New4D(8, 2, 9, 4), v)

	require.NoError(t, v.SetWY(vector.Scalar(0)))
	require.Equal(t, vector.New4D(8, 0, 9, 0), v)

	require.NoError(t, v.SetWZYX(vector.New4D(1, 2, 3, 4)))
	require.Equal(t, vector.New4D(4, 3, 2, 1), v)

	require.ErrorIs(t, v.SetYX(vector.Values{1, 2, 3}), vector.ErrDimension)

	w := vector.New3D(1, 2, 3)
	require.NoError(t, w.SetZYX(w))
	require.Equal(t, vector.New3D(3, 2, 1), w)
}

func TestArithmetic(t *testing.T) {
	v := vector.New2D(-7, 7)

	for _, tc := range []struct {
		name string
		op   func(vector.Operand) (vector.Vector2D, error)
		o    vector.Operand
		want []float64
	}{
		{"Add", v.Add, vector.Scalar(1), []float64{-6, 8}},
		{"Sub", v.Sub, vector.Values{1, 2}, []float64{-8, 5}},
		{"Mul", v.Mul, vector.Scalar(2), []float64{-14, 14}},
		{"Div", v.Div, vector.Scalar(2), []float64{-3.5, 3.5}},
		{"FloorDiv", v.FloorDiv, vector.Scalar(2), []float64{-4, 3}},
		{"Mod", v.Mod, vector.Scalar(3), []float64{2, 1}},
		{"ModNegativeDivisor", v.Mod, vector.Scalar(-3), []float64{-1, -2}},
		{"Pow", v.Pow, vector.Scalar(2), []float64{49, 49}},
		{"RAdd", v.RAdd, vector.Scalar(1), []float64{-6, 8}},
		{"RSub", v.RSub, vector.Scalar(10), []float64{17, 3}},
		{"RMul", v.RMul, vector.Values{2, 3}, []float64{-14, 21}},
		{"RDiv", v.RDiv, vector.Scalar(14), []float64{-2, 2}},
		{"RFloorDiv", v.RFloorDiv, vector.Scalar(15), []float64{-3, 2}},
		{"RMod", v.RMod, vector.Scalar(10), []float64{-4, 3}},
		{"RPow", v.RPow, vector.Scalar(2), []float64{1.0 / 128, 128}},
		{"Min", v.Min, vector.Scalar(0), []float64{-7, 0}},
		{"Max", v.Max, vector.Scalar(0), []float64{0, 7}},
		{"Nested", v.Add, vector.Nested{{1}, {2}}, []float64{-6, 9}},
		{"VectorOperand", v.Sub, vector.New2D(-7, 7), []float64{0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.o)
			require.NoError(t, err)
			requireComponents(t, tc.want, got.Components(), tol)
		})
	}

	_, err := v.Add(vector.New3D(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimension)
	_, err = v.Add(nil)
	require.ErrorIs(t, err, vector.ErrUnsupportedOperand)

	require.Equal(t, vector.New2D(7, 7), v.Abs())
	require.Equal(t, vector.New2D(7, -7), v.Neg())
	require.Equal(t, v, v.Pos())
}

func TestDivisionByZeroPropagates(t *testing.T) {
	got, err := vector.New2D(1, -1).Div(vector.Scalar(0))
	require.NoError(t, err)
	require.True(t, math.IsInf(got.X(), 1))
	require.True(t, math.IsInf(got.Y(), -1))

	logs := vector.New2D(-1, 0).Log()
	require.True(t, math.IsNaN(logs.X()))
	require.True(t, math.IsInf(logs.Y(), -1))
}

func TestComponentFunctions(t *testing.T) {
	v := vector.New3D(-1.5, 0.25, 2)

	c, err := v.Clamp(vector.Scalar(0), vector.Scalar(1))
	require.NoError(t, err)
	require.Equal(t, vector.New3D(0, 0.25, 1), c)

	c, err = v.Clamp(vector.Values{-1, -1, -1}, vector.Values{0, 0, 3})
	require.NoError(t, err)
	require.Equal(t, vector.New3D(-1, 0, 2), c)

	_, err = v.Clamp(vector.Scalar(0), vector.Values{1, 1, 1})
	require.ErrorIs(t, err, vector.ErrMixedBounds)

	lerp, err := vector.New2D(0, 10).Interpolate(vector.New2D(10, 20), 0.25)
	require.NoError(t, err)
	require.Equal(t, vector.New2D(2.5, 12.5), lerp)

	step, err := vector.New3D(1, 2, 3).Step(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, vector.New3D(0, 1, 1), step)

	ss, err := vector.New3D(0, 0.5, 1).SmoothStep(vector.Scalar(0), vector.Scalar(1))
	require.NoError(t, err)
	require.Equal(t, vector.New3D(0, 0.5, 1), ss)

	require.Equal(t, vector.New3D(-1, 1, 1), v.Sign())
	require.Equal(t, vector.New3D(-2, 0, 2), v.Floor())
	require.Equal(t, vector.New3D(-1, 1, 2), v.Ceil())
	require.Equal(t, vector.New3D(0.5, 0.25, 0), v.Fract())
	require.Equal(t, vector.New2D(2, 3), vector.New2D(4, 9).Sqrt())
	require.Equal(t, vector.New2D(0.5, 0.25), vector.New2D(4, 16).InverseSqrt())
	requireComponents(t, []float64{100, 0.1}, vector.New2D(2, -1).Exp10().Components(), tol)
	requireComponents(t, []float64{8, 0.5}, vector.New2D(3, -1).Exp2().Components(), tol)
	requireComponents(t, []float64{3, -1}, vector.New2D(8, 0.5).Log2().Components(), tol)
	requireComponents(t, []float64{2, 0}, vector.New2D(100, 1).Log10().Components(), tol)
	requireComponents(t, []float64{1, math.E}, vector.New2D(0, 1).Exp().Components(), tol)

	rad := vector.New2D(180, 90).Radians()
	requireComponents(t, []float64{math.Pi, math.Pi / 2}, rad.Components(), tol)
	requireComponents(t, []float64{180, 90}, rad.Degrees().Components(), 1e-9)

	trig := vector.New2D(0, math.Pi/2)
	requireComponents(t, []float64{0, 1}, trig.Sin().Components(), tol)
	requireComponents(t, []float64{1, 0}, trig.Cos().Components(), tol)

	a2, err := vector.New2D(1, -1).Atan2(vector.Scalar(1))
	require.NoError(t, err)
	requireComponents(t, []float64{math.Pi / 4, -math.Pi / 4}, a2.Components(), tol)

	eq, err := vector.New3D(1, 2, 3).ApproxEqual(vector.Values{1.0005, 2.5, 3})
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, false, true}, eq)

	eq, err = vector.New3D(1, 2, 3).ApproxEqual(vector.Values{1.0005, 2.5, 3}, scalar.WithEpsilon(1))
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, true, true}, eq)
}

func TestComparisons(t *testing.T) {
	v := vector.New3D(1, 2, 3)

	lt, err := v.Lt(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, false, false}, lt)

	ge, err := v.Ge(vector.Values{0, 2, 4})
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, true, false}, ge)

	eq, err := v.Eq(vector.New3D(1, 0, 3))
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, false, true}, eq)

	ne, err := v.Ne(vector.New3D(1, 0, 3))
	require.NoError(t, err)
	require.Equal(t, [3]bool{false, true, false}, ne)

	le, err := v.Le(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, [3]bool{true, true, false}, le)

	gt, err := v.Gt(vector.Scalar(2))
	require.NoError(t, err)
	require.Equal(t, [3]bool{false, false, true}, gt)

	_, err = v.Eq(vector.New4D(1, 2, 3, 4))
	require.ErrorIs(t, err, vector.ErrDimension)
}

func TestGeometry(t *testing.T) {
	a := vector.New3D(1, 2, 3)
	b := vector.New3D(4, 5, 6)
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, 5.0, vector.New2D(3, 4).Length())
	require.InDelta(t, math.Sqrt(27), a.Distance(b), tol)

	require.Equal(t, vector.New3D(0, 0, 1), vector.New3D(1, 0, 0).Cross(vector.New3D(0, 1, 0)))
	require.Equal(t, vector.New3D(-3, 6, -3), a.Cross(b))

	n := vector.New3D(0, 0, 1)
	require.Equal(t, n, n.FaceForward(vector.New3D(0, 0, -1), n))
	require.Equal(t, n.Neg(), n.FaceForward(vector.New3D(0, 0, 1), n))
}

func TestRefract(t *testing.T) {
	n := vector.New3D(0, 1, 0)

	straight := vector.New3D(0, -1, 0).Refract(n, 1)
	require.Equal(t, vector.New3D(0, -1, 0), straight)

	// Grazing incidence into a denser-to-lighter boundary.
	got := vector.New3D(1, 0, 0).Refract(n, 2)
	require.Equal(t, vector.Scalar(0), got)

	_, ok := vector.New3D(1, 0, 0).RefractVector(n, 2)
	require.False(t, ok)

	i := vector.New2D(1, -1).Normalize()
	r, ok := i.RefractVector(vector.New2D(0, 1), 0.5)
	require.True(t, ok)
	require.InDelta(t, 1.0, r.Length(), 1e-9)
	require.Less(t, r.Y(), 0.0)
}

func TestProperties(t *testing.T) {
	for _, v := range samples3D {
		require.InDelta(t, 1.0, v.Normalize().Length(), 1e-9, "%v", v)

		l := v.Length()
		require.InDelta(t, l*l, v.Dot(v), 1e-9*v.Dot(v), "%v", v)

		require.Equal(t, v.Abs(), v.Abs().Abs())

		back, err := vector.From3D(v.Components())
		require.NoError(t, err)
		require.Equal(t, v, back)

		for _, w := range samples3D {
			d, err := v.Sub(w)
			require.NoError(t, err)
			require.Equal(t, d.Length(), v.Distance(w))
		}
	}
}

func TestFormatting(t *testing.T) {
	v := vector.New2D(1, 2.5)
	require.Equal(t, "(1, 2.5)", v.String())
	require.Equal(t, "(1.00, 2.50)", fmt.Sprintf("%.2f", v))
	require.Equal(t, "Vector2D(1, 2.5)", fmt.Sprintf("%#v", v))
	require.Equal(t, "Vector4D(1, 2, 3, 4)", vector.New4D(1, 2, 3, 4).GoString())
	require.Equal(t, "(  1,   2,   3)", fmt.Sprintf("%3v", vector.New3D(1, 2, 3)))
}
