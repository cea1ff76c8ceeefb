// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
)

func TestClamp(t *testing.T) {
	for _, tc := range []struct {
		name          string
		n, lo, hi, ex float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -3, 0, 1, 0},
		{"above", 7, 0, 1, 1},
		{"on edge", 1, 0, 1, 1},
		{"inverted bounds pick hi", 5, 10, 2, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ex, scalar.Clamp(tc.n, tc.lo, tc.hi))
		})
	}
}

func TestSign(t *testing.T) {
	require.Equal(t, 0.0, scalar.Sign(0))
	require.Equal(t, 0.0, scalar.Sign(math.Copysign(0, -1)))
	require.Equal(t, 0.0, scalar.Sign(math.NaN()))
	for _, x := range []float64{1e-300, 0.5, 3, 1e300, math.Inf(1)} {
		require.Equal(t, 1.0, scalar.Sign(x))
		require.Equal(t, -scalar.Sign(x), scalar.Sign(-x))
	}
}

func TestFract(t *testing.T) {
	require.InDelta(t, 0.25, scalar.Fract(3.25), 1e-15)
	require.InDelta(t, 0.75, scalar.Fract(-3.25), 1e-15)
	require.Equal(t, 0.0, scalar.Fract(4))
}

func TestStep(t *testing.T) {
	require.Equal(t, 0.0, scalar.Step(1, 0.5))
	require.Equal(t, 1.0, scalar.Step(1, 1))
	require.Equal(t, 1.0, scalar.Step(1, 2))
}

func TestSmoothStep_EndpointsAndMonotonic(t *testing.T) {
	const e0, e1 = -2.0, 3.0
	require.Equal(t, 0.0, scalar.SmoothStep(e0, e1, e0))
	require.Equal(t, 1.0, scalar.SmoothStep(e0, e1, e1))
	require.Equal(t, 0.0, scalar.SmoothStep(e0, e1, e0-10))
	require.Equal(t, 1.0, scalar.SmoothStep(e0, e1, e1+10))

	prev := scalar.SmoothStep(e0, e1, e0)
	for i := 1; i <= 1000; i++ {
		n := e0 + (e1-e0)*float64(i)/1000
		cur := scalar.SmoothStep(e0, e1, n)
		require.GreaterOrEqual(t, cur, prev, "not monotonic at n=%v", n)
		prev = cur
	}
	require.InDelta(t, 0.5, scalar.SmoothStep(0, 1, 0.5), 1e-15)
}

func TestApproximatelyEqual(t *testing.T) {
	require.True(t, scalar.ApproximatelyEqual(1, 1.0009))
	require.False(t, scalar.ApproximatelyEqual(1, 1.002))
	require.False(t, scalar.ApproximatelyEqual(0, 0.5, scalar.WithEpsilon(0.5)), "strict less-than")
	require.True(t, scalar.ApproximatelyEqual(0, 0.4, scalar.WithEpsilon(0.5)))
	require.False(t, scalar.ApproximatelyEqual(3, 3, scalar.WithEpsilon(0)))
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { scalar.WithEpsilon(-1) })
	require.Panics(t, func() { scalar.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { scalar.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { scalar.WithEpsilon(0) })
}

func TestNewOptions_Defaults(t *testing.T) {
	o := scalar.NewOptions()
	require.Equal(t, scalar.DefaultEpsilon, o.Epsilon())
	require.True(t, o.Equal(2, 2.0005))
	require.Equal(t, 1e-9, scalar.NewOptions(scalar.WithEpsilon(1e-9)).Epsilon())
}

func TestFloorDivAndMod(t *testing.T) {
	for _, tc := range []struct {
		a, b, div, mod float64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
		{7.5, 2, 3, 1.5},
	} {
		require.Equal(t, tc.div, scalar.FloorDiv(tc.a, tc.b), "%v // %v", tc.a, tc.b)
		require.Equal(t, tc.mod, scalar.Mod(tc.a, tc.b), "%v %% %v", tc.a, tc.b)
	}
	require.True(t, math.IsNaN(scalar.Mod(1, 0)))
	require.True(t, math.IsInf(scalar.FloorDiv(1, 0), 1))
}

func TestAngleConversions(t *testing.T) {
	require.InDelta(t, math.Pi, scalar.Radians(180), 1e-15)
	require.InDelta(t, 90.0, scalar.Degrees(math.Pi/2), 1e-12)
	require.InDelta(t, 0.5, scalar.InverseSqrt(4), 1e-15)
	require.InDelta(t, 1000.0, scalar.Exp10(3), 1e-9)
}

func TestWiden(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3}, scalar.Widen([]int{1, 2, 3}))
	require.Equal(t, []float64{0.5}, scalar.Widen([]float32{0.5}))
	require.Empty(t, scalar.Widen([]uint8(nil)))
}
