// SPDX-License-Identifier: MIT

package scalar

import "math"

// Real is the set of numeric types accepted by the generic From* constructors.
// Integers are widened to float64 on construction.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Widen converts every element of vals to float64, preserving order.
// Complexity: O(n).
func Widen[T Real](vals []T) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}

	return out
}

// Clamp returns min(hi, max(lo, n)).
// No ordering check is made on lo/hi: when lo > hi the result is hi.
func Clamp(n, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, n))
}

// Sign returns -1 for negative n, +1 for positive n and 0 otherwise.
// Zero is signless: Sign(-0.0) == 0. NaN maps to 0.
func Sign(n float64) float64 {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Fract returns the fractional part n - floor(n); the result is in [0, 1).
func Fract(n float64) float64 {
	return n - math.Floor(n)
}

// Step returns 0 when edge > n and 1 otherwise (edge == n yields 1).
func Step(edge, n float64) float64 {
	if edge > n {
		return 0
	}

	return 1
}

// SmoothStep performs Hermite interpolation between 0 and 1 when e0 < n < e1.
//
//	t = Clamp((n-e0)/(e1-e0), 0, 1)
//	SmoothStep = t*t*(3 - 2*t)
//
// e0 == e1 divides by zero; the result follows IEEE semantics.
func SmoothStep(e0, e1, n float64) float64 {
	t := Clamp((n-e0)/(e1-e0), 0, 1)

	return t * t * (3 - 2*t)
}

// ApproximatelyEqual reports |a-b| < eps (strict). eps defaults to DefaultEpsilon.
func ApproximatelyEqual(a, b float64, opts ...Option) bool {
	o := gatherOptions(opts...)

	return math.Abs(a-b) < o.epsilon
}

// FloorDiv returns floor(a / b).
func FloorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}

// Mod returns the floored remainder of a / b: the result has the sign of b.
//
//	Mod(-1, 3) == 2, Mod(1, -3) == -2, Mod(x, 0) == NaN.
func Mod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// InverseSqrt returns 1/sqrt(n).
func InverseSqrt(n float64) float64 { return 1 / math.Sqrt(n) }

// Exp10 returns 10**n.
func Exp10(n float64) float64 { return math.Pow(10, n) }
