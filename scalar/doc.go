// Package scalar provides the per-number helpers used by every vector and
// matrix operation in linalg.
//
// 🚀 What is inside?
//
//	Clamp, Sign, Fract, Step, SmoothStep and ApproximatelyEqual follow the
//	shading-language definitions; FloorDiv and Mod use floored division so the
//	remainder takes the sign of the divisor.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/scalar"
//
//	t := scalar.SmoothStep(0, 1, 0.25)                      // 0.15625
//	ok := scalar.ApproximatelyEqual(0.1+0.2, 0.3)           // eps = 0.001
//	ok = scalar.ApproximatelyEqual(1, 1.01, scalar.WithEpsilon(0.1))
//
// Numeric policy:
//
//	No helper validates its inputs. Division by zero, logarithms of
//	non-positive numbers and similar cases yield ±Inf or NaN exactly as the
//	math package does.
package scalar
