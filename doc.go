// Package linalg is a small, fixed-dimension linear algebra toolkit:
// 2-, 3- and 4-component vectors and 2×2, 3×3, 4×4 matrices of float64.
//
// 🚀 What is linalg?
//
//	A pure, deterministic library that brings together:
//		• Scalar helpers: Clamp, Sign, Fract, Step, SmoothStep, ApproximatelyEqual
//		• Vectors: Vector2D, Vector3D, Vector4D with swizzles (XY, ZYX, WZYX, …)
//		• Component-wise arithmetic over scalars, sequences or vectors
//		• Geometry: Dot, Length, Distance, Normalize, Reflect, Refract, FaceForward
//		• Matrices: Matrix2x2, Matrix3x3, Matrix4x4 (column-major storage)
//		• Products, Determinant, Transpose, Inverse, rotation & scale builders
//
// ✨ Why choose linalg?
//
//   - Value semantics: every operation returns a fresh value; nothing is shared
//   - One error kind: every shape violation is a *vector.DimensionError
//   - No hidden surprises: -0.0 is stored as +0.0, IEEE results propagate as-is
//   - Wrapped vectors: read components from a host object, then refuse writes
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/  : scalar utilities and the tolerance options
//	vector/  : Vector2D/3D/4D, operands, swizzles, the DimensionError model
//	matrix/  : Matrix2x2/3x3/4x4, products, inverse and builders
//
// Quick example:
//
//	m := matrix.RotationZ3x3(math.Pi / 2)
//	v := m.MulVec(vector.New3D(1, 0, 0)) // (0, -1, 0)
//
//	go get github.com/katalvlaran/linalg
package linalg
