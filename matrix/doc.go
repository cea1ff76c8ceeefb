// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size float64 matrices: Matrix2x2, Matrix3x3
// and Matrix4x4.
//
// 🚀 What
//
//   - Value types stored column-major; entry Mrc is read with m.Mrc() and
//     written with m.SetMrc(x). Integer indexing (At, Slice, All) returns
//     columns as vector values.
//   - Constructors take entries in row-first order: New2x2(m11, m12, m21, m22).
//     From*/FromNested* take storage order, so From3x3(m.Components()) == m.
//   - Entry-wise arithmetic against a vector.Operand: a Scalar is broadcast,
//     N values form a diagonal, N² values are read row-major. Mod with N
//     values reduces only the diagonal.
//   - Matrix product (MatMul, MulVec, MatMulOp, RMatMulOp), Determinant,
//     Transpose, Inverse, Trace, Normalize, ClearRotation, ClearScale.
//   - Builders: Rotation2x2, RotationX3x3/Y/Z, Rotation3x3 (arbitrary axis),
//     Scale2x2/3x3/4x4, From2x2To3x3, From3x3To4x4.
//
// 🔄 Rotation convention
//
//	Rotation2x2(θ) = | cos θ   sin θ |
//	                 | -sin θ  cos θ |
//
// The axis builders use the same sign layout on their plane, and
// Rotation3x3(axis, θ) evaluates Rodrigues at -θ, which makes it agree with
// the axis builders on the coordinate axes.
//
// ⚠️ Errors
//
//   - All failures are *DimensionError (an alias of vector.DimensionError):
//     ErrDimension, ErrIndexOutOfRange, ErrNoInverse, ErrMixedBounds,
//     ErrUnsupportedOperand.
//   - Out-of-range row or column writes are recovered into
//     ErrIndexOutOfRange; nothing in the package panics on user input.
package matrix
