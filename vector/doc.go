// SPDX-License-Identifier: MIT

// Package vector provides fixed-dimension float64 vectors (Vector2D, Vector3D,
// Vector4D), the Operand sum type shared with package matrix, and the single
// error kind of the module, DimensionError.
//
// 🚀 What
//
//   - Value types with named components, Python-style indexing and slicing,
//     iteration and membership.
//   - Component-wise arithmetic against an Operand: a Scalar broadcasts, a
//     sequence of exactly N values (Values, Nested or another vector) pairs up.
//     Every operation has a reverse form (RSub, RDiv, …) with swapped operands.
//   - The GLSL-style function set (Clamp, Step, SmoothStep, Fract, trigonometry,
//     exponentials) and geometry: Dot, Length, Distance, Normalize,
//     FaceForward, Reflect, Refract and Cross for Vector3D.
//   - Swizzles: every ordered tuple of length 2..4 over the components is a
//     getter (v.ZYX(), v.XXW()), and every all-distinct tuple has a setter
//     (v.SetZX(Values{1, 2})).
//   - Wrap2D/3D/4D read X, Y, Z, W once from a host object and produce a
//     read-only vector.
//
// ⚙️ Storage
//
//   - Components are stored as [N]float64; -0.0 is stored as +0.0.
//   - Results are always fresh, unwrapped values.
//
// ⚠️ Errors
//
//   - Dimension mismatches, bad indices, writes to wrapped vectors and missing
//     host attributes return *DimensionError; match the cause with errors.Is
//     against ErrDimension, ErrIndexOutOfRange, ErrWrapped, ….
//   - IEEE-754 edge cases (x/0, Log of negatives) are values, not errors.
//
// Example:
//
//	a := vector.New2D(1, 2)
//	b, _ := a.Add(vector.New2D(3, 4)) // (4, 6)
//	n := vector.New3D(0, 3, 4).Normalize() // (0, 0.6, 0.8)
package vector

//go:generate go run gen_swizzle.go
