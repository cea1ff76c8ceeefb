// SPDX-License-Identifier: MIT

// Package kernel holds the slice micro-kernels shared by the vector and matrix
// packages.
//
// Purpose:
//   - Keep every storage write behind Store so -0.0 is canonicalized in one place.
//   - Provide the component-wise builders (Map/Zip/Zip3) parameterised by a scalar function.
//   - Route add/sub/mul/scale/dot through algo-vecmath block kernels.
//
// Determinism:
//   - Fixed loop orders; products accumulate j = 0..n-1 exactly like a naive loop.
//   - No allocation for operands up to 16 components (the largest matrix).
package kernel

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// MaxComponents is the largest storage handled without heap scratch space (4×4).
const MaxComponents = 16

// Unary is a scalar function applied per component.
type Unary func(float64) float64

// Binary is a scalar function applied to paired components.
type Binary func(a, b float64) float64

// Ternary is a scalar function applied to component triples.
type Ternary func(a, b, c float64) float64

// Canon maps -0.0 to +0.0 and returns every other value unchanged (NaN included).
func Canon(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}

// Store writes Canon(x) into dst[i]. It is the only write site for component storage.
func Store(dst []float64, i int, x float64) {
	dst[i] = Canon(x)
}

// Canonicalize re-stores every element of dst through Store.
func Canonicalize(dst []float64) {
	for i, x := range dst {
		Store(dst, i, x)
	}
}

// Copy stores src into dst element by element; lengths must match.
func Copy(dst, src []float64) {
	for i, x := range src {
		Store(dst, i, x)
	}
}

// Map computes dst[i] = f(src[i]).
func Map(dst, src []float64, f Unary) {
	for i, x := range src {
		Store(dst, i, f(x))
	}
}

// Zip computes dst[i] = f(a[i], b[i]).
func Zip(dst, a, b []float64, f Binary) {
	for i := range a {
		Store(dst, i, f(a[i], b[i]))
	}
}

// Zip3 computes dst[i] = f(a[i], b[i], c[i]).
func Zip3(dst, a, b, c []float64, f Ternary) {
	for i := range a {
		Store(dst, i, f(a[i], b[i], c[i]))
	}
}

// Broadcast returns a slice of n copies of s.
func Broadcast(n int, s float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		Store(out, i, s)
	}

	return out
}

// scratch returns a zeroed buffer of length n, backed by buf when it fits.
func scratch(buf *[MaxComponents]float64, n int) []float64 {
	if n <= MaxComponents {
		return buf[:n]
	}

	return make([]float64, n)
}

// Add computes dst = a + b via vecmath.AddBlock. dst may alias a or b.
func Add(dst, a, b []float64) {
	vecmath.AddBlock(dst, a, b)
	Canonicalize(dst)
}

// Sub computes dst = a - b as a + (-b), which is exact under IEEE-754.
// dst may alias a or b.
func Sub(dst, a, b []float64) {
	var buf [MaxComponents]float64
	neg := scratch(&buf, len(b))
	vecmath.ScaleBlock(neg, b, -1)
	vecmath.AddBlock(dst, a, neg)
	Canonicalize(dst)
}

// Mul computes dst = a ⊙ b via vecmath.MulBlock.
func Mul(dst, a, b []float64) {
	vecmath.MulBlock(dst, a, b)
	Canonicalize(dst)
}

// Scale computes dst = s·src via vecmath.ScaleBlock.
func Scale(dst, src []float64, s float64) {
	vecmath.ScaleBlock(dst, src, s)
	Canonicalize(dst)
}

// Dot returns Σ a[i]·b[i] via vecmath.DotProduct. Slices must have equal length.
func Dot(a, b []float64) float64 {
	return Canon(vecmath.DotProduct(a, b))
}

// MatVec computes dst = A·v for an n×n column-major A:
//
//	dst = Σ_j v[j] · column_j(A), accumulated j = 0..n-1.
//
// dst must not alias a or v.
func MatVec(dst, a, v []float64, n int) {
	var buf [MaxComponents]float64
	term := scratch(&buf, n)
	for i := range dst[:n] {
		dst[i] = 0
	}
	for j := 0; j < n; j++ {
		vecmath.ScaleBlock(term, a[j*n:(j+1)*n], v[j])
		vecmath.AddBlockInPlace(dst[:n], term)
	}
	Canonicalize(dst[:n])
}

// MatMul computes dst = A·B for n×n column-major matrices: column k of dst
// is A·(column k of B). dst must not alias a or b.
func MatMul(dst, a, b []float64, n int) {
	for k := 0; k < n; k++ {
		MatVec(dst[k*n:(k+1)*n], a, b[k*n:(k+1)*n], n)
	}
}
