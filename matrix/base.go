// SPDX-License-Identifier: MIT
// Package matrix - shared services for Matrix2x2/3x3/4x4.
//
// Purpose:
//   - Implement the slice-level algebra (determinant, adjugate inverse,
//     transpose, column normalisation) once for every dimension.
//   - Convert between the row-major argument order used by constructors and
//     operands, and the column-major storage order.
//
// Storage:
//   - n×n values, column-major: entry (r, c), 0-based, lives at c*n + r.
//   - All writes go through kernel.Store.

package matrix

import (
	"math"
	"runtime"

	"github.com/katalvlaran/linalg/internal/kernel"
	"github.com/katalvlaran/linalg/scalar"
)

// Type names used in error ops and repr output.
const (
	name2x2 = "Matrix2x2"
	name3x3 = "Matrix3x3"
	name4x4 = "Matrix4x4"
)

// Operation tags for error wrapping.
const (
	opAt          = "At"
	opColumn      = "Column"
	opRow         = "Row"
	opEntry       = "Entry"
	opSet         = "Set"
	opSetColumn   = "SetColumn"
	opSetRow      = "SetRow"
	opFrom        = "From"
	opFromNested  = "FromNested"
	opDiagonal    = "Diagonal"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opFloorDiv    = "FloorDiv"
	opMod         = "Mod"
	opPow         = "Pow"
	opMin         = "Min"
	opMax         = "Max"
	opClamp       = "Clamp"
	opInterpolate = "Interpolate"
	opStep        = "Step"
	opSmoothStep  = "SmoothStep"
	opAtan2       = "Atan2"
	opApproxEqual = "ApproxEqual"
	opCompare     = "Compare"
	opMatMul      = "MatMul"
	opRMatMul     = "RMatMul"
	opDeterminant = "Determinant"
	opTranspose   = "Transpose"
	opInverse     = "Inverse"
	opNormalize   = "Normalize"
	opClearRot    = "ClearRotation"
	opClearScale  = "ClearScale"
	opRotation    = "Rotation"
)

// combiner writes a component-wise combination of a and b into dst.
type combiner func(dst, a, b []float64)

func zipWith(f kernel.Binary) combiner {
	return func(dst, a, b []float64) { kernel.Zip(dst, a, b, f) }
}

var (
	combineAdd      combiner = kernel.Add
	combineSub      combiner = kernel.Sub
	combineMul      combiner = kernel.Mul
	combineDiv               = zipWith(func(a, b float64) float64 { return a / b })
	combineFloorDiv          = zipWith(scalar.FloorDiv)
	combineMod               = zipWith(scalar.Mod)
	combinePow               = zipWith(math.Pow)
	combineMin               = zipWith(math.Min)
	combineMax               = zipWith(math.Max)
	combineAtan2             = zipWith(math.Atan2)
	combineStep              = zipWith(scalar.Step)
)

func opName(typ, op string) string { return typ + "." + op }

func neg(x float64) float64 { return -x }

func identity(x float64) float64 { return x }

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

// fromRowMajor returns the column-major storage for n×n values given in
// row-major (constructor argument) order.
func fromRowMajor(vals []float64, n int) []float64 {
	out := make([]float64, n*n)
	transpose(out, vals, n)

	return out
}

// toRowMajor returns storage c in row-major (constructor argument) order.
func toRowMajor(c []float64, n int) []float64 {
	out := make([]float64, n*n)
	transpose(out, c, n)

	return out
}

// transpose writes srcᵀ into dst; dst must not alias src.
func transpose(dst, src []float64, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			kernel.Store(dst, c*n+r, src[r*n+c])
		}
	}
}

// diagonal returns storage with d on the diagonal and 0 elsewhere.
func diagonal(d []float64, n int) []float64 {
	out := make([]float64, n*n)
	for i, x := range d {
		kernel.Store(out, i*n+i, x)
	}

	return out
}

// column returns the k-th stored column of c without copying. k must
// already be non-negative; an out-of-range k panics and is meant to run
// under safeApply.
func column(c []float64, n, k int) []float64 { return c[k*n : k*n+n] }

// row copies the k-th mathematical row of c.
func row(c []float64, n, k int) []float64 {
	out := make([]float64, n)
	for j := range out {
		out[j] = c[j*n+k]
	}

	return out
}

// resolve maps a negative index to its positive form without range checking.
func resolve(i, n int) int {
	if i < 0 {
		return i + n
	}

	return i
}

// safeApply runs f and converts a runtime index failure raised inside it
// into a DimensionError with reason ErrIndexOutOfRange. Other panics propagate.
func safeApply(op, context string, f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		re, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		err = matrixErrorf(op, context, ErrIndexOutOfRange, "%v", re)
	}()
	f()

	return nil
}

// determinant computes det(a) for column-major n×n storage.
//
// Implementation:
//   - n = 1, 2: closed form (2×2 is m11·m22 − m12·m21).
//   - n ≥ 3: first-row Laplace expansion over the (n−1)×(n−1) minors.
//
// Determinism:
//   - Fixed expansion order c = 0..n−1, alternating signs starting at +.
//
// Complexity:
//   - O(n!) multiplications; n ≤ 4 keeps this at 40 for a 4×4.
func determinant(a []float64, n int) float64 {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0]*a[3] - a[2]*a[1]
	}
	var (
		sum  float64
		sign = 1.0
	)
	for c := 0; c < n; c++ {
		sum += sign * a[c*n] * determinant(minor(a, n, 0, c), n-1)
		sign = -sign
	}

	return kernel.Canon(sum)
}

// minor removes row r and column c from column-major n×n storage.
func minor(a []float64, n, r, c int) []float64 {
	out := make([]float64, 0, (n-1)*(n-1))
	for j := 0; j < n; j++ {
		if j == c {
			continue
		}
		for i := 0; i < n; i++ {
			if i == r {
				continue
			}
			out = append(out, a[j*n+i])
		}
	}

	return out
}

// inverse writes adj(a)/det(a) into dst. ok is false when det(a) == 0, in
// which case dst is left untouched.
//
// Implementation:
//   - Stage 1: det via determinant; exact zero means no inverse.
//   - Stage 2: inv(r, c) = (−1)^(r+c) · det(minor(c, r)) / det.
//
// Notes:
//   - No pivoting or conditioning checks; near-singular inputs produce
//     large entries, exactly as the closed form dictates.
func inverse(dst, a []float64, n int) (ok bool) {
	det := determinant(a, n)
	if det == 0 {
		return false
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cof := determinant(minor(a, n, c, r), n-1)
			if (r+c)%2 == 1 {
				cof = -cof
			}
			kernel.Store(dst, c*n+r, cof/det)
		}
	}

	return true
}

// trace returns Σ a(i, i).
func trace(a []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i*n+i]
	}

	return sum
}

// clearRotation writes, for every column k, length(column k) at (k, k) and
// zero elsewhere.
func clearRotation(dst, a []float64, n int) {
	for i := range dst {
		dst[i] = 0
	}
	for k := 0; k < n; k++ {
		col := column(a, n, k)
		kernel.Store(dst, k*n+k, math.Sqrt(kernel.Dot(col, col)))
	}
}

// clearScale writes every column of a normalised to unit length.
func clearScale(dst, a []float64, n int) {
	for k := 0; k < n; k++ {
		col := column(a, n, k)
		l := math.Sqrt(kernel.Dot(col, col))
		kernel.Map(column(dst, n, k), col, func(x float64) float64 { return x / l })
	}
}
