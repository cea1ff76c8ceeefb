// SPDX-License-Identifier: MIT
// Package vector - shared storage services for Vector2D/3D/4D.
//
// Purpose:
//   - Implement indexing, slicing, iteration, membership and comparison tuples
//     once, over the component slice of any dimension.
//   - Keep the per-dimension types thin: each method resolves its operand and
//     delegates to one of the helpers below or to internal/kernel.
//
// Notes:
//   - All writes go through kernel.Store (the -0.0 → +0.0 choke point).
//   - Setters check the wrapped marker before touching storage.

package vector

import (
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/linalg/internal/kernel"
	"github.com/katalvlaran/linalg/scalar"
)

// Type names used in error ops and repr output.
const (
	name2D = "Vector2D"
	name3D = "Vector3D"
	name4D = "Vector4D"
)

// Operation tags for error wrapping.
const (
	opAt          = "At"
	opSet         = "Set"
	opSetAll      = "SetAll"
	opFrom        = "From"
	opWrap        = "Wrap"
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

// at reads c[i], accepting negative indices.
func at(c []float64, i int, op, context string) (float64, error) {
	idx, ok := kernel.Index(i, len(c))
	if !ok {
		return 0, dimErrorf(op, context, ErrIndexOutOfRange, "index %d not in [-%d, %d)", i, len(c), len(c))
	}

	return c[idx], nil
}

// sliceOf copies c[start:stop] with Python-style bounds.
func sliceOf(c []float64, start, stop int) []float64 {
	lo, hi := kernel.SliceBounds(start, stop, len(c))

	return slices.Clone(c[lo:hi])
}

func allOf(c []float64) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range c {
			if !yield(i, x) {
				return
			}
		}
	}
}

func containsValue(c []float64, x float64) bool { return slices.Contains(c, x) }

// compare resolves o against len(c) components and fills dst with pred pairwise.
func compare(dst []bool, c []float64, o Operand, op, context string, pred kernel.Predicate) error {
	rhs, err := Coerce(o, len(c), op, context)
	if err != nil {
		return err
	}
	kernel.Compare(dst, c, rhs, pred)

	return nil
}

// approxEqual compares component-wise with the resolved tolerance.
func approxEqual(dst []bool, c []float64, o Operand, op, context string, opts []scalar.Option) error {
	tol := scalar.NewOptions(opts...)

	return compare(dst, c, o, op, context, tol.Equal)
}

// checkWritable rejects writes on wrapped vectors before any storage mutation.
func checkWritable(wrapped bool, op, context string) error {
	if wrapped {
		return NewDimensionError(op, context, ErrWrapped, "")
	}

	return nil
}

// setIndex writes x at index i (negative allowed).
func setIndex(dst []float64, wrapped bool, i int, x float64, op, context string) error {
	if err := checkWritable(wrapped, op, context); err != nil {
		return err
	}
	idx, ok := kernel.Index(i, len(dst))
	if !ok {
		return dimErrorf(op, context, ErrIndexOutOfRange, "index %d not in [-%d, %d)", i, len(dst), len(dst))
	}
	kernel.Store(dst, idx, x)

	return nil
}

// setComponents writes the k-th resolved value of o into dst[idx[k]].
// A scalar broadcasts; a sequence must have len(idx) values.
func setComponents(dst []float64, wrapped bool, o Operand, op, context string, idx ...int) error {
	if err := checkWritable(wrapped, op, context); err != nil {
		return err
	}
	vals, err := Coerce(o, len(idx), op, context)
	if err != nil {
		return err
	}
	for k, i := range idx {
		kernel.Store(dst, i, vals[k])
	}

	return nil
}
