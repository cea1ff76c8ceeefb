package kernel_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/internal/kernel"
)

var negZero = math.Copysign(0, -1)

func TestCanon_NegativeZero(t *testing.T) {
	require.False(t, math.Signbit(kernel.Canon(negZero)))
	require.Equal(t, -1.5, kernel.Canon(-1.5))
	require.True(t, math.IsNaN(kernel.Canon(math.NaN())))

	dst := []float64{negZero, 2, negZero}
	kernel.Canonicalize(dst)
	for _, x := range dst {
		require.False(t, math.Signbit(x))
	}
}

func TestAddSubMulScale(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	dst := make([]float64, 4)

	kernel.Add(dst, a, b)
	require.Equal(t, []float64{5, 5, 5, 5}, dst)

	kernel.Sub(dst, a, b)
	require.Equal(t, []float64{-3, -1, 1, 3}, dst)

	kernel.Mul(dst, a, b)
	require.Equal(t, []float64{4, 6, 6, 4}, dst)

	kernel.Scale(dst, a, -0.5)
	require.Equal(t, []float64{-0.5, -1, -1.5, -2}, dst)

	// In-place aliasing is allowed for Sub.
	x := []float64{1, 1}
	kernel.Sub(x, x, []float64{1, 0})
	require.Equal(t, []float64{0, 1}, x)
	require.False(t, math.Signbit(x[0]))
}

func TestSub_ProducesPositiveZero(t *testing.T) {
	dst := make([]float64, 2)
	kernel.Sub(dst, []float64{negZero, 0}, []float64{0, 0})
	require.False(t, math.Signbit(dst[0]))
	require.False(t, math.Signbit(dst[1]))
}

func TestDot(t *testing.T) {
	require.Equal(t, 32.0, kernel.Dot([]float64{1, 2, 3}, []float64{4, 5, 6}))
	require.Equal(t, 0.0, kernel.Dot([]float64{1, 0}, []float64{0, 1}))
}

func TestMapZip(t *testing.T) {
	dst := make([]float64, 3)
	kernel.Map(dst, []float64{1, -2, 3}, math.Abs)
	require.Equal(t, []float64{1, 2, 3}, dst)

	kernel.Zip(dst, []float64{1, 2, 3}, []float64{3, 2, 1}, math.Max)
	require.Equal(t, []float64{3, 2, 3}, dst)

	kernel.Zip3(dst, []float64{1, 2, 3}, []float64{0, 0, 0}, []float64{2, 2, 2},
		func(a, lo, hi float64) float64 { return math.Min(hi, math.Max(lo, a)) })
	require.Equal(t, []float64{1, 2, 2}, dst)

	kernel.Map(dst, []float64{0, 0, 0}, func(x float64) float64 { return -x })
	for _, x := range dst {
		require.False(t, math.Signbit(x))
	}
}

func TestMatVecMatMul_ColumnMajor(t *testing.T) {
	// A = [[1,2],[3,4]] stored column-major.
	a := []float64{1, 3, 2, 4}
	v := []float64{5, 6}
	out := make([]float64, 2)
	kernel.MatVec(out, a, v, 2)
	require.Equal(t, []float64{17, 39}, out)

	// B = [[5,6],[7,8]] -> A·B = [[19,22],[43,50]].
	b := []float64{5, 7, 6, 8}
	c := make([]float64, 4)
	kernel.MatMul(c, a, b, 2)
	require.Equal(t, []float64{19, 43, 22, 50}, c)
}

func TestIndex(t *testing.T) {
	for _, tc := range []struct {
		i, n, want int
		ok         bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{-1, 3, 2, true},
		{-3, 3, 0, true},
		{3, 3, 0, false},
		{-4, 3, 0, false},
	} {
		got, ok := kernel.Index(tc.i, tc.n)
		require.Equal(t, tc.ok, ok, "Index(%d,%d)", tc.i, tc.n)
		require.Equal(t, tc.want, got, "Index(%d,%d)", tc.i, tc.n)
	}
}

func TestSliceBounds(t *testing.T) {
	for _, tc := range []struct {
		start, stop, lo, hi int
	}{
		{0, 4, 0, 4},
		{1, 3, 1, 3},
		{-2, 4, 2, 4},
		{0, -1, 0, 3},
		{-10, 10, 0, 4},
		{3, 1, 3, 3},
	} {
		lo, hi := kernel.SliceBounds(tc.start, tc.stop, 4)
		require.Equal(t, tc.lo, lo, "[%d:%d]", tc.start, tc.stop)
		require.Equal(t, tc.hi, hi, "[%d:%d]", tc.start, tc.stop)
	}
}

func TestBroadcastAndCopy(t *testing.T) {
	require.Equal(t, []float64{2, 2, 2}, kernel.Broadcast(3, 2))
	dst := make([]float64, 2)
	kernel.Copy(dst, []float64{negZero, 7})
	require.Equal(t, []float64{0, 7}, dst)
	require.False(t, math.Signbit(dst[0]))
}

type tupleFormatter struct {
	c       []float64
	perLine int
}

func (t tupleFormatter) Format(f fmt.State, verb rune) {
	kernel.FormatTuple(f, verb, t.c, t.perLine)
}

func TestFormatTuple(t *testing.T) {
	require.Equal(t, "(1, 2.5)", fmt.Sprintf("%v", tupleFormatter{c: []float64{1, 2.5}}))
	require.Equal(t, "(1.00, 2.50)", fmt.Sprintf("%.2f", tupleFormatter{c: []float64{1, 2.5}}))
	require.Equal(t, "(1, 2,\n 3, 4)", fmt.Sprintf("%v", tupleFormatter{c: []float64{1, 2, 3, 4}, perLine: 2}))
}

func TestRepr(t *testing.T) {
	require.Equal(t, "Vector2D(1, -0.5)", kernel.Repr("Vector2D", []float64{1, -0.5}))
	require.Equal(t, "M()", kernel.Repr("M", nil))
}

func TestCompare(t *testing.T) {
	dst := make([]bool, 3)
	a := []float64{1, 2, 3}
	b := []float64{2, 2, 2}

	kernel.Compare(dst, a, b, kernel.Lt)
	require.Equal(t, []bool{true, false, false}, dst)
	kernel.Compare(dst, a, b, kernel.Ge)
	require.Equal(t, []bool{false, true, true}, dst)
	kernel.Compare(dst, a, b, kernel.Eq)
	require.Equal(t, []bool{false, true, false}, dst)
	kernel.Compare(dst, a, b, kernel.Ne)
	require.Equal(t, []bool{true, false, true}, dst)
	kernel.Compare(dst, a, b, kernel.Le)
	require.Equal(t, []bool{true, true, false}, dst)
	kernel.Compare(dst, a, b, kernel.Gt)
	require.Equal(t, []bool{false, false, true}, dst)
}
