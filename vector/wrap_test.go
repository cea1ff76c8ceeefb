package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/vector"
)

type body struct {
	X, Y, Z int
	Name    string
}

type point struct{ x, y float64 }

func (p point) X() float64 { return p.x }
func (p point) Y() float64 { return p.y }

func TestWrap_Sources(t *testing.T) {
	fromMap, err := vector.Wrap2D(map[string]any{"x": 1, "y": "2.5"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5}, fromMap.Components())
	require.True(t, fromMap.IsWrapped())

	fromStruct, err := vector.Wrap3D(&body{X: 1, Y: 2, Z: 3, Name: "probe"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, fromStruct.Components())

	fromMethods, err := vector.Wrap2D(point{x: 4, y: 5})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5}, fromMethods.Components())

	fromVector, err := vector.Wrap4D(vector.New4D(1, 2, 3, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, fromVector.Components())
}

func TestWrap_MissingAttribute(t *testing.T) {
	_, err := vector.Wrap3D(map[string]float64{"x": 1, "y": 2})
	require.ErrorIs(t, err, vector.ErrMissingAttribute)

	_, err = vector.Wrap3D(point{x: 1, y: 2})
	require.ErrorIs(t, err, vector.ErrMissingAttribute)

	_, err = vector.Wrap2D(42)
	require.ErrorIs(t, err, vector.ErrMissingAttribute)

	_, err = vector.Wrap2D(nil)
	require.ErrorIs(t, err, vector.ErrUnsupportedOperand)
}

func TestWrap_RejectsWrites(t *testing.T) {
	w, err := vector.Wrap2D(point{x: 1, y: 2})
	require.NoError(t, err)

	for name, set := range map[string]func() error{
		"SetX":   func() error { return w.SetX(3) },
		"SetY":   func() error { return w.SetY(3) },
		"Set":    func() error { return w.Set(0, 3) },
		"SetAll": func() error { return w.SetAll(vector.Scalar(3)) },
		"SetXY":  func() error { return w.SetXY(vector.Values{3, 4}) },
		"SetYX":  func() error { return w.SetYX(vector.Scalar(3)) },
	} {
		err := set()
		require.ErrorIs(t, err, vector.ErrWrapped, name)
		require.True(t, vector.IsDimensionError(err), name)
	}
	require.Equal(t, []float64{1, 2}, w.Components())

	sum, err := w.Add(vector.Scalar(1))
	require.NoError(t, err)
	require.False(t, sum.IsWrapped())
	require.False(t, w.Pos().IsWrapped())
	require.False(t, w.XY().IsWrapped())
	require.NoError(t, sum.SetX(0))
}
