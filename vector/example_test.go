package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

func ExampleVector2D_Add() {
	sum, err := vector.New2D(1, 2).Add(vector.New2D(3, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: (4, 6)
}

func ExampleVector3D_Normalize() {
	fmt.Printf("%.1f\n", vector.New3D(0, 3, 4).Normalize())
	// Output: (0.0, 0.6, 0.8)
}

func ExampleVector4D_WZYX() {
	v := vector.New4D(1, 2, 3, 4)
	fmt.Printf("%#v\n", v.WZYX())
	// Output: Vector4D(4, 3, 2, 1)
}

func ExampleWrap2D() {
	w, _ := vector.Wrap2D(map[string]float64{"x": 1, "y": 2})
	err := w.SetX(5)
	fmt.Println(errors.Is(err, vector.ErrWrapped))
	fmt.Println(err)
	// Output:
	// true
	// Vector2D.SetX (2D): cannot set on wrapped vector
}
