package scalar_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// ExampleSmoothStep shows the Hermite ramp between two edges.
func ExampleSmoothStep() {
	for _, n := range []float64{0, 0.25, 0.5, 1} {
		fmt.Printf("%.5f\n", scalar.SmoothStep(0, 1, n))
	}
	// Output:
	// 0.00000
	// 0.15625
	// 0.50000
	// 1.00000
}

// ExampleMod contrasts floored modulo with math.Mod.
func ExampleMod() {
	fmt.Println(scalar.Mod(-1, 3), scalar.FloorDiv(-1, 3))
	// Output:
	// 2 -1
}
