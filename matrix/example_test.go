// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// ExampleMatrix2x2_Inverse shows the adjugate inverse and the row-first constructor.
func ExampleMatrix2x2_Inverse() {
	inv, err := matrix.New2x2(4, 7, 2, 6).Inverse()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f %.1f\n%.1f %.1f\n", inv.M11(), inv.M12(), inv.M21(), inv.M22())
	// Output:
	// 0.6 -0.7
	// -0.2 0.4
}

// ExampleRotationZ3x3 rotates the X axis by a quarter turn.
func ExampleRotationZ3x3() {
	v := matrix.RotationZ3x3(math.Pi / 2).MulVec(vector.New3D(1, 0, 0))
	fmt.Printf("%.1f\n", v)
	// Output: (0.0, -1.0, 0.0)
}

// ExampleMatrix3x3_String prints storage column by column.
func ExampleMatrix3x3_String() {
	m := matrix.New3x3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	fmt.Println(m)
	fmt.Printf("%#v\n", m)
	// Output:
	// (1, 4, 7,
	//  2, 5, 8,
	//  3, 6, 9)
	// Matrix3x3(1, 2, 3, 4, 5, 6, 7, 8, 9)
}
