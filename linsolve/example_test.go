// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"fmt"

	"github.com/katalvlaran/numlib/linsolve"
)

// ExampleGaussJordan solves a 3×3 system whose exact solution is (2, 3, -1).
func ExampleGaussJordan() {
	a := [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}
	b := []float64{8, -11, -3}

	x, err := linsolve.GaussJordan(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x = [%.6f %.6f %.6f]\n", x[0], x[1], x[2])
	// Output:
	// x = [2.000000 3.000000 -1.000000]
}
