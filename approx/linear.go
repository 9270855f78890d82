// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"
)

// machineEpsilon is the float64 machine epsilon (2^-52).
const machineEpsilon = 0x1p-52

// LinearLeastSquares fits y = slope·x + intercept to the points (x[i], y[i]).
//
// With n points and the sums Σx, Σy, Σxy, Σx²:
//
//	D         = n·Σx² − (Σx)²
//	slope     = (n·Σxy − Σx·Σy) / D
//	intercept = (Σy·Σx² − Σx·Σxy) / D
//
// Errors:
//   - ErrLengthMismatch, ErrTooFewPoints (checked first, in that order).
//   - ErrDegenerateFit when |D| < machine epsilon.
func LinearLeastSquares(x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return 0, 0, fmt.Errorf("n=%d: %w", len(x), ErrTooFewPoints)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}
	n := float64(len(x))

	denom := n*sumXX - sumX*sumX
	if math.Abs(denom) < machineEpsilon {
		return 0, 0, fmt.Errorf("denominator=%g: %w", denom, ErrDegenerateFit)
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY*sumXX - sumX*sumXY) / denom

	return slope, intercept, nil
}
