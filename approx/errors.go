// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"

	"github.com/katalvlaran/numlib/numerr"
)

var (
	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = fmt.Errorf("approx: x and y data must have the same length: %w", numerr.ErrInvalidArgument)

	// ErrTooFewPoints indicates fewer than two data points.
	ErrTooFewPoints = fmt.Errorf("approx: linear fit needs at least 2 points: %w", numerr.ErrInvalidArgument)

	// ErrDegenerateFit indicates a vanishing normal-equation denominator (e.g. all x equal).
	ErrDegenerateFit = fmt.Errorf("approx: linear fit is degenerate, x values may all be equal: %w", numerr.ErrDegenerate)

	// ErrNegativeDegree indicates degree < 0.
	ErrNegativeDegree = fmt.Errorf("approx: polynomial degree must be non-negative: %w", numerr.ErrInvalidArgument)

	// ErrInvalidInterval indicates a >= b for the approximation interval.
	ErrInvalidInterval = fmt.Errorf("approx: interval lower bound must be below upper bound: %w", numerr.ErrInvalidArgument)
)
