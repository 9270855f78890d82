// SPDX-License-Identifier: MIT

package root

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlib/numerr"
)

// Defaults for callers that have no problem-specific budget in mind.
const (
	// DefaultTolerance is the stopping threshold used by the CLI when none is given.
	DefaultTolerance = 1e-7

	// DefaultMaxIter caps the iteration count used by the CLI when none is given.
	DefaultMaxIter = 100
)

// machineEpsilon is 2^-52; flatSlope is the secant-denominator guard.
const (
	machineEpsilon = 0x1p-52
	flatSlope      = 100 * machineEpsilon
)

var (
	// ErrNonPositiveTolerance indicates tol <= 0.
	ErrNonPositiveTolerance = fmt.Errorf("root: tolerance must be positive: %w", numerr.ErrInvalidArgument)

	// ErrNonPositiveMaxIter indicates maxIter <= 0.
	ErrNonPositiveMaxIter = fmt.Errorf("root: iteration cap must be positive: %w", numerr.ErrInvalidArgument)

	// ErrEqualGuesses indicates |x0 − x1| below machine epsilon.
	ErrEqualGuesses = fmt.Errorf("root: initial guesses must differ: %w", numerr.ErrInvalidArgument)

	// ErrFlatSecant indicates f(x1) ≈ f(x0) while |f(x1)| >= tol.
	ErrFlatSecant = fmt.Errorf("root: secant slope vanished, function may be flat near the guesses: %w", numerr.ErrDegenerate)

	// ErrNoConvergence indicates the iteration cap was reached.
	ErrNoConvergence = fmt.Errorf("root: secant method did not converge: %w", numerr.ErrNotConverged)
)

// Secant returns an approximate root of f starting from the guesses x0, x1.
//
// Implementation:
//   - Stage 1: validate tol > 0, maxIter > 0, |x0 − x1| >= eps (in that order, before evaluating f).
//   - Stage 2: up to maxIter times:
//     if |f1 − f0| < 100·eps, accept x1 when |f1| < tol, else fail ErrFlatSecant;
//     compute x2 by the secant formula and accept it if |x2 − x1| < tol or |f(x2)| < tol;
//     otherwise shift (x0,f0) ← (x1,f1), (x1,f1) ← (x2,f2).
//   - Stage 3: ErrNoConvergence.
//
// Each iteration evaluates f once; two extra evaluations seed the recurrence.
func Secant(f func(float64) float64, x0, x1, tol float64, maxIter int) (float64, error) {
	if !(tol > 0) {
		return 0, fmt.Errorf("tol=%g: %w", tol, ErrNonPositiveTolerance)
	}
	if maxIter <= 0 {
		return 0, fmt.Errorf("maxIter=%d: %w", maxIter, ErrNonPositiveMaxIter)
	}
	if math.Abs(x0-x1) < machineEpsilon {
		return 0, fmt.Errorf("x0=%g, x1=%g: %w", x0, x1, ErrEqualGuesses)
	}

	f0, f1 := f(x0), f(x1)
	var x2, f2 float64
	for iter := 0; iter < maxIter; iter++ {
		if math.Abs(f1-f0) < flatSlope {
			if math.Abs(f1) < tol {
				return x1, nil
			}

			return 0, fmt.Errorf("iteration %d at x=%g: %w", iter, x1, ErrFlatSecant)
		}

		x2 = x1 - f1*(x1-x0)/(f1-f0)
		f2 = f(x2)
		if math.Abs(x2-x1) < tol || math.Abs(f2) < tol {
			return x2, nil
		}

		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return 0, fmt.Errorf("after %d iterations (last x=%g): %w", maxIter, x1, ErrNoConvergence)
}
