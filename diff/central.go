// Package diff estimates first derivatives of scalar functions with the
// second-order central difference
//
//	f'(x) ≈ (f(x+h) − f(x−h)) / (2h).
//
// The truncation error is O(h²). Cancellation error grows as h shrinks; the
// caller chooses h, nothing is adjusted internally.
package diff

import (
	"fmt"

	"github.com/katalvlaran/numlib/numerr"
)

// ErrNonPositiveStep indicates h <= 0 (or NaN).
var ErrNonPositiveStep = fmt.Errorf("diff: step h must be positive: %w", numerr.ErrInvalidArgument)

// CentralDifference returns the central-difference estimate of f'(x) with step h.
func CentralDifference(f func(float64) float64, x, h float64) (float64, error) {
	if !(h > 0) {
		return 0, fmt.Errorf("h=%g: %w", h, ErrNonPositiveStep)
	}

	return (f(x+h) - f(x-h)) / (2 * h), nil
}
