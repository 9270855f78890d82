package integrate

import (
	"fmt"

	"github.com/katalvlaran/numlib/numerr"
)

var (
	// ErrNonPositiveIntervals indicates n <= 0.
	ErrNonPositiveIntervals = fmt.Errorf("integrate: subinterval count must be positive: %w", numerr.ErrInvalidArgument)

	// ErrOddIntervals indicates an odd n; Simpson's rule pairs subintervals.
	ErrOddIntervals = fmt.Errorf("integrate: subinterval count must be even: %w", numerr.ErrInvalidArgument)
)

// Simpson approximates ∫_a^b f(x) dx with the composite Simpson's rule on n
// equal subintervals.
//
// The subinterval count is validated before anything else, so an invalid n
// fails even for an empty interval. Then:
//   - a == b returns 0 without calling f;
//   - a > b returns -Simpson(f, b, a, n);
//   - otherwise, with h = (b-a)/n and x_i = a + i·h,
//     S = h/3 · [f(x_0) + 4·Σ_odd f(x_i) + 2·Σ_even f(x_i) + f(x_n)].
//
// f is called exactly n+1 times for a non-empty interval.
func Simpson(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrNonPositiveIntervals)
	}
	if n%2 != 0 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrOddIntervals)
	}
	if a == b {
		return 0, nil
	}
	if a > b {
		return -simpson(f, b, a, n), nil
	}

	return simpson(f, a, b, n), nil
}

// simpson assumes a < b and an even positive n.
func simpson(f func(float64) float64, a, b float64, n int) float64 {
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}

	return sum * h / 3.0
}
