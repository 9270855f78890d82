// Package integrate evaluates definite integrals of scalar functions with
// the composite Simpson's rule on an even number of equal subintervals.
//
//	v, err := integrate.Simpson(func(x float64) float64 { return x * x }, 0, 1, 100)
//	// v ≈ 1/3
//
// Orientation is respected: Simpson(f, b, a, n) == -Simpson(f, a, b, n), and
// an empty interval (a == b) integrates to zero.
package integrate
