// Package numlib is a small collection of textbook numerical methods for
// real-valued problems: solving dense linear systems, interpolating,
// integrating, differentiating, finding roots, stepping scalar ODEs, and
// least-squares fitting.
//
// 🚀 What is in the box?
//
//	A deterministic, allocation-light set of pure functions:
//		• linsolve : Gauss-Jordan elimination with partial pivoting
//		• interp   : Lagrange interpolation through distinct nodes
//		• integrate: composite Simpson's rule
//		• diff     : central-difference first derivative
//		• root     : secant method
//		• ode      : classical fourth-order Runge-Kutta for y' = f(x, y)
//		• approx   : straight-line and continuous polynomial least squares
//
// Supporting packages:
//
//	matrix/: dense row-major matrix, validators, gonum bridge
//	numerr/: error kinds shared by every routine (invalid argument,
//	          degenerate, singular, not converged)
//
// ✨ Guarantees
//
//   - No globals, no goroutines, no logging: every call is independent.
//   - Caller slices are never modified.
//   - Every failure is a returned error; match the precise sentinel of the
//     package (e.g. linsolve.ErrSingular) or its broad kind with errors.Is
//     against numerr.ErrSingular, numerr.ErrDegenerate, ...
//
// Quick start:
//
//	x, err := linsolve.GaussJordan([][]float64{{2, 1}, {1, 3}}, []float64{3, 5})
//	p, err := approx.PolynomialApproximation(math.Exp, -1, 1, 3, 100)
//	y := p.Eval(0.5)
//
// The numlab command (cmd/numlab) runs YAML scenario files against these
// routines and can chart ODE trajectories and polynomial fits.
package numlib
