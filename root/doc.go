// SPDX-License-Identifier: MIT

// Package root finds roots of scalar equations f(x) = 0 with the secant method.
//
// The secant method replaces the derivative in Newton's iteration by the
// slope through the two most recent iterates:
//
//	x_{k+1} = x_k − f(x_k)·(x_k − x_{k−1}) / (f(x_k) − f(x_{k−1}))
//
// Iteration stops as soon as either |x_{k+1} − x_k| < tol or |f(x_{k+1})| < tol.
//
// Errors:
//   - ErrNonPositiveTolerance, ErrNonPositiveMaxIter, ErrEqualGuesses: numerr.ErrInvalidArgument.
//   - ErrFlatSecant: the secant slope vanished away from a root (numerr.ErrDegenerate).
//   - ErrNoConvergence: maxIter steps without meeting either criterion (numerr.ErrNotConverged).
package root
