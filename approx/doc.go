// SPDX-License-Identifier: MIT

// Package approx fits least-squares approximations.
//
//   - LinearLeastSquares fits y = slope·x + intercept to discrete data with the
//     closed-form normal equations.
//   - PolynomialApproximation finds the polynomial P of a given degree that
//     minimises ∫_a^b (f(x) − P(x))² dx. It assembles the Gram system
//     A[i][j] = ∫ x^(i+j) dx, d[i] = ∫ f(x)·x^i dx with integrate.Simpson and
//     solves A·c = d with linsolve.GaussJordan.
//
// Fitted coefficients are returned as a Polynomial ([c0, c1, …, cn], lowest
// power first), which evaluates itself with Horner's scheme.
//
// Errors from the integrator propagate unchanged; failures of the linear
// solve are wrapped with the approximation step as context but keep their
// numerr kind, so errors.Is(err, numerr.ErrSingular) still holds.
package approx
