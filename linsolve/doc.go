// SPDX-License-Identifier: MIT

// Package linsolve solves dense square linear systems A·x = b by
// Gauss-Jordan elimination with partial pivoting.
//
// Elimination runs on private copies: neither A nor b supplied by the caller
// is ever modified. Because the reduction is full Gauss-Jordan (A is driven to
// the identity rather than to an upper-triangular form), the transformed
// right-hand side IS the solution and no back-substitution pass is needed.
//
//	x, err := linsolve.GaussJordan([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}, []float64{8, -11, -3})
//	// x ≈ [2 3 -1]
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare, ErrRHSLength: shape problems (numerr.ErrInvalidArgument).
//   - ErrSingular: a pivot smaller than machine epsilon (numerr.ErrSingular).
//
// Complexity: O(n³) time, O(n²) space for the working copy.
package linsolve
