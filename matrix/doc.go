// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major matrix used by numlib's
// linear-algebra routines, together with the validators and small kernels
// (MatVec, Residual) shared by callers and tests.
//
// The package provides:
//
//   - Dense: a flat row-major buffer with safe accessors (At/Set return
//     errors instead of panicking) and deep-copy constructors, so solvers can
//     work on private copies and never alias caller storage.
//   - Validators: a single source of truth for nil/shape/length checks.
//   - A bridge to gonum's mat package (FromGonum, ToGonum) for callers that
//     already hold gonum matrices.
//
// Every sentinel error in this package wraps numerr.ErrInvalidArgument.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows: O(c).
package matrix
