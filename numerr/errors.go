// SPDX-License-Identifier: MIT

// Package numerr: shared error kinds for every numlib routine.
//
// Every package declares its own precise sentinels by wrapping one of the
// kinds below, e.g.
//
//	var ErrOddIntervals = fmt.Errorf("integrate: subinterval count must be even: %w", numerr.ErrInvalidArgument)
//
// so callers can match either the precise sentinel or the broad kind via errors.Is.
//
// ERROR PRIORITY (enforced in every routine):
// argument shape/range checks (InvalidArgument) run before any computation;
// data-dependent failures (Degenerate/Singular) and budget exhaustion
// (NotConverged) can only surface afterwards.
package numerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed input detected before computation starts:
	// size mismatches, non-positive counts, out-of-range parameters.
	ErrInvalidArgument = errors.New("numerr: invalid argument")

	// ErrDegenerate marks a mathematical precondition that failed during computation
	// (zero denominator, vanishing secant slope). It depends on numeric content, not shape.
	ErrDegenerate = errors.New("numerr: degenerate problem")

	// ErrSingular is the matrix flavour of ErrDegenerate: a pivot vanished.
	// errors.Is(ErrSingular, ErrDegenerate) is true.
	ErrSingular = fmt.Errorf("numerr: singular matrix: %w", ErrDegenerate)

	// ErrNotConverged marks an iterative method that exhausted its iteration budget.
	ErrNotConverged = errors.New("numerr: not converged")
)
