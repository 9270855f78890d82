// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels MUST return these sentinels (optionally wrapped with an op tag)
// and tests MUST check them via errors.Is.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/numlib/numerr"
)

// Every message is prefixed with "matrix: ..." for consistency; every
// sentinel wraps numerr.ErrInvalidArgument because all of them describe the
// shape of the input, never its numeric content.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", numerr.ErrInvalidArgument)

	// ErrEmpty is returned when a matrix is built from zero rows or zero-length rows.
	ErrEmpty = fmt.Errorf("matrix: empty input: %w", numerr.ErrInvalidArgument)

	// ErrRagged is returned when rows of a [][]float64 differ in length.
	ErrRagged = fmt.Errorf("matrix: rows differ in length: %w", numerr.ErrInvalidArgument)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", numerr.ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != Cols.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", numerr.ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", numerr.ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver, argument or vector) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", numerr.ErrInvalidArgument)
)
