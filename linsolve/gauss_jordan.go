// SPDX-License-Identifier: MIT

package linsolve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlib/matrix"
	"github.com/katalvlaran/numlib/numerr"
)

// MachineEpsilon is the float64 machine epsilon (2^-52). A pivot whose
// magnitude falls below it is treated as zero.
const MachineEpsilon = 0x1p-52

// opGaussJordan tags every error produced by the solver.
const opGaussJordan = "GaussJordan"

var (
	// ErrEmptyMatrix is returned for a matrix with no rows.
	ErrEmptyMatrix = fmt.Errorf("linsolve: matrix must not be empty: %w", numerr.ErrInvalidArgument)

	// ErrNonSquare is returned when A is not n×n (including ragged rows).
	ErrNonSquare = fmt.Errorf("linsolve: matrix must be square: %w", numerr.ErrInvalidArgument)

	// ErrRHSLength is returned when len(b) differs from the dimension of A.
	ErrRHSLength = fmt.Errorf("linsolve: right-hand side length must match matrix dimension: %w", numerr.ErrInvalidArgument)

	// ErrSingular is returned when a pivot magnitude is below MachineEpsilon.
	ErrSingular = fmt.Errorf("linsolve: matrix is singular or nearly singular: %w", numerr.ErrSingular)
)

// GaussJordan solves A·x = b for a square A given as rows.
//
// Implementation:
//   - Stage 1: validate shape (non-empty, every row of length n, len(b) == n).
//   - Stage 2: deep-copy A into a matrix.Dense and b into a fresh slice.
//   - Stage 3: run eliminate on the copies; the reduced b is x.
//
// Inputs:
//   - a: n×n coefficient rows, n ≥ 1.
//   - b: right-hand side of length n.
//
// Returns:
//   - []float64: solution x (freshly allocated).
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare, ErrRHSLength, ErrSingular (all tagged "GaussJordan: ...").
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussJordan(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, ErrEmptyMatrix)
	}
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries for %d rows: %w", opGaussJordan, i, len(row), n, ErrNonSquare)
		}
	}
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, n=%d: %w", opGaussJordan, len(b), n, ErrRHSLength)
	}

	work, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	if err = eliminate(work, rhs); err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, err)
	}

	return rhs, nil
}

// GaussJordanDense solves m·x = b for any square matrix.Matrix.
// m is copied via matrix.DenseOf and so is never mutated; nil or non-square
// inputs map to ErrEmptyMatrix and ErrNonSquare respectively.
func GaussJordanDense(m matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, ErrEmptyMatrix)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w", opGaussJordan, m.Rows(), m.Cols(), ErrNonSquare)
	}
	n := m.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("%s: len(b)=%d, n=%d: %w", opGaussJordan, len(b), n, ErrRHSLength)
	}

	work, err := matrix.DenseOf(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, err)
	}
	rhs := make([]float64, n)
	copy(rhs, b)

	if err = eliminate(work, rhs); err != nil {
		return nil, fmt.Errorf("%s: %w", opGaussJordan, err)
	}

	return rhs, nil
}

// eliminate reduces the square work matrix to the identity in place,
// applying the same row operations to rhs. On success rhs holds the solution.
//
// For each pivot column i:
//  1. pick the row p ≥ i with the largest |work[p][i]| (first one wins on ties);
//  2. swap rows i and p (and rhs entries);
//  3. fail with ErrSingular if |pivot| < MachineEpsilon;
//  4. divide row i and rhs[i] by the pivot, pinning work[i][i] = 1;
//  5. subtract work[k][i]·row i from every other row k, above and below.
//
// Columns left of i are already zero outside the diagonal, so row updates start at column i.
func eliminate(work *matrix.Dense, rhs []float64) error {
	n := work.Rows()
	var (
		i, k, j, p    int
		pivot, factor float64
		maxAbs, abs   float64
		pivRow, row   []float64
		err           error
	)
	for i = 0; i < n; i++ {
		// Partial pivot search in column i.
		p = i
		pivRow, _ = work.RowView(i)
		maxAbs = math.Abs(pivRow[i])
		for k = i + 1; k < n; k++ {
			row, _ = work.RowView(k)
			if abs = math.Abs(row[i]); abs > maxAbs {
				p, maxAbs = k, abs
			}
		}
		if err = work.SwapRows(i, p); err != nil {
			return err
		}
		rhs[i], rhs[p] = rhs[p], rhs[i]

		pivRow, _ = work.RowView(i)
		pivot = pivRow[i]
		if math.Abs(pivot) < MachineEpsilon {
			return fmt.Errorf("pivot %d: |%g| < eps: %w", i, pivot, ErrSingular)
		}

		// Normalize the pivot row.
		for j = i + 1; j < n; j++ {
			pivRow[j] /= pivot
		}
		rhs[i] /= pivot
		pivRow[i] = 1.0

		// Eliminate column i from every other row.
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			row, _ = work.RowView(k)
			factor = row[i]
			if factor == 0 {
				continue
			}
			for j = i; j < n; j++ {
				row[j] -= factor * pivRow[j]
			}
			rhs[k] -= factor * rhs[i]
		}
	}

	return nil
}
