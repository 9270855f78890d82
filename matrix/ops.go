// SPDX-License-Identifier: MIT
// Package matrix: small kernels shared by solvers and their tests.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec   = "MatVec"
	opResidual = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, m.Cols()).
//   - Stage 2: if m is *Dense, flat row-major dot products; otherwise At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opMatVec).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residual returns max_i |(m·x − b)_i|, the infinity norm of the residual.
// It is the acceptance check used by linear-solver tests and the CLI.
func Residual(m Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(m, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}

	worst := ZeroSum
	for i := range ax {
		worst = math.Max(worst, math.Abs(ax[i]-b[i]))
	}

	return worst, nil
}
