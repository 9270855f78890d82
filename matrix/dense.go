// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Provide deep-copy constructors so destructive kernels never touch caller storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); NewDenseFromRows: O(r*c); At/Set: O(1); Clone: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxSwap    = "SwapRows"
	ctxRowView = "RowView"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w, so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Dense does not police the numeric content of cells: NaN and ±Inf are stored
// as given. Checks that depend on values (pivots, denominators) belong to the
// kernels that consume the matrix.
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense by deep-copying a rectangular [][]float64.
// MAIN DESCRIPTION:
//   - The caller's slices are never retained; later edits on either side are independent.
//
// Implementation:
//   - Stage 1: reject zero rows or a zero-length first row (ErrEmpty).
//   - Stage 2: reject any row whose length differs from the first (ErrRagged).
//   - Stage 3: copy row by row into one flat buffer.
//
// Errors:
//   - ErrEmpty, ErrRagged (wrapped with the offending row index).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	d := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// DenseOf returns a *Dense deep copy of any Matrix.
// For *Dense inputs the flat buffer is copied in one pass; other
// implementations are read through At in fixed i→j order.
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (i,j) and returns the flat offset.
func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return i*m.c + j, nil
}

// At returns the element at (i,j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, denseErrorf(ctxAt, i, j, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (i,j) or returns ErrOutOfRange.
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return denseErrorf(ctxSet, i, j, err)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy as a Matrix.
func (m *Dense) Clone() Matrix { return m.cloneDense() }

func (m *Dense) cloneDense() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// SwapRows exchanges rows i and k in place. i == k is a no-op.
// Complexity: O(c), no allocation.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwap, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// RowView returns row i as a slice ALIASING the backing buffer.
// Writes through the slice mutate the matrix; use it only on private copies.
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Rows2D returns a freshly allocated [][]float64 copy of the matrix.
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders the matrix one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
