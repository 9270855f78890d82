// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum.org/v1/gonum/mat.
//
// Both directions copy; neither side retains the other's storage.

package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies any gonum mat.Matrix into a new *Dense.
// A zero-sized gonum matrix (e.g. an empty mat.Dense value) yields ErrInvalidDimensions.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, validatorErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, validatorErrorf("FromGonum", ErrInvalidDimensions)
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// ToGonum returns a *mat.Dense holding a copy of m.
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}
