// SPDX-License-Identifier: MIT
package approx_test

import (
	"testing"

	"github.com/katalvlaran/numlib/approx"
	"github.com/katalvlaran/numlib/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLinearLeastSquares_ExactLine(t *testing.T) {
	slope, intercept, err := approx.LinearLeastSquares([]float64{0, 1, 2, 3, 4}, []float64{1, 3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-12)
	assert.InDelta(t, 1.0, intercept, 1e-12)
}

// TestLinearLeastSquares_AgainstGonum fits noisy strain/stress data and
// compares with gonum's QR least-squares solve of the Vandermonde system.
func TestLinearLeastSquares_AgainstGonum(t *testing.T) {
	strain := []float64{0.001, 0.002, 0.003, 0.004, 0.005}
	stress := []float64{200, 405, 590, 810, 1020}

	slope, intercept, err := approx.LinearLeastSquares(strain, stress)
	require.NoError(t, err)

	design := mat.NewDense(len(strain), 2, nil)
	for i, x := range strain {
		design.Set(i, 0, x)
		design.Set(i, 1, 1)
	}
	var beta mat.VecDense
	require.NoError(t, beta.SolveVec(design, mat.NewVecDense(len(stress), stress)))

	assert.InDelta(t, beta.AtVec(0), slope, 1e-6)
	assert.InDelta(t, beta.AtVec(1), intercept, 1e-6)
	assert.InDelta(t, 204500.0, slope, 1e-6)
}

func TestLinearLeastSquares_Errors(t *testing.T) {
	_, _, err := approx.LinearLeastSquares([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, approx.ErrLengthMismatch)
	assert.ErrorIs(t, err, numerr.ErrInvalidArgument)

	_, _, err = approx.LinearLeastSquares([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, approx.ErrTooFewPoints)

	_, _, err = approx.LinearLeastSquares(nil, nil)
	assert.ErrorIs(t, err, approx.ErrTooFewPoints)

	_, _, err = approx.LinearLeastSquares([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, approx.ErrDegenerateFit)
	assert.Equal(t, numerr.KindDegenerate, numerr.KindOf(err))
}
