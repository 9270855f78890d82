// SPDX-License-Identifier: MIT
package linsolve_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlib/linsolve"
	"github.com/katalvlaran/numlib/matrix"
	"github.com/katalvlaran/numlib/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestGaussJordan_Known3x3 solves the textbook system with solution (2, 3, -1).
func TestGaussJordan_Known3x3(t *testing.T) {
	a := [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}
	b := []float64{8, -11, -3}

	x, err := linsolve.GaussJordan(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-9)
	assert.InDelta(t, 3.0, x[1], 1e-9)
	assert.InDelta(t, -1.0, x[2], 1e-9)
}

// TestGaussJordan_RequiresPivoting uses a zero leading entry that breaks naive elimination.
func TestGaussJordan_RequiresPivoting(t *testing.T) {
	a := [][]float64{{0, 1}, {1, 0}}
	x, err := linsolve.GaussJordan(a, []float64{3, 4})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 3}, x, 1e-15)
}

func TestGaussJordan_OneByOne(t *testing.T) {
	x, err := linsolve.GaussJordan([][]float64{{4}}, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, x)
}

// TestGaussJordan_Singular checks the documented singular example and the kind chain.
func TestGaussJordan_Singular(t *testing.T) {
	_, err := linsolve.GaussJordan([][]float64{{1, 1}, {1, 1}}, []float64{2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, linsolve.ErrSingular)
	assert.ErrorIs(t, err, numerr.ErrSingular)
	assert.ErrorIs(t, err, numerr.ErrDegenerate)
	assert.Equal(t, numerr.KindSingular, numerr.KindOf(err))
}

func TestGaussJordan_ShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		a    [][]float64
		b    []float64
		want error
	}{
		{"empty", nil, nil, linsolve.ErrEmptyMatrix},
		{"non-square", [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 2}, linsolve.ErrNonSquare},
		{"ragged", [][]float64{{1, 2}, {3}}, []float64{1, 2}, linsolve.ErrNonSquare},
		{"rhs length", [][]float64{{1, 0}, {0, 1}}, []float64{1}, linsolve.ErrRHSLength},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linsolve.GaussJordan(tc.a, tc.b)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, numerr.ErrInvalidArgument)
		})
	}
}

// TestGaussJordan_DoesNotMutateInputs guards the pass-by-value contract.
func TestGaussJordan_DoesNotMutateInputs(t *testing.T) {
	a := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	b := []float64{5, 6, 4}
	aCopy := [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 0}}
	bCopy := []float64{5, 6, 4}

	_, err := linsolve.GaussJordan(a, b)
	require.NoError(t, err)
	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
}

// TestGaussJordan_RandomAgainstGonum compares against gonum's LU-based solver
// and checks the residual A·x − b on diagonally dominant random systems.
func TestGaussJordan_RandomAgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 5, 12, 30} {
		a := make([][]float64, n)
		flat := make([]float64, 0, n*n)
		b := make([]float64, n)
		for i := range a {
			a[i] = make([]float64, n)
			for j := range a[i] {
				a[i][j] = rng.Float64()*2 - 1
			}
			a[i][i] += float64(n)
			flat = append(flat, a[i]...)
			b[i] = rng.Float64() * 10
		}

		x, err := linsolve.GaussJordan(a, b)
		require.NoError(t, err, "n=%d", n)

		var want mat.VecDense
		require.NoError(t, want.SolveVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, b)))
		assert.True(t, floats.EqualApprox(x, want.RawVector().Data, 1e-9), "n=%d: gonum disagrees", n)

		m, _ := matrix.NewDenseFromRows(a)
		res, err := matrix.Residual(m, x, b)
		require.NoError(t, err)
		assert.Less(t, res, 1e-9*float64(n))
	}
}

// TestGaussJordan_Deterministic re-runs the solver and expects bit-identical output.
func TestGaussJordan_Deterministic(t *testing.T) {
	a := [][]float64{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}}
	b := []float64{11, -16, 17}
	x1, err := linsolve.GaussJordan(a, b)
	require.NoError(t, err)
	x2, err := linsolve.GaussJordan(a, b)
	require.NoError(t, err)
	assert.Equal(t, x1, x2)
}

func TestGaussJordanDense(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{3, 2, 1, 2})
	m, err := matrix.FromGonum(g)
	require.NoError(t, err)

	x, err := linsolve.GaussJordanDense(m, []float64{5, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2.5}, x, 1e-12)

	// Source untouched.
	v, _ := m.At(0, 0)
	assert.Equal(t, 3.0, v)

	rect, _ := matrix.NewDense(2, 3)
	_, err = linsolve.GaussJordanDense(rect, []float64{1, 2})
	assert.ErrorIs(t, err, linsolve.ErrNonSquare)

	_, err = linsolve.GaussJordanDense(nil, nil)
	assert.ErrorIs(t, err, linsolve.ErrEmptyMatrix)

	_, err = linsolve.GaussJordanDense(m, []float64{1})
	assert.ErrorIs(t, err, linsolve.ErrRHSLength)

	sing, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	_, err = linsolve.GaussJordanDense(sing, []float64{1, 2})
	assert.ErrorIs(t, err, linsolve.ErrSingular)
}
