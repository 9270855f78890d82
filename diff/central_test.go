package diff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlib/diff"
	"github.com/katalvlaran/numlib/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func cube(x float64) float64 { return x * x * x }

func TestCentralDifference_Cube(t *testing.T) {
	d, err := diff.CentralDifference(cube, 2, 1e-5)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d, 1e-6)
}

func TestCentralDifference_Sin(t *testing.T) {
	d, err := diff.CentralDifference(math.Sin, 0, 1e-5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9)
}

// TestCentralDifference_ExactForQuadratics: the O(h²) term vanishes for polynomials of degree ≤ 2.
func TestCentralDifference_ExactForQuadratics(t *testing.T) {
	f := func(x float64) float64 { return 3*x*x - 2*x + 5 }
	d, err := diff.CentralDifference(f, 1.5, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, d, 1e-12)
}

func TestCentralDifference_InvalidStep(t *testing.T) {
	for _, h := range []float64{0, -1e-3, math.NaN()} {
		_, err := diff.CentralDifference(cube, 1, h)
		assert.ErrorIs(t, err, diff.ErrNonPositiveStep, "h=%g", h)
		assert.ErrorIs(t, err, numerr.ErrInvalidArgument)
	}
}

// TestCentralDifference_MatchesGonum compares with gonum's central formula at the same step.
func TestCentralDifference_MatchesGonum(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) * math.Cos(x) }
	const x, h = 0.7, 1e-4

	got, err := diff.CentralDifference(f, x, h)
	require.NoError(t, err)
	want := fd.Derivative(f, x, &fd.Settings{Formula: fd.Central, Step: h})
	assert.InDelta(t, want, got, 1e-10)
}
