package ode_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlib/numerr"
	"github.com/katalvlaran/numlib/ode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func growth(_, y float64) float64 { return y }

func TestRK4_Exponential(t *testing.T) {
	y, err := ode.RK4(growth, 0, 1, 1, 100)
	require.NoError(t, err)
	assert.InDelta(t, math.E, y, 1e-6)
}

// TestRK4_Backward integrates y' = y from x=1 back to x=0.
func TestRK4_Backward(t *testing.T) {
	y, err := ode.RK4(growth, 1, math.E, 0, 100)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, y, 1e-6)
}

// TestRK4_NewtonCooling checks dT/dt = -k(T - Tenv) against the closed form.
func TestRK4_NewtonCooling(t *testing.T) {
	const k, env, t0, tEnd = 0.05, 20.0, 100.0, 10.0
	cooling := func(_, temp float64) float64 { return -k * (temp - env) }

	got, err := ode.RK4(cooling, 0, t0, tEnd, 100)
	require.NoError(t, err)
	want := env + (t0-env)*math.Exp(-k*tEnd)
	assert.InDelta(t, want, got, 1e-9)
}

// TestRK4_ExactForCubicRHS: y' = 4x³ depends only on x, so RK4
// reduces to Simpson's rule, exact for cubics.
func TestRK4_ExactForCubicRHS(t *testing.T) {
	y, err := ode.RK4(func(x, _ float64) float64 { return 4 * x * x * x }, 0, 0, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, y, 1e-12)
}

func TestRK4_InvalidSteps(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := ode.RK4(growth, 0, 1, 1, n)
		assert.ErrorIs(t, err, ode.ErrNonPositiveSteps)
		assert.ErrorIs(t, err, numerr.ErrInvalidArgument)

		_, err = ode.RK4Path(growth, 0, 1, 1, n)
		assert.ErrorIs(t, err, ode.ErrNonPositiveSteps)
	}
}

// TestRK4Path_AgreesWithRK4 verifies shape, endpoints and bit-identity of the final value.
func TestRK4Path_AgreesWithRK4(t *testing.T) {
	f := func(x, y float64) float64 { return math.Sin(x) - 0.3*y }
	final, err := ode.RK4(f, 0.5, 2, 4, 37)
	require.NoError(t, err)
	path, err := ode.RK4Path(f, 0.5, 2, 4, 37)
	require.NoError(t, err)

	require.Len(t, path, 38)
	assert.Equal(t, ode.Point{X: 0.5, Y: 2}, path[0])
	assert.Equal(t, final, path[len(path)-1].Y)
	assert.InDelta(t, 4.0, path[len(path)-1].X, 1e-12)
	for i := 1; i < len(path); i++ {
		assert.Greater(t, path[i].X, path[i-1].X, "x must advance monotonically")
	}
}

func TestRK4_Deterministic(t *testing.T) {
	a, _ := ode.RK4(growth, 0, 1, 1, 64)
	b, _ := ode.RK4(growth, 0, 1, 1, 64)
	assert.Equal(t, a, b)
}
