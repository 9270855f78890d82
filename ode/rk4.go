package ode

import (
	"fmt"

	"github.com/katalvlaran/numlib/numerr"
)

// ErrNonPositiveSteps indicates steps <= 0.
var ErrNonPositiveSteps = fmt.Errorf("ode: step count must be positive: %w", numerr.ErrInvalidArgument)

const half = 0.5

// RK4 integrates y' = f(x, y), y(x0) = y0 with the classical fourth-order
// Runge-Kutta method and `steps` equal steps, returning y(xTarget).
//
// The step is h = (xTarget − x0)/steps; xTarget < x0 gives a negative h and
// integrates backwards, which is allowed. Each step costs four evaluations of f:
//
//	k1 = h·f(x, y)
//	k2 = h·f(x + h/2, y + k1/2)
//	k3 = h·f(x + h/2, y + k2/2)
//	k4 = h·f(x + h, y + k3)
//	y += (k1 + 2k2 + 2k3 + k4)/6,  x += h
func RK4(f Func, x0, y0, xTarget float64, steps int) (float64, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("steps=%d: %w", steps, ErrNonPositiveSteps)
	}
	h := (xTarget - x0) / float64(steps)
	x, y := x0, y0
	for i := 0; i < steps; i++ {
		x, y = step(f, x, y, h)
	}

	return y, nil
}

// RK4Path runs the same iteration as RK4 and records every intermediate point.
// The result holds steps+1 points: (x0, y0) first, and a final Y bit-identical
// to RK4's return value for the same arguments.
func RK4Path(f Func, x0, y0, xTarget float64, steps int) ([]Point, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps=%d: %w", steps, ErrNonPositiveSteps)
	}
	h := (xTarget - x0) / float64(steps)
	path := make([]Point, 0, steps+1)
	x, y := x0, y0
	path = append(path, Point{X: x, Y: y})
	for i := 0; i < steps; i++ {
		x, y = step(f, x, y, h)
		path = append(path, Point{X: x, Y: y})
	}

	return path, nil
}

// step advances (x, y) by one RK4 step of size h.
func step(f Func, x, y, h float64) (float64, float64) {
	k1 := h * f(x, y)
	k2 := h * f(x+half*h, y+half*k1)
	k3 := h * f(x+half*h, y+half*k2)
	k4 := h * f(x+h, y+k3)

	return x + h, y + (k1+2*k2+2*k3+k4)/6.0
}
