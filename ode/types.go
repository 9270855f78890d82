// Package ode defines the right-hand side and trajectory types for the RK4 solver.
package ode

// Func is the right-hand side of the first-order scalar ODE y' = f(x, y).
type Func func(x, y float64) float64

// Point is one sample (x, y) of a numerical trajectory.
type Point struct {
	X, Y float64
}
