// SPDX-License-Identifier: MIT

package approx

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlib/integrate"
	"github.com/katalvlaran/numlib/linsolve"
)

// opNormalEquations labels errors raised while solving the Gram system.
const opNormalEquations = "approx: solving normal equations"

// PolynomialApproximation returns the coefficients of the degree-`degree`
// polynomial closest to f in the continuous L² sense on [a, b].
//
// Implementation:
//   - Stage 1: validate degree >= 0 and a < b. nSimpson is validated by
//     integrate.Simpson on its first call, and its error is returned as is.
//   - Stage 2: fill the (degree+1)×(degree+1) Gram matrix,
//     A[i][j] = Simpson(x ↦ x^(i+j)), with x^0 ≡ 1.
//   - Stage 3: fill d[i] = Simpson(x ↦ f(x)·x^i).
//   - Stage 4: c = GaussJordan(A, d); failures are wrapped with opNormalEquations.
//
// Complexity:
//   - Time O(degree²·nSimpson + degree³), plus (degree+1)·(nSimpson+1) calls of f.
//
// Notes:
//   - The monomial Gram matrix is a scaled Hilbert matrix and becomes badly
//     conditioned quickly as degree grows; keep degree modest.
func PolynomialApproximation(f func(float64) float64, a, b float64, degree, nSimpson int) (Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("degree=%d: %w", degree, ErrNegativeDegree)
	}
	if a >= b {
		return nil, fmt.Errorf("a=%g, b=%g: %w", a, b, ErrInvalidInterval)
	}

	size := degree + 1
	gram := make([][]float64, size)
	for i := range gram {
		gram[i] = make([]float64, size)
	}
	rhs := make([]float64, size)

	var (
		v   float64
		err error
	)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if v, err = integrate.Simpson(monomial(i+j), a, b, nSimpson); err != nil {
				return nil, err
			}
			gram[i][j] = v
		}
	}
	for i := 0; i < size; i++ {
		if rhs[i], err = integrate.Simpson(weighted(f, i), a, b, nSimpson); err != nil {
			return nil, err
		}
	}

	coeffs, err := linsolve.GaussJordan(gram, rhs)
	if err != nil {
		return nil, fmt.Errorf("%s (degree %d on [%g, %g]): %w", opNormalEquations, degree, a, b, err)
	}

	return Polynomial(coeffs), nil
}

// monomial returns x ↦ x^p, with p == 0 mapped to the constant 1 so that 0^0 is 1.
func monomial(p int) func(float64) float64 {
	if p == 0 {
		return func(float64) float64 { return 1 }
	}
	e := float64(p)

	return func(x float64) float64 { return math.Pow(x, e) }
}

// weighted returns x ↦ f(x)·x^p.
func weighted(f func(float64) float64, p int) func(float64) float64 {
	if p == 0 {
		return f
	}
	e := float64(p)

	return func(x float64) float64 { return f(x) * math.Pow(x, e) }
}
