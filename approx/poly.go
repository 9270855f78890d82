// SPDX-License-Identifier: MIT

package approx

import (
	"strconv"
	"strings"
)

// Polynomial holds coefficients lowest power first: p[0] + p[1]·x + … + p[n]·x^n.
// A nil or empty Polynomial is the zero polynomial.
type Polynomial []float64

// Eval evaluates the polynomial at x with Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	acc := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}

	return acc
}

// Degree returns the nominal degree len(p)-1, or -1 for the zero polynomial.
// Trailing zero coefficients still count.
func (p Polynomial) Degree() int { return len(p) - 1 }

// String renders the polynomial as "c0 + c1*x + c2*x^2".
// Every coefficient is printed, zeros included.
func (p Polynomial) String() string {
	if len(p) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', 6, 64))
		switch {
		case i == 1:
			sb.WriteString("*x")
		case i > 1:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
