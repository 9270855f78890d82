package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlib/numerr"
)

// NodeTolerance is the absolute distance below which two x-nodes count as duplicates.
const NodeTolerance = 1e-9

var (
	// ErrLengthMismatch indicates len(xNodes) != len(yNodes).
	ErrLengthMismatch = fmt.Errorf("interp: x and y nodes must have the same length: %w", numerr.ErrInvalidArgument)

	// ErrEmpty indicates that no nodes were supplied.
	ErrEmpty = fmt.Errorf("interp: at least one node is required: %w", numerr.ErrInvalidArgument)

	// ErrDuplicateNode indicates two x-nodes within NodeTolerance of each other.
	ErrDuplicateNode = fmt.Errorf("interp: x nodes must be distinct: %w", numerr.ErrInvalidArgument)
)

// LagrangePolynomial is an immutable, validated set of interpolation nodes.
// It is safe for concurrent use.
type LagrangePolynomial struct {
	xs, ys []float64
}

// NewLagrange validates the nodes and returns a reusable interpolant.
// The node slices are copied, so later edits by the caller have no effect.
//
// Errors are checked in this order: ErrLengthMismatch, ErrEmpty, ErrDuplicateNode.
func NewLagrange(xNodes, yNodes []float64) (*LagrangePolynomial, error) {
	if err := validateNodes(xNodes, yNodes); err != nil {
		return nil, err
	}
	p := &LagrangePolynomial{
		xs: make([]float64, len(xNodes)),
		ys: make([]float64, len(yNodes)),
	}
	copy(p.xs, xNodes)
	copy(p.ys, yNodes)

	return p, nil
}

// Lagrange returns the value at x of the polynomial interpolating (xNodes[i], yNodes[i]).
func Lagrange(xNodes, yNodes []float64, x float64) (float64, error) {
	if err := validateNodes(xNodes, yNodes); err != nil {
		return 0, err
	}

	return evaluate(xNodes, yNodes, x), nil
}

// At evaluates the interpolant at x.
func (p *LagrangePolynomial) At(x float64) float64 {
	return evaluate(p.xs, p.ys, x)
}

// Degree returns the maximal degree of the interpolant, len(nodes)-1.
func (p *LagrangePolynomial) Degree() int { return len(p.xs) - 1 }

func validateNodes(xNodes, yNodes []float64) error {
	if len(xNodes) != len(yNodes) {
		return fmt.Errorf("len(x)=%d, len(y)=%d: %w", len(xNodes), len(yNodes), ErrLengthMismatch)
	}
	if len(xNodes) == 0 {
		return ErrEmpty
	}
	for i := range xNodes {
		for j := i + 1; j < len(xNodes); j++ {
			if math.Abs(xNodes[i]-xNodes[j]) < NodeTolerance {
				return fmt.Errorf("nodes %d and %d (x=%g): %w", i, j, xNodes[i], ErrDuplicateNode)
			}
		}
	}

	return nil
}

// evaluate accumulates Σ y_i·ℓ_i(x) with ℓ_i(x) = Π_{j≠i} (x − x_j)/(x_i − x_j).
func evaluate(xs, ys []float64, x float64) float64 {
	var sum, basis float64
	for i := range xs {
		basis = 1.0
		for j := range xs {
			if i != j {
				basis *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		sum += ys[i] * basis
	}

	return sum
}
