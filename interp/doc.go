// Package interp evaluates the Lagrange interpolating polynomial through a
// set of (x, y) nodes at arbitrary query points.
//
// Two entry points share one validation and one evaluation kernel:
//
//	y, err := interp.Lagrange(xs, ys, 1.5)      // one-shot query
//
//	p, err := interp.NewLagrange(xs, ys)        // validate once …
//	y1, y2 := p.At(1.5), p.At(2.5)              // … evaluate many times
//
// Nodes must be pairwise distinct: two abscissae closer than NodeTolerance
// are rejected. Evaluation costs O(n²) per query.
package interp
