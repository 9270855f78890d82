// Package chart renders numlib results as line/scatter charts with gonum/plot.
//
// A Chart is plain data (title, labels, curves); Render turns it into an
// io.WriterTo for any format gonum/plot supports (svg, png, pdf, eps, …) and
// Save writes it to a file whose extension picks the format.
package chart

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	// ErrNoCurves is returned when a chart has nothing to draw.
	ErrNoCurves = errors.New("chart: at least one curve is required")

	// ErrBadCurve is returned when a curve's X and Y lengths differ or are empty.
	ErrBadCurve = errors.New("chart: curve needs equal, non-empty X and Y")
)

// Curve is one named data series.
// Markers draws the points as a scatter instead of joining them with a line.
type Curve struct {
	Label   string
	X, Y    []float64
	Markers bool
}

// Chart describes a single 2-D plot.
type Chart struct {
	Title, XLabel, YLabel string
	Curves                []Curve
}

// Sample evaluates f at n+1 evenly spaced points on [a, b] (n >= 1).
func Sample(label string, f func(float64) float64, a, b float64, n int) Curve {
	if n < 1 {
		n = 1
	}
	c := Curve{Label: label, X: make([]float64, n+1), Y: make([]float64, n+1)}
	h := (b - a) / float64(n)
	for i := 0; i <= n; i++ {
		x := a + float64(i)*h
		c.X[i], c.Y[i] = x, f(x)
	}

	return c
}

// build assembles the gonum plot for c.
func build(c Chart) (*plot.Plot, error) {
	if len(c.Curves) == 0 {
		return nil, ErrNoCurves
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())

	for i, cv := range c.Curves {
		if len(cv.X) == 0 || len(cv.X) != len(cv.Y) {
			return nil, fmt.Errorf("curve %q: %w", cv.Label, ErrBadCurve)
		}
		pts := make(plotter.XYs, len(cv.X))
		for j := range cv.X {
			pts[j].X, pts[j].Y = cv.X[j], cv.Y[j]
		}

		if cv.Markers {
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("curve %q: %w", cv.Label, err)
			}
			s.GlyphStyle.Color = plotutil.Color(i)
			s.GlyphStyle.Shape = plotutil.Shape(i)
			p.Add(s)
			p.Legend.Add(cv.Label, s)

			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", cv.Label, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(l)
		p.Legend.Add(cv.Label, l)
	}
	p.Legend.Top = true

	return p, nil
}

// Render encodes c in the given format ("svg", "png", …) at the default size.
func Render(c Chart, format string) (io.WriterTo, error) {
	p, err := build(c)
	if err != nil {
		return nil, err
	}
	w, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return nil, fmt.Errorf("chart: render %s: %w", format, err)
	}

	return w, nil
}

// Save writes c to path; the file extension selects the format.
func Save(c Chart, path string) error {
	p, err := build(c)
	if err != nil {
		return err
	}
	if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
