package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlib/approx"
	"github.com/katalvlaran/numlib/diff"
	"github.com/katalvlaran/numlib/integrate"
	"github.com/katalvlaran/numlib/internal/chart"
	"github.com/katalvlaran/numlib/interp"
	"github.com/katalvlaran/numlib/linsolve"
	"github.com/katalvlaran/numlib/numerr"
	"github.com/katalvlaran/numlib/ode"
	"github.com/katalvlaran/numlib/root"
)

// chartSamples is the number of points used to draw continuous curves.
const chartSamples = 200

// Result is the outcome of one scenario.
//   - Values holds the numeric answer (solution vector, coefficients, a single value, ...).
//   - Err is nil on success; ErrKind classifies it through numerr.KindOf.
//   - Chart is set for kinds that have something worth drawing (cooling, poly_fit).
type Result struct {
	Name    string
	Kind    Kind
	Summary string
	Values  []float64
	Err     error
	Chart   *chart.Chart
}

// ErrKind returns the error kind of the result, KindNone on success.
func (r Result) ErrKind() numerr.Kind { return numerr.KindOf(r.Err) }

// String renders the result on one line.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s [%s] FAILED (%s): %v", r.Name, r.Kind, r.ErrKind(), r.Err)
	}

	return fmt.Sprintf("%s [%s] %s", r.Name, r.Kind, r.Summary)
}

// RunAll runs every scenario in order. A failing scenario does not stop the run.
func RunAll(f *File) []Result {
	out := make([]Result, 0, len(f.Scenarios))
	for i := range f.Scenarios {
		out = append(out, Run(&f.Scenarios[i]))
	}

	return out
}

// Run executes a single scenario. Structural problems found by Validate are
// reported in Result.Err like any numeric failure.
func Run(s *Scenario) Result {
	res := Result{Name: s.Name, Kind: s.Kind()}
	if err := s.Validate(); err != nil {
		res.Err = err

		return res
	}

	switch res.Kind {
	case KindLinearSystem:
		runLinearSystem(s.LinearSystem, &res)
	case KindInterpolate:
		runInterpolate(s.Interpolate, &res)
	case KindIntegrate:
		runIntegrate(s.Integrate, &res)
	case KindDerivative:
		runDerivative(s.Derivative, &res)
	case KindRoot:
		runRoot(s.Root, &res)
	case KindCooling:
		runCooling(s.Name, s.Cooling, &res)
	case KindLinearFit:
		runLinearFit(s.LinearFit, &res)
	case KindPolyFit:
		runPolyFit(s.Name, s.PolyFit, &res)
	}

	return res
}

func runLinearSystem(p *LinearSystem, res *Result) {
	x, err := linsolve.GaussJordan(p.Matrix, p.RHS)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = x
	res.Summary = "x = " + formatVec(x)
}

func runInterpolate(p *Interpolate, res *Result) {
	poly, err := interp.NewLagrange(p.X, p.Y)
	if err != nil {
		res.Err = err

		return
	}
	vals := make([]float64, len(p.Query))
	parts := make([]string, len(p.Query))
	for i, q := range p.Query {
		vals[i] = poly.At(q)
		parts[i] = fmt.Sprintf("p(%g) = %.6f", q, vals[i])
	}
	res.Values = vals
	res.Summary = fmt.Sprintf("degree %d: %s", poly.Degree(), strings.Join(parts, ", "))
}

func runIntegrate(p *Integrate, res *Result) {
	fn, _ := Lookup(p.Func)
	v, err := integrate.Simpson(fn, p.A, p.B, p.N)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = []float64{v}
	res.Summary = fmt.Sprintf("∫ %s on [%g, %g] (n=%d) = %.6f", p.Func, p.A, p.B, p.N, v)
}

func runDerivative(p *Derivative, res *Result) {
	fn, _ := Lookup(p.Func)
	v, err := diff.CentralDifference(fn, p.X, p.H)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = []float64{v}
	res.Summary = fmt.Sprintf("%s'(%g) ≈ %.6f (h=%g)", p.Func, p.X, v, p.H)
}

func runRoot(p *Root, res *Result) {
	fn, _ := Lookup(p.Func)
	tol, maxIter := p.Tol, p.MaxIter
	if tol == 0 {
		tol = root.DefaultTolerance
	}
	if maxIter == 0 {
		maxIter = root.DefaultMaxIter
	}
	v, err := root.Secant(fn, p.X0, p.X1, tol, maxIter)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = []float64{v}
	res.Summary = fmt.Sprintf("%s(x) = 0 at x ≈ %.6f", p.Func, v)
}

// runCooling integrates dT/dt = -k(T - ambient) and compares the end value
// with the closed form ambient + (initial - ambient)·e^(-k·t).
func runCooling(name string, p *Cooling, res *Result) {
	rhs := func(_, temp float64) float64 { return -p.K * (temp - p.Ambient) }
	path, err := ode.RK4Path(rhs, 0, p.Initial, p.Time, p.Steps)
	if err != nil {
		res.Err = err

		return
	}
	numeric := path[len(path)-1].Y
	exact := p.Ambient + (p.Initial-p.Ambient)*math.Exp(-p.K*p.Time)
	res.Values = []float64{numeric, exact}
	res.Summary = fmt.Sprintf("T(%g) = %.6f (exact %.6f, |err| %.2e)", p.Time, numeric, exact, math.Abs(numeric-exact))

	xs := make([]float64, len(path))
	ys := make([]float64, len(path))
	for i, pt := range path {
		xs[i], ys[i] = pt.X, pt.Y
	}
	analytic := func(t float64) float64 { return p.Ambient + (p.Initial-p.Ambient)*math.Exp(-p.K*t) }
	res.Chart = &chart.Chart{
		Title:  name,
		XLabel: "t",
		YLabel: "T",
		Curves: []chart.Curve{
			chart.Sample("exact", analytic, 0, p.Time, chartSamples),
			{Label: "RK4", X: xs, Y: ys, Markers: true},
		},
	}
}

func runLinearFit(p *LinearFit, res *Result) {
	slope, intercept, err := approx.LinearLeastSquares(p.X, p.Y)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = []float64{slope, intercept}
	res.Summary = fmt.Sprintf("y = %.6g*x + %.6g", slope, intercept)
}

func runPolyFit(name string, p *PolyFit, res *Result) {
	fn, _ := Lookup(p.Func)
	poly, err := approx.PolynomialApproximation(fn, p.A, p.B, p.Degree, p.N)
	if err != nil {
		res.Err = err

		return
	}
	res.Values = []float64(poly)
	res.Summary = "p(x) = " + poly.String()
	res.Chart = &chart.Chart{
		Title:  name,
		XLabel: "x",
		YLabel: "y",
		Curves: []chart.Curve{
			chart.Sample(p.Func, fn, p.A, p.B, chartSamples),
			chart.Sample(fmt.Sprintf("degree %d fit", p.Degree), poly.Eval, p.A, p.B, chartSamples),
		},
	}
}

func formatVec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 6, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
