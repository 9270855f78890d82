// Package scenario loads YAML files describing numerical problems and runs
// them against the numlib routines.
//
// A file is a list of named scenarios; each scenario sets exactly one
// problem block:
//
//	scenarios:
//	  - name: newton cooling
//	    cooling: {k: 0.05, ambient: 20, initial: 100, time: 10, steps: 100}
//	  - name: hooke
//	    linear_fit: {x: [0.001, 0.002], y: [200, 405]}
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoScenarios is returned for a file without scenarios.
	ErrNoScenarios = errors.New("scenario: file contains no scenarios")

	// ErrMissingName is returned when a scenario has an empty name.
	ErrMissingName = errors.New("scenario: name is required")

	// ErrNoProblem is returned when a scenario sets no problem block.
	ErrNoProblem = errors.New("scenario: exactly one problem block is required, found none")

	// ErrManyProblems is returned when a scenario sets more than one problem block.
	ErrManyProblems = errors.New("scenario: exactly one problem block is required, found several")
)

// Kind names the problem block a scenario carries.
type Kind string

// Problem kinds, one per YAML block key.
const (
	KindLinearSystem Kind = "linear_system"
	KindInterpolate  Kind = "interpolate"
	KindIntegrate    Kind = "integrate"
	KindDerivative   Kind = "derivative"
	KindRoot         Kind = "root"
	KindCooling      Kind = "cooling"
	KindLinearFit    Kind = "linear_fit"
	KindPolyFit      Kind = "poly_fit"
)

// File is the top-level document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one named problem. Exactly one of the pointer fields is set.
type Scenario struct {
	Name string `yaml:"name"`

	LinearSystem *LinearSystem `yaml:"linear_system,omitempty"`
	Interpolate  *Interpolate  `yaml:"interpolate,omitempty"`
	Integrate    *Integrate    `yaml:"integrate,omitempty"`
	Derivative   *Derivative   `yaml:"derivative,omitempty"`
	Root         *Root         `yaml:"root,omitempty"`
	Cooling      *Cooling      `yaml:"cooling,omitempty"`
	LinearFit    *LinearFit    `yaml:"linear_fit,omitempty"`
	PolyFit      *PolyFit      `yaml:"poly_fit,omitempty"`
}

// LinearSystem is A·x = b.
type LinearSystem struct {
	Matrix [][]float64 `yaml:"matrix"`
	RHS    []float64   `yaml:"rhs"`
}

// Interpolate evaluates the Lagrange interpolant of (X, Y) at every Query point.
type Interpolate struct {
	X     []float64 `yaml:"x"`
	Y     []float64 `yaml:"y"`
	Query []float64 `yaml:"query"`
}

// Integrate is ∫_A^B Func with N Simpson subintervals.
type Integrate struct {
	Func string  `yaml:"func"`
	A    float64 `yaml:"a"`
	B    float64 `yaml:"b"`
	N    int     `yaml:"n"`
}

// Derivative is Func'(X) with central step H.
type Derivative struct {
	Func string  `yaml:"func"`
	X    float64 `yaml:"x"`
	H    float64 `yaml:"h"`
}

// Root is a secant search for a zero of Func. Zero Tol/MaxIter select the root package defaults.
type Root struct {
	Func    string  `yaml:"func"`
	X0      float64 `yaml:"x0"`
	X1      float64 `yaml:"x1"`
	Tol     float64 `yaml:"tol,omitempty"`
	MaxIter int     `yaml:"max_iter,omitempty"`
}

// Cooling is Newton's law of cooling dT/dt = -K·(T − Ambient), T(0) = Initial, solved up to Time.
type Cooling struct {
	K       float64 `yaml:"k"`
	Ambient float64 `yaml:"ambient"`
	Initial float64 `yaml:"initial"`
	Time    float64 `yaml:"time"`
	Steps   int     `yaml:"steps"`
}

// LinearFit is a straight-line least-squares fit of (X, Y).
type LinearFit struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}

// PolyFit is the continuous least-squares polynomial of Degree for Func on [A, B].
type PolyFit struct {
	Func   string  `yaml:"func"`
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	Degree int     `yaml:"degree"`
	N      int     `yaml:"n"`
}

// Kind reports which block is set, or "" when none is.
// With several blocks set, the first in declaration order wins; Validate rejects that case.
func (s *Scenario) Kind() Kind {
	if ks := s.kinds(); len(ks) > 0 {
		return ks[0]
	}

	return ""
}

func (s *Scenario) kinds() []Kind {
	var ks []Kind
	if s.LinearSystem != nil {
		ks = append(ks, KindLinearSystem)
	}
	if s.Interpolate != nil {
		ks = append(ks, KindInterpolate)
	}
	if s.Integrate != nil {
		ks = append(ks, KindIntegrate)
	}
	if s.Derivative != nil {
		ks = append(ks, KindDerivative)
	}
	if s.Root != nil {
		ks = append(ks, KindRoot)
	}
	if s.Cooling != nil {
		ks = append(ks, KindCooling)
	}
	if s.LinearFit != nil {
		ks = append(ks, KindLinearFit)
	}
	if s.PolyFit != nil {
		ks = append(ks, KindPolyFit)
	}

	return ks
}

// Validate checks the structure of a scenario: a name, exactly one problem
// block, and known function names. Numeric preconditions are left to the
// library routines so their own errors reach the report.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	switch ks := s.kinds(); len(ks) {
	case 0:
		return fmt.Errorf("%q: %w", s.Name, ErrNoProblem)
	case 1:
	default:
		return fmt.Errorf("%q sets %v: %w", s.Name, ks, ErrManyProblems)
	}

	var fn string
	switch {
	case s.Integrate != nil:
		fn = s.Integrate.Func
	case s.Derivative != nil:
		fn = s.Derivative.Func
	case s.Root != nil:
		fn = s.Root.Func
	case s.PolyFit != nil:
		fn = s.PolyFit.Func
	default:
		return nil
	}
	if _, err := Lookup(fn); err != nil {
		return fmt.Errorf("%q: %w", s.Name, err)
	}

	return nil
}

// Validate checks every scenario in the file.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return ErrNoScenarios
	}
	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return fmt.Errorf("scenario %d: %w", i, err)
		}
	}

	return nil
}

// Load decodes and validates a scenario file. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}

		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}

// Marshal encodes f back to YAML.
func Marshal(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("scenario: encode: %w", err)
	}

	return data, nil
}
