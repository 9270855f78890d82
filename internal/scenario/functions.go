package scenario

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownFunction is returned by Lookup for names outside the registry.
var ErrUnknownFunction = errors.New("scenario: unknown function")

// functions is the fixed registry of scalar functions a scenario may name.
var functions = map[string]func(float64) float64{
	"square":              func(x float64) float64 { return x * x },
	"cube":                func(x float64) float64 { return x * x * x },
	"sin":                 math.Sin,
	"exp":                 math.Exp,
	"cos_minus_x":         func(x float64) float64 { return math.Cos(x) - x },
	"x2_minus_2":          func(x float64) float64 { return x*x - 2 },
	"x2_plus_1":           func(x float64) float64 { return x*x + 1 },
	"exp_cos5_minus_cube": func(x float64) float64 { return math.Exp(x)*math.Cos(5*x) - x*x*x },
}

// Lookup returns the registered function called name.
func Lookup(name string) (func(float64) float64, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, FunctionNames(), ErrUnknownFunction)
	}

	return f, nil
}

// FunctionNames lists the registry in sorted order.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
