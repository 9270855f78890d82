// SPDX-License-Identifier: MIT

package numerr

import "errors"

// Kind is the semantic class of a numlib error.
type Kind int

const (
	// KindNone is reported for nil errors and errors outside the numlib taxonomy.
	KindNone Kind = iota
	// KindInvalidArgument: see ErrInvalidArgument.
	KindInvalidArgument
	// KindDegenerate: see ErrDegenerate.
	KindDegenerate
	// KindSingular: see ErrSingular.
	KindSingular
	// KindNotConverged: see ErrNotConverged.
	KindNotConverged
)

var kindNames = [...]string{
	KindNone:            "none",
	KindInvalidArgument: "invalid-argument",
	KindDegenerate:      "degenerate",
	KindSingular:        "singular",
	KindNotConverged:    "not-converged",
}

// String returns a stable lower-case label, suitable for logs and exit reports.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// KindOf resolves the most specific Kind carried by err.
// Singular is checked before Degenerate because ErrSingular wraps ErrDegenerate.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrSingular):
		return KindSingular
	case errors.Is(err, ErrDegenerate):
		return KindDegenerate
	case errors.Is(err, ErrNotConverged):
		return KindNotConverged
	default:
		return KindNone
	}
}
