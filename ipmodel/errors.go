// Package ipmodel builds the integer-programming formulation a restart
// selection is judged against (per-type redundancy constraints, a major
// penalty, a coverage reward) and exposes it behind a Solver interface that
// concrete search strategies implement.
package ipmodel

import "errors"

// Sentinel errors for formulation construction and solving.
var (
	// ErrRoundingTolerance indicates a solver returned a value for some
	// index that sits outside [-0.1, 0.1] of both 0 and 1, the tolerance
	// applied when reading back binary variable values.
	ErrRoundingTolerance = errors.New("ipmodel: solver value outside rounding tolerance of {0,1}")
)
