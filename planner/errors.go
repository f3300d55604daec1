// Package planner computes the fewest redundancy-respecting batches that
// together cover every weak connection in a ConnectionState, by binary
// searching the per-type redundancy scale factor and splitting the winning
// single-batch selection.
package planner

import "errors"

// Sentinel errors for planning failures.
var (
	// ErrNoSolution indicates the solver failed or returned an infeasible
	// assignment at the initial trial batch count (the one at which every
	// bounded type's scaled cap admits all of its pods), escalated because no
	// baseline solution exists to fall back to.
	ErrNoSolution = errors.New("planner: solver produced no usable solution")

	// ErrSplitInvariant indicates a contract-level invariant the planner
	// depends on was violated: a trial covered more edges than exist, the
	// post-split batch count didn't match k*, or a split batch failed
	// validity.
	ErrSplitInvariant = errors.New("planner: internal invariant violation")
)
