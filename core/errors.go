// Package core defines the domain model shared by every other package in
// this module: pods and their per-type configuration, the directed weak
// connections between them, and the batches/solutions a planner produces.
//
// Nothing here talks to a network, a solver, or a file system — those
// concerns live in network, ipmodel/planner, and serialize respectively.
// core is pure data plus the small set of derived queries (covered edges,
// majors, the evaluated tuple) spec'd directly against it.
package core

import "errors"

// Sentinel errors for domain-model operations.
var (
	// ErrEmptyPodID indicates ParsePodID was given an empty pod id.
	ErrEmptyPodID = errors.New("core: pod id is empty")

	// ErrBadPodID indicates a pod id does not contain the "-" separator
	// required to recover (name, ordinal).
	ErrBadPodID = errors.New("core: malformed pod id")

	// ErrDuplicatePod indicates AddPod was called with an id already present.
	ErrDuplicatePod = errors.New("core: duplicate pod id")

	// ErrPodNotFound indicates an operation referenced a pod id absent from
	// the container.
	ErrPodNotFound = errors.New("core: pod not found")
)
