package core

import (
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus records wall-clock and resource information about a
// planner run. It is opaque to the core model and is populated by
// internal/timing, not by the planner itself.
type ExecutionStatus struct {
	RunID      string
	WallTime   time.Duration
	PeakRSSKiB int64
}

// NewExecutionStatus returns an ExecutionStatus tagged with a fresh run id.
func NewExecutionStatus() ExecutionStatus {
	return ExecutionStatus{RunID: uuid.NewString()}
}

// Solution is the planner's output: the ConnectionState it was computed
// against, an ordered list of batches, and execution metadata. Immutable
// after construction.
type Solution struct {
	State   *ConnectionState
	Batches []Batch
	Status  ExecutionStatus
}

// CoveredEdges returns the union, over every batch, of CoveredEdges — i.e.
// every weak edge healed by restarting at least one batch.
func (s Solution) CoveredEdges() map[WeakEdge]struct{} {
	union := make(map[WeakEdge]struct{})
	for _, b := range s.Batches {
		for e := range b.CoveredEdges(s.State) {
			union[e] = struct{}{}
		}
	}
	return union
}

// Majors returns the union, over every batch, of Majors.
func (s Solution) Majors() map[string]struct{} {
	union := make(map[string]struct{})
	for _, b := range s.Batches {
		for id := range b.Majors(s.State) {
			union[id] = struct{}{}
		}
	}
	return union
}

// PodIDs returns the union of pod ids across every batch.
func (s Solution) PodIDs() map[string]struct{} {
	union := make(map[string]struct{})
	for _, b := range s.Batches {
		for _, p := range b.Pods {
			union[p.ID()] = struct{}{}
		}
	}
	return union
}

// Evaluated is the lexicographic quality tuple the planner minimizes/maximizes
// over: (covered edges, batch count, major restarts, total restarted pods).
// Smaller Batches/Majors/Pods and larger CoveredEdges are better; the
// planner's objective orders solutions by CoveredEdges desc, then Batches
// asc, then Majors asc, then Pods asc.
type Evaluated struct {
	CoveredEdges int
	Batches      int
	Majors       int
	Pods         int
}

// Evaluated computes the quality tuple for s.
func (s Solution) Evaluated() Evaluated {
	return Evaluated{
		CoveredEdges: len(s.CoveredEdges()),
		Batches:      len(s.Batches),
		Majors:       len(s.Majors()),
		Pods:         len(s.PodIDs()),
	}
}

// Valid reports whether every batch in s satisfies its redundancy cap.
func (s Solution) Valid() bool {
	for _, b := range s.Batches {
		if !b.Valid(s.State) {
			return false
		}
	}
	return true
}
