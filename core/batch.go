package core

// Batch is an ordered list of pods to restart together. Order is
// presentational only — it carries no semantic weight for coverage or
// validity.
type Batch struct {
	Pods []Pod
}

// NewBatch returns a Batch containing pods, in the given order.
func NewBatch(pods ...Pod) Batch {
	return Batch{Pods: append([]Pod(nil), pods...)}
}

// CoveredEdges returns the set of edges in state where at least one endpoint
// is a pod in this batch. Set semantics: duplicate edges in state.Pairs()
// collapse to one entry here.
func (b Batch) CoveredEdges(state *ConnectionState) map[WeakEdge]struct{} {
	inBatch := make(map[string]struct{}, len(b.Pods))
	for _, p := range b.Pods {
		inBatch[p.ID()] = struct{}{}
	}
	covered := make(map[WeakEdge]struct{})
	for _, e := range state.Pairs() {
		if _, ok := inBatch[e.Source]; ok {
			covered[e] = struct{}{}
			continue
		}
		if _, ok := inBatch[e.Target]; ok {
			covered[e] = struct{}{}
		}
	}
	return covered
}

// Majors returns the ids of pods in this batch whose type is configured
// major in state.Pods.
func (b Batch) Majors(state *ConnectionState) map[string]struct{} {
	majorTypes := state.Pods.MajorTypes()
	majors := make(map[string]struct{})
	for _, p := range b.Pods {
		if _, ok := majorTypes[p.Name]; ok {
			majors[p.ID()] = struct{}{}
		}
	}
	return majors
}

// Valid reports whether, for every type, this batch's count of pods of that
// type does not exceed the type's configured redundancy (unbounded types
// always pass).
func (b Batch) Valid(state *ConnectionState) bool {
	counts := make(map[string]int)
	for _, p := range b.Pods {
		counts[p.Name]++
	}
	for name, count := range counts {
		cfg := state.Pods.Config(name)
		if cfg.Redundancy != nil && count > *cfg.Redundancy {
			return false
		}
	}
	return true
}
