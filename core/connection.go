package core

import "fmt"

// ConnectionState represents the directed weak connections observed over a
// PodContainer: for each source pod id, the ordered list of target pod ids
// it reports a degraded link to.
//
// Duplicates in a target list are allowed — they arise naturally when a
// probability generator samples each direction of a pair independently —
// and are deduplicated only where a set is explicitly required (see
// ipmodel.Formulation's edge set).
type ConnectionState struct {
	Pods     *PodContainer
	weak     map[string][]string
	srcOrder []string
}

// NewConnectionState returns an empty ConnectionState over pods.
func NewConnectionState(pods *PodContainer) *ConnectionState {
	return &ConnectionState{
		Pods: pods,
		weak: make(map[string][]string),
	}
}

// Weak records a directed weak connection from source to each of targets.
// Every referenced pod id must already exist in s.Pods.
func (s *ConnectionState) Weak(source string, targets ...string) error {
	if !s.Pods.Has(source) {
		return fmt.Errorf("%w: %s", ErrPodNotFound, source)
	}
	if _, ok := s.weak[source]; !ok {
		s.srcOrder = append(s.srcOrder, source)
	}
	for _, t := range targets {
		if !s.Pods.Has(t) {
			return fmt.Errorf("%w: %s", ErrPodNotFound, t)
		}
		s.weak[source] = append(s.weak[source], t)
	}
	return nil
}

// WeakEdge is a convenience pair type accepted by Weaks.
type WeakEdge struct{ Source, Target string }

// Weaks records each (source, target) edge in turn via Weak.
func (s *ConnectionState) Weaks(edges ...WeakEdge) error {
	for _, e := range edges {
		if err := s.Weak(e.Source, e.Target); err != nil {
			return err
		}
	}
	return nil
}

// Pairs returns every (source, target) pair, duplicates included, in the
// order edges were recorded. Multiplicity is preserved deliberately: the
// generator samples each direction of a pair independently, and downstream
// consumers that want set semantics (ipmodel's edge set, the covered-edges
// derivations below) dedupe explicitly.
func (s *ConnectionState) Pairs() []WeakEdge {
	var out []WeakEdge
	for _, src := range s.srcOrder {
		for _, tgt := range s.weak[src] {
			out = append(out, WeakEdge{Source: src, Target: tgt})
		}
	}
	return out
}

// Targets returns the recorded targets for source, or nil if source has no
// recorded weak connections.
func (s *ConnectionState) Targets(source string) []string {
	return s.weak[source]
}

// Clone returns a deep copy of s: an independent ConnectionState whose
// mutation (including scaling a copy's redundancy caps) never affects s.
func (s *ConnectionState) Clone() *ConnectionState {
	clone := NewConnectionState(s.Pods.Clone())
	clone.srcOrder = append([]string(nil), s.srcOrder...)
	for k, v := range s.weak {
		clone.weak[k] = append([]string(nil), v...)
	}
	return clone
}
