// Package probability derives, from a frozen network's path sets, the
// probability that each pair of bound pods experiences a weak connection,
// and samples ConnectionState instances from those probabilities.
package probability

import (
	"math/rand/v2"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/network"
)

// pairKey is an unordered pair of pod ids, stored with Low <= High so a pair
// looked up in either order matches the same entry.
type pairKey struct{ Low, High string }

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{Low: a, High: b}
}

// Model holds the per-pair weak-link probability derived from a frozen
// network, plus the pod container those pairs range over (kept so Generate
// can build a ConnectionState without re-reading the network).
type Model struct {
	pods          *core.PodContainer
	probabilities map[pairKey]float64
	order         []pairKey
}

// FromNetwork computes, for every unordered pair of bound pods (s, t) in
// bind-insertion order, p(s,t) = |weak paths| / (|healthy|+|weak|), or 0 when
// the pair has no paths at all.
func FromNetwork(fn *network.FreezedNetwork) (*Model, error) {
	bound := fn.BoundPodIDs()
	m := &Model{
		pods:          fn.Network().Pods.Clone(),
		probabilities: make(map[pairKey]float64),
	}
	for i := 0; i < len(bound); i++ {
		for j := i + 1; j < len(bound); j++ {
			s, t := bound[i], bound[j]
			healthy, weak, err := fn.State(s, t)
			if err != nil {
				return nil, err
			}
			total := len(healthy) + len(weak)
			p := 0.0
			if total > 0 {
				p = float64(len(weak)) / float64(total)
			}
			key := newPairKey(s, t)
			m.probabilities[key] = p
			m.order = append(m.order, key)
		}
	}
	return m, nil
}

// Probability returns p(s,t), or 0 if the pair was never computed.
func (m *Model) Probability(s, t string) float64 {
	return m.probabilities[newPairKey(s, t)]
}

// Generate samples a ConnectionState: for every pair (s, t) with probability
// p, two independent Bernoulli draws decide whether to add s->t and whether
// to add t->s. The returned state shares no mutable state with the network
// that produced m.
func (m *Model) Generate() *core.ConnectionState {
	state := core.NewConnectionState(m.pods.Clone())
	for _, key := range m.order {
		p := m.probabilities[key]
		if rand.Float64() < p {
			_ = state.Weak(key.Low, key.High)
		}
		if rand.Float64() < p {
			_ = state.Weak(key.High, key.Low)
		}
	}
	return state
}
