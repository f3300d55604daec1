package probability

import (
	"fmt"
	"math/rand/v2"

	"github.com/podheal/healbatch/core"
)

// RandomGenerator synthesizes pods and weak connections without reference to
// any physical network model — useful for exercising the planner against
// arbitrary cluster shapes in tests and scenario authoring.
type RandomGenerator struct {
	// MajorRate is the probability any given type is marked major.
	MajorRate float64
}

// NewRandomGenerator returns a RandomGenerator with a default major rate of
// 0.2.
func NewRandomGenerator() RandomGenerator {
	return RandomGenerator{MajorRate: 0.2}
}

// Pods adds podCount pods spread across typeCount type names to c, each type
// getting a config with MajorRate chance of being major and a redundancy cap
// drawn uniformly from [0, len(pods of that type)].
func (g RandomGenerator) Pods(c *core.PodContainer, podCount, typeCount int) error {
	for i := 0; i < podCount; i++ {
		name := fmt.Sprintf("type%d", rand.IntN(typeCount))
		if err := c.AddPod(core.NewPod(name, countOfType(c, name))); err != nil {
			return err
		}
	}
	types := c.Types()
	for name, pods := range types {
		cfg := core.PodConfig{}
		if rand.Float64() < g.MajorRate {
			cfg = cfg.WithMajor(true)
		}
		cfg = cfg.WithRedundancy(rand.IntN(len(pods) + 1))
		c.SetConfig(name, cfg)
	}
	return nil
}

// countOfType returns how many pods of name already exist in c, so freshly
// generated pods get consecutive ordinals.
func countOfType(c *core.PodContainer, name string) int {
	return len(c.Types()[name])
}

// State adds weaks directed weak connections to state, each between a pod
// drawn from one randomly chosen type and a pod drawn from another
// (independently chosen, so self-pairs across the same type are possible).
// Requires state.Pods to have more than one type.
func (g RandomGenerator) State(state *core.ConnectionState, weaks int) error {
	types := state.Pods.Types()
	names := state.Pods.TypeNames()
	if len(names) <= 1 {
		return fmt.Errorf("probability: need more than one pod type, have %d", len(names))
	}
	for i := 0; i < weaks; i++ {
		t1 := types[names[rand.IntN(len(names))]]
		t2 := types[names[rand.IntN(len(names))]]
		p1 := t1[rand.IntN(len(t1))]
		p2 := t2[rand.IntN(len(t2))]
		if err := state.Weak(p1.ID(), p2.ID()); err != nil {
			return err
		}
	}
	return nil
}
