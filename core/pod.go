package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pod identifies a single stateful service replica by its type name and
// ordinal within that type. Pods are immutable once constructed.
type Pod struct {
	Name    string
	Ordinal int
}

// NewPod constructs a Pod from its type name and ordinal.
func NewPod(name string, ordinal int) Pod {
	return Pod{Name: name, Ordinal: ordinal}
}

// ID returns the canonical "name-ordinal" identifier for this pod.
func (p Pod) ID() string {
	return fmt.Sprintf("%s-%d", p.Name, p.Ordinal)
}

// ParsePodID recovers (name, ordinal) from a canonical pod id.
//
// The name is everything before the first "-"; the remainder must parse as
// an int (type names may not themselves contain "-").
func ParsePodID(id string) (Pod, error) {
	if id == "" {
		return Pod{}, ErrEmptyPodID
	}
	idx := strings.Index(id, "-")
	if idx < 0 {
		return Pod{}, fmt.Errorf("%w: %q", ErrBadPodID, id)
	}
	name, ordinalStr := id[:idx], id[idx+1:]
	ordinal, err := strconv.Atoi(ordinalStr)
	if err != nil {
		return Pod{}, fmt.Errorf("%w: %q", ErrBadPodID, id)
	}
	return Pod{Name: name, Ordinal: ordinal}, nil
}

// PodRange builds pods named name with ordinals 0..count-1.
func PodRange(name string, count int) []Pod {
	pods := make([]Pod, count)
	for i := 0; i < count; i++ {
		pods[i] = NewPod(name, i)
	}
	return pods
}

// PodConfig holds the per-type policy governing how many pods of a type may
// be offline at once, and whether restarting the type is "major" (costlier
// in the batch planner's objective).
type PodConfig struct {
	// Redundancy caps pods of this type allowed offline simultaneously.
	// Nil means unbounded.
	Redundancy *int
	Major      bool
}

// WithRedundancy returns a copy of cfg with Redundancy set to r.
func (cfg PodConfig) WithRedundancy(r int) PodConfig {
	cfg.Redundancy = &r
	return cfg
}

// WithMajor returns a copy of cfg with Major set to major.
func (cfg PodConfig) WithMajor(major bool) PodConfig {
	cfg.Major = major
	return cfg
}

// unordered pair of type names, stored with Low <= High lexicographically so
// equal pairs compare equal regardless of argument order.
type typePair struct {
	Low, High string
}

func newTypePair(a, b string) typePair {
	if a > b {
		a, b = b, a
	}
	return typePair{Low: a, High: b}
}

// PodContainer is an insertion-ordered mapping from pod id to Pod, plus
// per-type configuration and the undirected communication topology (which
// pairs of types may talk to each other).
type PodContainer struct {
	order   []string
	pods    map[string]Pod
	configs map[string]PodConfig
	topo    map[typePair]struct{}
}

// NewPodContainer returns an empty, ready-to-use PodContainer.
func NewPodContainer() *PodContainer {
	return &PodContainer{
		pods:    make(map[string]Pod),
		configs: make(map[string]PodConfig),
		topo:    make(map[typePair]struct{}),
	}
}

// AddPod inserts pods into the container, preserving call order. Returns
// ErrDuplicatePod if any pod's id already exists.
func (c *PodContainer) AddPod(pods ...Pod) error {
	for _, p := range pods {
		id := p.ID()
		if _, exists := c.pods[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicatePod, id)
		}
		c.pods[id] = p
		c.order = append(c.order, id)
	}
	return nil
}

// SetConfig assigns the PodConfig for a type name. Unknown type names (not
// referenced by any pod) are accepted softly: they simply have no effect
// until/unless a pod of that type is added.
func (c *PodContainer) SetConfig(typeName string, cfg PodConfig) {
	c.configs[typeName] = cfg
}

// Config returns the PodConfig for typeName, defaulting to "no redundancy
// cap, not major" if the type was never configured.
func (c *PodContainer) Config(typeName string) PodConfig {
	if cfg, ok := c.configs[typeName]; ok {
		return cfg
	}
	return PodConfig{}
}

// Connect adds sorted, unordered (name, other) pairs to the communication
// topology for each of others.
func (c *PodContainer) Connect(name string, others ...string) {
	for _, other := range others {
		c.topo[newTypePair(name, other)] = struct{}{}
	}
}

// ConnectAll adds the pairwise topology over every combination of names,
// sugar over repeated Connect calls for wiring a fully-meshed set of types.
func (c *PodContainer) ConnectAll(names ...string) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			c.topo[newTypePair(sorted[i], sorted[j])] = struct{}{}
		}
	}
}

// IsConnected reports whether the types of pid1 and pid2 are connected in
// the topology. Direction-insensitive: IsConnected(a,b) == IsConnected(b,a).
func (c *PodContainer) IsConnected(pid1, pid2 string) (bool, error) {
	p1, err := ParsePodID(pid1)
	if err != nil {
		return false, err
	}
	p2, err := ParsePodID(pid2)
	if err != nil {
		return false, err
	}
	_, ok := c.topo[newTypePair(p1.Name, p2.Name)]
	return ok, nil
}

// Has reports whether id is present in the container.
func (c *PodContainer) Has(id string) bool {
	_, ok := c.pods[id]
	return ok
}

// Get returns the pod for id.
func (c *PodContainer) Get(id string) (Pod, error) {
	p, ok := c.pods[id]
	if !ok {
		return Pod{}, fmt.Errorf("%w: %s", ErrPodNotFound, id)
	}
	return p, nil
}

// Len returns the number of pods in the container.
func (c *PodContainer) Len() int { return len(c.order) }

// IDs returns pod ids in insertion order.
func (c *PodContainer) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Types groups pods by type name, preserving each type's pods in the order
// they were added to the container.
func (c *PodContainer) Types() map[string][]Pod {
	types := make(map[string][]Pod)
	for _, id := range c.order {
		p := c.pods[id]
		types[p.Name] = append(types[p.Name], p)
	}
	return types
}

// TypeNames returns every distinct type name present in the container, in
// first-seen order.
func (c *PodContainer) TypeNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, id := range c.order {
		name := c.pods[id].Name
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// TypeConnections returns every connected unordered type pair recorded via
// Connect/ConnectAll, each as [Low, High] lexicographically, sorted for
// deterministic iteration (serialize depends on this for a stable dump).
func (c *PodContainer) TypeConnections() [][2]string {
	out := make([][2]string, 0, len(c.topo))
	for pair := range c.topo {
		out = append(out, [2]string{pair.Low, pair.High})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// MajorTypes returns the set of type names configured as major.
func (c *PodContainer) MajorTypes() map[string]struct{} {
	majors := make(map[string]struct{})
	for name, cfg := range c.configs {
		if cfg.Major {
			majors[name] = struct{}{}
		}
	}
	return majors
}

// Clone returns a deep copy of c: an independent PodContainer that shares no
// mutable state with the original.
func (c *PodContainer) Clone() *PodContainer {
	clone := NewPodContainer()
	clone.order = append([]string(nil), c.order...)
	for k, v := range c.pods {
		clone.pods[k] = v
	}
	for k, v := range c.configs {
		if v.Redundancy != nil {
			r := *v.Redundancy
			v.Redundancy = &r
		}
		clone.configs[k] = v
	}
	for k := range c.topo {
		clone.topo[k] = struct{}{}
	}
	return clone
}
