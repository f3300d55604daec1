package scenario

import "github.com/podheal/healbatch/core"

// Cluster builds a core.PodContainer one type at a time via chained method
// calls: add a type's pods, assign its configuration, wire its connections.
type Cluster struct {
	pods *core.PodContainer
}

// NewCluster returns a Cluster with an empty, ready-to-use PodContainer.
func NewCluster() *Cluster {
	return &Cluster{pods: core.NewPodContainer()}
}

// AddPods adds count pods of name, ordinals 0..count-1, and assigns cfg as
// the type's configuration.
func (c *Cluster) AddPods(name string, count int, cfg core.PodConfig) error {
	if err := c.pods.AddPod(core.PodRange(name, count)...); err != nil {
		return err
	}
	c.pods.SetConfig(name, cfg)
	return nil
}

// Connect wires name's communication topology to each of others.
func (c *Cluster) Connect(name string, others ...string) {
	c.pods.Connect(name, others...)
}

// Mesh connects every pair among names, sugar for wiring a fully-meshed
// group of types one pair at a time.
func (c *Cluster) Mesh(names ...string) {
	c.pods.ConnectAll(names...)
}

// Pods returns the underlying PodContainer.
func (c *Cluster) Pods() *core.PodContainer {
	return c.pods
}
