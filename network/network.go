package network

import (
	"fmt"

	"github.com/podheal/healbatch/core"
)

// Network binds pods onto devices in a NetworkTopo. It mutates only during
// scenario construction; Freeze takes an immutable snapshot.
type Network struct {
	Topo      *NetworkTopo
	Pods      *core.PodContainer
	bindOrder []string
	binds     map[string]string // pod id -> device id
}

// NewNetwork returns a Network over topo and pods, with no bindings yet.
func NewNetwork(topo *NetworkTopo, pods *core.PodContainer) *Network {
	return &Network{Topo: topo, Pods: pods, binds: make(map[string]string)}
}

// Bind records that pod runs on device. Both must already exist in the
// network's PodContainer / NetworkTopo.
func (n *Network) Bind(pod core.Pod, device Device) error {
	podID := pod.ID()
	if !n.Pods.Has(podID) {
		return fmt.Errorf("%w: %s", ErrPodNotBound, podID)
	}
	if _, ok := n.Topo.devices[device.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, device.ID)
	}
	if _, bound := n.binds[podID]; bound {
		return fmt.Errorf("%w: %s", ErrAlreadyBound, podID)
	}
	n.binds[podID] = device.ID
	n.bindOrder = append(n.bindOrder, podID)
	return nil
}

// BoundPodIDs returns the ids of bound pods in bind order.
func (n *Network) BoundPodIDs() []string {
	out := make([]string, len(n.bindOrder))
	copy(out, n.bindOrder)
	return out
}

// DeviceOf returns the device id a pod is bound to.
func (n *Network) DeviceOf(podID string) (string, bool) {
	d, ok := n.binds[podID]
	return d, ok
}

// Ports returns the full endpoint enumeration order spec'd for Freeze:
// every device port, then every device id, then every pod id.
func (n *Network) Ports() []string {
	return append(n.Topo.Ports(), n.Pods.IDs()...)
}
