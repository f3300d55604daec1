package scenario

import (
	"fmt"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/network"
)

// Fabric builds a network.NetworkTopo and the network.Network binding a
// Cluster's pods onto it via chained method calls: add devices, cable them,
// bind pods.
type Fabric struct {
	cluster *Cluster
	topo    *network.NetworkTopo
	net     *network.Network
}

// NewFabric returns a Fabric over cluster's pods, with an empty topology.
func NewFabric(cluster *Cluster) (*Fabric, error) {
	if cluster == nil {
		return nil, fmt.Errorf("%w: NewFabric given a nil Cluster", ErrMalformedScenario)
	}
	topo := network.NewNetworkTopo()
	return &Fabric{
		cluster: cluster,
		topo:    topo,
		net:     network.NewNetwork(topo, cluster.Pods()),
	}, nil
}

// AddDevice adds devices to the fabric's topology.
func (f *Fabric) AddDevice(devices ...network.Device) error {
	return f.topo.AddDevice(devices...)
}

// Cable connects port srcPort of srcDevice to port dstPort of dstDevice.
func (f *Fabric) Cable(srcDevice network.Device, srcPort int, dstDevice network.Device, dstPort int) error {
	return f.topo.Cable(srcDevice, srcPort, dstDevice, dstPort)
}

// Bind records that pod runs on device.
func (f *Fabric) Bind(pod core.Pod, device network.Device) error {
	return f.net.Bind(pod, device)
}

// Topo returns the underlying NetworkTopo.
func (f *Fabric) Topo() *network.NetworkTopo {
	return f.topo
}

// Network returns the underlying Network.
func (f *Fabric) Network() *network.Network {
	return f.net
}

// Freeze takes an immutable, path-computed snapshot of the fabric.
func (f *Fabric) Freeze() (*network.FreezedNetwork, error) {
	return network.Freeze(f.net)
}
