package network_test

import (
	"testing"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildLinearNetwork wires two pods of distinct types on two hosts joined
// through a single switch: a-0 -- host-0 -- tor-0 -- host-1 -- b-0.
func buildLinearNetwork(t *testing.T) (*network.Network, core.Pod, core.Pod) {
	t.Helper()
	pods := core.NewPodContainer()
	a0 := core.NewPod("a", 0)
	b0 := core.NewPod("b", 0)
	require.NoError(t, pods.AddPod(a0, b0))
	pods.Connect("a", "b")

	topo := network.NewNetworkTopo()
	host0 := network.NewDevice("host-0", 1)
	host1 := network.NewDevice("host-1", 1)
	tor0 := network.NewDevice("tor-0", 2)
	require.NoError(t, topo.AddDevice(host0, host1, tor0))
	require.NoError(t, topo.Cable(host0, 0, tor0, 0))
	require.NoError(t, topo.Cable(tor0, 1, host1, 0))

	net := network.NewNetwork(topo, pods)
	require.NoError(t, net.Bind(a0, host0))
	require.NoError(t, net.Bind(b0, host1))
	return net, a0, b0
}

func TestFreeze_CableInvariant(t *testing.T) {
	topo := network.NewNetworkTopo()
	d0 := network.NewDevice("d0", 2)
	d1 := network.NewDevice("d1", 2)
	require.NoError(t, topo.AddDevice(d0, d1))
	require.NoError(t, topo.Cable(d0, 0, d1, 0))

	err := topo.Cable(d0, 0, d1, 1)
	assert.ErrorIs(t, err, network.ErrPortAlreadyCabled, "a port may appear in at most one cable")

	err = topo.Cable(d0, 5, d1, 1)
	assert.ErrorIs(t, err, network.ErrPortOutOfRange)
}

func TestFreeze_PathFindsSingleRoute(t *testing.T) {
	net, a0, b0 := buildLinearNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	healthy, weak, err := fn.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	assert.Len(t, healthy, 1)
	assert.Empty(t, weak)
}

func TestFreeze_ToggleReclassifiesWithoutRecompute(t *testing.T) {
	net, a0, b0 := buildLinearNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	healthyBefore, _, err := fn.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	require.Len(t, healthyBefore, 1)
	pathBefore := healthyBefore[0]

	host0, err := net.Topo.Device("host-0")
	require.NoError(t, err)
	require.NoError(t, fn.Off(network.PortEndpoint(host0, 0)))

	healthyAfter, weakAfter, err := fn.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	assert.Empty(t, healthyAfter)
	require.Len(t, weakAfter, 1)
	assert.Equal(t, pathBefore, weakAfter[0], "the stored path is unchanged across the toggle")

	require.NoError(t, fn.On(network.PortEndpoint(host0, 0)))
	healthyRestored, weakRestored, err := fn.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	assert.Len(t, healthyRestored, 1)
	assert.Empty(t, weakRestored)
}

func TestFreeze_UnknownEndpointFailsLoudly(t *testing.T) {
	net, _, _ := buildLinearNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	err = fn.Turn(network.RawEndpoint("ghost"), false)
	assert.ErrorIs(t, err, network.ErrUnknownEndpoint)
}

func TestFreeze_IsolatedHostHasNoPaths(t *testing.T) {
	pods := core.NewPodContainer()
	a0 := core.NewPod("a", 0)
	b0 := core.NewPod("b", 0)
	require.NoError(t, pods.AddPod(a0, b0))
	pods.Connect("a", "b")

	topo := network.NewNetworkTopo()
	h0 := network.NewDevice("host-0", 1)
	h1 := network.NewDevice("host-1", 1)
	require.NoError(t, topo.AddDevice(h0, h1)) // no cable between them

	net := network.NewNetwork(topo, pods)
	require.NoError(t, net.Bind(a0, h0))
	require.NoError(t, net.Bind(b0, h1))

	fn, err := network.Freeze(net)
	require.NoError(t, err)

	healthy, weak, err := fn.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	assert.Empty(t, healthy)
	assert.Empty(t, weak)
}

func TestFreeze_SameTypeDestinationIsExcluded(t *testing.T) {
	// a-0 and a-1 share a host and are directly adjacent in the graph via
	// that host, yet the same-type ignore set must still exclude a-1 as a
	// destination when querying from a-0: the path set between two pods of
	// the same type is always empty.
	pods := core.NewPodContainer()
	a0, a1 := core.NewPod("a", 0), core.NewPod("a", 1)
	require.NoError(t, pods.AddPod(a0, a1))

	topo := network.NewNetworkTopo()
	host0 := network.NewDevice("host-0", 1)
	require.NoError(t, topo.AddDevice(host0))

	net := network.NewNetwork(topo, pods)
	require.NoError(t, net.Bind(a0, host0))
	require.NoError(t, net.Bind(a1, host0))

	fn, err := network.Freeze(net)
	require.NoError(t, err)

	healthy, weak, err := fn.State(a0.ID(), a1.ID())
	require.NoError(t, err)
	assert.Empty(t, healthy)
	assert.Empty(t, weak)
}
