package probability_test

import (
	"testing"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/network"
	"github.com/podheal/healbatch/probability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildExampleNetwork builds a small example network: two pods
// on two hosts joined by two tor switches, giving two shortest paths (one
// through each switch).
func buildExampleNetwork(t *testing.T) (*network.Network, core.Pod, core.Pod, network.Device) {
	t.Helper()
	pods := core.NewPodContainer()
	sm2 := core.NewPod("sm2", 0)
	csdb := core.NewPod("csdb", 0)
	require.NoError(t, pods.AddPod(sm2, csdb))
	pods.Connect("sm2", "csdb")

	topo := network.NewNetworkTopo()
	host0 := network.NewDevice("host-0", 2)
	host1 := network.NewDevice("host-1", 2)
	tor0 := network.NewDevice("tor-0", 2)
	tor1 := network.NewDevice("tor-1", 2)
	require.NoError(t, topo.AddDevice(host0, host1, tor0, tor1))
	require.NoError(t, topo.Cable(host0, 0, tor0, 0))
	require.NoError(t, topo.Cable(host0, 1, tor1, 0))
	require.NoError(t, topo.Cable(host1, 0, tor0, 1))
	require.NoError(t, topo.Cable(host1, 1, tor1, 1))

	net := network.NewNetwork(topo, pods)
	require.NoError(t, net.Bind(sm2, host0))
	require.NoError(t, net.Bind(csdb, host1))
	return net, sm2, csdb, host0
}

func TestFromNetwork_ProbabilityDerivation(t *testing.T) {
	net, sm2, csdb, host0 := buildExampleNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	healthy, weak, err := fn.State(sm2.ID(), csdb.ID())
	require.NoError(t, err)
	require.Len(t, healthy, 2)
	require.Empty(t, weak)

	require.NoError(t, fn.Off(network.PortEndpoint(host0, 0)))

	model, err := probability.FromNetwork(fn)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, model.Probability(sm2.ID(), csdb.ID()), 1e-9)
}

func TestFromNetwork_UnreachablePairIsZero(t *testing.T) {
	pods := core.NewPodContainer()
	a0, b0 := core.NewPod("a", 0), core.NewPod("b", 0)
	require.NoError(t, pods.AddPod(a0, b0))
	topo := network.NewNetworkTopo()
	h0 := network.NewDevice("host-0", 1)
	h1 := network.NewDevice("host-1", 1)
	require.NoError(t, topo.AddDevice(h0, h1))
	net := network.NewNetwork(topo, pods)
	require.NoError(t, net.Bind(a0, h0))
	require.NoError(t, net.Bind(b0, h1))

	fn, err := network.Freeze(net)
	require.NoError(t, err)
	model, err := probability.FromNetwork(fn)
	require.NoError(t, err)
	assert.Equal(t, 0.0, model.Probability(a0.ID(), b0.ID()))
}

func TestModel_GenerateAllWhenProbabilityIsOne(t *testing.T) {
	net, sm2, csdb, _ := buildExampleNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	require.NoError(t, fn.Off(network.DeviceEndpoint(mustDevice(t, net, "tor-0")), network.DeviceEndpoint(mustDevice(t, net, "tor-1"))))
	model, err := probability.FromNetwork(fn)
	require.NoError(t, err)
	assert.Equal(t, 1.0, model.Probability(sm2.ID(), csdb.ID()))

	state := model.Generate()
	pairs := state.Pairs()
	assert.Len(t, pairs, 2, "both directions must appear when p=1")
}

func mustDevice(t *testing.T, net *network.Network, id string) network.Device {
	t.Helper()
	d, err := net.Topo.Device(id)
	require.NoError(t, err)
	return d
}
