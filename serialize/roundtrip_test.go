package serialize_test

import (
	"testing"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/network"
	"github.com/podheal/healbatch/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPodContainer(t *testing.T) *core.PodContainer {
	t.Helper()
	c := core.NewPodContainer()
	require.NoError(t, c.AddPod(core.PodRange("a", 2)...))
	require.NoError(t, c.AddPod(core.PodRange("b", 1)...))
	c.SetConfig("a", core.PodConfig{}.WithRedundancy(1))
	c.SetConfig("b", core.PodConfig{}.WithRedundancy(2).WithMajor(true))
	c.Connect("a", "b")
	return c
}

func TestPodContainer_RoundTrip(t *testing.T) {
	c := buildPodContainer(t)
	data, err := serialize.DumpPodContainer(c)
	require.NoError(t, err)

	loaded, err := serialize.LoadPodContainer(data)
	require.NoError(t, err)

	assert.Equal(t, c.IDs(), loaded.IDs())
	assert.Equal(t, c.Config("a"), loaded.Config("a"))
	assert.Equal(t, c.Config("b"), loaded.Config("b"))
	assert.Equal(t, c.TypeConnections(), loaded.TypeConnections())
}

func TestConnectionState_RoundTrip(t *testing.T) {
	c := buildPodContainer(t)
	state := core.NewConnectionState(c)
	require.NoError(t, state.Weak("a-0", "b-0"))
	require.NoError(t, state.Weak("a-0", "b-0")) // duplicate preserved
	require.NoError(t, state.Weak("a-1", "b-0"))

	data, err := serialize.DumpConnectionState(state)
	require.NoError(t, err)

	loaded, err := serialize.LoadConnectionState(data)
	require.NoError(t, err)

	assert.Equal(t, state.Pairs(), loaded.Pairs())
}

func buildNetwork(t *testing.T) (*network.Network, core.Pod, core.Pod) {
	t.Helper()
	pods := core.NewPodContainer()
	a0, b0 := core.NewPod("a", 0), core.NewPod("b", 0)
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

func TestNetwork_RoundTrip(t *testing.T) {
	net, a0, b0 := buildNetwork(t)

	data, err := serialize.DumpNetwork(net)
	require.NoError(t, err)

	loaded, err := serialize.LoadNetwork(data)
	require.NoError(t, err)

	assert.Equal(t, net.BoundPodIDs(), loaded.BoundPodIDs())
	dev, ok := loaded.DeviceOf(a0.ID())
	require.True(t, ok)
	assert.Equal(t, "host-0", dev)
	dev, ok = loaded.DeviceOf(b0.ID())
	require.True(t, ok)
	assert.Equal(t, "host-1", dev)
}

func TestFreezedNetwork_RoundTripRecomputesPathsAndOffline(t *testing.T) {
	net, a0, b0 := buildNetwork(t)
	fn, err := network.Freeze(net)
	require.NoError(t, err)

	host0, err := net.Topo.Device("host-0")
	require.NoError(t, err)
	require.NoError(t, fn.Off(network.PortEndpoint(host0, 0)))

	data, err := serialize.DumpFreezedNetwork(fn)
	require.NoError(t, err)

	loaded, err := serialize.LoadFreezedNetwork(data)
	require.NoError(t, err)

	healthy, weak, err := loaded.State(a0.ID(), b0.ID())
	require.NoError(t, err)
	assert.Empty(t, healthy)
	assert.Len(t, weak, 1, "the offline toggle must survive the round trip")
}

func TestSolution_RoundTrip(t *testing.T) {
	c := buildPodContainer(t)
	state := core.NewConnectionState(c)
	require.NoError(t, state.Weak("a-0", "b-0"))

	sol := core.Solution{
		State:   state,
		Batches: []core.Batch{core.NewBatch(core.NewPod("b", 0))},
		Status:  core.NewExecutionStatus(),
	}

	data, err := serialize.DumpSolution(sol)
	require.NoError(t, err)

	loaded, err := serialize.LoadSolution(data)
	require.NoError(t, err)

	assert.Equal(t, sol.Status.RunID, loaded.Status.RunID)
	require.Len(t, loaded.Batches, 1)
	assert.Equal(t, sol.Batches[0].Pods, loaded.Batches[0].Pods)
	assert.Equal(t, sol.Evaluated(), loaded.Evaluated())
}
