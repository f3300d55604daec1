package scenario_test

import (
	"testing"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/ipmodel"
	"github.com/podheal/healbatch/network"
	"github.com/podheal/healbatch/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFabric_RejectsNilCluster(t *testing.T) {
	_, err := scenario.NewFabric(nil)
	require.ErrorIs(t, err, scenario.ErrMalformedScenario)
}

func TestCluster_AddPodsConnectAndMesh(t *testing.T) {
	c := scenario.NewCluster()
	require.NoError(t, c.AddPods("web", 2, core.PodConfig{}.WithRedundancy(1)))
	require.NoError(t, c.AddPods("db", 1, core.PodConfig{}.WithRedundancy(1).WithMajor(true)))
	require.NoError(t, c.AddPods("cache", 1, core.PodConfig{}))
	c.Connect("web", "db")
	c.Mesh("web", "db", "cache")

	assert.ElementsMatch(t, []string{"web", "db", "cache"}, c.Pods().TypeNames())
	connected, err := c.Pods().IsConnected("web-0", "cache-0")
	require.NoError(t, err)
	assert.True(t, connected, "Mesh must connect every pair, including ones Connect never named directly")
}

// buildSmallFabric wires a small tor/host topology: two pod types bound
// across a switch so one hop separates them, plus a redundant path through
// a second switch.
func buildSmallFabric(t *testing.T) (*scenario.Cluster, *scenario.Fabric, core.Pod, core.Pod, network.Device, network.Device) {
	t.Helper()
	cluster := scenario.NewCluster()
	require.NoError(t, cluster.AddPods("sm2", 1, core.PodConfig{}.WithRedundancy(1)))
	require.NoError(t, cluster.AddPods("csdb", 1, core.PodConfig{}.WithRedundancy(1).WithMajor(true)))
	cluster.Connect("sm2", "csdb")

	fabric, err := scenario.NewFabric(cluster)
	require.NoError(t, err)

	tor0 := network.NewDevice("tor-0", 4)
	tor1 := network.NewDevice("tor-1", 4)
	host0 := network.NewDevice("host-0", 2)
	host1 := network.NewDevice("host-1", 2)
	require.NoError(t, fabric.AddDevice(tor0, tor1, host0, host1))

	require.NoError(t, fabric.Cable(tor0, 0, host0, 0))
	require.NoError(t, fabric.Cable(tor0, 1, host1, 0))
	require.NoError(t, fabric.Cable(tor1, 0, host0, 1))
	require.NoError(t, fabric.Cable(tor1, 1, host1, 1))

	sm2 := core.NewPod("sm2", 0)
	csdb := core.NewPod("csdb", 0)
	require.NoError(t, fabric.Bind(sm2, host0))
	require.NoError(t, fabric.Bind(csdb, host1))

	return cluster, fabric, sm2, csdb, host0, host1
}

func TestFabric_FreezeAndProbabilityGenerator(t *testing.T) {
	_, fabric, sm2, csdb, host0, _ := buildSmallFabric(t)

	fn, err := fabric.Freeze()
	require.NoError(t, err)

	healthy, weak, err := fn.State(sm2.ID(), csdb.ID())
	require.NoError(t, err)
	assert.Len(t, healthy, 2, "two tor switches must give two disjoint shortest paths")
	assert.Empty(t, weak)

	require.NoError(t, fn.Off(network.PortEndpoint(host0, 0)))
	healthy, weak, err = fn.State(sm2.ID(), csdb.ID())
	require.NoError(t, err)
	assert.Len(t, healthy, 1, "one path still runs entirely through tor-1")
	assert.Len(t, weak, 1, "the path through the downed port must reclassify as weak")

	gen, err := scenario.NewProbabilityGenerator(fn)
	require.NoError(t, err)
	assert.Equal(t, 0.5, gen.Probability(sm2.ID(), csdb.ID()))
}

func TestSubmit_EndToEndFromGeneratedConnectionState(t *testing.T) {
	_, fabric, sm2, csdb, host0, _ := buildSmallFabric(t)

	fn, err := fabric.Freeze()
	require.NoError(t, err)
	require.NoError(t, fn.Off(network.PortEndpoint(host0, 0)))

	state := core.NewConnectionState(fabric.Network().Pods.Clone())
	require.NoError(t, state.Weak(sm2.ID(), csdb.ID()))

	sol, err := scenario.Submit(state, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sol.Evaluated().CoveredEdges)
	assert.True(t, sol.Valid())
}

func TestSubmit_UsesExplicitSolver(t *testing.T) {
	c := core.NewPodContainer()
	require.NoError(t, c.AddPod(core.PodRange("a", 2)...))
	c.SetConfig("a", core.PodConfig{}.WithRedundancy(1))
	state := core.NewConnectionState(c)

	sol, err := scenario.Submit(state, ipmodel.NewGreedySolver())
	require.NoError(t, err)
	assert.True(t, sol.Valid())
}

func TestRandomGenerator_PopulatesClusterAndState(t *testing.T) {
	gen := scenario.NewRandomGenerator()
	c := core.NewPodContainer()
	require.NoError(t, gen.Pods(c, 6, 2))
	assert.Equal(t, 6, c.Len())

	state := core.NewConnectionState(c)
	if len(c.TypeNames()) > 1 {
		require.NoError(t, gen.State(state, 3))
		assert.Len(t, state.Pairs(), 3)
	}
}
