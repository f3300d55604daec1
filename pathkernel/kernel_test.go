package pathkernel_test

import (
	"testing"

	"github.com/podheal/healbatch/pathkernel"
	"github.com/stretchr/testify/assert"
)

// diamond builds 0-1-3, 0-2-3 (a 4-cycle with two shortest paths from 0 to 3).
func diamond() *pathkernel.AdjacencyGraph {
	g := pathkernel.NewAdjacencyGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	return g
}

func TestAllShortestPaths_DiamondFindsBothPaths(t *testing.T) {
	res := pathkernel.AllShortestPaths(diamond(), 0, nil, nil)
	paths := res[3]
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, 0, p[0], "every path must start at the source")
		assert.Equal(t, 3, p[len(p)-1], "every path must end at the queried node")
		assert.Len(t, p, 3, "shortest path length must equal true graph distance")
	}
}

func TestAllShortestPaths_IgnoredNodeIsNeverVisited(t *testing.T) {
	g := diamond()
	res := pathkernel.AllShortestPaths(g, 0, nil, map[int]struct{}{1: {}})
	paths := res[3]
	assert.Len(t, paths, 1, "only the path through node 2 should survive")
	for _, p := range paths {
		for _, n := range p {
			assert.NotEqual(t, 1, n)
		}
	}
}

func TestAllShortestPaths_EndpointIsNeverTransited(t *testing.T) {
	// 0 - 1 - 2 - 3, with 1 also directly reachable from 0, and 1 marked as
	// an endpoint: paths to 3 must not pass through 1.
	g := pathkernel.NewAdjacencyGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(i)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(0, 3) // direct route to 3 that does not transit node 1

	endpoints := map[int]struct{}{1: {}, 2: {}, 3: {}}
	res := pathkernel.AllShortestPaths(g, 0, endpoints, nil)

	// Node 1 is reachable (it's a direct neighbor) but must never appear as
	// an interior node of any other path.
	for dst, paths := range res {
		if dst == 1 {
			continue
		}
		for _, p := range paths {
			for _, n := range p[:len(p)-1] {
				assert.NotEqual(t, 1, n, "endpoint 1 must not be a transit node for path to %d", dst)
			}
		}
	}
}

func TestAllShortestPaths_UnreachableYieldsNoEntry(t *testing.T) {
	g := pathkernel.NewAdjacencyGraph()
	g.AddNode(0)
	g.AddNode(1) // isolated, no edge
	res := pathkernel.AllShortestPaths(g, 0, nil, nil)
	assert.Empty(t, res[1])
}

func TestAllShortestPaths_Deterministic(t *testing.T) {
	g := diamond()
	first := pathkernel.AllShortestPaths(g, 0, nil, nil)
	second := pathkernel.AllShortestPaths(g, 0, nil, nil)
	assert.Equal(t, first, second)
}
