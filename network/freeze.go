package network

import (
	"fmt"

	"github.com/podheal/healbatch/pathkernel"
)

// FreezedNetwork is an immutable snapshot of a Network: endpoint indices are
// fixed and every pod pair's shortest-path set is precomputed once. The only
// mutation allowed afterward is toggling which endpoints are offline, which
// reclassifies already-computed paths without recomputing them.
type FreezedNetwork struct {
	topo  *NetworkTopo
	net   *Network // retained for pod-type/bind lookups used by state queries
	id2idx map[string]int
	idx2id map[int]string
	offline map[int]struct{}

	// paths[srcPodIdx][dstPodIdx] holds every shortest path from srcPod to
	// dstPod, computed once at Freeze time.
	paths map[int]map[int][]LinkPath
}

// Freeze computes the immutable snapshot of net: endpoint indices, the
// multi-layer graph, and every pod pair's shortest-path set.
//
// Procedure, deterministic:
//  1. Enumerate endpoints: every device port canonical name, then every
//     device id, then every pod id; assign indices in that order.
//  2. Build the multi-layer undirected graph: each device id adjacent to
//     each of its port names; each cable connects its two port names; each
//     bound pod id adjacent to its device id.
//  3. For each pod p, run AllShortestPaths(index(p), endpoints = indices of
//     all pods, ignored = indices of pods of the same type as p). Missing
//     destinations yield an empty path list.
func Freeze(net *Network) (*FreezedNetwork, error) {
	fn := &FreezedNetwork{
		topo:    net.Topo,
		net:     net,
		id2idx:  make(map[string]int),
		idx2id:  make(map[int]string),
		offline: make(map[int]struct{}),
		paths:   make(map[int]map[int][]LinkPath),
	}

	endpointIDs := net.Ports()
	for i, id := range endpointIDs {
		fn.id2idx[id] = i
		fn.idx2id[i] = id
	}

	g := pathkernel.NewAdjacencyGraph()
	for i := range endpointIDs {
		g.AddNode(i)
	}
	for _, d := range net.Topo.Devices() {
		devIdx := fn.id2idx[d.ID]
		for _, port := range d.PortNames() {
			g.AddEdge(devIdx, fn.id2idx[port])
		}
	}
	for _, cable := range net.Topo.Cables() {
		g.AddEdge(fn.id2idx[cable[0]], fn.id2idx[cable[1]])
	}
	for _, podID := range net.bindOrder {
		devID := net.binds[podID]
		g.AddEdge(fn.id2idx[podID], fn.id2idx[devID])
	}

	podIndices := make(map[int]struct{}, len(net.bindOrder))
	for _, podID := range net.bindOrder {
		podIndices[fn.id2idx[podID]] = struct{}{}
	}

	typeOfIndex := make(map[int]string, len(net.bindOrder))
	for _, podID := range net.bindOrder {
		p, err := net.Pods.Get(podID)
		if err != nil {
			return nil, err
		}
		typeOfIndex[fn.id2idx[podID]] = p.Name
	}

	for _, podID := range net.bindOrder {
		srcIdx := fn.id2idx[podID]
		ignored := make(map[int]struct{})
		srcType := typeOfIndex[srcIdx]
		for idx, typeName := range typeOfIndex {
			if typeName == srcType {
				ignored[idx] = struct{}{}
			}
		}
		// srcIdx itself is also typed srcType, so it lands in ignored too;
		// AllShortestPaths seeds {source: [[source]]} unconditionally, so
		// this has no effect beyond matching the ignore set's natural
		// definition ("every pod of the source's own type").
		raw := pathkernel.AllShortestPaths(g, srcIdx, podIndices, ignored)

		perDst := make(map[int][]LinkPath, len(net.bindOrder))
		for _, dstID := range net.bindOrder {
			dstIdx := fn.id2idx[dstID]
			if dstIdx == srcIdx {
				continue
			}
			rawPaths, ok := raw[dstIdx]
			if !ok {
				perDst[dstIdx] = nil
				continue
			}
			converted := make([]LinkPath, len(rawPaths))
			for i, p := range rawPaths {
				converted[i] = LinkPath(p)
			}
			perDst[dstIdx] = converted
		}
		fn.paths[srcIdx] = perDst
	}

	return fn, nil
}

// Turn sets endpoint's offline status: off (ison=false) marks it offline,
// on (ison=true) clears it. Unknown endpoints fail loudly; never silently
// no-op on a stale reference.
func (fn *FreezedNetwork) Turn(endpoint Endpoint, ison bool) error {
	idx, ok := fn.id2idx[endpoint.resolve()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEndpoint, endpoint.resolve())
	}
	if !ison {
		fn.offline[idx] = struct{}{}
	} else {
		delete(fn.offline, idx)
	}
	return nil
}

// Off marks every given endpoint offline.
func (fn *FreezedNetwork) Off(endpoints ...Endpoint) error {
	for _, e := range endpoints {
		if err := fn.Turn(e, false); err != nil {
			return err
		}
	}
	return nil
}

// On marks every given endpoint online.
func (fn *FreezedNetwork) On(endpoints ...Endpoint) error {
	for _, e := range endpoints {
		if err := fn.Turn(e, true); err != nil {
			return err
		}
	}
	return nil
}

// OfflineIDs returns the canonical ids currently marked offline.
func (fn *FreezedNetwork) OfflineIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(fn.offline))
	for idx := range fn.offline {
		out[fn.idx2id[idx]] = struct{}{}
	}
	return out
}

// State classifies source's stored path set to target into (healthy, weak)
// under the current offline set. Disjoint; their union is the full stored
// path list.
func (fn *FreezedNetwork) State(source, target string) (healthy, weak []LinkPath, err error) {
	srcIdx, ok := fn.id2idx[source]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPod, source)
	}
	dstIdx, ok := fn.id2idx[target]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPod, target)
	}
	for _, p := range fn.paths[srcIdx][dstIdx] {
		if p.Weak(fn) {
			weak = append(weak, p)
		} else {
			healthy = append(healthy, p)
		}
	}
	return healthy, weak, nil
}

// BoundPodIDs returns the ids of bound pods in bind order, delegating to the
// underlying Network — callers that froze a Network keep this handle to
// enumerate pairs (e.g. the probability generator).
func (fn *FreezedNetwork) BoundPodIDs() []string {
	return fn.net.BoundPodIDs()
}

// Network returns the Network this snapshot was frozen from, for callers
// that need pod/topology lookups alongside path queries.
func (fn *FreezedNetwork) Network() *Network {
	return fn.net
}
