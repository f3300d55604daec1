// Package scenario is a programmatic builder API for constructing test and
// demo clusters, fabrics, and generators: build a PodContainer, build a
// NetworkTopo, bind pods to devices, freeze, derive or synthesize a
// ConnectionState, then submit it to a Planner. Not an embedded scripting
// language; every scenario is Go code.
package scenario

import "errors"

// ErrMalformedScenario indicates a scenario builder was asked to do
// something structurally invalid, e.g. NewFabric given a nil Cluster.
var ErrMalformedScenario = errors.New("scenario: malformed scenario")
