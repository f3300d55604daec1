// Package network models the physical layer a pod cluster runs on — pods
// bound to host devices, devices cabled to top-of-rack and end-of-row
// switches — and derives, once frozen, every pair of pods' shortest
// communication paths through that multi-layer graph.
//
// A FreezedNetwork is the only mutable piece after construction: its set of
// offline endpoints may be toggled, which reclassifies already-computed
// paths as weak or healthy without recomputing them.
package network

import "errors"

// Sentinel errors for network construction and toggling.
var (
	// ErrDuplicateDevice indicates AddDevice was called with an id already present.
	ErrDuplicateDevice = errors.New("network: duplicate device id")

	// ErrDeviceNotFound indicates an operation referenced an unknown device id.
	ErrDeviceNotFound = errors.New("network: device not found")

	// ErrPortOutOfRange indicates a port number outside [0, device.PortCount).
	ErrPortOutOfRange = errors.New("network: port out of range")

	// ErrPortAlreadyCabled indicates a port is already an endpoint of another cable.
	ErrPortAlreadyCabled = errors.New("network: port already cabled")

	// ErrPodNotBound indicates Bind referenced a pod id absent from the pods container.
	ErrPodNotBound = errors.New("network: pod not found")

	// ErrAlreadyBound indicates Bind was called twice for the same pod.
	ErrAlreadyBound = errors.New("network: pod already bound")

	// ErrUnknownEndpoint indicates Turn/On/Off referenced an id the freeze
	// step never enumerated. The core refuses to silently no-op on this.
	ErrUnknownEndpoint = errors.New("network: unknown endpoint")

	// ErrUnknownPod indicates State was asked about a pod outside pods.
	ErrUnknownPod = errors.New("network: unknown pod")
)
