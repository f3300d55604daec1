package network

import "github.com/podheal/healbatch/core"

// EndpointKind distinguishes the surface a Turn/On/Off argument names.
type EndpointKind int

const (
	// EndpointDevice names a device by id.
	EndpointDevice EndpointKind = iota
	// EndpointPod names a pod by id.
	EndpointPod
	// EndpointPort names one port of a device.
	EndpointPort
	// EndpointRaw names a raw FreezedNetwork endpoint id directly.
	EndpointRaw
)

// Endpoint is the tagged argument Turn (and On/Off) accept: a device, a pod,
// a specific device port, or a raw endpoint id. These four constructors
// build an explicit tagged variant in place of a structural dispatch over
// the four shapes.
type Endpoint struct {
	kind EndpointKind
	id   string
}

// DeviceEndpoint names d itself (its device-id endpoint, not any one port).
func DeviceEndpoint(d Device) Endpoint {
	return Endpoint{kind: EndpointDevice, id: d.ID}
}

// PodEndpoint names p's pod-id endpoint.
func PodEndpoint(p core.Pod) Endpoint {
	return Endpoint{kind: EndpointPod, id: p.ID()}
}

// PortEndpoint names one canonical port of device d.
func PortEndpoint(d Device, port int) Endpoint {
	return Endpoint{kind: EndpointPort, id: d.PortName(port)}
}

// RawEndpoint names a raw FreezedNetwork endpoint id (device id, pod id, or
// canonical port name) directly, for callers that already hold a string id.
func RawEndpoint(id string) Endpoint {
	return Endpoint{kind: EndpointRaw, id: id}
}

// resolve returns the endpoint's canonical string id. Kind only affects how
// the id was produced — resolution is identical for all four constructors
// once id is set.
func (e Endpoint) resolve() string {
	return e.id
}
