package network

import "fmt"

// Device is a cabled network element (host, top-of-rack switch, end-of-row
// switch) identified by id, with a fixed number of ports.
type Device struct {
	ID        string
	PortCount int
}

// NewDevice constructs a Device with the given id and port count.
func NewDevice(id string, portCount int) Device {
	return Device{ID: id, PortCount: portCount}
}

// PortName returns the canonical "{id}:{port}" name for port num.
func (d Device) PortName(num int) string {
	return fmt.Sprintf("%s:%d", d.ID, num)
}

// PortNames returns every canonical port name for this device, in port order.
func (d Device) PortNames() []string {
	names := make([]string, d.PortCount)
	for i := 0; i < d.PortCount; i++ {
		names[i] = d.PortName(i)
	}
	return names
}

type cablePair struct{ a, b string }

func newCablePair(a, b string) cablePair {
	if a > b {
		a, b = b, a
	}
	return cablePair{a: a, b: b}
}

// NetworkTopo is an insertion-ordered mapping from device id to Device, plus
// the set of cables (undirected pairs of canonical port names) between them.
type NetworkTopo struct {
	order      []string
	devices    map[string]Device
	cables     []cablePair
	portCabled map[string]struct{}
}

// NewNetworkTopo returns an empty, ready-to-use NetworkTopo.
func NewNetworkTopo() *NetworkTopo {
	return &NetworkTopo{
		devices:    make(map[string]Device),
		portCabled: make(map[string]struct{}),
	}
}

// AddDevice inserts devices into the topology, preserving call order.
func (t *NetworkTopo) AddDevice(devices ...Device) error {
	for _, d := range devices {
		if _, exists := t.devices[d.ID]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateDevice, d.ID)
		}
		t.devices[d.ID] = d
		t.order = append(t.order, d.ID)
	}
	return nil
}

// Device returns the device registered under id.
func (t *NetworkTopo) Device(id string) (Device, error) {
	d, ok := t.devices[id]
	if !ok {
		return Device{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, id)
	}
	return d, nil
}

// Cable connects port srcPort of srcDevice to port dstPort of dstDevice.
// Fails if either device is unknown, either port is out of range, or either
// port already belongs to a cable — each port may appear in at most one
// cable (hard invariant, checked here rather than deferred to Freeze so
// scenario authors see the error at the point of the mistake).
func (t *NetworkTopo) Cable(srcDevice Device, srcPort int, dstDevice Device, dstPort int) error {
	if _, ok := t.devices[srcDevice.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, srcDevice.ID)
	}
	if _, ok := t.devices[dstDevice.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, dstDevice.ID)
	}
	if srcPort < 0 || srcPort >= srcDevice.PortCount {
		return fmt.Errorf("%w: %s port %d", ErrPortOutOfRange, srcDevice.ID, srcPort)
	}
	if dstPort < 0 || dstPort >= dstDevice.PortCount {
		return fmt.Errorf("%w: %s port %d", ErrPortOutOfRange, dstDevice.ID, dstPort)
	}
	srcName, dstName := srcDevice.PortName(srcPort), dstDevice.PortName(dstPort)
	if _, cabled := t.portCabled[srcName]; cabled {
		return fmt.Errorf("%w: %s", ErrPortAlreadyCabled, srcName)
	}
	if _, cabled := t.portCabled[dstName]; cabled {
		return fmt.Errorf("%w: %s", ErrPortAlreadyCabled, dstName)
	}
	t.cables = append(t.cables, newCablePair(srcName, dstName))
	t.portCabled[srcName] = struct{}{}
	t.portCabled[dstName] = struct{}{}
	return nil
}

// Devices returns devices in insertion order.
func (t *NetworkTopo) Devices() []Device {
	out := make([]Device, len(t.order))
	for i, id := range t.order {
		out[i] = t.devices[id]
	}
	return out
}

// Ports returns every device port canonical name (device order, then port
// order within each device), followed by every device id — the first two
// phases of the endpoint enumeration order spec'd for Freeze.
func (t *NetworkTopo) Ports() []string {
	var out []string
	for _, id := range t.order {
		out = append(out, t.devices[id].PortNames()...)
	}
	out = append(out, t.order...)
	return out
}

// Cables returns the cabled port pairs in the order they were added.
func (t *NetworkTopo) Cables() [][2]string {
	out := make([][2]string, len(t.cables))
	for i, c := range t.cables {
		out[i] = [2]string{c.a, c.b}
	}
	return out
}
