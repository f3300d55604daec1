package serialize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/podheal/healbatch/network"
)

type deviceDTO struct {
	ID        string `json:"id"`
	PortCount int    `json:"port_count"`
}

type networkTopoDTO struct {
	Discriminator string      `json:"__type__"`
	Devices       []deviceDTO `json:"devices"`
	Cables        [][2]string `json:"cables"`
}

const networkTopoType = "NetworkTopo"

func toNetworkTopoDTO(t *network.NetworkTopo) networkTopoDTO {
	dto := networkTopoDTO{Discriminator: networkTopoType, Cables: t.Cables()}
	for _, d := range t.Devices() {
		dto.Devices = append(dto.Devices, deviceDTO{ID: d.ID, PortCount: d.PortCount})
	}
	return dto
}

// parsePortName splits a canonical "{deviceID}:{port}" name back into its
// device id and port number, assuming (as Device.PortName does) that device
// ids never contain ":".
func parsePortName(name string) (deviceID string, port int, err error) {
	idx := strings.LastIndex(name, ":")
	if idx < 0 {
		return "", 0, fmt.Errorf("serialize: malformed port name %q", name)
	}
	port, err = strconv.Atoi(name[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("serialize: malformed port name %q: %w", name, err)
	}
	return name[:idx], port, nil
}

func fromNetworkTopoDTO(dto networkTopoDTO) (*network.NetworkTopo, error) {
	if dto.Discriminator != networkTopoType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, networkTopoType, dto.Discriminator)
	}
	topo := network.NewNetworkTopo()
	byID := make(map[string]network.Device, len(dto.Devices))
	ordered := make([]network.Device, len(dto.Devices))
	for i, dd := range dto.Devices {
		d := network.NewDevice(dd.ID, dd.PortCount)
		byID[dd.ID] = d
		ordered[i] = d
	}
	if err := topo.AddDevice(ordered...); err != nil {
		return nil, err
	}
	for _, cable := range dto.Cables {
		aDevID, aPort, err := parsePortName(cable[0])
		if err != nil {
			return nil, err
		}
		bDevID, bPort, err := parsePortName(cable[1])
		if err != nil {
			return nil, err
		}
		aDev, ok := byID[aDevID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", network.ErrDeviceNotFound, aDevID)
		}
		bDev, ok := byID[bDevID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", network.ErrDeviceNotFound, bDevID)
		}
		if err := topo.Cable(aDev, aPort, bDev, bPort); err != nil {
			return nil, err
		}
	}
	return topo, nil
}

// DumpNetworkTopo renders t as an indented JSON document.
func DumpNetworkTopo(t *network.NetworkTopo) ([]byte, error) {
	return json.MarshalIndent(toNetworkTopoDTO(t), "", "  ")
}

// LoadNetworkTopo restores a NetworkTopo from a document DumpNetworkTopo
// produced.
func LoadNetworkTopo(data []byte) (*network.NetworkTopo, error) {
	var dto networkTopoDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return fromNetworkTopoDTO(dto)
}

type bindDTO struct {
	Pod    string `json:"pod"`
	Device string `json:"device"`
}

type networkDTO struct {
	Discriminator string          `json:"__type__"`
	Topo          networkTopoDTO  `json:"topo"`
	Pods          podContainerDTO `json:"pods"`
	Binds         []bindDTO       `json:"binds"`
}

const networkType = "Network"

func toNetworkDTO(n *network.Network) networkDTO {
	dto := networkDTO{Discriminator: networkType, Topo: toNetworkTopoDTO(n.Topo), Pods: toPodContainerDTO(n.Pods)}
	for _, podID := range n.BoundPodIDs() {
		devID, _ := n.DeviceOf(podID) // podID came from BoundPodIDs, always bound
		dto.Binds = append(dto.Binds, bindDTO{Pod: podID, Device: devID})
	}
	return dto
}

func fromNetworkDTO(dto networkDTO) (*network.Network, error) {
	if dto.Discriminator != networkType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, networkType, dto.Discriminator)
	}
	topo, err := fromNetworkTopoDTO(dto.Topo)
	if err != nil {
		return nil, err
	}
	pods, err := fromPodContainerDTO(dto.Pods)
	if err != nil {
		return nil, err
	}
	n := network.NewNetwork(topo, pods)
	for _, b := range dto.Binds {
		pod, err := pods.Get(b.Pod)
		if err != nil {
			return nil, err
		}
		device, err := topo.Device(b.Device)
		if err != nil {
			return nil, err
		}
		if err := n.Bind(pod, device); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// DumpNetwork renders n as an indented JSON document.
func DumpNetwork(n *network.Network) ([]byte, error) {
	return json.MarshalIndent(toNetworkDTO(n), "", "  ")
}

// LoadNetwork restores a Network from a document DumpNetwork produced.
func LoadNetwork(data []byte) (*network.Network, error) {
	var dto networkDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return fromNetworkDTO(dto)
}

type freezedNetworkDTO struct {
	Discriminator string     `json:"__type__"`
	Network       networkDTO `json:"network"`
	Offline       []string   `json:"offline"`
}

const freezedNetworkType = "FreezedNetwork"

// DumpFreezedNetwork renders fn as an indented JSON document: the Network it
// was frozen from, plus the currently offline endpoint ids. The computed
// path sets are not persisted — they are recomputed deterministically by
// network.Freeze on load, the same way LinkPath carries no back-reference
// and FreezedNetwork's path table is wholly derived from its Network.
func DumpFreezedNetwork(fn *network.FreezedNetwork) ([]byte, error) {
	offline := fn.OfflineIDs()
	ids := make([]string, 0, len(offline))
	for id := range offline {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	dto := freezedNetworkDTO{Discriminator: freezedNetworkType, Network: toNetworkDTO(fn.Network()), Offline: ids}
	return json.MarshalIndent(dto, "", "  ")
}

// LoadFreezedNetwork restores a FreezedNetwork from a document
// DumpFreezedNetwork produced: it rebuilds the underlying Network, re-freezes
// it (recomputing every pair's shortest-path set), then replays the
// recorded offline toggles, rather than relying on any reflective
// post-load hook.
func LoadFreezedNetwork(data []byte) (*network.FreezedNetwork, error) {
	var dto freezedNetworkDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	if dto.Discriminator != freezedNetworkType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, freezedNetworkType, dto.Discriminator)
	}
	n, err := fromNetworkDTO(dto.Network)
	if err != nil {
		return nil, err
	}
	fn, err := network.Freeze(n)
	if err != nil {
		return nil, err
	}
	for _, id := range dto.Offline {
		if err := fn.Off(network.RawEndpoint(id)); err != nil {
			return nil, err
		}
	}
	return fn, nil
}
