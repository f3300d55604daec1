package serialize

import (
	"encoding/json"
	"fmt"

	"github.com/podheal/healbatch/core"
)

type podDTO struct {
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

type podConfigDTO struct {
	Type       string `json:"type"`
	Redundancy *int   `json:"redundancy,omitempty"`
	Major      bool   `json:"major,omitempty"`
}

type podContainerDTO struct {
	Discriminator string         `json:"__type__"`
	Pods          []podDTO       `json:"pods"`
	Configs       []podConfigDTO `json:"configs"`
	Connections   [][2]string    `json:"connections,omitempty"`
}

const podContainerType = "PodContainer"

func toPodContainerDTO(c *core.PodContainer) podContainerDTO {
	dto := podContainerDTO{Discriminator: podContainerType}
	for _, id := range c.IDs() {
		p, _ := c.Get(id) // id came from c.IDs(), always present
		dto.Pods = append(dto.Pods, podDTO{Name: p.Name, Ordinal: p.Ordinal})
	}
	for _, name := range c.TypeNames() {
		cfg := c.Config(name)
		dto.Configs = append(dto.Configs, podConfigDTO{Type: name, Redundancy: cfg.Redundancy, Major: cfg.Major})
	}
	dto.Connections = c.TypeConnections()
	return dto
}

func fromPodContainerDTO(dto podContainerDTO) (*core.PodContainer, error) {
	if dto.Discriminator != podContainerType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, podContainerType, dto.Discriminator)
	}
	c := core.NewPodContainer()
	pods := make([]core.Pod, len(dto.Pods))
	for i, pd := range dto.Pods {
		pods[i] = core.NewPod(pd.Name, pd.Ordinal)
	}
	if err := c.AddPod(pods...); err != nil {
		return nil, err
	}
	for _, cd := range dto.Configs {
		cfg := core.PodConfig{Major: cd.Major}
		if cd.Redundancy != nil {
			cfg = cfg.WithRedundancy(*cd.Redundancy)
		}
		c.SetConfig(cd.Type, cfg)
	}
	for _, pair := range dto.Connections {
		c.Connect(pair[0], pair[1])
	}
	return c, nil
}

// DumpPodContainer renders c as an indented JSON document.
func DumpPodContainer(c *core.PodContainer) ([]byte, error) {
	return json.MarshalIndent(toPodContainerDTO(c), "", "  ")
}

// LoadPodContainer restores a PodContainer from a document DumpPodContainer
// produced.
func LoadPodContainer(data []byte) (*core.PodContainer, error) {
	var dto podContainerDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return fromPodContainerDTO(dto)
}

type weakEdgeDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type connectionStateDTO struct {
	Discriminator string          `json:"__type__"`
	Pods          podContainerDTO `json:"pods"`
	Weak          []weakEdgeDTO   `json:"weak"`
}

const connectionStateType = "ConnectionState"

func toConnectionStateDTO(s *core.ConnectionState) connectionStateDTO {
	dto := connectionStateDTO{Discriminator: connectionStateType, Pods: toPodContainerDTO(s.Pods)}
	for _, e := range s.Pairs() {
		dto.Weak = append(dto.Weak, weakEdgeDTO{Source: e.Source, Target: e.Target})
	}
	return dto
}

func fromConnectionStateDTO(dto connectionStateDTO) (*core.ConnectionState, error) {
	if dto.Discriminator != connectionStateType {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, connectionStateType, dto.Discriminator)
	}
	pods, err := fromPodContainerDTO(dto.Pods)
	if err != nil {
		return nil, err
	}
	state := core.NewConnectionState(pods)
	for _, e := range dto.Weak {
		if err := state.Weak(e.Source, e.Target); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// DumpConnectionState renders s as an indented JSON document. Weak edges are
// written in s.Pairs() order, duplicates included, so loading it back
// reproduces s's srcOrder exactly.
func DumpConnectionState(s *core.ConnectionState) ([]byte, error) {
	return json.MarshalIndent(toConnectionStateDTO(s), "", "  ")
}

// LoadConnectionState restores a ConnectionState from a document
// DumpConnectionState produced.
func LoadConnectionState(data []byte) (*core.ConnectionState, error) {
	var dto connectionStateDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return fromConnectionStateDTO(dto)
}
