package serialize

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/podheal/healbatch/core"
)

func durationFromNanos(ns int64) time.Duration {
	return time.Duration(ns)
}

type batchDTO struct {
	Pods []podDTO `json:"pods"`
}

type executionStatusDTO struct {
	RunID        string `json:"run_id"`
	WallTimeNs   int64  `json:"wall_time_ns"`
	PeakRSSKiB   int64  `json:"peak_rss_kib"`
}

type solutionDTO struct {
	Discriminator string              `json:"__type__"`
	State         connectionStateDTO  `json:"state"`
	Batches       []batchDTO          `json:"batches"`
	Status        executionStatusDTO  `json:"status"`
}

const solutionType = "Solution"

func toBatchDTO(b core.Batch) batchDTO {
	dto := batchDTO{Pods: make([]podDTO, len(b.Pods))}
	for i, p := range b.Pods {
		dto.Pods[i] = podDTO{Name: p.Name, Ordinal: p.Ordinal}
	}
	return dto
}

func fromBatchDTO(dto batchDTO) core.Batch {
	pods := make([]core.Pod, len(dto.Pods))
	for i, pd := range dto.Pods {
		pods[i] = core.NewPod(pd.Name, pd.Ordinal)
	}
	return core.NewBatch(pods...)
}

// DumpSolution renders s as an indented JSON document.
func DumpSolution(s core.Solution) ([]byte, error) {
	dto := solutionDTO{
		Discriminator: solutionType,
		State:         toConnectionStateDTO(s.State),
		Status: executionStatusDTO{
			RunID:      s.Status.RunID,
			WallTimeNs: s.Status.WallTime.Nanoseconds(),
			PeakRSSKiB: s.Status.PeakRSSKiB,
		},
	}
	for _, b := range s.Batches {
		dto.Batches = append(dto.Batches, toBatchDTO(b))
	}
	return json.MarshalIndent(dto, "", "  ")
}

// LoadSolution restores a Solution from a document DumpSolution produced.
func LoadSolution(data []byte) (core.Solution, error) {
	var dto solutionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return core.Solution{}, err
	}
	if dto.Discriminator != solutionType {
		return core.Solution{}, fmt.Errorf("%w: expected %q, got %q", ErrTypeMismatch, solutionType, dto.Discriminator)
	}
	state, err := fromConnectionStateDTO(dto.State)
	if err != nil {
		return core.Solution{}, err
	}
	batches := make([]core.Batch, len(dto.Batches))
	for i, bd := range dto.Batches {
		batches[i] = fromBatchDTO(bd)
	}
	return core.Solution{
		State:   state,
		Batches: batches,
		Status: core.ExecutionStatus{
			RunID:      dto.Status.RunID,
			WallTime:   durationFromNanos(dto.Status.WallTimeNs),
			PeakRSSKiB: dto.Status.PeakRSSKiB,
		},
	}, nil
}
