package ipmodel

import (
	"sort"

	"github.com/podheal/healbatch/core"
)

// Redundancy is one per-type row of the formulation: the indices of every
// pod of that type, and the maximum number of them allowed selected at once
// (nil means unbounded).
type Redundancy struct {
	Indices []int
	Cap     *int
}

// Formulation is the integer-programming shape a Solver optimizes over,
// built once per ConnectionState: a dense 0..N-1 index per pod, one
// Redundancy row per type, the set of major indices, and the deduped set of
// weak-connection edges (by index) the objective rewards covering.
type Formulation struct {
	ID2Int map[string]int
	Int2ID map[int]string
	N      int
	PR     []Redundancy
	M      map[int]struct{}
	E      [][2]int
}

// NewFormulation derives a Formulation from state: every pod gets a dense
// index in id order, PR rows follow state.Pods.TypeNames() order, M
// collects the indices of pods whose type is major, and E dedupes
// state.Pairs() down to an edge set.
func NewFormulation(state *core.ConnectionState) *Formulation {
	ids := state.Pods.IDs()
	id2int := make(map[string]int, len(ids))
	int2id := make(map[int]string, len(ids))
	for i, id := range ids {
		id2int[id] = i
		int2id[i] = id
	}

	types := state.Pods.Types()
	majorTypes := state.Pods.MajorTypes()
	majors := make(map[int]struct{})
	pr := make([]Redundancy, 0, len(types))
	for _, name := range state.Pods.TypeNames() {
		pods := types[name]
		indices := make([]int, len(pods))
		for i, p := range pods {
			indices[i] = id2int[p.ID()]
		}
		cfg := state.Pods.Config(name)
		pr = append(pr, Redundancy{Indices: indices, Cap: cfg.Redundancy})
		if _, ok := majorTypes[name]; ok {
			for _, idx := range indices {
				majors[idx] = struct{}{}
			}
		}
	}

	seen := make(map[[2]int]struct{})
	var edges [][2]int
	for _, e := range state.Pairs() {
		pair := [2]int{id2int[e.Source], id2int[e.Target]}
		if _, ok := seen[pair]; ok {
			continue
		}
		seen[pair] = struct{}{}
		edges = append(edges, pair)
	}

	return &Formulation{ID2Int: id2int, Int2ID: int2id, N: len(ids), PR: pr, M: majors, E: edges}
}

// Objective scores a selection the way CIPSolver.compile's model.OBJ does:
// C1 times the number of covered edges, minus C3 times the number of
// selected major pods, minus C4 times the total number selected.
func (f *Formulation) Objective(selected map[int]struct{}, c1, c3, c4 float64) float64 {
	covered := 0
	for _, e := range f.E {
		if _, ok := selected[e[0]]; ok {
			covered++
			continue
		}
		if _, ok := selected[e[1]]; ok {
			covered++
		}
	}
	majors := 0
	for i := range selected {
		if _, ok := f.M[i]; ok {
			majors++
		}
	}
	return c1*float64(covered) - c3*float64(majors) - c4*float64(len(selected))
}

// Feasible reports whether selected satisfies every PR row's cap.
func (f *Formulation) Feasible(selected map[int]struct{}) bool {
	for _, r := range f.PR {
		if r.Cap == nil {
			continue
		}
		count := 0
		for _, idx := range r.Indices {
			if _, ok := selected[idx]; ok {
				count++
			}
		}
		if count > *r.Cap {
			return false
		}
	}
	return true
}

// indexRows maps each pod index to the PR rows it belongs to (always
// exactly one, its type's row), letting solvers maintain per-row running
// counts incrementally instead of rescanning PR on every candidate.
func (f *Formulation) indexRows() map[int][]int {
	rows := make(map[int][]int, f.N)
	for ri, r := range f.PR {
		for _, idx := range r.Indices {
			rows[idx] = append(rows[idx], ri)
		}
	}
	return rows
}

// SelectedPods converts an index selection back to Pods, sorted by index for
// determinism.
func (f *Formulation) SelectedPods(selected map[int]struct{}) ([]core.Pod, error) {
	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	pods := make([]core.Pod, 0, len(indices))
	for _, i := range indices {
		p, err := core.ParsePodID(f.Int2ID[i])
		if err != nil {
			return nil, err
		}
		pods = append(pods, p)
	}
	return pods, nil
}
