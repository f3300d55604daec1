package planner

import (
	"context"
	"fmt"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/ipmodel"
)

// Planner computes healing batches for a ConnectionState. It consumes a
// single-batch Solver as a collaborator rather than calling one directly, so
// any Solver implementation (ExactSolver, GreedySolver, or a future real MIP
// backend) plugs in unchanged.
type Planner struct {
	Solver ipmodel.Solver
	// C1, C3, C4 are the coverage, major-penalty, and per-pod-penalty
	// objective coefficients the formulation's objective defaults to. A
	// fourth coefficient was never read by any solve path, so only these
	// three are carried here.
	C1, C3, C4 float64
}

// NewPlanner returns a Planner using solver, with default objective
// coefficients.
func NewPlanner(solver ipmodel.Solver) Planner {
	return Planner{Solver: solver, C1: 1000.0, C3: 10.0, C4: 1.0}
}

// Plan computes the fewest batches covering every weak edge in state. It
// never returns early on cancellation; use PlanContext for that.
func (p Planner) Plan(state *core.ConnectionState) (core.Solution, error) {
	return p.PlanContext(context.Background(), state)
}

// PlanContext behaves like Plan but aborts the binary search with ctx.Err()
// as soon as ctx is done, checked between trials — mirrors
// lvlath/graph.BFS's BFSOptions.Ctx cancellation style. A nil ctx behaves
// like context.Background().
//
// Procedure, a binary search over batch count:
//  1. For each type with a finite redundancy r > 0, the type needs at least
//     ⌈|pods of type| / r⌉ batches; batchR starts at the max of these (or 1).
//  2. Solve once at k = batchR to establish maxCovered, the coverage ceiling.
//  3. Binary search k in [1, batchR]: at each trial, scale every type's
//     redundancy by k and solve a single batch; if it still covers
//     maxCovered edges, k is feasible and the search narrows downward,
//     otherwise upward.
//  4. Split the winning trial's single pod set into batchCount
//     redundancy-respecting batches and validate the invariants.
func (p Planner) PlanContext(ctx context.Context, state *core.ConnectionState) (core.Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	totalWeak := len(state.Pairs())

	batchL, batchR := 1, 1
	types := state.Pods.Types()
	for _, name := range state.Pods.TypeNames() {
		cfg := state.Pods.Config(name)
		if cfg.Redundancy == nil || *cfg.Redundancy == 0 {
			continue
		}
		need := ceilDiv(len(types[name]), *cfg.Redundancy)
		if need > batchR {
			batchR = need
		}
	}

	if err := ctxErr(ctx); err != nil {
		return core.Solution{}, err
	}

	batchCount := batchR
	targetSolution, ok, err := p.solveK(state, batchCount, totalWeak)
	if err != nil {
		return core.Solution{}, err
	}
	if !ok {
		return core.Solution{}, fmt.Errorf("%w: at initial batch count %d", ErrNoSolution, batchCount)
	}
	maxCovered := len(targetSolution.CoveredEdges())

	for batchL <= batchR {
		if err := ctxErr(ctx); err != nil {
			return core.Solution{}, err
		}

		mid := (batchL + batchR) / 2
		sol, ok, err := p.solveK(state, mid, totalWeak)
		if err != nil {
			return core.Solution{}, err
		}
		if !ok || len(sol.CoveredEdges()) < maxCovered {
			batchL = mid + 1
			continue
		}
		if len(sol.CoveredEdges()) != maxCovered {
			return core.Solution{}, fmt.Errorf("%w: trial k=%d covered %d, expected ceiling %d",
				ErrSplitInvariant, mid, len(sol.CoveredEdges()), maxCovered)
		}
		batchCount = mid
		targetSolution = sol
		batchR = mid - 1
	}

	batches, err := splitBatch(state, targetSolution.Batches[0])
	if err != nil {
		return core.Solution{}, err
	}
	if len(batches) != batchCount {
		return core.Solution{}, fmt.Errorf("%w: expected %d batches, split produced %d",
			ErrSplitInvariant, batchCount, len(batches))
	}

	final := core.Solution{State: state, Batches: batches, Status: core.NewExecutionStatus()}
	if !final.Valid() {
		return core.Solution{}, fmt.Errorf("%w: a split batch violates its redundancy cap", ErrSplitInvariant)
	}
	return final, nil
}

// ctxErr returns ctx.Err() if ctx is already done, nil otherwise.
func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// solveK solves a single batch at redundancy scale factor k. ok is false
// when the solver failed or returned an infeasible assignment for this
// trial: non-fatal to the overall search, which treats it as "no solution
// at this k" and raises the lower bound. err is non-nil only for a genuine
// internal invariant violation.
func (p Planner) solveK(state *core.ConnectionState, k, totalWeak int) (core.Solution, bool, error) {
	scaled := scaleRedundancy(state, k)
	f := ipmodel.NewFormulation(scaled)

	assignment, err := p.Solver.Solve(f, p.C1, p.C3, p.C4)
	if err != nil {
		return core.Solution{}, false, nil
	}
	selected, err := ipmodel.Round(f, assignment)
	if err != nil {
		return core.Solution{}, false, nil
	}
	pods, err := f.SelectedPods(selected)
	if err != nil {
		return core.Solution{}, false, err
	}

	sol := core.Solution{State: scaled, Batches: []core.Batch{core.NewBatch(pods...)}}
	if covered := len(sol.CoveredEdges()); covered > totalWeak {
		return core.Solution{}, false, fmt.Errorf("%w: trial k=%d covered %d exceeds total weak edges %d",
			ErrSplitInvariant, k, covered, totalWeak)
	}
	return sol, true, nil
}

// scaleRedundancy returns a clone of state with every type's finite
// redundancy multiplied by k, leaving unbounded types untouched.
func scaleRedundancy(state *core.ConnectionState, k int) *core.ConnectionState {
	scaled := state.Clone()
	for _, name := range scaled.Pods.TypeNames() {
		cfg := scaled.Pods.Config(name)
		if cfg.Redundancy != nil {
			scaled.Pods.SetConfig(name, cfg.WithRedundancy(*cfg.Redundancy*k))
		}
	}
	return scaled
}

// splitBatch groups batch's pods by type and, for each type with a finite
// redundancy r, emits them round-robin in runs of up to r pods into batches
// 0, 1, 2, ...; unbounded types place every pod into batch 0.
func splitBatch(state *core.ConnectionState, batch core.Batch) ([]core.Batch, error) {
	var order []string
	byType := make(map[string][]core.Pod)
	for _, p := range batch.Pods {
		if _, seen := byType[p.Name]; !seen {
			order = append(order, p.Name)
		}
		byType[p.Name] = append(byType[p.Name], p)
	}

	var batches []core.Batch
	ensure := func(i int) {
		for i >= len(batches) {
			batches = append(batches, core.Batch{})
		}
	}
	place := func(i int, p core.Pod) {
		ensure(i)
		batches[i].Pods = append(batches[i].Pods, p)
	}

	for _, name := range order {
		pods := byType[name]
		cfg := state.Pods.Config(name)
		if cfg.Redundancy == nil {
			for _, p := range pods {
				place(0, p)
			}
			continue
		}
		redundancy := *cfg.Redundancy
		if redundancy < 1 {
			return nil, fmt.Errorf("%w: type %q selected pods but has redundancy %d",
				ErrSplitInvariant, name, redundancy)
		}
		i, count := 0, 0
		for _, p := range pods {
			if count < redundancy {
				place(i, p)
				count++
			} else {
				i++
				count = 1
				place(i, p)
			}
		}
	}
	if len(batches) == 0 {
		// No pods were selected at all (e.g. state has no weak edges): the
		// planner still owes exactly one batch, empty but valid.
		batches = []core.Batch{{}}
	}
	return batches, nil
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
