package scenario

import (
	"context"

	"github.com/podheal/healbatch/core"
	"github.com/podheal/healbatch/ipmodel"
	"github.com/podheal/healbatch/planner"
)

// Submit hands state to a planner.Planner built around solver and returns
// the computed Solution — the sink every scenario eventually feeds into,
// whether state came from a RandomGenerator, a ProbabilityGenerator, or a
// hand-assembled ConnectionState. A nil solver defaults to ipmodel.ExactSolver.
func Submit(state *core.ConnectionState, solver ipmodel.Solver) (core.Solution, error) {
	return SubmitContext(context.Background(), state, solver)
}

// SubmitContext behaves like Submit but threads ctx through to
// planner.Planner.PlanContext, aborting the binary search if ctx is
// canceled before it completes.
func SubmitContext(ctx context.Context, state *core.ConnectionState, solver ipmodel.Solver) (core.Solution, error) {
	if solver == nil {
		solver = ipmodel.NewExactSolver()
	}
	return planner.NewPlanner(solver).PlanContext(ctx, state)
}
