package solver

import (
	"context"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
	"github.com/llm-d-incubation/capacity-planner/pkg/milp"
)

// Driver wraps the MILP backend and translates its 5-way status into the
// 7-way status the provisioning model reports. The backend never reports
// an unbounded problem, so core.StatusUnbounded is not produced here;
// core.StatusAbnormal is returned only for a backend status this mapping
// does not recognise.
type Driver struct{}

// NewDriver constructs a solver driver. It takes no arguments today; the
// signature exists so a future backend selection (e.g. a faster simplex,
// a worker-pool branch-and-bound) can be threaded through without
// changing callers.
func NewDriver() *Driver { return &Driver{} }

// Solve runs the MILP backend against problem under ctx and maps its
// outcome to core.Status.
func (d *Driver) Solve(ctx context.Context, problem *milp.Problem) (milp.Solution, core.Status) {
	sol, status := milp.Solve(ctx, problem)
	switch status {
	case milp.StatusOptimal:
		return sol, core.StatusOptimal
	case milp.StatusSuboptimal:
		return sol, core.StatusFeasibleSuboptimal
	case milp.StatusInfeasible:
		return sol, core.StatusInfeasible
	case milp.StatusNotSolved:
		return sol, core.StatusNotSolved
	case milp.StatusModelInvalid:
		return sol, core.StatusModelInvalid
	default:
		return sol, core.StatusAbnormal
	}
}
