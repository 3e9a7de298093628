package solver

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/llm-d-incubation/capacity-planner/pkg/config"
	"github.com/llm-d-incubation/capacity-planner/pkg/core"
	"github.com/llm-d-incubation/capacity-planner/pkg/loadmatrix"
	"github.com/llm-d-incubation/capacity-planner/pkg/slicer"
)

// Optimizer is the single entry point described in the external
// interfaces section: given workers, request types, demand, a throughput
// profile, and a slice factor, it produces a provisioning Plan. It keeps
// the wall-clock time of the last solve, mirroring the teacher's own
// optimizer timing idiom.
type Optimizer struct {
	driver           *Driver
	solutionTimeMsec int64
}

// NewOptimizer constructs an Optimizer with the default MILP-backed
// driver.
func NewOptimizer() *Optimizer {
	return &Optimizer{driver: NewDriver()}
}

// Request bundles the inputs to a single Solve call.
type Request struct {
	Workers      []core.WorkerConfig
	RequestTypes []core.RequestType
	Demand       core.Demand
	Profile      core.Profile
	SliceFactor  int
	TimeLimit    time.Duration
}

// Result bundles a Solve call's outputs.
type Result struct {
	Plan             *core.Plan
	Status           core.Status
	SolutionTimeMsec int64
}

// Solve validates req, slices its demand, builds the load matrix and MILP
// model, runs the solver under req.TimeLimit (or config.DefaultSolveTimeout
// if zero), and shapes the result into a Plan. A non-nil error means the
// request itself was rejected by validation before any solve attempt. A
// slice with no capable worker yields a Result with StatusInfeasible and a
// Plan whose Warnings name the offending request types; any other
// non-optimal Status means the solve ran but did not reach a usable plan.
func (o *Optimizer) Solve(ctx context.Context, req Request) (*Result, error) {
	sliceFactor := req.SliceFactor
	if sliceFactor < 1 {
		sliceFactor = config.DefaultSliceFactor
	}

	if err := core.ValidateRequest(req.Workers, req.RequestTypes, req.Demand, req.Profile, sliceFactor); err != nil {
		return nil, err
	}

	requestTypeIDs := make([]string, len(req.RequestTypes))
	for i, rt := range req.RequestTypes {
		requestTypeIDs[i] = rt.ID
	}
	slices, warnings := slicer.Slice(req.Demand, requestTypeIDs, sliceFactor)

	if len(slices) == 0 {
		counts := make(map[string]int, len(req.Workers))
		for _, w := range req.Workers {
			counts[w.ID] = 0
		}
		return &Result{
			Plan:   &core.Plan{Counts: counts, Assignments: map[int]string{}, Warnings: warnings},
			Status: core.StatusOptimal,
		}, nil
	}

	catalog := core.NewCatalog(req.Workers, req.RequestTypes)
	load := loadmatrix.Build(slices, catalog, req.Profile)

	problem, layout, assignable := BuildModel(slices, req.Workers, catalog, load)
	if unassignable := unassignableRequestTypes(assignable, slices); len(unassignable) > 0 {
		return &Result{
			Status: core.StatusInfeasible,
			Plan:   &core.Plan{Warnings: append(warnings, "unassignable request types with no capable worker: "+joinIDs(unassignable))},
		}, nil
	}

	timeLimit := req.TimeLimit
	if timeLimit <= 0 {
		timeLimit = config.DefaultSolveTimeout
	}
	solveCtx, cancel := context.WithTimeout(ctx, timeLimit)
	defer cancel()

	start := time.Now()
	sol, status := o.driver.Solve(solveCtx, problem)
	o.solutionTimeMsec = time.Since(start).Milliseconds()

	if status != core.StatusOptimal && status != core.StatusFeasibleSuboptimal {
		return &Result{Status: status, SolutionTimeMsec: o.solutionTimeMsec}, nil
	}

	plan, err := Shape(sol.X, layout, slices, catalog)
	if err != nil {
		return &Result{Status: core.StatusModelInvalid, SolutionTimeMsec: o.solutionTimeMsec}, nil
	}
	plan.Warnings = append(warnings, plan.Warnings...)

	return &Result{Plan: plan, Status: status, SolutionTimeMsec: o.solutionTimeMsec}, nil
}

// GetSolutionTimeMsec returns the wall-clock duration of the last Solve
// call in milliseconds.
func (o *Optimizer) GetSolutionTimeMsec() int64 {
	return o.solutionTimeMsec
}

// unassignableRequestTypes returns the sorted, deduplicated set of request
// type ids that have at least one slice with no capable worker.
func unassignableRequestTypes(assignable map[int]bool, slices []core.Slice) []string {
	seen := make(map[string]struct{})
	for _, s := range slices {
		if !assignable[s.ID] {
			seen[s.RequestTypeID] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ", ")
}
