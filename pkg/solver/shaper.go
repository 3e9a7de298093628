package solver

import (
	"math"

	"github.com/llm-d-incubation/capacity-planner/pkg/config"
	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// Shape converts a raw MILP solution vector back into worker instance
// counts and slice assignments, using the same rounding rule as the
// original solver: ceil(value - Epsilon) for counts, and a 0.5 cutoff for
// which assignment variable is "the" chosen one for a slice.
//
// It returns an error if any assignment variable the MILP reported came
// back meaningfully fractional (neither near 0 nor near 1), since that
// means the backend returned an LP relaxation rather than an
// integer-feasible point — a backend bug, not a modeling failure the
// caller can act on by retrying.
func Shape(sol []float64, layout *variableLayout, slices []core.Slice, catalog *core.Catalog) (*core.Plan, error) {
	counts := make(map[string]int, layout.numWorkers)
	for w := 0; w < layout.numWorkers; w++ {
		raw := sol[layout.countIndex[w]]
		counts[catalog.WorkerID(w)] = int(math.Ceil(raw - config.Epsilon))
	}

	assignments := make(map[int]string, layout.numSlices)
	for i := 0; i < layout.numSlices; i++ {
		chosen := -1
		for w := 0; w < layout.numWorkers; w++ {
			idx := layout.assignIndex[i][w]
			if idx < 0 {
				continue
			}
			v := sol[idx]
			if !nearInteger(v) {
				return nil, &core.ValidationError{Kind: core.KindInvalidInput, Message: "solver returned a fractional assignment variable"}
			}
			if v > config.AssignmentCutoff && chosen < 0 {
				chosen = w
			}
		}
		if chosen >= 0 {
			assignments[slices[i].ID] = catalog.WorkerID(chosen)
		}
	}

	return &core.Plan{
		Counts:      counts,
		Assignments: assignments,
		Slices:      slices,
	}, nil
}

func nearInteger(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-4
}
