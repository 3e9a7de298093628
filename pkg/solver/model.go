// Package solver builds the provisioning MILP model from a catalog of
// slices, workers, and their load matrix, drives the MILP backend, and
// shapes the raw solution back into a core.Plan.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
	"github.com/llm-d-incubation/capacity-planner/pkg/loadmatrix"
	"github.com/llm-d-incubation/capacity-planner/pkg/milp"
)

// variableLayout records where each structural MILP variable lives: the
// A[slice,worker] block followed by the B[worker] block, dense-indexed by
// the same catalog handles the load matrix uses.
type variableLayout struct {
	numSlices  int
	numWorkers int

	// assignIndex[sliceRow][workerHandle] is the column index of A[s,w] in
	// the MILP variable vector, or -1 if that pair is forbidden (infinite
	// load) and so has no variable at all.
	assignIndex [][]int

	// countIndex[workerHandle] is the column index of B[w].
	countIndex []int

	numVars int
}

func newVariableLayout(numSlices, numWorkers int) *variableLayout {
	l := &variableLayout{numSlices: numSlices, numWorkers: numWorkers}
	l.assignIndex = make([][]int, numSlices)
	for i := range l.assignIndex {
		l.assignIndex[i] = make([]int, numWorkers)
		for j := range l.assignIndex[i] {
			l.assignIndex[i][j] = -1
		}
	}
	l.countIndex = make([]int, numWorkers)
	return l
}

// BuildModel constructs the MILP problem described in the provisioning
// model: one binary A[s,w] per assignable (slice, worker) pair, one
// integer B[w] per worker, an assignment-equals-one constraint per slice,
// a capacity constraint per worker, and an optional max-instance cap per
// worker. It returns the problem together with the variable layout the
// result shaper needs to read the solution back out, and a map from slice
// id to whether that slice has at least one assignable worker.
func BuildModel(slices []core.Slice, workers []core.WorkerConfig, catalog *core.Catalog, load *loadmatrix.Matrix) (*milp.Problem, *variableLayout, map[int]bool) {
	numSlices := load.NumRows()
	numWorkers := catalog.NumWorkers()

	layout := newVariableLayout(numSlices, numWorkers)
	assignable := make(map[int]bool, numSlices)

	col := 0
	for i := 0; i < numSlices; i++ {
		anyAssignable := false
		for w := 0; w < numWorkers; w++ {
			if isFinite(load.At(i, w)) {
				layout.assignIndex[i][w] = col
				col++
				anyAssignable = true
			}
		}
		assignable[slices[i].ID] = anyAssignable
	}
	for w := 0; w < numWorkers; w++ {
		layout.countIndex[w] = col
		col++
	}
	layout.numVars = col

	c := make([]float64, layout.numVars)
	integrality := make([]bool, layout.numVars)
	for i := 0; i < numSlices; i++ {
		for w := 0; w < numWorkers; w++ {
			if idx := layout.assignIndex[i][w]; idx >= 0 {
				integrality[idx] = true
			}
		}
	}

	workerByHandle := make([]core.WorkerConfig, numWorkers)
	for _, w := range workers {
		h, ok := catalog.WorkerHandle(w.ID)
		if ok {
			workerByHandle[h] = w
		}
	}
	for w := 0; w < numWorkers; w++ {
		idx := layout.countIndex[w]
		c[idx] = workerByHandle[w].Cost
		integrality[idx] = true
	}

	// Constraint 1: assignment. Sum over workers of A[s,w] == 1, for
	// slices that have at least one assignable worker. A slice with no
	// assignable worker gets no row at all; it is reported separately so
	// the caller can report INFEASIBLE with a diagnostic naming the
	// request type instead of a confusing MILP infeasibility.
	var eqRows [][]float64
	var eqB []float64
	for i := 0; i < numSlices; i++ {
		if !assignable[slices[i].ID] {
			continue
		}
		row := make([]float64, layout.numVars)
		for w := 0; w < numWorkers; w++ {
			if idx := layout.assignIndex[i][w]; idx >= 0 {
				row[idx] = 1
			}
		}
		eqRows = append(eqRows, row)
		eqB = append(eqB, 1)
	}

	// Constraint 2: worker capacity. Sum over slices of A[s,w]*load[s,w]
	// <= B[w].
	var ineqRows [][]float64
	var ineqB []float64
	for w := 0; w < numWorkers; w++ {
		row := make([]float64, layout.numVars)
		hasTerm := false
		for i := 0; i < numSlices; i++ {
			idx := layout.assignIndex[i][w]
			if idx < 0 {
				continue
			}
			row[idx] = load.At(i, w)
			hasTerm = true
		}
		row[layout.countIndex[w]] = -1
		if hasTerm {
			ineqRows = append(ineqRows, row)
			ineqB = append(ineqB, 0)
		}
	}

	// Constraint 3: optional per-worker instance cap, B[w] <= MaxLimit.
	for w := 0; w < numWorkers; w++ {
		wc := workerByHandle[w]
		if wc.MaxLimit == nil {
			continue
		}
		row := make([]float64, layout.numVars)
		row[layout.countIndex[w]] = 1
		ineqRows = append(ineqRows, row)
		ineqB = append(ineqB, float64(*wc.MaxLimit))
	}

	problem := &milp.Problem{
		C:           c,
		Integrality: integrality,
	}
	if len(eqRows) > 0 {
		problem.Aeq = rowsToDense(eqRows)
		problem.Beq = eqB
	}
	if len(ineqRows) > 0 {
		problem.Ale = rowsToDense(ineqRows)
		problem.Ble = ineqB
	}

	return problem, layout, assignable
}

func rowsToDense(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	d := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		for j, v := range row {
			d.Set(i, j, v)
		}
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
