// Package loadmatrix computes, for each (slice, worker) pair, the
// fractional share of one worker instance's capacity a slice would
// consume if assigned to it.
package loadmatrix

import (
	"math"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// Matrix holds the fractional load L[sliceRow][workerHandle] a slice would
// place on one instance of a worker. An entry of +Inf means the pairing is
// forbidden: the worker either has no profiled throughput for the slice's
// request type, or the profiled throughput is non-positive.
type Matrix struct {
	rows [][]float64 // indexed [sliceIndex][workerHandle]
}

// Build computes the load matrix for a set of slices against a catalog of
// workers, given the throughput profile. Row i of the matrix corresponds
// to slices[i], so slices must be in the order the caller wants rows
// indexed.
//
// The throughput profile is first collapsed into a dense
// [requestTypeHandle][workerHandle] table, so the per-slice inner loop
// indexes plain slices by the catalog's integer handles instead of
// building a ProfileKey and probing the string-keyed profile map once per
// (slice, worker) pair.
func Build(slices []core.Slice, catalog *core.Catalog, profile core.Profile) *Matrix {
	numWorkers := catalog.NumWorkers()
	numRequestTypes := catalog.NumRequestTypes()

	tput := make([][]float64, numRequestTypes)
	for r := range tput {
		tput[r] = make([]float64, numWorkers)
	}
	for key, maxTput := range profile {
		rh, ok := catalog.RequestTypeHandle(key.RequestTypeID)
		if !ok {
			continue
		}
		wh, ok := catalog.WorkerHandle(key.WorkerID)
		if !ok {
			continue
		}
		tput[rh][wh] = maxTput
	}

	rows := make([][]float64, len(slices))
	for i, s := range slices {
		rh, ok := catalog.RequestTypeHandle(s.RequestTypeID)
		row := make([]float64, numWorkers)
		for h := 0; h < numWorkers; h++ {
			load := math.Inf(1)
			if ok {
				if maxTput := tput[rh][h]; maxTput > 0 {
					load = s.RatePortion / maxTput
				}
			}
			row[h] = load
		}
		rows[i] = row
	}
	return &Matrix{rows: rows}
}

// At returns the load a slice at the given row index would place on the
// worker identified by handle.
func (m *Matrix) At(sliceRow, workerHandle int) float64 {
	return m.rows[sliceRow][workerHandle]
}

// Assignable reports whether at least one worker can serve the slice at
// the given row index (i.e. has a finite load entry).
func (m *Matrix) Assignable(sliceRow int) bool {
	for _, load := range m.rows[sliceRow] {
		if !math.IsInf(load, 1) {
			return true
		}
	}
	return false
}

// NumRows returns the number of slice rows in the matrix.
func (m *Matrix) NumRows() int { return len(m.rows) }
