// Package slicer breaks aggregate per-request-type demand into the
// discrete, equal-rate slices the solver assigns to workers individually.
package slicer

import (
	"sort"

	"github.com/llm-d-incubation/capacity-planner/pkg/config"
	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// Slice splits demand into core.Slice values. Request types are visited in
// sorted id order so that, for a fixed demand map, slice ids are stable
// and reproducible across runs (Go map iteration order is not).
//
// For each request type with a positive rate, the rate is divided into
// sliceFactor equal portions. If the resulting portion falls below
// config.Epsilon, the policy coarsens: when the total rate still exceeds
// config.ZeroRateThreshold, a single full-rate slice is emitted instead of
// sliceFactor tiny ones; otherwise the request type is dropped and a
// warning is recorded. This mirrors the original solver's slice-creation
// loop exactly, including its order of checks.
func Slice(demand core.Demand, requestTypeIDs []string, sliceFactor int) ([]core.Slice, []string) {
	if sliceFactor < 1 {
		sliceFactor = 1
	}

	ids := make([]string, len(requestTypeIDs))
	copy(ids, requestTypeIDs)
	sort.Strings(ids)

	var slices []core.Slice
	var warnings []string
	nextID := 0

	for _, reqTypeID := range ids {
		totalRate, ok := demand[reqTypeID]
		if !ok || totalRate <= 0 {
			continue
		}

		factor := sliceFactor
		ratePortion := totalRate / float64(factor)

		if ratePortion < config.Epsilon {
			if totalRate > config.ZeroRateThreshold {
				ratePortion = totalRate
				factor = 1
				warnings = append(warnings, "coarsened request type "+reqTypeID+" to a single slice: per-slice rate portion fell below epsilon")
			} else {
				warnings = append(warnings, "dropped request type "+reqTypeID+": total rate at or below zero-rate threshold")
				continue
			}
		}

		for i := 0; i < factor; i++ {
			slices = append(slices, core.Slice{
				ID:            nextID,
				RequestTypeID: reqTypeID,
				RatePortion:   ratePortion,
			})
			nextID++
		}
	}

	return slices, warnings
}
