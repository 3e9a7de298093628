package loadmatrix

import (
	"math"
	"testing"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

func TestBuildLoadMatrix(t *testing.T) {
	workers := []core.WorkerConfig{{ID: "w1"}, {ID: "w2"}}
	requestTypes := []core.RequestType{{ID: "rt1"}}
	catalog := core.NewCatalog(workers, requestTypes)

	slices := []core.Slice{
		{ID: 0, RequestTypeID: "rt1", RatePortion: 10},
	}
	profile := core.Profile{
		{WorkerID: "w1", RequestTypeID: "rt1"}: 5,
		// w2 has no profile entry for rt1: must be +Inf.
	}

	m := Build(slices, catalog, profile)

	w1h, _ := catalog.WorkerHandle("w1")
	w2h, _ := catalog.WorkerHandle("w2")

	if got := m.At(0, w1h); got != 2.0 {
		t.Fatalf("expected load 10/5=2.0 on w1, got %f", got)
	}
	if got := m.At(0, w2h); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf load on w2 (no profile entry), got %f", got)
	}
	if !m.Assignable(0) {
		t.Fatalf("expected slice 0 to be assignable via w1")
	}
}

func TestBuildLoadMatrixNonPositiveThroughputIsForbidden(t *testing.T) {
	workers := []core.WorkerConfig{{ID: "w1"}}
	requestTypes := []core.RequestType{{ID: "rt1"}}
	catalog := core.NewCatalog(workers, requestTypes)
	slices := []core.Slice{{ID: 0, RequestTypeID: "rt1", RatePortion: 1}}
	profile := core.Profile{{WorkerID: "w1", RequestTypeID: "rt1"}: 0}

	m := Build(slices, catalog, profile)
	w1h, _ := catalog.WorkerHandle("w1")

	if !math.IsInf(m.At(0, w1h), 1) {
		t.Fatalf("expected zero throughput to forbid assignment, got %f", m.At(0, w1h))
	}
	if m.Assignable(0) {
		t.Fatalf("expected slice 0 to be unassignable")
	}
}
