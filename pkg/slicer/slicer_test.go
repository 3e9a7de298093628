package slicer

import "testing"

func TestSliceBasic(t *testing.T) {
	demand := map[string]float64{"rt1": 10.0}
	slices, warnings := Slice(demand, []string{"rt1"}, 2)

	if len(slices) != 2 {
		t.Fatalf("expected 2 slices, got %d", len(slices))
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	for i, s := range slices {
		if s.ID != i {
			t.Fatalf("expected contiguous ids starting at 0, got %d at index %d", s.ID, i)
		}
		if s.RatePortion != 5.0 {
			t.Fatalf("expected rate portion 5.0, got %f", s.RatePortion)
		}
	}
}

func TestSliceZeroAndNegativeDropped(t *testing.T) {
	demand := map[string]float64{"zero": 0, "neg": -1, "present": 4}
	slices, _ := Slice(demand, []string{"zero", "neg", "present"}, 2)

	if len(slices) != 2 {
		t.Fatalf("expected only 'present' to produce slices, got %d", len(slices))
	}
	for _, s := range slices {
		if s.RequestTypeID != "present" {
			t.Fatalf("unexpected request type %q in slices", s.RequestTypeID)
		}
	}
}

func TestSliceCoarsensMicroRate(t *testing.T) {
	// totalRate/sliceFactor falls below epsilon but totalRate itself is
	// well above the zero-rate threshold: coarsen to a single full-rate slice.
	demand := map[string]float64{"rt1": 1e-7}
	slices, warnings := Slice(demand, []string{"rt1"}, 1000)

	if len(slices) != 1 {
		t.Fatalf("expected exactly 1 coarsened slice, got %d", len(slices))
	}
	if slices[0].RatePortion != 1e-7 {
		t.Fatalf("expected coarsened slice to carry the full rate, got %f", slices[0].RatePortion)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected a coarsen warning, got %v", warnings)
	}
}

func TestSliceSkipsBelowZeroRateThreshold(t *testing.T) {
	demand := map[string]float64{"rt1": 1e-10}
	slices, warnings := Slice(demand, []string{"rt1"}, 1000)

	if len(slices) != 0 {
		t.Fatalf("expected no slices for a rate at the noise floor, got %d", len(slices))
	}
	if len(warnings) != 1 {
		t.Fatalf("expected a drop warning, got %v", warnings)
	}
}

func TestSliceFactorLessThanOneTreatedAsOne(t *testing.T) {
	demand := map[string]float64{"rt1": 10.0}
	slices, _ := Slice(demand, []string{"rt1"}, 0)

	if len(slices) != 1 {
		t.Fatalf("expected sliceFactor<1 to behave as 1, got %d slices", len(slices))
	}
	if slices[0].RatePortion != 10.0 {
		t.Fatalf("expected full rate on single slice, got %f", slices[0].RatePortion)
	}
}

func TestSliceDeterministicOrderAcrossCalls(t *testing.T) {
	demand := map[string]float64{"zeta": 5, "alpha": 5, "mu": 5}
	ids := []string{"zeta", "alpha", "mu"}

	first, _ := Slice(demand, ids, 1)
	second, _ := Slice(demand, ids, 1)

	if len(first) != len(second) {
		t.Fatalf("expected stable slice count across calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical slice at index %d across calls, got %+v vs %+v", i, first[i], second[i])
		}
	}
	// sorted request type order: alpha, mu, zeta
	if first[0].RequestTypeID != "alpha" || first[1].RequestTypeID != "mu" || first[2].RequestTypeID != "zeta" {
		t.Fatalf("expected sorted request-type order, got %+v", first)
	}
}
