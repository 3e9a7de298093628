package milp

import (
	"context"
	"testing"
	"time"

	"gonum.org/v1/gonum/mat"
)

// TestSolveSimpleAssignment models two slices that must each be assigned
// to exactly one of two workers, with a shared capacity constraint, and
// checks the optimizer finds the integer-optimal assignment.
func TestSolveSimpleAssignment(t *testing.T) {
	// Variables: A0w0, A0w1, A1w0, A1w1, Bw0, Bw1 (indices 0..5)
	// minimize cost*Bw0 + cost*Bw1, cost chosen so using worker 0 alone is cheapest.
	c := []float64{0, 0, 0, 0, 1, 2}
	integrality := []bool{true, true, true, true, true, true}

	// Assignment: A0w0 + A0w1 = 1 ; A1w0 + A1w1 = 1
	aeq := mat.NewDense(2, 6, []float64{
		1, 1, 0, 0, 0, 0,
		0, 0, 1, 1, 0, 0,
	})
	beq := []float64{1, 1}

	// Capacity: load(slice,worker) * A - B <= 0 for each worker.
	// Assume load 0.5 for every (slice, worker) pair.
	ale := mat.NewDense(2, 6, []float64{
		0.5, 0, 0.5, 0, -1, 0,
		0, 0.5, 0, 0.5, 0, -1,
	})
	ble := []float64{0, 0}

	p := &Problem{C: c, Aeq: aeq, Beq: beq, Ale: ale, Ble: ble, Integrality: integrality}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sol, status := Solve(ctx, p)
	if status != StatusOptimal {
		t.Fatalf("expected StatusOptimal, got %v", status)
	}
	// Both slices should land on worker 0 (cheaper), requiring B0=1, B1=0.
	if sol.X[4] != 1 {
		t.Fatalf("expected Bw0=1, got %f", sol.X[4])
	}
	if sol.X[5] != 0 {
		t.Fatalf("expected Bw1=0, got %f", sol.X[5])
	}
	if sol.Objective != 1 {
		t.Fatalf("expected objective 1, got %f", sol.Objective)
	}
}

func TestSolveInfeasibleWhenNoAssignmentPossible(t *testing.T) {
	// A single slice must be assigned (A0 == 1), but A0 is also bound to 0
	// via an inequality, making the model infeasible.
	c := []float64{1}
	integrality := []bool{true}
	aeq := mat.NewDense(1, 1, []float64{1})
	beq := []float64{1}
	ale := mat.NewDense(1, 1, []float64{1})
	ble := []float64{0}

	p := &Problem{C: c, Aeq: aeq, Beq: beq, Ale: ale, Ble: ble, Integrality: integrality}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, status := Solve(ctx, p)
	if status != StatusInfeasible {
		t.Fatalf("expected StatusInfeasible, got %v", status)
	}
}

func TestSolveModelInvalidOnMismatchedDimensions(t *testing.T) {
	p := &Problem{C: []float64{1, 2}, Integrality: []bool{true}}
	_, status := Solve(context.Background(), p)
	if status != StatusModelInvalid {
		t.Fatalf("expected StatusModelInvalid, got %v", status)
	}
}
