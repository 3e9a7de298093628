// Package milp implements a small mixed-integer linear program solver: a
// branch-and-bound search over an LP relaxation solved by the simplex
// method. It supports equality and inequality constraints and a per-
// variable integrality flag, which is exactly what the provisioning model
// in pkg/solver needs (integer instance counts, binary assignment flags)
// and nothing more.
package milp

import "gonum.org/v1/gonum/mat"

// Problem is a mixed-integer linear program in the form:
//
//	minimize    c^T x
//	subject to  Aeq x  = beq
//	            Ale x <= ble
//	            x >= 0
//	            x[i] integer for every i where Integrality[i] is true
//
// Either of Aeq/Ale (and its matching b) may be nil to mean "no
// constraints of that kind".
type Problem struct {
	C           []float64
	Aeq         *mat.Dense
	Beq         []float64
	Ale         *mat.Dense
	Ble         []float64
	Integrality []bool
}

// NumVars returns the number of structural variables in the problem
// (before any slack variables the solver introduces internally).
func (p *Problem) NumVars() int { return len(p.C) }

// Solution is the result of a successful or partially successful solve:
// the best incumbent found and its objective value. Whether it is
// provably optimal is reported by the Status Solve returns alongside it.
type Solution struct {
	X        []float64
	Objective float64
}
