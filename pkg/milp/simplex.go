package milp

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const simplexTolerance = 1e-10

// boundConstraint is an extra branch-and-bound cut of the form x[varIndex]
// <= bound (isUpper true) or x[varIndex] >= bound (isUpper false).
type boundConstraint struct {
	varIndex int
	isUpper  bool
	bound    float64
}

// relaxationResult is the outcome of solving one node's LP relaxation.
type relaxationResult struct {
	feasible  bool
	x         []float64 // length n, structural variables only
	objective float64
}

// solveRelaxation builds the standard-form LP for the root problem plus a
// node's accumulated bound constraints, and solves it with gonum's
// simplex implementation. Infeasible and singular relaxations are
// reported as simply infeasible: at the MILP level these both mean "this
// branch contributes no candidate" and are pruned identically.
func solveRelaxation(p *Problem, extra []boundConstraint) relaxationResult {
	n := p.NumVars()

	ineqRows := make([][]float64, 0, len(extra))
	ineqB := make([]float64, 0, len(extra))

	if p.Ale != nil {
		r, _ := p.Ale.Dims()
		for i := 0; i < r; i++ {
			row := make([]float64, n)
			mat.Row(row, i, p.Ale)
			ineqRows = append(ineqRows, row)
			ineqB = append(ineqB, p.Ble[i])
		}
	}

	for _, bc := range extra {
		row := make([]float64, n)
		if bc.isUpper {
			row[bc.varIndex] = 1
			ineqRows = append(ineqRows, row)
			ineqB = append(ineqB, bc.bound)
		} else {
			row[bc.varIndex] = -1
			ineqRows = append(ineqRows, row)
			ineqB = append(ineqB, -bc.bound)
		}
	}

	var eqRows [][]float64
	var eqB []float64
	if p.Aeq != nil {
		r, _ := p.Aeq.Dims()
		for i := 0; i < r; i++ {
			row := make([]float64, n)
			mat.Row(row, i, p.Aeq)
			eqRows = append(eqRows, row)
			eqB = append(eqB, p.Beq[i])
		}
	}

	numIneq := len(ineqRows)
	numEq := len(eqRows)
	totalRows := numIneq + numEq
	totalCols := n + numIneq

	if totalRows == 0 {
		// Unconstrained except for x >= 0; minimizing c^T x with no lower
		// bound on any c[i] < 0 coefficient is unbounded, but in practice
		// our model always supplies at least the assignment constraints.
		x := make([]float64, n)
		return relaxationResult{feasible: true, x: x, objective: 0}
	}

	A := mat.NewDense(totalRows, totalCols, nil)
	b := make([]float64, totalRows)
	c := make([]float64, totalCols)
	copy(c, p.C)

	row := 0
	for i, r := range ineqRows {
		for j := 0; j < n; j++ {
			A.Set(row, j, r[j])
		}
		A.Set(row, n+i, 1) // slack variable for this inequality
		b[row] = ineqB[i]
		row++
	}
	for i, r := range eqRows {
		for j := 0; j < n; j++ {
			A.Set(row, j, r[j])
		}
		b[row] = eqB[i]
		row++
	}

	// gonum's simplex requires b >= 0; flip any negative-RHS row.
	for i := 0; i < totalRows; i++ {
		if b[i] < 0 {
			for j := 0; j < totalCols; j++ {
				A.Set(i, j, -A.At(i, j))
			}
			b[i] = -b[i]
		}
	}

	optF, optX, err := lp.Simplex(c, A, b, simplexTolerance, nil)
	if err != nil {
		// lp.ErrInfeasible and lp.ErrSingular both mean this branch has no
		// usable candidate; any other solver error is treated the same
		// way rather than panicking the whole search.
		return relaxationResult{feasible: false}
	}

	return relaxationResult{feasible: true, x: optX[:n], objective: optF}
}
