package milp

// Status reports how a Solve call concluded.
type Status int

const (
	// StatusOptimal means the search exhausted the enumeration tree and
	// the returned solution is provably optimal.
	StatusOptimal Status = iota
	// StatusSuboptimal means the context deadline was reached after at
	// least one integer-feasible incumbent was found; it is returned
	// instead of StatusOptimal.
	StatusSuboptimal
	// StatusInfeasible means the root LP relaxation, or every branch
	// explored, has no feasible point.
	StatusInfeasible
	// StatusNotSolved means the context deadline was reached before any
	// integer-feasible incumbent was found.
	StatusNotSolved
	// StatusModelInvalid means the problem itself is malformed (Integrality
	// and C differ in length) and was never submitted to the simplex solver.
	StatusModelInvalid
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusSuboptimal:
		return "SUBOPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusNotSolved:
		return "NOT_SOLVED"
	case StatusModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}
