// Package core defines the domain types of the provisioning optimizer:
// worker configurations, request types, demand, the throughput profile,
// slices, and the resulting plan. Types here are input-only and immutable
// through a run except where explicitly generated (Slice, Plan).
package core

// WorkerConfig is a candidate worker (a model-server replica set) the
// optimizer may provision instances of.
type WorkerConfig struct {
	ID               string  `json:"id"`
	AcceleratorType  string  `json:"acceleratorType"`
	AcceleratorCount int     `json:"acceleratorCount"`
	ModelServerType  string  `json:"modelServerType"`
	Cost             float64 `json:"cost"`

	// MaxLimit is an optional ceiling on how many instances of this
	// worker may be provisioned. Nil means unconstrained; it is never
	// treated as zero.
	MaxLimit *int `json:"maxLimit,omitempty"`
}

// RequestType is a category of inference requests distinguished by
// input/output size bucket and latency SLO.
type RequestType struct {
	ID               string `json:"id"`
	InputSizeBucket  string `json:"inputSizeBucket"`
	OutputSizeBucket string `json:"outputSizeBucket"`
	SLOMs            int    `json:"sloMs"`
}

// Demand maps a request type id to its aggregate arrival rate in
// requests per second. Entries with a rate at or below zero contribute
// nothing.
type Demand map[string]float64

// Profile maps a (workerId, requestTypeId) pair to the maximum requests
// per second a single instance of that worker can sustain for that
// request type. A missing entry means "unsupported" and is treated
// identically to a non-positive entry.
type Profile map[ProfileKey]float64

// ProfileKey is the composite key of a Profile entry.
type ProfileKey struct {
	WorkerID      string
	RequestTypeID string
}

// Slice is a discrete, assignable portion of one request type's demand.
// Slices are generated by the slicer, never supplied by the caller; ids
// are stable and contiguous from 0 and are contractual once returned to
// the caller (they appear in Plan.Assignments).
type Slice struct {
	ID            int
	RequestTypeID string
	RatePortion   float64
}

// Plan is the result of a successful solve: how many instances of each
// worker to provision, and which worker each slice is pinned to.
type Plan struct {
	Counts      map[string]int
	Assignments map[int]string
	Slices      []Slice

	// Warnings carries soft, non-fatal diagnostics accumulated while
	// building the plan (request types dropped or coarsened by the slicer,
	// and the unassignable-request-type diagnostic). Warnings from the
	// profile and distribution adapters are not included.
	Warnings []string
}

// Status is the outcome of a solve attempt, one of the seven values the
// solver driver may report.
type Status int

const (
	// StatusUnspecified is the zero value and never returned by Solve.
	StatusUnspecified Status = iota
	StatusOptimal
	StatusFeasibleSuboptimal
	StatusInfeasible
	StatusUnbounded
	StatusModelInvalid
	StatusAbnormal
	StatusNotSolved
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasibleSuboptimal:
		return "FEASIBLE_SUBOPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusModelInvalid:
		return "MODEL_INVALID"
	case StatusAbnormal:
		return "ABNORMAL"
	case StatusNotSolved:
		return "NOT_SOLVED"
	default:
		return "UNSPECIFIED"
	}
}
