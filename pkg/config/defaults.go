// Package config holds the numeric tolerances and default parameters the
// provisioning optimizer treats as contract rather than implementation
// detail (see spec Design Notes on numeric tolerances).
package config

import "time"

/**
 * Environment variables
 */

// REST server host env name
const RestHostEnvName = "PLANNER_HOST"
const DefaultRestHost = "0.0.0.0"

// REST server port env name
const RestPortEnvName = "PLANNER_PORT"
const DefaultRestPort = "8080"

/**
 * Numeric tolerances (contractual, not tunable)
 */

// Epsilon used when rounding a solver-reported instance count up to the
// next integer: ceil(value - Epsilon) absorbs numeric noise sitting just
// above an integer without rounding it up an extra notch.
const Epsilon = 1e-6

// ZeroRateThreshold is the smallest positive demand rate considered
// distinguishable from zero. Rates at or below this are dropped entirely.
const ZeroRateThreshold = 1e-9

// AssignmentCutoff is the minimum solver-reported value of a binary
// assignment variable A[s,w] for the slice to be considered assigned to
// that worker.
const AssignmentCutoff = 0.5

/**
 * Defaults
 */

// DefaultSliceFactor is the number of equal-rate slices generated per
// request type when the caller does not specify one.
const DefaultSliceFactor = 2

// DefaultSolveTimeout bounds how long the MILP backend may search before
// the driver falls back to its incumbent (or NOT_SOLVED).
const DefaultSolveTimeout = 30 * time.Second
