package client

// DefaultHTTPTimeoutSeconds is a per-call timeout, in seconds, for the
// distribution and profile adapters. The adapter constructors do not apply
// it: given a nil client they use http.DefaultClient, which sets no
// timeout.
const DefaultHTTPTimeoutSeconds = 30

// Distribution service JSON gateway path.
const (
	DistributionVerb = "distribution"
)

// Profiler service JSON gateway path.
const (
	ProfileVerb = "profile"
)
