// Package client adapts the two upstream services the optimizer depends
// on — a request distribution service and a performance profiler — to the
// core.Demand and core.Profile shapes, over plain HTTP/JSON. Neither
// service's wire protocol is part of this system's scope (see spec's RPC
// transport non-goal); these adapters assume a JSON gateway in front of
// whatever RPC mechanism the services actually use, the same way the
// original demo script treated a grpcurl-fronted gRPC call as "just
// JSON in, JSON out".
package client

import (
	"context"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// DistributionFetcher retrieves the current aggregate demand for a set of
// request types.
type DistributionFetcher interface {
	GetCurrentDistribution(ctx context.Context) (core.Demand, []core.RequestType, error)
}

// ProfileFetcher retrieves the per-(worker, request type) maximum
// sustainable throughput for a candidate workload definition.
type ProfileFetcher interface {
	GenerateProfile(ctx context.Context, workers []core.WorkerConfig, requestTypes []core.RequestType) (core.Profile, []string, error)
}
