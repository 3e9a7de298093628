package client

import (
	"context"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// FakeDistributionFetcher returns a fixed demand/request-type set, for
// exercising callers without a live distribution service.
type FakeDistributionFetcher struct {
	Demand       core.Demand
	RequestTypes []core.RequestType
	Err          error
}

func (f *FakeDistributionFetcher) GetCurrentDistribution(ctx context.Context) (core.Demand, []core.RequestType, error) {
	return f.Demand, f.RequestTypes, f.Err
}

// FakeProfileFetcher returns a fixed profile regardless of the requested
// workers/request types.
type FakeProfileFetcher struct {
	Profile  core.Profile
	Warnings []string
	Err      error
}

func (f *FakeProfileFetcher) GenerateProfile(ctx context.Context, workers []core.WorkerConfig, requestTypes []core.RequestType) (core.Profile, []string, error) {
	return f.Profile, f.Warnings, f.Err
}
