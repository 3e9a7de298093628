package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// distributionResponse mirrors the request distribution service's
// GetCurrentDistribution response shape: a list of request types plus a
// rate distribution keyed by request type id.
type distributionResponse struct {
	RequestTypes []struct {
		ID               string `json:"id"`
		InputSizeBucket  string `json:"inputSizeBucket"`
		OutputSizeBucket string `json:"outputSizeBucket"`
		LatencySLOTpotMs int    `json:"latencySloTpotMs"`
	} `json:"requestTypes"`
	RateDistribution []struct {
		RequestTypeID string   `json:"requestTypeId"`
		Rate          *float64 `json:"rate"`
	} `json:"rateDistribution"`
}

// HTTPDistributionFetcher calls the request distribution service's JSON
// gateway directly with net/http, the same way the teacher's own
// pkg/client reaches the optimizer REST server: no generated client, no
// RPC stubs, just a GET and a json.Decode.
type HTTPDistributionFetcher struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPDistributionFetcher constructs a fetcher against endpoint, using
// http.DefaultClient if client is nil.
func NewHTTPDistributionFetcher(endpoint string, httpClient *http.Client) *HTTPDistributionFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPDistributionFetcher{Endpoint: endpoint, Client: httpClient}
}

// GetCurrentDistribution implements DistributionFetcher.
func (f *HTTPDistributionFetcher) GetCurrentDistribution(ctx context.Context) (core.Demand, []core.RequestType, error) {
	url := f.Endpoint + "/" + DistributionVerb
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("client: distribution fetch failed: %s", res.Status)
	}

	var body distributionResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, nil, err
	}

	requestTypes := make([]core.RequestType, 0, len(body.RequestTypes))
	for _, rt := range body.RequestTypes {
		requestTypes = append(requestTypes, core.RequestType{
			ID:               rt.ID,
			InputSizeBucket:  rt.InputSizeBucket,
			OutputSizeBucket: rt.OutputSizeBucket,
			SLOMs:            rt.LatencySLOTpotMs,
		})
	}

	demand := make(core.Demand, len(body.RateDistribution))
	for _, item := range body.RateDistribution {
		if item.RequestTypeID == "" || item.Rate == nil {
			continue
		}
		demand[item.RequestTypeID] = *item.Rate
	}

	return demand, requestTypes, nil
}
