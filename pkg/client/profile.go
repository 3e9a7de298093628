package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

// okStatuses are the profiler statuses that contribute a usable
// throughput figure; every other status (including STATUS_UNSPECIFIED
// and explicit failure codes) is recorded as a warning and treated as
// "no usable throughput" rather than a fatal error.
var okStatuses = map[string]bool{
	"OK":                     true,
	"OK_USING_HIGHEST_RATE":  true,
}

type profileWorkerType struct {
	ID               string `json:"id"`
	AcceleratorType  string `json:"acceleratorType"`
	AcceleratorCount int    `json:"acceleratorCount"`
	ModelServerType  string `json:"modelServerType"`
}

type profileRequestType struct {
	ID               string `json:"id"`
	InputSizeBucket  string `json:"inputSizeBucket"`
	OutputSizeBucket string `json:"outputSizeBucket"`
}

type profileRequest struct {
	WorkloadDefinition struct {
		WorkerTypes  []profileWorkerType  `json:"workerTypes"`
		RequestTypes []profileRequestType `json:"requestTypes"`
	} `json:"workloadDefinition"`
}

type profileResponse struct {
	PerformanceProfile struct {
		Entries []struct {
			WorkerTypeID    string  `json:"workerTypeId"`
			RequestTypeID   string  `json:"requestTypeId"`
			MaxThroughputRps float64 `json:"maxThroughputRps"`
			Status          string  `json:"status"`
		} `json:"entries"`
	} `json:"performanceProfile"`
}

// HTTPProfileFetcher calls the performance profiler service's JSON
// gateway, translating its entries into a core.Profile and flagging any
// non-OK status as a soft warning rather than a fatal error.
type HTTPProfileFetcher struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPProfileFetcher constructs a fetcher against endpoint, using
// http.DefaultClient if client is nil.
func NewHTTPProfileFetcher(endpoint string, httpClient *http.Client) *HTTPProfileFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPProfileFetcher{Endpoint: endpoint, Client: httpClient}
}

// GenerateProfile implements ProfileFetcher.
func (f *HTTPProfileFetcher) GenerateProfile(ctx context.Context, workers []core.WorkerConfig, requestTypes []core.RequestType) (core.Profile, []string, error) {
	reqBody := profileRequest{}
	for _, w := range workers {
		reqBody.WorkloadDefinition.WorkerTypes = append(reqBody.WorkloadDefinition.WorkerTypes, profileWorkerType{
			ID:               w.ID,
			AcceleratorType:  w.AcceleratorType,
			AcceleratorCount: w.AcceleratorCount,
			ModelServerType:  w.ModelServerType,
		})
	}
	for _, rt := range requestTypes {
		reqBody.WorkloadDefinition.RequestTypes = append(reqBody.WorkloadDefinition.RequestTypes, profileRequestType{
			ID:               rt.ID,
			InputSizeBucket:  rt.InputSizeBucket,
			OutputSizeBucket: rt.OutputSizeBucket,
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, err
	}

	url := f.Endpoint + "/" + ProfileVerb
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := f.Client.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("client: profile fetch failed: %s", res.Status)
	}

	var body profileResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, nil, err
	}

	profile := make(core.Profile, len(body.PerformanceProfile.Entries))
	var warnings []string
	for _, entry := range body.PerformanceProfile.Entries {
		if entry.WorkerTypeID == "" || entry.RequestTypeID == "" {
			warnings = append(warnings, "profile entry missing worker or request type id, skipped")
			continue
		}
		key := core.ProfileKey{WorkerID: entry.WorkerTypeID, RequestTypeID: entry.RequestTypeID}
		if okStatuses[entry.Status] {
			profile[key] = entry.MaxThroughputRps
		} else {
			profile[key] = 0
			warnings = append(warnings, fmt.Sprintf("throughput for (%s,%s) treated as 0 due to status %s", entry.WorkerTypeID, entry.RequestTypeID, entry.Status))
		}
	}

	return profile, warnings, nil
}
