package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
	"github.com/llm-d-incubation/capacity-planner/pkg/solver"
)

// solveRequestBody is the POST /solve JSON payload.
type solveRequestBody struct {
	Workers          []core.WorkerConfig `json:"workers"`
	RequestTypes     []core.RequestType  `json:"requestTypes"`
	Demand           core.Demand         `json:"demand"`
	Profile          []profileEntry      `json:"profile"`
	SliceFactor      int                 `json:"sliceFactor"`
	TimeLimitSeconds int                 `json:"timeLimitSeconds"`
}

type profileEntry struct {
	WorkerID      string  `json:"workerId"`
	RequestTypeID string  `json:"requestTypeId"`
	MaxThroughput float64 `json:"maxThroughputRps"`
}

type solveResponseBody struct {
	Status      string         `json:"status"`
	Counts      map[string]int `json:"counts,omitempty"`
	Assignments map[int]string `json:"assignments,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
	SolveMsec   int64          `json:"solveTimeMsec"`
}

func (s *Server) handleSolve(c *gin.Context) {
	var body solveRequestBody
	if err := c.BindJSON(&body); err != nil {
		return
	}

	profile := make(core.Profile, len(body.Profile))
	for _, e := range body.Profile {
		profile[core.ProfileKey{WorkerID: e.WorkerID, RequestTypeID: e.RequestTypeID}] = e.MaxThroughput
	}

	req := solver.Request{
		Workers:      body.Workers,
		RequestTypes: body.RequestTypes,
		Demand:       body.Demand,
		Profile:      profile,
		SliceFactor:  body.SliceFactor,
	}
	if body.TimeLimitSeconds > 0 {
		req.TimeLimit = time.Duration(body.TimeLimitSeconds) * time.Second
	}

	res, err := s.optimizer.Solve(c.Request.Context(), req)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if s.metrics != nil {
		_ = s.metrics.EmitSolveMetrics(res.Status, res.SolutionTimeMsec)
		if res.Plan != nil {
			costByWorker := make(map[string]float64, len(body.Workers))
			for _, w := range body.Workers {
				costByWorker[w.ID] = w.Cost
			}
			_ = s.metrics.EmitPlanMetrics(res.Plan, costByWorker)
		}
	}

	resp := solveResponseBody{Status: res.Status.String(), SolveMsec: res.SolutionTimeMsec}
	if res.Plan != nil {
		resp.Counts = res.Plan.Counts
		resp.Assignments = res.Plan.Assignments
		resp.Warnings = res.Plan.Warnings
	}
	c.IndentedJSON(http.StatusOK, resp)
}
