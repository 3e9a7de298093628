package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/llm-d-incubation/capacity-planner/internal/logger"
	"github.com/llm-d-incubation/capacity-planner/internal/metrics"
	"github.com/llm-d-incubation/capacity-planner/pkg/client"
	"github.com/llm-d-incubation/capacity-planner/pkg/core"
	"github.com/llm-d-incubation/capacity-planner/pkg/solver"
)

var (
	flagWorkersFile       string
	flagDistributionEndpt string
	flagProfileEndpt      string
	flagSliceFactor       int
	flagTimeLimitSeconds  int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fetch demand and throughput data and produce a provisioning plan",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagWorkersFile, "workers", "", "path to a JSON file listing the candidate worker configurations (required)")
	solveCmd.Flags().StringVar(&flagDistributionEndpt, "distribution-endpoint", "", "base URL of the request distribution service (required)")
	solveCmd.Flags().StringVar(&flagProfileEndpt, "profile-endpoint", "", "base URL of the performance profiler service (required)")
	solveCmd.Flags().IntVar(&flagSliceFactor, "slice-factor", 2, "number of equal-rate slices per request type")
	solveCmd.Flags().IntVar(&flagTimeLimitSeconds, "time-limit", 30, "solver time limit in seconds")
	_ = solveCmd.MarkFlagRequired("workers")
	_ = solveCmd.MarkFlagRequired("distribution-endpoint")
	_ = solveCmd.MarkFlagRequired("profile-endpoint")
}

func runSolve(c *cobra.Command, args []string) error {
	ctx := context.Background()

	workers, err := loadWorkers(flagWorkersFile)
	if err != nil {
		return fmt.Errorf("planner: failed to load worker catalog: %w", err)
	}

	distributionFetcher := client.NewHTTPDistributionFetcher(flagDistributionEndpt, nil)
	demand, requestTypes, err := distributionFetcher.GetCurrentDistribution(ctx)
	if err != nil {
		return fmt.Errorf("planner: failed to fetch demand distribution: %w", err)
	}

	profileFetcher := client.NewHTTPProfileFetcher(flagProfileEndpt, nil)
	profile, warnings, err := profileFetcher.GenerateProfile(ctx, workers, requestTypes)
	if err != nil {
		return fmt.Errorf("planner: failed to fetch throughput profile: %w", err)
	}
	for _, w := range warnings {
		logger.Log.Warnw("profile fetch warning", "warning", w)
	}

	req := solver.Request{
		Workers:      workers,
		RequestTypes: requestTypes,
		Demand:       demand,
		Profile:      profile,
		SliceFactor:  flagSliceFactor,
		TimeLimit:    time.Duration(flagTimeLimitSeconds) * time.Second,
	}

	emitter, err := metrics.InitMetricsAndEmitter(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Log.Warnw("failed to register planner metrics", "error", err)
	}

	opt := solver.NewOptimizer()
	res, err := opt.Solve(ctx, req)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	if emitter != nil {
		_ = emitter.EmitSolveMetrics(res.Status, res.SolutionTimeMsec)
		if res.Plan != nil {
			costByWorker := make(map[string]float64, len(workers))
			for _, w := range workers {
				costByWorker[w.ID] = w.Cost
			}
			_ = emitter.EmitPlanMetrics(res.Plan, costByWorker)
		}
	}

	if err := printResult(res); err != nil {
		return err
	}

	if res.Status != core.StatusOptimal {
		return fmt.Errorf("planner: solve finished with status %s", res.Status)
	}
	return nil
}

func loadWorkers(path string) ([]core.WorkerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var workers []core.WorkerConfig
	if err := json.Unmarshal(data, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

func printResult(res *solver.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"status":        res.Status.String(),
		"solveTimeMsec": res.SolutionTimeMsec,
		"plan":          res.Plan,
	})
}
