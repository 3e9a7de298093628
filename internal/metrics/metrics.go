package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/llm-d-incubation/capacity-planner/pkg/core"
)

var (
	solvesTotal      *prometheus.CounterVec
	solveDurationMs  *prometheus.GaugeVec
	planCost         *prometheus.GaugeVec
	planWorkerCounts *prometheus.GaugeVec
)

// InitMetrics registers all custom metrics with the provided registry.
func InitMetrics(registry prometheus.Registerer) error {
	solvesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_solves_total",
			Help: "Total number of provisioning solve attempts, by resulting status",
		},
		[]string{"status"},
	)
	solveDurationMs = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "planner_solve_duration_milliseconds",
			Help: "Wall-clock duration of the last solve, in milliseconds",
		},
		[]string{"status"},
	)
	planCost = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "planner_plan_cost",
			Help: "Total cost of the most recently produced plan",
		},
		[]string{},
	)
	planWorkerCounts = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "planner_plan_worker_instances",
			Help: "Provisioned instance count per worker in the most recent plan",
		},
		[]string{"worker_id"},
	)

	if err := registry.Register(solvesTotal); err != nil {
		return fmt.Errorf("metrics: failed to register solvesTotal: %w", err)
	}
	if err := registry.Register(solveDurationMs); err != nil {
		return fmt.Errorf("metrics: failed to register solveDurationMs: %w", err)
	}
	if err := registry.Register(planCost); err != nil {
		return fmt.Errorf("metrics: failed to register planCost: %w", err)
	}
	if err := registry.Register(planWorkerCounts); err != nil {
		return fmt.Errorf("metrics: failed to register planWorkerCounts: %w", err)
	}

	return nil
}

// InitMetricsAndEmitter registers metrics with Prometheus and creates a
// metrics emitter, for callers that want both in one step.
func InitMetricsAndEmitter(registry prometheus.Registerer) (*MetricsEmitter, error) {
	if err := InitMetrics(registry); err != nil {
		return nil, err
	}
	return NewMetricsEmitter(), nil
}

// MetricsEmitter records the outcome of a solve as Prometheus metrics.
type MetricsEmitter struct{}

// NewMetricsEmitter creates a new metrics emitter.
func NewMetricsEmitter() *MetricsEmitter {
	return &MetricsEmitter{}
}

// EmitSolveMetrics records a solve attempt's status and duration.
func (m *MetricsEmitter) EmitSolveMetrics(status core.Status, durationMsec int64) error {
	if solvesTotal == nil || solveDurationMs == nil {
		return fmt.Errorf("metrics: solve metrics not initialized")
	}
	labels := prometheus.Labels{"status": status.String()}
	solvesTotal.With(labels).Inc()
	solveDurationMs.With(labels).Set(float64(durationMsec))
	return nil
}

// EmitPlanMetrics records a successful plan's cost and per-worker
// instance counts, using worker costs supplied by the caller since a
// core.Plan only carries counts, not prices.
func (m *MetricsEmitter) EmitPlanMetrics(plan *core.Plan, costByWorker map[string]float64) error {
	if planCost == nil || planWorkerCounts == nil {
		return fmt.Errorf("metrics: plan metrics not initialized")
	}
	total := 0.0
	for workerID, count := range plan.Counts {
		planWorkerCounts.With(prometheus.Labels{"worker_id": workerID}).Set(float64(count))
		total += float64(count) * costByWorker[workerID]
	}
	planCost.With(prometheus.Labels{}).Set(total)
	return nil
}
