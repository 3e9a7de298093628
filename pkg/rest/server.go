// Package rest exposes the in-process optimizer over a small HTTP API:
// POST /solve runs one provisioning solve and returns the plan, GET
// /metrics serves the Prometheus registry.
package rest

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/llm-d-incubation/capacity-planner/internal/logger"
	"github.com/llm-d-incubation/capacity-planner/internal/metrics"
	"github.com/llm-d-incubation/capacity-planner/pkg/config"
	"github.com/llm-d-incubation/capacity-planner/pkg/solver"
)

// Server is the planner's REST surface.
type Server struct {
	router    *gin.Engine
	optimizer *solver.Optimizer
	metrics   *metrics.MetricsEmitter
}

// NewServer constructs a Server backed by a fresh Optimizer, registering
// the planner's custom metrics with the default Prometheus registry so
// GET /metrics reports solve outcomes in addition to Go runtime stats.
func NewServer() *Server {
	emitter, err := metrics.InitMetricsAndEmitter(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Log.Warnw("failed to register planner metrics", "error", err)
	}

	s := &Server{
		router:    gin.Default(),
		optimizer: solver.NewOptimizer(),
		metrics:   emitter,
	}
	s.router.POST("/solve", s.handleSolve)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return s
}

// Run starts the HTTP server, reading host/port from the environment with
// the same override convention as the teacher's REST server.
func (s *Server) Run() error {
	host := config.DefaultRestHost
	port := config.DefaultRestPort
	if h := os.Getenv(config.RestHostEnvName); h != "" {
		host = h
	}
	if p := os.Getenv(config.RestPortEnvName); p != "" {
		port = p
	}
	return s.router.Run(host + ":" + port)
}
