package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/llm-d-incubation/capacity-planner/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Minimum-cost capacity planner for an inference-serving fleet",
	Long: "planner computes a minimum-cost provisioning plan for an inference-serving\n" +
		"fleet: how many instances of each worker configuration to run, and how to\n" +
		"partition demand across them.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	cobra.OnInitialize(func() {
		if level := os.Getenv("LOG_LEVEL"); level != "" {
			logger.Log.Debugw("log level configured", "level", level)
		}
	})
}
