// Command planner runs the capacity-planning optimizer as a one-shot CLI:
// fetch (or load) demand and throughput data, solve the provisioning
// model, and print the resulting plan.
package main

import (
	"fmt"
	"os"

	"github.com/llm-d-incubation/capacity-planner/cmd/planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
