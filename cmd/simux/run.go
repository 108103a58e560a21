package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-eldridge/simux/engine"
	"github.com/andrew-eldridge/simux/logging"
	"github.com/andrew-eldridge/simux/report"
	"github.com/andrew-eldridge/simux/scenarios"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a named scenario and print its metrics",
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().String("scenario", "single-server-queue", fmt.Sprintf("scenario to run (%v)", scenarioNames()))
	runCmd.Flags().Float64("duration", 100, "simulation horizon")
	runCmd.Flags().Int64("seed", 1, "random seed")
	runCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	runCmd.Flags().Bool("log-json", false, "emit logs as JSON instead of text")

	viper.BindPFlag("scenario", runCmd.Flags().Lookup("scenario"))
	viper.BindPFlag("duration", runCmd.Flags().Lookup("duration"))
	viper.BindPFlag("seed", runCmd.Flags().Lookup("seed"))
	viper.BindPFlag("log-level", runCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log-json", runCmd.Flags().Lookup("log-json"))
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios.Registry))
	for n := range scenarios.Registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runScenario(cmd *cobra.Command, args []string) error {
	name := viper.GetString("scenario")
	factory, ok := scenarios.Registry[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q, available: %v", name, scenarioNames())
	}

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("parsing --log-level: %w", err)
	}

	duration := viper.GetFloat64("duration")
	rng := rand.New(rand.NewSource(viper.GetInt64("seed")))

	env := factory(rng)
	env.Logger = logging.New(level, viper.GetBool("log-json"))

	state, rows, err := engine.RunSimulation(env, duration)
	if err != nil {
		return fmt.Errorf("running scenario %q: %w", name, err)
	}

	result := engine.NewResult(env, state, rows)
	report.WriteEntityTable(os.Stdout, result)
	report.WriteResourceTable(os.Stdout, result, duration)
	return nil
}
