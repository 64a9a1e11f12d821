package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/koryo-sim/koryo-sim/sim"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "koryosim",
	Short: "Deterministic collapse simulator for a fracturing medieval court",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialStateFor resolves a scenario name against the built-in presets plus
// an optional override file.
func initialStateFor(scenario, scenarioFile string) sim.State {
	var extra map[string]sim.ScenarioOverride
	if scenarioFile != "" {
		var err error
		extra, err = sim.LoadScenarioFile(scenarioFile)
		if err != nil {
			logrus.Fatalf("Could not load scenario file %s: %v", scenarioFile, err)
		}
	}
	state, err := sim.InitialStateFrom(scenario, extra)
	if err != nil {
		logrus.Fatalf("Could not resolve scenario: %v", err)
	}
	return state
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
