package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/session"
)

var (
	runScenario     string // Scenario preset name
	runSeed         int64  // Seed for the engine RNG
	runTurns        int    // Number of turns to simulate
	runOut          string // JSONL log path ("" keeps the run in memory)
	runDB           string // SQLite database path (alternative to --out)
	runScenarioFile string // Extra scenario presets (YAML)
)

// runCmd simulates one scenario and persists the turn log
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a scenario and write the turn log",
	Run: func(cmd *cobra.Command, args []string) {
		if runOut != "" && runDB != "" {
			logrus.Fatalf("--out and --db are mutually exclusive")
		}
		state := initialStateFor(runScenario, runScenarioFile)

		store, err := openStore(runOut, runDB)
		if err != nil {
			logrus.Fatalf("Could not open store: %v", err)
		}
		sess := session.New(session.SessionKey(runScenario, runSeed), store, runSeed)
		defer sess.Close()

		summary, err := sess.Run(state, runTurns)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		body, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			logrus.Fatalf("Could not encode summary: %v", err)
		}
		fmt.Println(string(body))
		logrus.Info("Simulation complete.")
	},
}

// openStore picks the session store for the out/db flag pair. Both empty
// means an in-memory run.
func openStore(out, db string) (session.Store, error) {
	switch {
	case db != "":
		return session.OpenSQLite(db)
	case out != "":
		return session.NewFileStore(out), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

func init() {
	runCmd.Flags().StringVar(&runScenario, "scenario", sim.ScenarioBaseline, "Scenario preset (baseline, famine, deficit, warlord)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "Seed for the engine RNG")
	runCmd.Flags().IntVar(&runTurns, "turns", 120, "Number of turns to simulate")
	runCmd.Flags().StringVar(&runOut, "out", "", "JSONL log path (empty keeps the run in memory)")
	runCmd.Flags().StringVar(&runDB, "db", "", "SQLite database path (alternative to --out)")
	runCmd.Flags().StringVar(&runScenarioFile, "scenario-file", "", "YAML file with extra scenario presets")

	rootCmd.AddCommand(runCmd)
}
