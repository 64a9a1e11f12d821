package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/koryo-sim/koryo-sim/sim"
)

var (
	reportLog string // JSONL log path
	reportDB  string // SQLite database path
)

// reportCmd prints stress metrics for a recorded log
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute stress metrics over a recorded turn log",
	Run: func(cmd *cobra.Command, args []string) {
		if (reportLog == "") == (reportDB == "") {
			logrus.Fatalf("Exactly one of --log-file and --db is required")
		}
		store, err := openStore(reportLog, reportDB)
		if err != nil {
			logrus.Fatalf("Could not open store: %v", err)
		}
		defer store.Close()

		log, err := store.ReadLog()
		if err != nil {
			logrus.Fatalf("Could not read log: %v", err)
		}
		if len(log) == 0 {
			logrus.Fatalf("Log is empty")
		}
		sim.ComputeMetrics(log).Print()
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportLog, "log-file", "", "JSONL log path")
	reportCmd.Flags().StringVar(&reportDB, "db", "", "SQLite database path")

	rootCmd.AddCommand(reportCmd)
}
