package cmd

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/koryo-sim/koryo-sim/sim"
)

var (
	sweepTurns     int    // Turns per run
	sweepSeedStart int64  // First seed (inclusive)
	sweepSeedEnd   int64  // Last seed (inclusive)
	sweepOut       string // Output directory for per-scenario CSVs
)

var sweepMetricKeys = []string{
	"riots",
	"bankruptcies",
	"avg_public_support",
	"avg_rebellion_risk",
	"min_public_support",
	"faction_clamp_hits",
}

// sweepRow is one seed's outcome for one scenario.
type sweepRow struct {
	seed             int64
	riots            int
	bankruptcies     int
	avgPublicSupport float64
	avgRebellionRisk float64
	minPublicSupport float64
	factionClampHits int
	collapsed        bool
}

func (r sweepRow) metric(key string) float64 {
	switch key {
	case "riots":
		return float64(r.riots)
	case "bankruptcies":
		return float64(r.bankruptcies)
	case "avg_public_support":
		return r.avgPublicSupport
	case "avg_rebellion_risk":
		return r.avgRebellionRisk
	case "min_public_support":
		return r.minPublicSupport
	case "faction_clamp_hits":
		return float64(r.factionClampHits)
	}
	return 0
}

// sweepCmd validates scenario balance across a seed range
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run a seed sweep across every scenario and summarize stress metrics",
	Run: func(cmd *cobra.Command, args []string) {
		if sweepSeedEnd < sweepSeedStart {
			logrus.Fatalf("Seed range is empty: [%d, %d]", sweepSeedStart, sweepSeedEnd)
		}

		fmt.Println("Scenario Summary")
		for _, scenario := range sim.Scenarios {
			rows := make([]sweepRow, 0, sweepSeedEnd-sweepSeedStart+1)
			for seed := sweepSeedStart; seed <= sweepSeedEnd; seed++ {
				rows = append(rows, sweepOnce(scenario, seed, sweepTurns))
			}
			if err := writeSweepCSV(filepath.Join(sweepOut, scenario+".csv"), rows); err != nil {
				logrus.Fatalf("Could not write sweep CSV: %v", err)
			}
			printSweepSummary(scenario, rows)
		}
	},
}

func sweepOnce(scenario string, seed int64, turns int) sweepRow {
	state, err := sim.InitialState(scenario)
	if err != nil {
		logrus.Fatalf("Could not resolve scenario %s: %v", scenario, err)
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemEngine)
	log, summary := sim.RunSimulation(turns, state, rng)
	metrics := sim.ComputeMetrics(log)

	return sweepRow{
		seed:             seed,
		riots:            summary.Riots,
		bankruptcies:     summary.Bankruptcies,
		avgPublicSupport: summary.AvgPublicSupport,
		avgRebellionRisk: metrics.AvgRebellionRisk,
		minPublicSupport: metrics.MinPublicSupport,
		factionClampHits: metrics.FactionClampHits,
		collapsed:        metrics.MinPublicSupport == 0.0 && metrics.AvgRebellionRisk >= 70.0,
	}
}

func writeSweepCSV(path string, rows []sweepRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"seed"}, sweepMetricKeys...)
	header = append(header, "collapsed")
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{strconv.FormatInt(row.seed, 10)}
		for _, key := range sweepMetricKeys {
			record = append(record, strconv.FormatFloat(row.metric(key), 'f', -1, 64))
		}
		collapsed := "0"
		if row.collapsed {
			collapsed = "1"
		}
		record = append(record, collapsed)
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func printSweepSummary(scenario string, rows []sweepRow) {
	fmt.Printf("- %s\n", scenario)
	for _, key := range sweepMetricKeys {
		mean, std := meanStd(rows, key)
		fmt.Printf("  %s: mean=%.2f, std=%.2f\n", key, mean, std)
	}
	collapsed := 0
	for _, row := range rows {
		if row.collapsed {
			collapsed++
		}
	}
	fmt.Printf("  collapse_rate: %.2f\n", float64(collapsed)/float64(len(rows)))
}

// meanStd computes the mean and population standard deviation of one metric.
func meanStd(rows []sweepRow, key string) (float64, float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	total := 0.0
	for _, row := range rows {
		total += row.metric(key)
	}
	mean := total / float64(len(rows))

	variance := 0.0
	for _, row := range rows {
		d := row.metric(key) - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(rows)))
}

func init() {
	sweepCmd.Flags().IntVar(&sweepTurns, "turns", 120, "Turns per run")
	sweepCmd.Flags().Int64Var(&sweepSeedStart, "seed-start", 0, "First seed (inclusive)")
	sweepCmd.Flags().Int64Var(&sweepSeedEnd, "seed-end", 99, "Last seed (inclusive)")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "out", "Output directory for per-scenario CSVs")

	rootCmd.AddCommand(sweepCmd)
}
