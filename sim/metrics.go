// Tracks log-wide stress metrics used by sweeps and the report command.

package sim

import "fmt"

// Metrics aggregates statistics over a recorded log for scenario validation
// and balance debugging.
type Metrics struct {
	MinPublicSupport float64 `json:"min_public_support"`
	AvgRebellionRisk float64 `json:"avg_rebellion_risk"`
	FactionClampHits int     `json:"faction_clamp_hits"`
}

// ComputeMetrics folds a log into its stress metrics. Clamp hits count
// faction shares pinned at either end of the [0,100] range; a high count
// means the soft caps are doing real work.
func ComputeMetrics(log []LogRecord) Metrics {
	minSupport := 100.0
	revoltTotal := 0.0
	turnCount := 0
	clampHits := 0

	for _, entry := range log {
		s := entry.State
		if s.PublicSupport < minSupport {
			minSupport = s.PublicSupport
		}
		revoltTotal += s.RevoltRisk
		turnCount++

		for _, v := range s.Factions.toMap() {
			if v <= 0.0 || v >= 100.0 {
				clampHits++
			}
		}
	}

	divisor := turnCount
	if divisor < 1 {
		divisor = 1
	}
	return Metrics{
		MinPublicSupport: round2(minSupport),
		AvgRebellionRisk: round2(revoltTotal / float64(divisor)),
		FactionClampHits: clampHits,
	}
}

// Print displays the metrics in the report command's fixed layout.
func (m Metrics) Print() {
	fmt.Println("=== Log Metrics ===")
	fmt.Printf("Min Public Support   : %.2f\n", m.MinPublicSupport)
	fmt.Printf("Avg Rebellion Risk   : %.2f\n", m.AvgRebellionRisk)
	fmt.Printf("Faction Clamp Hits   : %d\n", m.FactionClampHits)
}
