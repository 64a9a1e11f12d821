// Batch simulation runner: steps a scenario for a fixed number of turns and
// collects the log plus a run summary. The session layer reuses Step
// directly; this runner serves the CLI and sweeps.

package sim

import "math/rand"

// Summary aggregates one run for reporting.
type Summary struct {
	Bankruptcies     int                `json:"bankruptcies"`
	Riots            int                `json:"riots"`
	AvgPublicSupport float64            `json:"avg_public_support"`
	FinalFactions    map[string]float64 `json:"final_factions"`
}

// RunSimulation steps state for the given number of turns, returning one log
// record per turn and the aggregate summary.
func RunSimulation(turns int, state State, rng *rand.Rand) ([]LogRecord, Summary) {
	log := make([]LogRecord, 0, turns)
	bankruptcies := 0
	riots := 0
	supportTotal := 0.0

	for i := 0; i < turns; i++ {
		var outcome *EventOutcome
		state, outcome = Step(state, rng)
		if IsBankrupt(state) {
			bankruptcies++
		}
		if IsRiot(state) {
			riots++
		}
		supportTotal += state.PublicSupport

		log = append(log, LogRecord{State: state, Event: NewEventRecord(outcome)})
	}

	divisor := turns
	if divisor < 1 {
		divisor = 1
	}
	finals := make(map[string]float64, len(FactionKeys))
	for key, v := range state.Factions.toMap() {
		finals[key] = round2(v)
	}
	return log, Summary{
		Bankruptcies:     bankruptcies,
		Riots:            riots,
		AvgPublicSupport: round2(supportTotal / float64(divisor)),
		FinalFactions:    finals,
	}
}
