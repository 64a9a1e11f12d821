// Read-only projection algebra: folds recorded decisions and the live budget
// into a cloned state at a queried turn. Nothing here writes back to the
// overlay or the log.

package overlay

import "github.com/koryo-sim/koryo-sim/sim"

// ApplyDecisions projects every decision record onto state s as observed at
// turn t:
//
//   - immediate deltas apply only when t is the decision's own turn
//   - modifier deltas apply for every t in (turn, turn+duration]
//   - delayed effects apply only when t == turn + delay
func ApplyDecisions(s sim.State, records []DecisionRecord, t int) sim.State {
	for _, r := range records {
		if t == r.Turn {
			s = s.ApplyDeltas(r.Immediate)
		}
		if r.Turn < t && t <= r.Turn+r.Duration {
			s = s.ApplyDeltas(r.Modifier)
		}
		if r.Delayed != nil && t == r.Turn+r.Delayed.Delay {
			s = s.ApplyDeltas(r.Delayed.Effects)
		}
	}
	return s
}

// ApplyBudget projects the live allocation onto state s at turn t. The deltas
// are a flat one-shot add while the window is active; they deliberately do
// not compound per elapsed turn.
func ApplyBudget(s sim.State, b *BudgetRecord, t int) sim.State {
	if !b.Active(t) {
		return s
	}
	return s.ApplyDeltas(sim.Deltas{
		RevoltRisk:    securityRevoltRate * float64(b.Security),
		Treasury:      securityTreasuryRate*float64(b.Security) + economyTreasuryRate*float64(b.Economy),
		PublicSupport: economySupportRate * float64(b.Economy),
	})
}

// VisibleSeverity adjusts an event's reported severity for the feed at turn
// t: an active allocation with intel >= 50 knocks one point off, floored at
// 1. The stored event is never touched.
func VisibleSeverity(severity int, b *BudgetRecord, t int) int {
	if b.Active(t) && b.Intel >= intelThreshold && severity > intelSeverityFloor {
		return severity - 1
	}
	return severity
}
