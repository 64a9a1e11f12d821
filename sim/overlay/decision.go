// Static decision definitions and their effect tables. Two decision kinds
// exist; both run a 10-turn modifier window, and concealing a scandal carries
// a delayed backlash that fires exactly 10 turns later.

package overlay

import (
	"sort"

	"github.com/koryo-sim/koryo-sim/sim"
)

const (
	DecisionRiotResponse = "riot_response"
	DecisionScandal      = "scandal_management"

	// decisionDuration is the modifier window shared by all decisions.
	decisionDuration = 10

	// riotResponseCooldown blocks a second riot_response within this many
	// turns of the previous one.
	riotResponseCooldown = 10
)

// DelayedEffect fires once, Delay turns after the decision's turn.
type DelayedEffect struct {
	Delay   int        `json:"delay"`
	Effects sim.Deltas `json:"effects"`
}

// ChoiceEffect is one choice's full effect table.
type ChoiceEffect struct {
	Immediate sim.Deltas
	Modifier  sim.Deltas
	Duration  int
	Delayed   *DelayedEffect
}

// DecisionDef is a static decision kind with its two choices.
type DecisionDef struct {
	ID      string
	Title   string
	Choices map[string]ChoiceEffect
}

var decisions = map[string]DecisionDef{
	DecisionRiotResponse: {
		ID:    DecisionRiotResponse,
		Title: "소요 대응",
		Choices: map[string]ChoiceEffect{
			"hardline": {
				Immediate: sim.Deltas{Stability: 4, PublicSupport: -3, RevoltRisk: -6},
				Modifier:  sim.Deltas{Stability: 0.5, PublicSupport: -0.3},
				Duration:  decisionDuration,
			},
			"conciliate": {
				Immediate: sim.Deltas{PublicSupport: 4, Treasury: -3, RevoltRisk: -4},
				Modifier:  sim.Deltas{PublicSupport: 0.4, Treasury: -0.2},
				Duration:  decisionDuration,
			},
		},
	},
	DecisionScandal: {
		ID:    DecisionScandal,
		Title: "추문 수습",
		Choices: map[string]ChoiceEffect{
			"conceal": {
				Immediate: sim.Deltas{Legitimacy: 2, Stability: 1},
				Modifier:  sim.Deltas{Legitimacy: 0.2},
				Duration:  decisionDuration,
				Delayed: &DelayedEffect{
					Delay:   decisionDuration,
					Effects: sim.Deltas{Legitimacy: -6, PublicSupport: -4, RevoltRisk: 5},
				},
			},
			"disclose": {
				Immediate: sim.Deltas{Legitimacy: -4, PublicSupport: 3, RevoltRisk: -2},
				Modifier:  sim.Deltas{Legitimacy: 0.3},
				Duration:  decisionDuration,
			},
		},
	},
}

// Decision looks up a static decision definition.
func Decision(id string) (DecisionDef, bool) {
	def, ok := decisions[id]
	return def, ok
}

// DecisionIDs returns the known decision ids, sorted.
func DecisionIDs() []string {
	ids := make([]string, 0, len(decisions))
	for id := range decisions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewDecisionRecord validates a decision id/choice pair and builds the
// overlay record for it at the given turn. Unknown ids or choices fail with
// a ValidationError.
func NewDecisionRecord(turn int, decisionID, choiceID string) (DecisionRecord, error) {
	def, ok := decisions[decisionID]
	if !ok {
		return DecisionRecord{}, sim.Validationf("unknown decision %q (have %v)", decisionID, DecisionIDs())
	}
	effect, ok := def.Choices[choiceID]
	if !ok {
		return DecisionRecord{}, sim.Validationf("decision %s has no choice %q", decisionID, choiceID)
	}
	return DecisionRecord{
		Turn:       turn,
		DecisionID: decisionID,
		ChoiceID:   choiceID,
		Immediate:  effect.Immediate,
		Modifier:   effect.Modifier,
		Duration:   effect.Duration,
		Delayed:    effect.Delayed,
	}, nil
}

// DecisionRecord is one recorded decision in the overlay. The effect table is
// denormalized into the record so projection never needs the static
// definitions again.
type DecisionRecord struct {
	Turn       int            `json:"turn"`
	DecisionID string         `json:"decision_id"`
	ChoiceID   string         `json:"choice_id"`
	Immediate  sim.Deltas     `json:"immediate"`
	Modifier   sim.Deltas     `json:"modifier"`
	Duration   int            `json:"duration"`
	Delayed    *DelayedEffect `json:"delayed,omitempty"`
}

// Meta is the full overlay for one session: every recorded decision plus the
// single live budget allocation.
type Meta struct {
	Decisions []DecisionRecord `json:"decisions"`
	Budget    *BudgetRecord    `json:"budget"`
}
