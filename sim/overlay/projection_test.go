package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koryo-sim/koryo-sim/sim"
)

func flatState() sim.State {
	return sim.State{
		Turn:          5,
		Stability:     50,
		Legitimacy:    50,
		Treasury:      50,
		Food:          50,
		PublicSupport: 50,
		RevoltRisk:    50,
		Factions:      sim.NormalizeFactions(nil),
		Actors:        sim.NormalizeActors(nil),
	}
}

func TestApplyDecisions_Immediate_OnlyOnOwnTurn(t *testing.T) {
	rec, err := NewDecisionRecord(5, DecisionRiotResponse, "hardline")
	assert.NoError(t, err)
	records := []DecisionRecord{rec}

	at5 := ApplyDecisions(flatState(), records, 5)
	assert.InDelta(t, 54.0, at5.Stability, 1e-9)
	assert.InDelta(t, 47.0, at5.PublicSupport, 1e-9)
	assert.InDelta(t, 44.0, at5.RevoltRisk, 1e-9)

	// one turn later only the per-turn modifier shows
	at6 := ApplyDecisions(flatState(), records, 6)
	assert.InDelta(t, 50.5, at6.Stability, 1e-9)
	assert.InDelta(t, 49.7, at6.PublicSupport, 1e-9)
	assert.InDelta(t, 50.0, at6.RevoltRisk, 1e-9)
}

func TestApplyDecisions_Modifier_EndsAfterDuration(t *testing.T) {
	rec, err := NewDecisionRecord(5, DecisionRiotResponse, "hardline")
	assert.NoError(t, err)
	records := []DecisionRecord{rec}

	at15 := ApplyDecisions(flatState(), records, 15) // last covered turn
	assert.InDelta(t, 50.5, at15.Stability, 1e-9)

	at16 := ApplyDecisions(flatState(), records, 16)
	assert.InDelta(t, 50.0, at16.Stability, 1e-9)
}

func TestApplyDecisions_DelayedBacklash_FiresExactlyOnce(t *testing.T) {
	rec, err := NewDecisionRecord(3, DecisionScandal, "conceal")
	assert.NoError(t, err)
	records := []DecisionRecord{rec}

	at12 := ApplyDecisions(flatState(), records, 12)
	assert.InDelta(t, 50.2, at12.Legitimacy, 1e-9) // modifier only

	// turn 13 = 3 + delay 10: modifier still covers it, backlash lands
	at13 := ApplyDecisions(flatState(), records, 13)
	assert.InDelta(t, 50.2-6.0, at13.Legitimacy, 1e-9)
	assert.InDelta(t, 46.0, at13.PublicSupport, 1e-9)
	assert.InDelta(t, 55.0, at13.RevoltRisk, 1e-9)

	at14 := ApplyDecisions(flatState(), records, 14)
	assert.InDelta(t, 50.0, at14.Legitimacy, 1e-9) // window over, backlash past
}

func TestApplyDecisions_InputState_Unchanged(t *testing.T) {
	rec, err := NewDecisionRecord(5, DecisionRiotResponse, "conciliate")
	assert.NoError(t, err)
	base := flatState()

	_ = ApplyDecisions(base, []DecisionRecord{rec}, 5)

	assert.Equal(t, flatState(), base)
}

func TestApplyBudget_FlatAdd_DoesNotCompound(t *testing.T) {
	b := &BudgetRecord{Security: 50, Economy: 30, Intel: 20, Turn: 5}

	at6 := ApplyBudget(flatState(), b, 6)
	assert.InDelta(t, 48.0, at6.RevoltRisk, 1e-9)     // -0.04*50
	assert.InDelta(t, 50.2, at6.Treasury, 1e-9)       // -0.02*50 + 0.04*30
	assert.InDelta(t, 50.6, at6.PublicSupport, 1e-9)  // 0.02*30

	// three turns deeper into the window the projection is identical
	at9 := ApplyBudget(flatState(), b, 9)
	assert.Equal(t, at6.RevoltRisk, at9.RevoltRisk)
	assert.Equal(t, at6.Treasury, at9.Treasury)
	assert.Equal(t, at6.PublicSupport, at9.PublicSupport)
}

func TestApplyBudget_OutsideWindow_NoEffect(t *testing.T) {
	b := &BudgetRecord{Security: 100, Turn: 5}

	assert.Equal(t, flatState(), ApplyBudget(flatState(), b, 5))
	assert.Equal(t, flatState(), ApplyBudget(flatState(), b, 11))
	assert.Equal(t, flatState(), ApplyBudget(flatState(), nil, 6))
}

func TestVisibleSeverity_IntelInvestment_SoftensReports(t *testing.T) {
	b := &BudgetRecord{Security: 25, Economy: 25, Intel: 50, Turn: 5}

	assert.Equal(t, 2, VisibleSeverity(3, b, 6))
	assert.Equal(t, 1, VisibleSeverity(1, b, 6)) // floored
	assert.Equal(t, 3, VisibleSeverity(3, b, 5)) // window not active yet
	assert.Equal(t, 3, VisibleSeverity(3, nil, 6))

	lowIntel := &BudgetRecord{Security: 25, Economy: 26, Intel: 49, Turn: 5}
	assert.Equal(t, 3, VisibleSeverity(3, lowIntel, 6))
}
