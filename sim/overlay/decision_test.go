package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koryo-sim/koryo-sim/sim"
)

func TestDecisionIDs_BothKindsRegistered(t *testing.T) {
	assert.Equal(t, []string{DecisionRiotResponse, DecisionScandal}, DecisionIDs())

	for _, id := range DecisionIDs() {
		def, ok := Decision(id)
		assert.True(t, ok)
		assert.Equal(t, id, def.ID)
		assert.Len(t, def.Choices, 2)
	}
}

func TestNewDecisionRecord_DenormalizesEffectTable(t *testing.T) {
	rec, err := NewDecisionRecord(12, DecisionRiotResponse, "hardline")
	assert.NoError(t, err)

	assert.Equal(t, 12, rec.Turn)
	assert.Equal(t, DecisionRiotResponse, rec.DecisionID)
	assert.Equal(t, "hardline", rec.ChoiceID)
	assert.Equal(t, 4.0, rec.Immediate.Stability)
	assert.Equal(t, -6.0, rec.Immediate.RevoltRisk)
	assert.Equal(t, 0.5, rec.Modifier.Stability)
	assert.Equal(t, decisionDuration, rec.Duration)
	assert.Nil(t, rec.Delayed)
}

func TestNewDecisionRecord_ConcealCarriesDelayedBacklash(t *testing.T) {
	rec, err := NewDecisionRecord(3, DecisionScandal, "conceal")
	assert.NoError(t, err)

	assert.NotNil(t, rec.Delayed)
	assert.Equal(t, decisionDuration, rec.Delayed.Delay)
	assert.Equal(t, -6.0, rec.Delayed.Effects.Legitimacy)
	assert.Equal(t, 5.0, rec.Delayed.Effects.RevoltRisk)
}

func TestNewDecisionRecord_UnknownInputs_FailValidation(t *testing.T) {
	var verr *sim.ValidationError

	_, err := NewDecisionRecord(1, "coronation", "hardline")
	assert.ErrorAs(t, err, &verr)

	_, err = NewDecisionRecord(1, DecisionRiotResponse, "negotiate")
	assert.ErrorAs(t, err, &verr)
}
