package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriftClamp_LimitsIncrementToTwo(t *testing.T) {
	assert.Equal(t, 2.0, driftClamp(5.0))
	assert.Equal(t, -2.0, driftClamp(-7.0))
	assert.Equal(t, 1.3, driftClamp(1.3))
}

func TestApplyActorDrift_SingleTurn_MovesAtMostTwo(t *testing.T) {
	extremes := []State{
		{Stability: 0, Legitimacy: 0, Treasury: 0, Food: 0, PublicSupport: 0, RevoltRisk: 100,
			Factions: Factions{Royal: 100, Bureaucrats: 100, Warlords: 100, Merchants: 100, Clans: 100}},
		{Stability: 100, Legitimacy: 100, Treasury: 100, Food: 100, PublicSupport: 100, RevoltRisk: 0,
			Factions: Factions{}},
	}
	for _, s := range extremes {
		s.Actors = NormalizeActors(nil) // every trait at 50
		out := applyActorDrift(s)
		for _, role := range ActorRoles {
			before := s.Actors.Traits(role)
			after := out.Actors.Traits(role)
			assert.LessOrEqual(t, absF(after.Loyalty-before.Loyalty), 2.0, role)
			assert.LessOrEqual(t, absF(after.Ambition-before.Ambition), 2.0, role)
			assert.LessOrEqual(t, absF(after.Influence-before.Influence), 2.0, role)
		}
	}
}

func TestApplyActorDrift_LowLegitimacy_ErodesChancellorLoyalty(t *testing.T) {
	s := quietState()
	s.Legitimacy = 25 // (25-50)/25 = -1

	out := applyActorDrift(s)

	assert.InDelta(t, s.Actors.Chancellor.Loyalty-1.0, out.Actors.Chancellor.Loyalty, 1e-9)
}

func TestApplyActorDrift_WarlordStrength_FeedsGeneralAmbition(t *testing.T) {
	s := quietState()
	s.Factions.Warlords = 75 // (75-50)/25 = +1

	out := applyActorDrift(s)

	assert.InDelta(t, s.Actors.General.Ambition+1.0, out.Actors.General.Ambition, 1e-9)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
