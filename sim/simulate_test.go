package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSimulation_LogShape_OneRecordPerTurn(t *testing.T) {
	state, err := InitialState(ScenarioBaseline)
	assert.NoError(t, err)

	log, summary := RunSimulation(40, state, rand.New(rand.NewSource(11)))

	assert.Len(t, log, 40)
	for i, rec := range log {
		assert.Equal(t, i+1, rec.State.Turn)
		assertStateInRange(t, rec.State)
		if rec.Event != nil {
			assert.NotEmpty(t, rec.Event.ID)
			assert.Equal(t, KindEvent, rec.Event.Kind)
		}
	}

	assert.GreaterOrEqual(t, summary.AvgPublicSupport, 0.0)
	assert.LessOrEqual(t, summary.AvgPublicSupport, 100.0)
	assert.Len(t, summary.FinalFactions, 5)
}

func assertStateInRange(t *testing.T, s State) {
	t.Helper()
	for name, v := range map[string]float64{
		"stability":      s.Stability,
		"legitimacy":     s.Legitimacy,
		"treasury":       s.Treasury,
		"food":           s.Food,
		"public_support": s.PublicSupport,
		"revolt_risk":    s.RevoltRisk,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 100.0, name)
	}
	for _, key := range FactionKeys {
		v := s.Factions.Share(key)
		assert.GreaterOrEqual(t, v, 0.0, key)
		assert.LessOrEqual(t, v, 100.0, key)
	}
	for _, role := range ActorRoles {
		traits := s.Actors.Traits(role)
		for name, v := range map[string]float64{
			"loyalty": traits.Loyalty, "ambition": traits.Ambition, "influence": traits.Influence,
		} {
			assert.GreaterOrEqual(t, v, 0.0, role+"."+name)
			assert.LessOrEqual(t, v, 100.0, role+"."+name)
		}
	}
}

func TestRunSimulation_Warlord_CooldownHoldsAcrossFiftyTurns(t *testing.T) {
	state, err := InitialState(ScenarioWarlord)
	assert.NoError(t, err)
	rng := rand.New(rand.NewSource(7))

	log, _ := RunSimulation(50, state, rng)
	assert.Len(t, log, 50)

	cooldownUntil := 0
	for _, rec := range log {
		assertStateInRange(t, rec.State)
		if rec.Event == nil {
			continue
		}
		switch rec.Event.ID {
		case EventMajorRiot:
			// the major riot has no breach rule; it must respect the stamp
			assert.GreaterOrEqual(t, rec.State.Turn, cooldownUntil)
			if until := rec.State.Turn + majorRiotCooldownTurns; until > cooldownUntil {
				cooldownUntil = until
			}
		case EventMinorRiot:
			if until := rec.State.Turn + minorRiotCooldownTurns; until > cooldownUntil {
				cooldownUntil = until
			}
		}
	}
}

func TestComputeMetrics_FoldsSupportRevoltAndClamps(t *testing.T) {
	mk := func(support, revolt, royal float64) LogRecord {
		s := quietState()
		s.PublicSupport = support
		s.RevoltRisk = revolt
		s.Factions.Royal = royal
		return LogRecord{State: s}
	}
	log := []LogRecord{
		mk(40, 10, 50),
		mk(20, 30, 100), // one clamp hit
	}

	m := ComputeMetrics(log)

	assert.Equal(t, 20.0, m.MinPublicSupport)
	assert.Equal(t, 20.0, m.AvgRebellionRisk)
	assert.Equal(t, 1, m.FactionClampHits)
}

func TestComputeMetrics_EmptyLog_NoDivisionByZero(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, 100.0, m.MinPublicSupport)
	assert.Equal(t, 0.0, m.AvgRebellionRisk)
	assert.Equal(t, 0, m.FactionClampHits)
}
