package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagVocabulary() map[string]bool {
	vocab := make(map[string]bool, len(CauseTags))
	for _, tag := range CauseTags {
		vocab[tag] = true
	}
	return vocab
}

func roleSet() map[string]bool {
	roles := make(map[string]bool, len(ActorRoles))
	for _, role := range ActorRoles {
		roles[role] = true
	}
	return roles
}

func TestCatalog_Entries_AreWellFormed(t *testing.T) {
	vocab := tagVocabulary()
	roles := roleSet()
	seen := make(map[string]bool)

	for _, ev := range Catalog {
		assert.NotEmpty(t, ev.ID)
		assert.False(t, seen[ev.ID], "duplicate id %s", ev.ID)
		seen[ev.ID] = true

		assert.NotEmpty(t, ev.Title, ev.ID)
		assert.Greater(t, ev.Weight, 0.0, ev.ID)
		assert.NotNil(t, ev.Condition, ev.ID)
		assert.True(t, roles[ev.Actor], "%s: unknown actor %s", ev.ID, ev.Actor)

		assert.GreaterOrEqual(t, ev.Severity, 1, ev.ID)
		assert.LessOrEqual(t, ev.Severity, 5, ev.ID)

		assert.NotEmpty(t, ev.CauseTags, ev.ID)
		assert.LessOrEqual(t, len(ev.CauseTags), 3, ev.ID)
		for _, tag := range ev.CauseTags {
			assert.True(t, vocab[tag], "%s: unknown tag %s", ev.ID, tag)
		}

		assert.GreaterOrEqual(t, len(ev.Stakeholders), 1, ev.ID)
		assert.LessOrEqual(t, len(ev.Stakeholders), 2, ev.ID)
		for _, role := range ev.Stakeholders {
			assert.True(t, roles[role], "%s: unknown stakeholder %s", ev.ID, role)
		}
	}
}

func TestCatalog_EveryChoice_HasAnEffect(t *testing.T) {
	for _, ev := range Catalog {
		assert.NotEmpty(t, ev.Choices[0].ID, ev.ID)
		assert.NotEmpty(t, ev.Choices[1].ID, ev.ID)
		assert.NotEqual(t, ev.Choices[0].ID, ev.Choices[1].ID, ev.ID)
		for _, choice := range ev.Choices {
			_, ok := ev.Effects[choice.ID]
			assert.True(t, ok, "%s: choice %s has no effect", ev.ID, choice.ID)
		}
		assert.Len(t, ev.Effects, 2, ev.ID)
	}
}

func TestCatalog_Cooldowns_OnlyOnRiotEvents(t *testing.T) {
	for _, ev := range Catalog {
		if ev.ID == EventMajorRiot {
			assert.Equal(t, majorRiotCooldownTurns, ev.CooldownTurns)
		} else if ev.ID == EventMinorRiot {
			assert.Equal(t, minorRiotCooldownTurns, ev.CooldownTurns)
		} else {
			assert.Zero(t, ev.CooldownTurns, ev.ID)
		}
	}
}

func TestEventApply_TaxReformRaise_MatchesTable(t *testing.T) {
	ev := EventByID("tax-reform")
	assert.NotNil(t, ev)

	s := quietState()
	out := ev.Apply("raise", s)

	assert.InDelta(t, s.Treasury+6, out.Treasury, 1e-9)
	assert.InDelta(t, s.PublicSupport-4, out.PublicSupport, 1e-9)
	assert.InDelta(t, s.Stability-2, out.Stability, 1e-9)
	assert.InDelta(t, s.Factions.Bureaucrats+2, out.Factions.Bureaucrats, 1e-9)
	assert.InDelta(t, s.Factions.Merchants-2, out.Factions.Merchants, 1e-9)
}
