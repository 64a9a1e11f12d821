package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState_Baseline_MatchesDefaults(t *testing.T) {
	s, err := InitialState(ScenarioBaseline)
	assert.NoError(t, err)

	assert.Equal(t, 0, s.Turn)
	assert.Equal(t, 62.0, s.Stability)
	assert.Equal(t, 58.0, s.Legitimacy)
	assert.Equal(t, 55.0, s.Treasury)
	assert.Equal(t, 60.0, s.Food)
	assert.Equal(t, 57.0, s.PublicSupport)
	assert.Equal(t, 24.0, s.RevoltRisk)
	assert.Equal(t, 41.0, s.Factions.Warlords)
	assert.Equal(t, 60.0, s.Actors.Chancellor.Loyalty)
}

func TestInitialState_Presets_OverrideSelectedFields(t *testing.T) {
	famine, err := InitialState(ScenarioFamine)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, famine.Food)
	assert.Equal(t, 48.0, famine.PublicSupport)
	assert.Equal(t, 38.0, famine.RevoltRisk)
	assert.Equal(t, 62.0, famine.Stability) // baseline untouched

	warlord, err := InitialState(ScenarioWarlord)
	assert.NoError(t, err)
	assert.Equal(t, 68.0, warlord.Factions.Warlords)
	assert.Equal(t, 62.0, warlord.Actors.General.Ambition)
	assert.Equal(t, 55.0, warlord.Actors.General.Loyalty) // other traits untouched
}

func TestInitialState_Unknown_FailsValidation(t *testing.T) {
	_, err := InitialState("golden-age")
	assert.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLoadScenarioFile_ExtendsPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	body := `
collapse:
  stability: 35
  revolt_risk: 70
  factions:
    warlords: 75
  actors:
    General:
      ambition: 80
`
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	extra, err := LoadScenarioFile(path)
	assert.NoError(t, err)

	s, err := InitialStateFrom("collapse", extra)
	assert.NoError(t, err)
	assert.Equal(t, 35.0, s.Stability)
	assert.Equal(t, 70.0, s.RevoltRisk)
	assert.Equal(t, 75.0, s.Factions.Warlords)
	assert.Equal(t, 80.0, s.Actors.General.Ambition)

	// built-ins still resolve with extras loaded
	_, err = InitialStateFrom(ScenarioDeficit, extra)
	assert.NoError(t, err)
}

func TestLoadScenarioFile_BadYAML_FailsParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := LoadScenarioFile(path)
	assert.Error(t, err)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
