// Scenario presets: named constant overrides applied to the baseline initial
// state. Extra presets can be loaded from a YAML file (see LoadScenarioFile),
// mirroring how tuning constants ship next to the binary.

package sim

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenarios lists the built-in preset names.
var Scenarios = [4]string{ScenarioBaseline, ScenarioFamine, ScenarioDeficit, ScenarioWarlord}

const (
	ScenarioBaseline = "baseline"
	ScenarioFamine   = "famine"
	ScenarioDeficit  = "deficit"
	ScenarioWarlord  = "warlord"
)

// ScenarioOverride replaces selected fields of the baseline initial state.
// Nil pointers and absent map keys leave the baseline value untouched.
type ScenarioOverride struct {
	Stability     *float64 `yaml:"stability"`
	Legitimacy    *float64 `yaml:"legitimacy"`
	Treasury      *float64 `yaml:"treasury"`
	Food          *float64 `yaml:"food"`
	PublicSupport *float64 `yaml:"public_support"`
	RevoltRisk    *float64 `yaml:"revolt_risk"`

	Factions map[string]float64      `yaml:"factions"`
	Actors   map[string]TraitsChange `yaml:"actors"`
}

// TraitsChange overrides selected traits of one actor.
type TraitsChange struct {
	Loyalty   *float64 `yaml:"loyalty"`
	Ambition  *float64 `yaml:"ambition"`
	Influence *float64 `yaml:"influence"`
}

func f(v float64) *float64 { return &v }

var presets = map[string]ScenarioOverride{
	ScenarioBaseline: {},
	ScenarioFamine: {
		Food:          f(30),
		PublicSupport: f(48),
		RevoltRisk:    f(38),
	},
	ScenarioDeficit: {
		Treasury:  f(25),
		Stability: f(55),
	},
	ScenarioWarlord: {
		Stability:  f(50),
		Legitimacy: f(50),
		RevoltRisk: f(40),
		Factions:   map[string]float64{"warlords": 68},
		Actors:     map[string]TraitsChange{RoleGeneral: {Ambition: f(62)}},
	},
}

func baselineState() State {
	return State{
		Turn:          0,
		Stability:     62.0,
		Legitimacy:    58.0,
		Treasury:      55.0,
		Food:          60.0,
		PublicSupport: 57.0,
		RevoltRisk:    24.0,
		Factions: Factions{
			Royal:       58.0,
			Bureaucrats: 52.0,
			Warlords:    41.0,
			Merchants:   48.0,
			Clans:       46.0,
		},
		Actors: Actors{
			Chancellor: ActorTraits{Loyalty: 60, Ambition: 40, Influence: 50},
			General:    ActorTraits{Loyalty: 55, Ambition: 50, Influence: 55},
			Treasurer:  ActorTraits{Loyalty: 58, Ambition: 45, Influence: 48},
			ClanHead:   ActorTraits{Loyalty: 50, Ambition: 52, Influence: 46},
			Spymaster:  ActorTraits{Loyalty: 52, Ambition: 58, Influence: 44},
		},
	}
}

// InitialState builds the starting state for a built-in scenario preset.
// Unknown names fail with a ValidationError.
func InitialState(scenario string) (State, error) {
	return InitialStateFrom(scenario, nil)
}

// InitialStateFrom resolves the scenario against extra overrides first (as
// loaded by LoadScenarioFile), then the built-in presets. The result is
// normalized, so override values outside [0,100] are clamped rather than
// rejected.
func InitialStateFrom(scenario string, extra map[string]ScenarioOverride) (State, error) {
	override, ok := extra[scenario]
	if !ok {
		override, ok = presets[scenario]
	}
	if !ok {
		return State{}, Validationf("unknown scenario %q (have %v)", scenario, scenarioNames(extra))
	}
	return Normalize(applyOverride(baselineState(), override)), nil
}

func applyOverride(s State, o ScenarioOverride) State {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Stability, o.Stability)
	set(&s.Legitimacy, o.Legitimacy)
	set(&s.Treasury, o.Treasury)
	set(&s.Food, o.Food)
	set(&s.PublicSupport, o.PublicSupport)
	set(&s.RevoltRisk, o.RevoltRisk)

	if len(o.Factions) > 0 {
		m := s.Factions.toMap()
		for key, v := range o.Factions {
			if _, ok := m[key]; ok {
				m[key] = v
			}
		}
		s.Factions = NormalizeFactions(m)
	}
	for role, change := range o.Actors {
		traits := s.Actors.Traits(role)
		set(&traits.Loyalty, change.Loyalty)
		set(&traits.Ambition, change.Ambition)
		set(&traits.Influence, change.Influence)
		switch role {
		case RoleChancellor:
			s.Actors.Chancellor = traits
		case RoleGeneral:
			s.Actors.General = traits
		case RoleTreasurer:
			s.Actors.Treasurer = traits
		case RoleClanHead:
			s.Actors.ClanHead = traits
		case RoleSpymaster:
			s.Actors.Spymaster = traits
		}
	}
	return s
}

func scenarioNames(extra map[string]ScenarioOverride) []string {
	names := make([]string, 0, len(presets)+len(extra))
	for name := range presets {
		names = append(names, name)
	}
	for name := range extra {
		if _, builtin := presets[name]; !builtin {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// LoadScenarioFile reads a YAML mapping of scenario name to override block:
//
//	collapse:
//	  stability: 35
//	  factions:
//	    warlords: 75
//	  actors:
//	    General:
//	      ambition: 80
func LoadScenarioFile(path string) (map[string]ScenarioOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	overrides := make(map[string]ScenarioOverride)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, Parsef(err, "scenario file %s", path)
	}
	return overrides, nil
}
