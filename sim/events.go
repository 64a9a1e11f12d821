// Event model and the conditional/weighted/cooldown-gated selector.
//
// Events are static data loaded once at startup (see catalog.go). Effects are
// table-driven: each choice maps to fixed scalar and faction deltas rather
// than a closure, so the catalog can be inspected and serialized.

package sim

import "math/rand"

// CauseTags is the fixed 11-term vocabulary classifying event causes.
var CauseTags = [11]string{
	TagRiot, TagSecurity, TagEconomy, TagFood, TagPolitics, TagIntel,
	TagMilitary, TagSuccession, TagCorruption, TagDiplomacy, TagLegitimacy,
}

const (
	TagRiot       = "riot"
	TagSecurity   = "security"
	TagEconomy    = "economy"
	TagFood       = "food"
	TagPolitics   = "politics"
	TagIntel      = "intel"
	TagMilitary   = "military"
	TagSuccession = "succession"
	TagCorruption = "corruption"
	TagDiplomacy  = "diplomacy"
	TagLegitimacy = "legitimacy"
)

// Riot-class event ids and their cooldown windows.
const (
	EventMajorRiot = "major-riot"
	EventMinorRiot = "minor-riot"

	majorRiotCooldownTurns = 6
	minorRiotCooldownTurns = 2
)

// Breach rule: during a riot cooldown the minor riot may still fire when
// revolt risk is at least 75 and a fresh draw lands under 0.15.
const (
	breachRevoltRisk = 75.0
	breachChance     = 0.15
)

// EventChoice is one of an event's two resolutions.
type EventChoice struct {
	ID    string
	Label string
}

// Effect holds the fixed deltas one choice applies.
type Effect struct {
	Scalars  Deltas
	Factions FactionDeltas
}

// Event is a static catalog entry. Weight biases selection within a priority
// tier; it never affects which choice resolves.
type Event struct {
	ID        string
	Title     string
	Weight    float64
	Priority  int
	Choices   [2]EventChoice
	Condition func(State) bool
	Effects   map[string]Effect

	Actor        string
	CauseTags    []string
	Severity     int
	Stakeholders []string

	// CooldownTurns is non-zero only for riot-class events. Firing stamps
	// RiotCooldownUntil = turn + CooldownTurns.
	CooldownTurns int
}

// Choose picks one of the two choices uniformly at random.
func (e *Event) Choose(rng *rand.Rand) string {
	return e.Choices[rng.Intn(len(e.Choices))].ID
}

// HasChoice reports whether id names one of the event's choices.
func (e *Event) HasChoice(id string) bool {
	return e.Choices[0].ID == id || e.Choices[1].ID == id
}

// Apply resolves the chosen effect without soft-capping. The engine applies
// the same effect through its soft-capped path; this direct form exists for
// catalog tests and tooling.
func (e *Event) Apply(choice string, s State) State {
	effect, ok := e.Effects[choice]
	if !ok {
		return s
	}
	return s.ApplyDeltas(effect.Scalars).ApplyFactionDeltas(effect.Factions)
}

// SelectEvent runs the selection algorithm against the static catalog:
//
//  1. Keep events whose condition holds.
//  2. Riot gate: while turn < RiotCooldownUntil the major riot is dropped
//     outright and the minor riot survives only via the breach rule.
//  3. Keep only the highest-priority survivors.
//  4. Weighted draw within that tier; on accumulated floating error the last
//     candidate wins rather than erroring.
//
// Returns nil when no candidate survives; a turn may pass with no event.
//
// Draw discipline: at most one breach draw (only when the gate applies and
// revolt risk qualifies), then at most one weighted-pick draw. Callers own
// the rng; SelectEvent never seeds or stores one.
func SelectEvent(s State, rng *rand.Rand) *Event {
	var eligible []*Event
	inCooldown := s.Turn < s.RiotCooldownUntil
	for _, ev := range Catalog {
		if !ev.Condition(s) {
			continue
		}
		if inCooldown && ev.ID == EventMajorRiot {
			continue
		}
		if inCooldown && ev.ID == EventMinorRiot {
			breached := false
			if s.RevoltRisk >= breachRevoltRisk {
				breached = rng.Float64() < breachChance
			}
			if !breached {
				continue
			}
		}
		eligible = append(eligible, ev)
	}
	if len(eligible) == 0 {
		return nil
	}

	maxPriority := eligible[0].Priority
	for _, ev := range eligible[1:] {
		if ev.Priority > maxPriority {
			maxPriority = ev.Priority
		}
	}
	var top []*Event
	total := 0.0
	for _, ev := range eligible {
		if ev.Priority == maxPriority {
			top = append(top, ev)
			total += ev.Weight
		}
	}

	pick := rng.Float64() * total
	upto := 0.0
	for _, ev := range top {
		upto += ev.Weight
		if upto >= pick {
			return ev
		}
	}
	return top[len(top)-1]
}

// EventByID looks up a catalog entry. Returns nil for unknown ids.
func EventByID(id string) *Event {
	for _, ev := range Catalog {
		if ev.ID == id {
			return ev
		}
	}
	return nil
}
