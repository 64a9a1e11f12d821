// The TurnEngine: composes the StateModel and the event catalog into the
// single-turn transition function. Step is a pure function of (state, rng
// draw sequence); two runs with the same seed and call sequence produce
// byte-identical logs.

package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Soft-cap damping tiers. A faction whose pre-event share already sits at or
// above the tier keeps only the scaled fraction of a raw positive event
// delta. Decreases are never dampened.
const (
	softCapHigh        = 95.0
	softCapHighScale   = 0.15
	softCapMedium      = 85.0
	softCapMediumScale = 0.35
)

// EventOutcome pairs the selected event with the choice that resolved it.
type EventOutcome struct {
	Event  *Event
	Choice string
}

func balanceScore(f Factions) float64 {
	return f.Max() - f.Min()
}

// computeTurnUpdates applies the continuous pressure formulas.
func computeTurnUpdates(s State) State {
	balance := balanceScore(s.Factions)
	foodPressure := 50.0 - s.Food
	if foodPressure < 0 {
		foodPressure = 0
	}

	treasuryDelta := (s.Factions.Bureaucrats+s.Factions.Merchants)/50.0 -
		balance/60.0 - foodPressure/25.0

	supportDelta := (s.Legitimacy-50.0)/18.0 - balance/55.0 - foodPressure/22.0

	stabilityDelta := (s.PublicSupport-50.0)/20.0 - balance/65.0 - foodPressure/30.0

	revoltDelta := 0.0
	revoltDelta += max(0.0, 45.0-s.PublicSupport) / 20.0
	revoltDelta += max(0.0, s.Factions.Warlords-55.0) / 18.0
	revoltDelta += max(0.0, 45.0-s.Food) / 16.0
	revoltDelta -= max(0.0, s.Stability-60.0) / 22.0

	return s.ApplyDeltas(Deltas{
		Treasury:      treasuryDelta,
		PublicSupport: supportDelta,
		Stability:     stabilityDelta,
		RevoltRisk:    revoltDelta,
	})
}

// applySoftCappedFactionDeltas applies raw event faction deltas with the
// soft-cap tiers evaluated against the pre-event share. The scaling acts on
// the raw delta before clamping, so a faction at 96 receiving +10 lands at
// 97.5, not 100.
func applySoftCappedFactionDeltas(s State, d FactionDeltas) State {
	damp := func(pre, delta float64) float64 {
		if delta <= 0 {
			return delta
		}
		switch {
		case pre >= softCapHigh:
			return delta * softCapHighScale
		case pre >= softCapMedium:
			return delta * softCapMediumScale
		}
		return delta
	}
	return s.ApplyFactionDeltas(FactionDeltas{
		Royal:       damp(s.Factions.Royal, d.Royal),
		Bureaucrats: damp(s.Factions.Bureaucrats, d.Bureaucrats),
		Warlords:    damp(s.Factions.Warlords, d.Warlords),
		Merchants:   damp(s.Factions.Merchants, d.Merchants),
		Clans:       damp(s.Factions.Clans, d.Clans),
	})
}

// IsBankrupt reports whether the treasury has run dry.
func IsBankrupt(s State) bool {
	return s.Treasury <= 0.0
}

// IsRiot reports whether the state satisfies the major-riot pressure
// condition, ignoring the cooldown gate.
func IsRiot(s State) bool {
	return s.PublicSupport <= 30.0 && s.Stability <= 40.0 && s.RevoltRisk >= 60.0
}

// Step advances the simulation by exactly one turn:
//
//  1. continuous pressure formulas, turn+1
//  2. actor drift (±2 per trait per turn)
//  3. event selection (SelectEvent) and uniform choice resolution
//  4. event effects with faction soft caps
//  5. riot-class events stamp their cooldown
//
// Returns the new state and the resolved event, or nil when the turn passed
// quietly. The rng is caller-supplied; Step draws from it in a fixed order
// and holds no hidden state.
func Step(s State, rng *rand.Rand) (State, *EventOutcome) {
	updated := computeTurnUpdates(s)
	updated.Turn = s.Turn + 1
	updated = applyActorDrift(updated)

	event := SelectEvent(updated, rng)
	if event == nil {
		return updated, nil
	}

	choice := event.Choose(rng)
	effect := event.Effects[choice]
	updated = updated.ApplyDeltas(effect.Scalars)
	updated = applySoftCappedFactionDeltas(updated, effect.Factions)

	if event.CooldownTurns > 0 {
		// a breached minor riot must not shorten a running major cooldown
		if until := updated.Turn + event.CooldownTurns; until > updated.RiotCooldownUntil {
			updated.RiotCooldownUntil = until
		}
	}

	logrus.Debugf("[turn %03d] event=%s choice=%s severity=%d", updated.Turn, event.ID, choice, event.Severity)
	return updated, &EventOutcome{Event: event, Choice: choice}
}
