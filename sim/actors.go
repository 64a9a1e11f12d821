// Actor drift: per-role linear formulas that nudge loyalty/ambition/influence
// each turn from the global scalars and faction shares. Every increment is
// clamped to ±2 before it is added, so no trait can swing more than 2 points
// in a single turn.

package sim

import "math"

const driftLimit = 2.0

func driftClamp(v float64) float64 {
	return math.Max(-driftLimit, math.Min(driftLimit, v))
}

func driftTrait(current, increment float64) float64 {
	return clamp(current + driftClamp(increment))
}

// applyActorDrift returns the state with all five actors drifted one turn.
// The formulas read the post-pressure scalars for the same turn.
func applyActorDrift(s State) State {
	f := s.Factions

	s.Actors.Chancellor = ActorTraits{
		Loyalty:   driftTrait(s.Actors.Chancellor.Loyalty, (s.Legitimacy-50)/25),
		Ambition:  driftTrait(s.Actors.Chancellor.Ambition, (60-s.Stability)/30),
		Influence: driftTrait(s.Actors.Chancellor.Influence, (f.Bureaucrats-50)/30),
	}
	s.Actors.General = ActorTraits{
		Loyalty:   driftTrait(s.Actors.General.Loyalty, (s.Stability-50)/30),
		Ambition:  driftTrait(s.Actors.General.Ambition, (f.Warlords-50)/25),
		Influence: driftTrait(s.Actors.General.Influence, (s.RevoltRisk-40)/35),
	}
	s.Actors.Treasurer = ActorTraits{
		Loyalty:   driftTrait(s.Actors.Treasurer.Loyalty, (s.Treasury-50)/28),
		Ambition:  driftTrait(s.Actors.Treasurer.Ambition, (f.Merchants-50)/30),
		Influence: driftTrait(s.Actors.Treasurer.Influence, (s.Treasury-50)/32),
	}
	s.Actors.ClanHead = ActorTraits{
		Loyalty:   driftTrait(s.Actors.ClanHead.Loyalty, (45-f.Clans)/30),
		Ambition:  driftTrait(s.Actors.ClanHead.Ambition, (f.Clans-50)/25),
		Influence: driftTrait(s.Actors.ClanHead.Influence, (f.Clans-50)/30),
	}
	s.Actors.Spymaster = ActorTraits{
		Loyalty:   driftTrait(s.Actors.Spymaster.Loyalty, (s.Legitimacy-50)/30),
		Ambition:  driftTrait(s.Actors.Spymaster.Ambition, (70-s.PublicSupport)/40),
		Influence: driftTrait(s.Actors.Spymaster.Influence, (s.RevoltRisk-30)/40),
	}
	return s
}
