// Implements the StateModel: the immutable per-turn value type and its
// clamping/normalization rules. Every mutation path goes through ApplyDeltas
// or ApplyFactionDeltas, which clamp into [0,100] on write.

package sim

import (
	"encoding/json"
	"math"
)

// FactionKeys lists the five political blocs, in serialization order.
var FactionKeys = [5]string{"royal", "bureaucrats", "warlords", "merchants", "clans"}

// ActorRoles lists the five named individuals, in serialization order.
var ActorRoles = [5]string{"Chancellor", "General", "Treasurer", "ClanHead", "Spymaster"}

const (
	RoleChancellor = "Chancellor"
	RoleGeneral    = "General"
	RoleTreasurer  = "Treasurer"
	RoleClanHead   = "ClanHead"
	RoleSpymaster  = "Spymaster"

	// ActorSystem marks events not driven by a named actor.
	ActorSystem = "system"
)

// Factions holds the influence share (0-100) of each bloc.
// Shares need not sum to 100.
type Factions struct {
	Royal       float64
	Bureaucrats float64
	Warlords    float64
	Merchants   float64
	Clans       float64
}

// FactionDeltas is a set of signed adjustments to faction shares.
type FactionDeltas struct {
	Royal       float64
	Bureaucrats float64
	Warlords    float64
	Merchants   float64
	Clans       float64
}

// ActorTraits holds one actor's loyalty/ambition/influence, each 0-100.
type ActorTraits struct {
	Loyalty   float64
	Ambition  float64
	Influence float64
}

// Actors holds the traits of the five court actors.
type Actors struct {
	Chancellor ActorTraits
	General    ActorTraits
	Treasurer  ActorTraits
	ClanHead   ActorTraits
	Spymaster  ActorTraits
}

// State is the complete simulation state at one turn. It is a value type:
// Step and the Apply* helpers return fresh copies and never alias sub-state
// between turns.
type State struct {
	Turn              int
	Stability         float64
	Legitimacy        float64
	Treasury          float64
	Food              float64
	PublicSupport     float64
	RevoltRisk        float64
	RiotCooldownUntil int
	Factions          Factions
	Actors            Actors
}

// Deltas is a set of signed adjustments to the scalar pressure fields. The
// JSON shape matches the overlay meta format, so decision records round-trip
// through storage unchanged.
type Deltas struct {
	Stability     float64 `json:"stability,omitempty"`
	Legitimacy    float64 `json:"legitimacy,omitempty"`
	Treasury      float64 `json:"treasury,omitempty"`
	Food          float64 `json:"food,omitempty"`
	PublicSupport float64 `json:"public_support,omitempty"`
	RevoltRisk    float64 `json:"revolt_risk,omitempty"`
}

func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(100.0, v))
}

// ApplyDeltas adds the scalar deltas and clamps every field into [0,100].
func (s State) ApplyDeltas(d Deltas) State {
	s.Stability = clamp(s.Stability + d.Stability)
	s.Legitimacy = clamp(s.Legitimacy + d.Legitimacy)
	s.Treasury = clamp(s.Treasury + d.Treasury)
	s.Food = clamp(s.Food + d.Food)
	s.PublicSupport = clamp(s.PublicSupport + d.PublicSupport)
	s.RevoltRisk = clamp(s.RevoltRisk + d.RevoltRisk)
	return s
}

// ApplyFactionDeltas adds the faction deltas and clamps every share into [0,100].
func (s State) ApplyFactionDeltas(d FactionDeltas) State {
	s.Factions.Royal = clamp(s.Factions.Royal + d.Royal)
	s.Factions.Bureaucrats = clamp(s.Factions.Bureaucrats + d.Bureaucrats)
	s.Factions.Warlords = clamp(s.Factions.Warlords + d.Warlords)
	s.Factions.Merchants = clamp(s.Factions.Merchants + d.Merchants)
	s.Factions.Clans = clamp(s.Factions.Clans + d.Clans)
	return s
}

// Normalize clamps every scalar, faction share, and actor trait into [0,100]
// and floors negative turn indices at zero. Used when loading states from
// external records.
func Normalize(s State) State {
	if s.Turn < 0 {
		s.Turn = 0
	}
	if s.RiotCooldownUntil < 0 {
		s.RiotCooldownUntil = 0
	}
	s.Stability = clamp(s.Stability)
	s.Legitimacy = clamp(s.Legitimacy)
	s.Treasury = clamp(s.Treasury)
	s.Food = clamp(s.Food)
	s.PublicSupport = clamp(s.PublicSupport)
	s.RevoltRisk = clamp(s.RevoltRisk)
	s.Factions = NormalizeFactions(s.Factions.toMap())
	s.Actors = NormalizeActors(s.Actors.toMap())
	return s
}

// NormalizeFactions builds a Factions value from a loose mapping, defaulting
// missing keys to 50 and clamping every share.
func NormalizeFactions(m map[string]float64) Factions {
	get := func(key string) float64 {
		if v, ok := m[key]; ok {
			return clamp(v)
		}
		return 50.0
	}
	return Factions{
		Royal:       get("royal"),
		Bureaucrats: get("bureaucrats"),
		Warlords:    get("warlords"),
		Merchants:   get("merchants"),
		Clans:       get("clans"),
	}
}

// NormalizeActors builds an Actors value from a loose mapping, defaulting
// missing roles and missing traits to 50 and clamping everything.
func NormalizeActors(m map[string]map[string]float64) Actors {
	get := func(role string) ActorTraits {
		traits, ok := m[role]
		if !ok {
			return ActorTraits{Loyalty: 50, Ambition: 50, Influence: 50}
		}
		trait := func(name string) float64 {
			if v, ok := traits[name]; ok {
				return clamp(v)
			}
			return 50.0
		}
		return ActorTraits{
			Loyalty:   trait("loyalty"),
			Ambition:  trait("ambition"),
			Influence: trait("influence"),
		}
	}
	return Actors{
		Chancellor: get(RoleChancellor),
		General:    get(RoleGeneral),
		Treasurer:  get(RoleTreasurer),
		ClanHead:   get(RoleClanHead),
		Spymaster:  get(RoleSpymaster),
	}
}

func (f Factions) toMap() map[string]float64 {
	return map[string]float64{
		"royal":       f.Royal,
		"bureaucrats": f.Bureaucrats,
		"warlords":    f.Warlords,
		"merchants":   f.Merchants,
		"clans":       f.Clans,
	}
}

// Share returns the named faction's value. Unknown keys return 0.
func (f Factions) Share(key string) float64 {
	switch key {
	case "royal":
		return f.Royal
	case "bureaucrats":
		return f.Bureaucrats
	case "warlords":
		return f.Warlords
	case "merchants":
		return f.Merchants
	case "clans":
		return f.Clans
	}
	return 0
}

// Max returns the largest faction share.
func (f Factions) Max() float64 {
	return math.Max(f.Royal, math.Max(f.Bureaucrats, math.Max(f.Warlords, math.Max(f.Merchants, f.Clans))))
}

// Min returns the smallest faction share.
func (f Factions) Min() float64 {
	return math.Min(f.Royal, math.Min(f.Bureaucrats, math.Min(f.Warlords, math.Min(f.Merchants, f.Clans))))
}

func (a Actors) toMap() map[string]map[string]float64 {
	traits := func(t ActorTraits) map[string]float64 {
		return map[string]float64{"loyalty": t.Loyalty, "ambition": t.Ambition, "influence": t.Influence}
	}
	return map[string]map[string]float64{
		RoleChancellor: traits(a.Chancellor),
		RoleGeneral:    traits(a.General),
		RoleTreasurer:  traits(a.Treasurer),
		RoleClanHead:   traits(a.ClanHead),
		RoleSpymaster:  traits(a.Spymaster),
	}
}

// Traits returns the named role's traits. Unknown roles return zero traits.
func (a Actors) Traits(role string) ActorTraits {
	switch role {
	case RoleChancellor:
		return a.Chancellor
	case RoleGeneral:
		return a.General
	case RoleTreasurer:
		return a.Treasurer
	case RoleClanHead:
		return a.ClanHead
	case RoleSpymaster:
		return a.Spymaster
	}
	return ActorTraits{}
}

// round2 matches the two-decimal rounding the log format uses.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type actorTraitsJSON struct {
	Loyalty   float64 `json:"loyalty"`
	Ambition  float64 `json:"ambition"`
	Influence float64 `json:"influence"`
}

type stateJSON struct {
	Turn              int                        `json:"turn"`
	Stability         float64                    `json:"stability"`
	Legitimacy        float64                    `json:"legitimacy"`
	Treasury          float64                    `json:"treasury"`
	Food              float64                    `json:"food"`
	PublicSupport     float64                    `json:"public_support"`
	RevoltRisk        float64                    `json:"revolt_risk"`
	RiotCooldownUntil int                        `json:"riot_cooldown_until"`
	Factions          map[string]float64         `json:"factions"`
	Actors            map[string]actorTraitsJSON `json:"actors"`
}

// MarshalJSON serializes the state in the log record shape: snake_case keys,
// faction and actor sub-objects, values rounded to two decimals.
func (s State) MarshalJSON() ([]byte, error) {
	factions := make(map[string]float64, len(FactionKeys))
	for key, v := range s.Factions.toMap() {
		factions[key] = round2(v)
	}
	actors := make(map[string]actorTraitsJSON, len(ActorRoles))
	for role, traits := range s.Actors.toMap() {
		actors[role] = actorTraitsJSON{
			Loyalty:   round2(traits["loyalty"]),
			Ambition:  round2(traits["ambition"]),
			Influence: round2(traits["influence"]),
		}
	}
	return json.Marshal(stateJSON{
		Turn:              s.Turn,
		Stability:         round2(s.Stability),
		Legitimacy:        round2(s.Legitimacy),
		Treasury:          round2(s.Treasury),
		Food:              round2(s.Food),
		PublicSupport:     round2(s.PublicSupport),
		RevoltRisk:        round2(s.RevoltRisk),
		RiotCooldownUntil: s.RiotCooldownUntil,
		Factions:          factions,
		Actors:            actors,
	})
}

// UnmarshalJSON parses the log record shape, defaulting missing faction keys
// and actor roles to 50 and clamping every field.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	actorMap := make(map[string]map[string]float64, len(raw.Actors))
	for role, traits := range raw.Actors {
		actorMap[role] = map[string]float64{
			"loyalty":   traits.Loyalty,
			"ambition":  traits.Ambition,
			"influence": traits.Influence,
		}
	}
	*s = Normalize(State{
		Turn:              raw.Turn,
		Stability:         raw.Stability,
		Legitimacy:        raw.Legitimacy,
		Treasury:          raw.Treasury,
		Food:              raw.Food,
		PublicSupport:     raw.PublicSupport,
		RevoltRisk:        raw.RevoltRisk,
		RiotCooldownUntil: raw.RiotCooldownUntil,
		Factions:          NormalizeFactions(raw.Factions),
		Actors:            NormalizeActors(actorMap),
	})
	return nil
}
