// The static event catalog. Conditions and per-choice deltas define game
// balance and must not be tuned casually; scenario sweeps (cmd/sweep.go)
// exist to validate changes here.

package sim

// Catalog is the full event table, loaded once at startup. Order matters only
// for the deterministic weighted walk within a priority tier.
var Catalog = []*Event{
	{
		ID:       "granary-crackdown",
		Title:    "곡창의 균열",
		Weight:   1.2,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "audit", Label: "감사단을 보내 세곡을 회수한다."},
			{ID: "pardon", Label: "유출을 눈감고 상단과 타협한다."},
		},
		Condition: func(s State) bool { return s.Turn == 1 },
		Effects: map[string]Effect{
			"audit": {
				Scalars:  Deltas{Treasury: 6, Stability: 2, Legitimacy: 1},
				Factions: FactionDeltas{Bureaucrats: 4, Merchants: -2},
			},
			"pardon": {
				Scalars:  Deltas{Treasury: -3, Stability: -2, PublicSupport: 2},
				Factions: FactionDeltas{Merchants: 5, Bureaucrats: -3},
			},
		},
		Actor:        RoleTreasurer,
		CauseTags:    []string{TagCorruption, TagEconomy},
		Severity:     2,
		Stakeholders: []string{RoleTreasurer},
	},
	{
		ID:       "border-lords",
		Title:    "변방의 성벽",
		Weight:   1.0,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "reinforce", Label: "방어선을 강화한다."},
			{ID: "delay", Label: "군량을 아끼고 방치한다."},
		},
		Condition: func(s State) bool { return s.Factions.Warlords >= 50 },
		Effects: map[string]Effect{
			"reinforce": {
				Scalars:  Deltas{Treasury: -4, Stability: 2, Food: -2},
				Factions: FactionDeltas{Warlords: 3, Royal: 2},
			},
			"delay": {
				Scalars:  Deltas{Stability: -3, Legitimacy: -2, PublicSupport: -1},
				Factions: FactionDeltas{Warlords: 4, Royal: -3},
			},
		},
		Actor:        RoleGeneral,
		CauseTags:    []string{TagMilitary, TagSecurity},
		Severity:     3,
		Stakeholders: []string{RoleGeneral},
	},
	{
		ID:       "bureaucrat-reform",
		Title:    "관료 개혁 요구",
		Weight:   1.1,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "promote", Label: "개혁안을 수용한다."},
			{ID: "reject", Label: "문벌의 힘을 보전한다."},
		},
		Condition: func(s State) bool { return s.Factions.Bureaucrats >= 55 },
		Effects: map[string]Effect{
			"promote": {
				Scalars:  Deltas{Legitimacy: 4, PublicSupport: 3},
				Factions: FactionDeltas{Bureaucrats: 4, Clans: -2},
			},
			"reject": {
				Scalars:  Deltas{Stability: -2, Legitimacy: -3},
				Factions: FactionDeltas{Clans: 3, Bureaucrats: -2},
			},
		},
		Actor:        RoleChancellor,
		CauseTags:    []string{TagPolitics},
		Severity:     2,
		Stakeholders: []string{RoleChancellor},
	},
	{
		ID:       "trade-charter",
		Title:    "상단의 특허",
		Weight:   1.0,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "open", Label: "개방을 허락한다."},
			{ID: "limit", Label: "상단을 규제한다."},
		},
		Condition: func(s State) bool { return s.Factions.Merchants >= 50 },
		Effects: map[string]Effect{
			"open": {
				Scalars:  Deltas{Treasury: 5, PublicSupport: 1},
				Factions: FactionDeltas{Merchants: 4, Warlords: -1},
			},
			"limit": {
				Scalars:  Deltas{Treasury: -2, Stability: 2},
				Factions: FactionDeltas{Royal: 2, Merchants: -2},
			},
		},
		Actor:        RoleTreasurer,
		CauseTags:    []string{TagEconomy, TagDiplomacy},
		Severity:     1,
		Stakeholders: []string{RoleTreasurer},
	},
	{
		ID:       "harvest-appeal",
		Title:    "풍년 분배",
		Weight:   0.9,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "release", Label: "곡물 창고를 연다."},
			{ID: "tax", Label: "추가 세곡을 걷는다."},
		},
		Condition: func(s State) bool { return s.Food >= 55 },
		Effects: map[string]Effect{
			"release": {
				Scalars:  Deltas{Food: 8, PublicSupport: 3},
				Factions: FactionDeltas{Royal: 1, Clans: -1},
			},
			"tax": {
				Scalars:  Deltas{Food: -2, Treasury: 4, PublicSupport: -3},
				Factions: FactionDeltas{Clans: 2, Royal: -1},
			},
		},
		Actor:        RoleChancellor,
		CauseTags:    []string{TagFood, TagEconomy},
		Severity:     1,
		Stakeholders: []string{RoleChancellor, RoleTreasurer},
	},
	{
		ID:       "royal-guard",
		Title:    "친위대 확충",
		Weight:   1.2,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "expand", Label: "친위대를 확대한다."},
			{ID: "delay", Label: "확충을 유예한다."},
		},
		Condition: func(s State) bool { return s.Legitimacy <= 55 },
		Effects: map[string]Effect{
			"expand": {
				Scalars:  Deltas{Stability: 3, Treasury: -4},
				Factions: FactionDeltas{Royal: 4, Bureaucrats: -1},
			},
			"delay": {
				Scalars:  Deltas{Stability: -2, Legitimacy: -1},
				Factions: FactionDeltas{Bureaucrats: 2, Royal: -2},
			},
		},
		Actor:        RoleGeneral,
		CauseTags:    []string{TagSecurity, TagLegitimacy},
		Severity:     2,
		Stakeholders: []string{RoleGeneral},
	},
	{
		ID:       "tax-reform",
		Title:    "세제 개편",
		Weight:   1.1,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "raise", Label: "세율을 올린다."},
			{ID: "ease", Label: "세율을 낮춘다."},
		},
		Condition: func(s State) bool { return s.Treasury <= 45 },
		Effects: map[string]Effect{
			"raise": {
				Scalars:  Deltas{Treasury: 6, PublicSupport: -4, Stability: -2},
				Factions: FactionDeltas{Bureaucrats: 2, Merchants: -2},
			},
			"ease": {
				Scalars:  Deltas{Treasury: -3, PublicSupport: 3},
				Factions: FactionDeltas{Merchants: 2, Bureaucrats: -1},
			},
		},
		Actor:        RoleTreasurer,
		CauseTags:    []string{TagEconomy, TagPolitics},
		Severity:     2,
		Stakeholders: []string{RoleTreasurer, RoleChancellor},
	},
	{
		ID:       "court-petition",
		Title:    "문벌 상소",
		Weight:   1.0,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "conciliate", Label: "상소를 수용한다."},
			{ID: "reject", Label: "왕권을 강조한다."},
		},
		Condition: func(s State) bool { return s.Factions.Clans >= 52 && s.Stability < 60 },
		Effects: map[string]Effect{
			"conciliate": {
				Scalars:  Deltas{Legitimacy: 2, Stability: 2},
				Factions: FactionDeltas{Clans: 3, Royal: -2},
			},
			"reject": {
				Scalars:  Deltas{Legitimacy: -2, Stability: -3},
				Factions: FactionDeltas{Royal: 3, Clans: -3},
			},
		},
		Actor:        RoleClanHead,
		CauseTags:    []string{TagPolitics, TagSuccession},
		Severity:     2,
		Stakeholders: []string{RoleClanHead},
	},
	{
		ID:       "black-market",
		Title:    "암시장 확산",
		Weight:   0.8,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "crackdown", Label: "단속을 강화한다."},
			{ID: "tolerate", Label: "거래를 묵인한다."},
		},
		Condition: func(s State) bool { return s.PublicSupport < 55 },
		Effects: map[string]Effect{
			"crackdown": {
				Scalars:  Deltas{Stability: 2, PublicSupport: -1},
				Factions: FactionDeltas{Bureaucrats: 2, Merchants: -3},
			},
			"tolerate": {
				Scalars:  Deltas{Treasury: 3, PublicSupport: 1},
				Factions: FactionDeltas{Merchants: 3, Bureaucrats: -1},
			},
		},
		Actor:        RoleSpymaster,
		CauseTags:    []string{TagCorruption, TagEconomy},
		Severity:     1,
		Stakeholders: []string{RoleSpymaster, RoleTreasurer},
	},
	{
		ID:       "famine-relief",
		Title:    "기근 대응",
		Weight:   1.3,
		Priority: 3,
		Choices: [2]EventChoice{
			{ID: "mobilize", Label: "구휼과 군량 조달을 지시한다."},
			{ID: "delay", Label: "지원을 늦춘다."},
		},
		Condition: func(s State) bool { return s.Food < 40 },
		Effects: map[string]Effect{
			"mobilize": {
				Scalars:  Deltas{Food: 6, Treasury: -4, PublicSupport: 4},
				Factions: FactionDeltas{Bureaucrats: 2, Royal: 1},
			},
			"delay": {
				Scalars:  Deltas{Food: -3, Stability: -4, PublicSupport: -4},
				Factions: FactionDeltas{Clans: 2, Royal: -2},
			},
		},
		Actor:        RoleChancellor,
		CauseTags:    []string{TagFood},
		Severity:     4,
		Stakeholders: []string{RoleChancellor},
	},

	// Riot-class events. Both stamp a cooldown when they fire; the selector
	// gates them while the cooldown runs (events.go).
	{
		ID:       EventMajorRiot,
		Title:    "대규모 봉기",
		Weight:   1.5,
		Priority: 5,
		Choices: [2]EventChoice{
			{ID: "suppress", Label: "군을 투입해 진압한다."},
			{ID: "concede", Label: "봉기군의 요구를 받아들인다."},
		},
		Condition: func(s State) bool {
			return s.PublicSupport <= 30 && s.Stability <= 40 && s.RevoltRisk >= 60 &&
				s.Turn >= s.RiotCooldownUntil
		},
		Effects: map[string]Effect{
			"suppress": {
				Scalars:  Deltas{Stability: 4, PublicSupport: -5, RevoltRisk: -12, Treasury: -6},
				Factions: FactionDeltas{Warlords: 4, Royal: 2},
			},
			"concede": {
				Scalars:  Deltas{Legitimacy: -4, PublicSupport: 6, RevoltRisk: -10, Treasury: -4},
				Factions: FactionDeltas{Clans: 3, Royal: -3},
			},
		},
		Actor:         RoleGeneral,
		CauseTags:     []string{TagRiot, TagSecurity},
		Severity:      5,
		Stakeholders:  []string{RoleGeneral},
		CooldownTurns: majorRiotCooldownTurns,
	},
	{
		ID:       EventMinorRiot,
		Title:    "저잣거리 소요",
		Weight:   1.2,
		Priority: 4,
		Choices: [2]EventChoice{
			{ID: "disperse", Label: "관군을 보내 해산시킨다."},
			{ID: "appease", Label: "곡식을 풀어 달랜다."},
		},
		Condition: func(s State) bool {
			return s.PublicSupport <= 45 && s.Stability <= 55 && s.RevoltRisk >= 55
		},
		Effects: map[string]Effect{
			"disperse": {
				Scalars:  Deltas{Stability: 2, PublicSupport: -3, RevoltRisk: -7},
				Factions: FactionDeltas{Warlords: 2, Clans: -1},
			},
			"appease": {
				Scalars:  Deltas{Food: -3, Treasury: -2, PublicSupport: 4, RevoltRisk: -6},
				Factions: FactionDeltas{Clans: 2, Royal: -1},
			},
		},
		Actor:         RoleGeneral,
		CauseTags:     []string{TagRiot},
		Severity:      3,
		Stakeholders:  []string{RoleGeneral},
		CooldownTurns: minorRiotCooldownTurns,
	},

	// Actor-driven events, gated on court traits.
	{
		ID:       "spy-whisper",
		Title:    "첩보의 속삭임",
		Weight:   1.0,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "purge", Label: "세작을 색출한다."},
			{ID: "ignore", Label: "못 들은 척한다."},
		},
		Condition: func(s State) bool { return s.Actors.Spymaster.Ambition >= 70 },
		Effects: map[string]Effect{
			"purge": {
				Scalars:  Deltas{Stability: -1, Legitimacy: 2},
				Factions: FactionDeltas{Royal: 2, Clans: -2},
			},
			"ignore": {
				Scalars:  Deltas{Legitimacy: -1, RevoltRisk: 2},
				Factions: FactionDeltas{Clans: 1, Royal: -1},
			},
		},
		Actor:        RoleSpymaster,
		CauseTags:    []string{TagIntel},
		Severity:     2,
		Stakeholders: []string{RoleSpymaster},
	},
	{
		ID:       "chancellor-overreach",
		Title:    "재상의 전횡",
		Weight:   1.0,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "curb", Label: "재상의 권한을 줄인다."},
			{ID: "indulge", Label: "재상에게 힘을 실어준다."},
		},
		Condition: func(s State) bool { return s.Actors.Chancellor.Influence >= 75 },
		Effects: map[string]Effect{
			"curb": {
				Scalars:  Deltas{Legitimacy: 2, Stability: -2},
				Factions: FactionDeltas{Royal: 3, Bureaucrats: -3},
			},
			"indulge": {
				Scalars:  Deltas{Legitimacy: -3, Treasury: 2},
				Factions: FactionDeltas{Bureaucrats: 4, Royal: -2},
			},
		},
		Actor:        RoleChancellor,
		CauseTags:    []string{TagPolitics, TagCorruption},
		Severity:     3,
		Stakeholders: []string{RoleChancellor},
	},
	{
		ID:       "general-parade",
		Title:    "개선 열병식",
		Weight:   1.1,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "honor", Label: "열병식을 성대히 치른다."},
			{ID: "restrain", Label: "행사를 축소한다."},
		},
		Condition: func(s State) bool {
			return s.Actors.General.Ambition >= 65 && s.Factions.Warlords >= 45
		},
		Effects: map[string]Effect{
			"honor": {
				Scalars:  Deltas{Treasury: -3, Stability: 2, PublicSupport: 1},
				Factions: FactionDeltas{Warlords: 3, Royal: 1},
			},
			"restrain": {
				Scalars:  Deltas{Stability: -1, Legitimacy: 1},
				Factions: FactionDeltas{Warlords: -2, Bureaucrats: 1},
			},
		},
		Actor:        RoleGeneral,
		CauseTags:    []string{TagMilitary},
		Severity:     3,
		Stakeholders: []string{RoleGeneral},
	},
	{
		ID:       "treasury-rumor",
		Title:    "국고 횡령 소문",
		Weight:   0.9,
		Priority: 2,
		Choices: [2]EventChoice{
			{ID: "investigate", Label: "감찰을 붙인다."},
			{ID: "bury", Label: "소문을 덮는다."},
		},
		Condition: func(s State) bool { return s.Actors.Treasurer.Loyalty <= 40 },
		Effects: map[string]Effect{
			"investigate": {
				Scalars:  Deltas{Treasury: 4, Stability: -1, Legitimacy: 1},
				Factions: FactionDeltas{Bureaucrats: 2, Merchants: -1},
			},
			"bury": {
				Scalars:  Deltas{Treasury: -3, Legitimacy: -2},
				Factions: FactionDeltas{Merchants: 2, Bureaucrats: -2},
			},
		},
		Actor:        RoleTreasurer,
		CauseTags:    []string{TagCorruption, TagEconomy},
		Severity:     3,
		Stakeholders: []string{RoleTreasurer, RoleChancellor},
	},
	{
		ID:       "clan-feud",
		Title:    "문중 반목",
		Weight:   1.0,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "mediate", Label: "중재에 나선다."},
			{ID: "side", Label: "왕실 편을 든다."},
		},
		Condition: func(s State) bool {
			return s.Actors.ClanHead.Influence >= 60 && s.Factions.Clans >= 48
		},
		Effects: map[string]Effect{
			"mediate": {
				Scalars:  Deltas{Stability: 2, Legitimacy: 1},
				Factions: FactionDeltas{Clans: 2, Royal: -1},
			},
			"side": {
				Scalars:  Deltas{Stability: -2, Legitimacy: 2},
				Factions: FactionDeltas{Royal: 3, Clans: -3},
			},
		},
		Actor:        RoleClanHead,
		CauseTags:    []string{TagSuccession, TagPolitics},
		Severity:     2,
		Stakeholders: []string{RoleClanHead},
	},
	{
		ID:       "spy-network",
		Title:    "세작망 확충",
		Weight:   0.9,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "fund", Label: "세작망에 은자를 댄다."},
			{ID: "trim", Label: "세작망을 줄인다."},
		},
		Condition: func(s State) bool { return s.Actors.Spymaster.Influence >= 70 },
		Effects: map[string]Effect{
			"fund": {
				Scalars:  Deltas{Treasury: -3, RevoltRisk: -3, Stability: 1},
				Factions: FactionDeltas{Royal: 2, Clans: -1},
			},
			"trim": {
				Scalars:  Deltas{Treasury: 2, RevoltRisk: 3},
				Factions: FactionDeltas{Royal: -2, Warlords: 1},
			},
		},
		Actor:        RoleSpymaster,
		CauseTags:    []string{TagIntel, TagSecurity},
		Severity:     2,
		Stakeholders: []string{RoleSpymaster},
	},
	{
		ID:       "succession-whispers",
		Title:    "후계 풍문",
		Weight:   1.0,
		Priority: 3,
		Choices: [2]EventChoice{
			{ID: "affirm", Label: "세자를 공표한다."},
			{ID: "silence", Label: "풍문의 입을 막는다."},
		},
		Condition: func(s State) bool {
			return s.Legitimacy <= 45 && s.Actors.Chancellor.Ambition >= 60
		},
		Effects: map[string]Effect{
			"affirm": {
				Scalars:  Deltas{Legitimacy: 4, Stability: 2},
				Factions: FactionDeltas{Royal: 3, Clans: -2},
			},
			"silence": {
				Scalars:  Deltas{Legitimacy: -2, Stability: -1, RevoltRisk: 3},
				Factions: FactionDeltas{Clans: 2, Royal: -2},
			},
		},
		Actor:        RoleChancellor,
		CauseTags:    []string{TagSuccession, TagLegitimacy},
		Severity:     4,
		Stakeholders: []string{RoleChancellor, RoleClanHead},
	},
	{
		ID:       "mercenary-offer",
		Title:    "용병단의 제안",
		Weight:   0.8,
		Priority: 1,
		Choices: [2]EventChoice{
			{ID: "hire", Label: "용병을 사들인다."},
			{ID: "decline", Label: "제안을 물리친다."},
		},
		Condition: func(s State) bool {
			return s.Treasury >= 60 && s.Actors.General.Loyalty <= 50
		},
		Effects: map[string]Effect{
			"hire": {
				Scalars:  Deltas{Treasury: -6, Stability: 2, RevoltRisk: -2},
				Factions: FactionDeltas{Warlords: 3, Merchants: 1},
			},
			"decline": {
				Scalars:  Deltas{Stability: -1},
				Factions: FactionDeltas{Warlords: -1, Royal: 1},
			},
		},
		Actor:        RoleGeneral,
		CauseTags:    []string{TagMilitary, TagEconomy},
		Severity:     2,
		Stakeholders: []string{RoleGeneral, RoleTreasurer},
	},
}
