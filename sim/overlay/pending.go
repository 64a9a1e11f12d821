// Decision gating: which decision, if any, blocks the cursor at its current
// turn. Evaluation looks only at events stamped at exactly the cursor turn
// plus the cursor-turn ground-truth state.

package overlay

import "github.com/koryo-sim/koryo-sim/sim"

const (
	// riotResponseRevoltRisk triggers riot_response from pressure alone.
	riotResponseRevoltRisk = 40.0

	// riotResponseSeverity is the minimum severity for a security-tagged
	// event to trigger riot_response.
	riotResponseSeverity = 3
)

// PendingDecision returns the decision id the player must resolve before the
// cursor can advance, or "" when none is due.
//
// riot_response is due when the cursor-turn revolt risk reaches 40, or a
// cursor-turn event carries the security tag with severity >= 3, unless a
// riot_response was recorded within the last 10 turns or one is already
// logged at the cursor. scandal_management is due when a cursor-turn event
// is driven by the Spymaster with an intel or politics tag and none is
// logged at the cursor.
func PendingDecision(log []sim.LogRecord, meta Meta, cursor int) string {
	var cursorState *sim.State
	var cursorEvents []*sim.EventRecord
	for i := range log {
		rec := &log[i]
		turn := rec.State.Turn
		// synthetic records append out of turn order; the greatest turn at
		// or below the cursor is the ground truth
		if turn <= cursor && (cursorState == nil || turn >= cursorState.Turn) {
			cursorState = &rec.State
		}
		if turn == cursor && rec.Event != nil {
			cursorEvents = append(cursorEvents, rec.Event)
		}
	}
	if cursorState == nil {
		return ""
	}

	if riotResponseDue(*cursorState, cursorEvents, meta, cursor) {
		return DecisionRiotResponse
	}
	if scandalDue(cursorEvents) {
		return DecisionScandal
	}
	return ""
}

func riotResponseDue(state sim.State, events []*sim.EventRecord, meta Meta, cursor int) bool {
	if loggedAt(events, DecisionRiotResponse) {
		return false
	}
	for _, r := range meta.Decisions {
		if r.DecisionID == DecisionRiotResponse && cursor-r.Turn < riotResponseCooldown {
			return false
		}
	}

	if state.RevoltRisk >= riotResponseRevoltRisk {
		return true
	}
	for _, ev := range events {
		if ev.Severity >= riotResponseSeverity && hasTag(ev, sim.TagSecurity) {
			return true
		}
	}
	return false
}

func scandalDue(events []*sim.EventRecord) bool {
	if loggedAt(events, DecisionScandal) {
		return false
	}
	for _, ev := range events {
		if ev.Actor == sim.RoleSpymaster && (hasTag(ev, sim.TagIntel) || hasTag(ev, sim.TagPolitics)) {
			return true
		}
	}
	return false
}

func loggedAt(events []*sim.EventRecord, id string) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}

func hasTag(ev *sim.EventRecord, tag string) bool {
	for _, t := range ev.CauseTags {
		if t == tag {
			return true
		}
	}
	return false
}
