// The Store interface: the log/cursor/overlay triple one session owns.

package session

import (
	"github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/overlay"
)

// Store persists one session's state. Implementations must keep the log
// append-only; turn ordering is implied by each record's state.turn.
//
// Store methods are individually safe to call, but read-modify-write
// sequences are not atomic at this level: Session provides the per-key
// mutual exclusion the core requires.
type Store interface {
	// AppendRecord adds one record to the log.
	AppendRecord(rec sim.LogRecord) error
	// ReadLog returns every record in append order.
	ReadLog() ([]sim.LogRecord, error)
	// ReadCursorState returns the last recorded state with turn <= cursor.
	// Fails with a RangeError when the cursor precedes the first turn.
	ReadCursorState(cursor int) (sim.State, error)
	// MaxTurn returns the furthest simulated turn, 0 for an empty log.
	MaxTurn() (int, error)

	// ReadCursor returns the persisted cursor; ok is false when none has
	// been written yet.
	ReadCursor() (cursor int, ok bool, err error)
	WriteCursor(cursor int) error

	ReadMeta() (overlay.Meta, error)
	WriteMeta(meta overlay.Meta) error

	Close() error
}

// cursorStateFromLog is the shared ReadCursorState implementation: the record
// with the greatest turn not exceeding the cursor. Synthetic records append
// out of turn order, so append position alone cannot decide; among records of
// the same turn the latest append wins.
func cursorStateFromLog(log []sim.LogRecord, cursor int) (sim.State, error) {
	var found *sim.State
	for i := range log {
		turn := log[i].State.Turn
		if turn <= cursor && (found == nil || turn >= found.Turn) {
			found = &log[i].State
		}
	}
	if found == nil {
		return sim.State{}, sim.Rangef("cursor %d precedes the first recorded turn", cursor)
	}
	return *found, nil
}

func maxTurnFromLog(log []sim.LogRecord) int {
	maxTurn := 0
	for i := range log {
		if log[i].State.Turn > maxTurn {
			maxTurn = log[i].State.Turn
		}
	}
	return maxTurn
}
