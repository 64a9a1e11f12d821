// Session: the per-key facade over one store. Every public method takes the
// session mutex, so log appends, cursor moves, and overlay writes never
// interleave for a given key.

package session

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/overlay"
)

const (
	budgetEventID    = "budget_allocation"
	budgetEventTitle = "예산 배분"
)

// Session owns one simulation log, its cursor, and its overlay. The RNG is
// partitioned off the session seed, so replaying the same call sequence on
// the same seed reproduces the log bit for bit.
type Session struct {
	key   string
	store Store
	rng   *sim.PartitionedRNG

	mu sync.Mutex
}

// New wraps a store as a session keyed by key and seeded with seed.
func New(key string, store Store, seed int64) *Session {
	return &Session{
		key:   key,
		store: store,
		rng:   sim.NewPartitionedRNG(sim.NewSimulationKey(seed)),
	}
}

// Key returns the session key.
func (s *Session) Key() string { return s.key }

// Run extends the ground-truth log by turns turns. An empty log starts from
// initial; a non-empty log continues from its last recorded state and ignores
// initial. The cursor is initialized to 1 the first time the log is written.
func (s *Session) Run(initial sim.State, turns int) (sim.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.store.ReadLog()
	if err != nil {
		return sim.Summary{}, err
	}
	state := initial
	if len(log) > 0 {
		// resume from the furthest simulated turn, not the last append:
		// synthetic decision/budget records carry older cursor-turn
		// snapshots and must never restart the engine behind MaxTurn
		state, err = cursorStateFromLog(log, maxTurnFromLog(log))
		if err != nil {
			return sim.Summary{}, err
		}
	}

	records, summary := sim.RunSimulation(turns, state, s.rng.ForSubsystem(sim.SubsystemEngine))
	for _, rec := range records {
		if err := s.store.AppendRecord(rec); err != nil {
			return sim.Summary{}, err
		}
	}
	if _, ok, err := s.store.ReadCursor(); err != nil {
		return sim.Summary{}, err
	} else if !ok {
		if err := s.store.WriteCursor(1); err != nil {
			return sim.Summary{}, err
		}
	}
	logrus.Infof("session %s: simulated %d turns (riots=%d, bankruptcies=%d)",
		s.key, turns, summary.Riots, summary.Bankruptcies)
	return summary, nil
}

// Cursor returns the session's cursor turn.
func (s *Session) Cursor() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorLocked()
}

// MaxTurn returns the furthest simulated turn.
func (s *Session) MaxTurn() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.MaxTurn()
}

// Log returns the full ground-truth log.
func (s *Session) Log() ([]sim.LogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ReadLog()
}

// EffectiveState projects the overlay onto the cursor-turn ground truth. The
// log itself is never modified.
func (s *Session) EffectiveState() (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return sim.State{}, err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return sim.State{}, err
	}
	return effectiveState(log, meta, cursor)
}

// FeedEvent is one event as surfaced to the player, with severity adjusted
// for the live intel allocation at the event's own turn.
type FeedEvent struct {
	Turn         int      `json:"turn"`
	ID           string   `json:"id"`
	Title        string   `json:"title,omitempty"`
	Actor        string   `json:"actor,omitempty"`
	Severity     int      `json:"severity,omitempty"`
	CauseTags    []string `json:"cause_tags,omitempty"`
	Stakeholders []string `json:"stakeholders,omitempty"`
	Choice       string   `json:"choice,omitempty"`
}

// Feed returns the events visible at the cursor, oldest first. A positive
// tail limits the result to the most recent tail entries.
func (s *Session) Feed(tail int) ([]FeedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return nil, err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return nil, err
	}

	var events []FeedEvent
	for i := range log {
		rec := &log[i]
		if rec.Event == nil || rec.State.Turn > cursor {
			continue
		}
		events = append(events, FeedEvent{
			Turn:         rec.State.Turn,
			ID:           rec.Event.ID,
			Title:        rec.Event.Title,
			Actor:        rec.Event.Actor,
			Severity:     overlay.VisibleSeverity(rec.Event.Severity, meta.Budget, rec.State.Turn),
			CauseTags:    rec.Event.CauseTags,
			Stakeholders: rec.Event.Stakeholders,
			Choice:       rec.Event.Choice,
		})
	}
	// synthetic records append out of turn order
	sort.SliceStable(events, func(i, j int) bool { return events[i].Turn < events[j].Turn })
	if tail > 0 && len(events) > tail {
		events = events[len(events)-tail:]
	}
	return events, nil
}

// PendingDecision returns the decision id blocking the cursor, or "".
func (s *Session) PendingDecision() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return "", err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return "", err
	}
	return overlay.PendingDecision(log, meta, cursor), nil
}

// RecordDecision resolves the pending decision at the cursor turn: it appends
// a synthetic log record, stores the overlay record, and returns the new
// effective state. Replaying the same decision with the same choice is a
// no-op; a different choice fails with a ValidationError, as does recording a
// decision that is not pending.
func (s *Session) RecordDecision(decisionID, choiceID string) (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return sim.State{}, err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return sim.State{}, err
	}

	for i := range log {
		ev := log[i].Event
		if ev == nil || log[i].State.Turn != cursor || ev.ID != decisionID || ev.Kind != sim.KindDecision {
			continue
		}
		if ev.Choice == choiceID {
			logrus.Debugf("session %s: decision %s/%s already recorded at turn %d",
				s.key, decisionID, choiceID, cursor)
			return effectiveState(log, meta, cursor)
		}
		return sim.State{}, sim.Validationf("decision %s already recorded at turn %d with choice %q",
			decisionID, cursor, ev.Choice)
	}

	if pending := overlay.PendingDecision(log, meta, cursor); pending != decisionID {
		return sim.State{}, sim.Validationf("decision %q is not pending at turn %d", decisionID, cursor)
	}
	rec, err := overlay.NewDecisionRecord(cursor, decisionID, choiceID)
	if err != nil {
		return sim.State{}, err
	}
	base, err := cursorStateFromLog(log, cursor)
	if err != nil {
		return sim.State{}, err
	}

	def, _ := overlay.Decision(decisionID)
	entry := sim.LogRecord{
		State: base,
		Event: &sim.EventRecord{
			ID:     decisionID,
			Title:  def.Title,
			Actor:  sim.ActorSystem,
			Choice: choiceID,
			Kind:   sim.KindDecision,
		},
	}
	if err := s.store.AppendRecord(entry); err != nil {
		return sim.State{}, err
	}
	meta.Decisions = append(meta.Decisions, rec)
	if err := s.store.WriteMeta(meta); err != nil {
		return sim.State{}, err
	}
	logrus.Infof("session %s: recorded %s=%s at turn %d", s.key, decisionID, choiceID, cursor)
	return effectiveState(append(log, entry), meta, cursor)
}

// SetBudget replaces the live budget allocation at the cursor turn. The
// cursor must sit on a five-turn boundary and the shares must sum to 100.
func (s *Session) SetBudget(alloc overlay.BudgetAllocation) (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return sim.State{}, err
	}
	if err := alloc.Validate(); err != nil {
		return sim.State{}, err
	}
	if err := overlay.CheckBudgetBoundary(cursor); err != nil {
		return sim.State{}, err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return sim.State{}, err
	}
	base, err := cursorStateFromLog(log, cursor)
	if err != nil {
		return sim.State{}, err
	}

	entry := sim.LogRecord{
		State: base,
		Event: &sim.EventRecord{
			ID:    budgetEventID,
			Title: budgetEventTitle,
			Actor: sim.ActorSystem,
			Kind:  sim.KindBudget,
			Allocation: map[string]int{
				"security": alloc.Security,
				"economy":  alloc.Economy,
				"intel":    alloc.Intel,
			},
		},
	}
	if err := s.store.AppendRecord(entry); err != nil {
		return sim.State{}, err
	}
	meta.Budget = &overlay.BudgetRecord{
		Security: alloc.Security,
		Economy:  alloc.Economy,
		Intel:    alloc.Intel,
		Turn:     cursor,
	}
	if err := s.store.WriteMeta(meta); err != nil {
		return sim.State{}, err
	}
	logrus.Infof("session %s: budget %d/%d/%d set at turn %d",
		s.key, alloc.Security, alloc.Economy, alloc.Intel, cursor)
	return effectiveState(append(log, entry), meta, cursor)
}

// Advance moves the cursor one turn forward. It fails with a BlockedError
// when a decision is pending at the cursor, or when the cursor already sits
// at the end of the simulated log.
func (s *Session) Advance() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cursor, err := s.cursorLocked()
	if err != nil {
		return 0, err
	}
	log, meta, err := s.logAndMeta()
	if err != nil {
		return 0, err
	}
	if pending := overlay.PendingDecision(log, meta, cursor); pending != "" {
		return 0, sim.Blockedf("decision %s must be resolved before advancing past turn %d", pending, cursor)
	}
	if maxTurn := maxTurnFromLog(log); cursor >= maxTurn {
		return 0, sim.Blockedf("cursor %d is at the end of the simulated log (max turn %d)", cursor, maxTurn)
	}

	cursor++
	if err := s.store.WriteCursor(cursor); err != nil {
		return 0, err
	}
	logrus.Debugf("session %s: cursor advanced to %d", s.key, cursor)
	return cursor, nil
}

// Close releases the underlying store.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Close()
}

func (s *Session) cursorLocked() (int, error) {
	cursor, ok, err := s.store.ReadCursor()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, sim.Rangef("session %s has no recorded turns", s.key)
	}
	return cursor, nil
}

func (s *Session) logAndMeta() ([]sim.LogRecord, overlay.Meta, error) {
	log, err := s.store.ReadLog()
	if err != nil {
		return nil, overlay.Meta{}, err
	}
	meta, err := s.store.ReadMeta()
	if err != nil {
		return nil, overlay.Meta{}, err
	}
	return log, meta, nil
}

func effectiveState(log []sim.LogRecord, meta overlay.Meta, cursor int) (sim.State, error) {
	base, err := cursorStateFromLog(log, cursor)
	if err != nil {
		return sim.State{}, err
	}
	projected := overlay.ApplyDecisions(base, meta.Decisions, cursor)
	return overlay.ApplyBudget(projected, meta.Budget, cursor), nil
}
