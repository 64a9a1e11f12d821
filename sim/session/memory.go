package session

import (
	"sync"

	"github.com/koryo-sim/koryo-sim/sim"
	"github.com/koryo-sim/koryo-sim/sim/overlay"
)

// MemoryStore keeps everything in process memory. It is the default for
// single-run CLI invocations and for tests.
type MemoryStore struct {
	mu        sync.Mutex
	records   []sim.LogRecord
	cursor    int
	hasCursor bool
	meta      overlay.Meta
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AppendRecord(rec sim.LogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

func (s *MemoryStore) ReadLog() ([]sim.LogRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sim.LogRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) ReadCursorState(cursor int) (sim.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cursorStateFromLog(s.records, cursor)
}

func (s *MemoryStore) MaxTurn() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maxTurnFromLog(s.records), nil
}

func (s *MemoryStore) ReadCursor() (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor, s.hasCursor, nil
}

func (s *MemoryStore) WriteCursor(cursor int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = cursor
	s.hasCursor = true
	return nil
}

func (s *MemoryStore) ReadMeta() (overlay.Meta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta := s.meta
	meta.Decisions = append([]overlay.DecisionRecord(nil), s.meta.Decisions...)
	if s.meta.Budget != nil {
		b := *s.meta.Budget
		meta.Budget = &b
	}
	return meta, nil
}

func (s *MemoryStore) WriteMeta(meta overlay.Meta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = meta
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
