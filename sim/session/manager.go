package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StoreOpener builds a store for a session key.
type StoreOpener func(key string) (Store, error)

// MemoryOpener backs every session with a fresh in-memory store.
func MemoryOpener(string) (Store, error) {
	return NewMemoryStore(), nil
}

// SessionKey derives the canonical key for a scenario/seed pair.
func SessionKey(scenario string, seed int64) string {
	return fmt.Sprintf("%s-%d", scenario, seed)
}

// Manager maps session keys to live sessions, opening stores on demand.
// Lookups are safe for concurrent use; per-session work is serialized by the
// sessions themselves.
type Manager struct {
	mu       sync.RWMutex
	open     StoreOpener
	sessions map[string]*Session
}

func NewManager(open StoreOpener) *Manager {
	return &Manager{
		open:     open,
		sessions: make(map[string]*Session),
	}
}

// Session returns the live session for key, opening one if needed. An empty
// key allocates an anonymous session under a fresh UUID.
func (m *Manager) Session(key string, seed int64) (*Session, error) {
	if key == "" {
		key = uuid.NewString()
	}

	m.mu.RLock()
	s, ok := m.sessions[key]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}
	store, err := m.open(key)
	if err != nil {
		return nil, fmt.Errorf("open store for session %s: %w", key, err)
	}
	s = New(key, store, seed)
	m.sessions[key] = s
	return s, nil
}

// Keys lists the live session keys.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.sessions))
	for key := range m.sessions {
		keys = append(keys, key)
	}
	return keys
}

// CloseAll closes every live session, returning the first error seen.
func (m *Manager) CloseAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var firstErr error
	for key, s := range m.sessions {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(m.sessions, key)
	}
	return firstErr
}
