package session

import (
	"context"
	"sync"
	"time"

	"github.com/lshigami/apquiz/internal/quiz"
)

type memoryEntry struct {
	session   *quiz.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map. Values are cloned on the
// way in and out so callers never share state with the store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uint]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		entries: make(map[uint]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *MemoryStore) Put(_ context.Context, s *quiz.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[s.UserID] = memoryEntry{session: s.Clone(), expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) PutIfAbsent(_ context.Context, s *quiz.Session) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lookup(s.UserID); ok {
		return false, nil
	}
	m.entries[s.UserID] = memoryEntry{session: s.Clone(), expiresAt: m.now().Add(m.ttl)}
	return true, nil
}

func (m *MemoryStore) Get(_ context.Context, userID uint) (*quiz.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.lookup(userID)
	if !ok {
		return nil, quiz.ErrNoActiveSession
	}
	return s.Clone(), nil
}

func (m *MemoryStore) Update(_ context.Context, userID uint, fn func(*quiz.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.lookup(userID)
	if !ok {
		return quiz.ErrNoActiveSession
	}

	working := s.Clone()
	if err := fn(working); err != nil {
		return err
	}
	m.entries[userID] = memoryEntry{session: working, expiresAt: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Take(_ context.Context, userID uint) (*quiz.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.lookup(userID)
	if !ok {
		return nil, quiz.ErrNoActiveSession
	}
	delete(m.entries, userID)
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
	return nil
}

// lookup must be called with mu held. Expired entries are dropped lazily.
func (m *MemoryStore) lookup(userID uint) (*quiz.Session, bool) {
	e, ok := m.entries[userID]
	if !ok {
		return nil, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.entries, userID)
		return nil, false
	}
	return e.session, true
}
