package session

import (
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

type Repository interface {
	// Get returns the session for sid. Expired sessions are reported as
	// absent; the rows themselves are purged externally, not here.
	Get(sid string) (Session, error)
}

// InMemoryRepository backs handler tests.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryRepository(seed []Session) *InMemoryRepository {
	r := &InMemoryRepository{sessions: make(map[string]Session, len(seed))}
	for _, s := range seed {
		r.sessions[s.SID] = s
	}
	return r
}

func (r *InMemoryRepository) Get(sid string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sid]
	if !ok || !s.ExpiresAt.After(time.Now()) {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (r *InMemoryRepository) Put(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SID] = s
}
