package repository

import (
	"context"
	"sync"
	"time"

	"aaronblog/internal/models"
)

// SessionStore keeps sessions in process memory. Expired entries are dropped
// lazily on lookup.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]models.Session)}
}

var _ Sessions = (*SessionStore)(nil)

func (s *SessionStore) Create(ctx context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get returns the session for id, or (nil, nil) if unknown or expired.
func (s *SessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if sess.Expired(time.Now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	out := sess
	return &out, nil
}

// Delete removes the session. Deleting an unknown id succeeds.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
