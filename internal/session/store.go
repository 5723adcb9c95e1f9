package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pizza-nz/backoffice-service/internal/metrics"
)

// Store is the registry of logged-in sessions. It keeps copies, so callers
// cannot mutate a stored session without saving it again.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]Session)}
}

// Save inserts or replaces a session.
func (s *Store) Save(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
}

// Get returns the session with the given ID.
func (s *Store) Get(id uuid.UUID) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session and reports whether it was present.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return ok
}

// Prune drops sessions started before cutoff and returns their IDs.
func (s *Store) Prune(cutoff time.Time) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pruned []uuid.UUID
	for id, sess := range s.sessions {
		if sess.StartedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned = append(pruned, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return pruned
}

// DeleteUser drops every session held by username and returns their IDs.
func (s *Store) DeleteUser(username string) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ended []uuid.UUID
	for id, sess := range s.sessions {
		if sess.Username == username {
			delete(s.sessions, id)
			ended = append(ended, id)
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return ended
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
