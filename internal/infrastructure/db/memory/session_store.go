// Package memory holds a process-local SessionStore for development and
// tests. Records are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/99minutos/jobboard/internal/core/domain"
)

// sweepBatch caps how many records one Save inspects for expiry.
const sweepBatch = 128

type entry struct {
	sess      domain.Session
	expiresAt time.Time
}

type SessionStore struct {
	mu      sync.Mutex
	records map[string]entry
	now     func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{records: make(map[string]entry), now: time.Now}
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.records, id)
		return nil, domain.ErrNotFound
	}
	sess := e.sess
	sess.Flashes = append([]string(nil), e.sess.Flashes...)
	return &sess, nil
}

func (s *SessionStore) Save(_ context.Context, sess *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	clone := *sess
	clone.Flashes = append([]string(nil), sess.Flashes...)
	s.records[sess.ID] = entry{sess: clone, expiresAt: now.Add(ttl)}
	return nil
}

// sweep drops expired records, inspecting at most sweepBatch of them.
// Callers hold s.mu.
func (s *SessionStore) sweep(now time.Time) {
	seen := 0
	for id, e := range s.records {
		if seen == sweepBatch {
			return
		}
		seen++
		if !now.Before(e.expiresAt) {
			delete(s.records, id)
		}
	}
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *SessionStore) Ping(context.Context) error { return nil }
