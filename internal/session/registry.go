package session

import (
	"context"
	"sync"
	"time"
)

// Registry holds live candidate sessions keyed by token so the state machine
// can be driven across stateless HTTP requests. Abandoned sessions are pruned;
// there is no resumption.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Token] = s
}

func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

func (r *Registry) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Prune drops sessions idle longer than maxIdle and terminal ones that
// already reached NotFound or Submitted.
func (r *Registry) Prune(maxIdle time.Duration) int {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, s := range r.sessions {
		st := s.State()
		if st == StateNotFound || st == StateSubmitted || s.idleSince(now) > maxIdle {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// RunJanitor prunes on an interval until ctx is cancelled.
func (r *Registry) RunJanitor(ctx context.Context, every, maxIdle time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.Prune(maxIdle)
		}
	}
}
