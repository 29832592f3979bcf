package httpapi

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/squarecontrol/internal/session"
)

// entry is one live puzzle session.
type entry struct {
	id        string
	levelID   string
	session   *session.Session
	completed bool
	lastUsed  time.Time
}

// registry holds live sessions by id. Sessions idle longer than ttl are
// dropped when a new one is created.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

func newRegistry(ttl time.Duration) *registry {
	return &registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// create registers s and returns its entry.
func (r *registry) create(levelID string, s *session.Session) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.pruneLocked(now)
	e := &entry{
		id:       uuid.NewString(),
		levelID:  levelID,
		session:  s,
		lastUsed: now,
	}
	r.sessions[e.id] = e
	return e
}

// get returns the entry and marks it used.
func (r *registry) get(id string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if ok {
		e.lastUsed = r.now()
	}
	return e, ok
}

// markCompleted flips the completed flag once and reports whether it did.
func (r *registry) markCompleted(e *entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.completed {
		return false
	}
	e.completed = true
	return true
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *registry) pruneLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, e := range r.sessions {
		if now.Sub(e.lastUsed) > r.ttl {
			delete(r.sessions, id)
		}
	}
}
