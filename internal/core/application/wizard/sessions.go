package wizard

import (
	"sync"
	"time"

	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
)

// Sessions is the in-memory store of active wizards, one per user. Opening
// a wizard for a user who already has one discards the old instance, so
// there is never concurrent multi-wizard state for a single user.
type Sessions struct {
	mu      sync.Mutex
	byOwner map[string]*Wizard
	ttl     time.Duration
}

// NewSessions creates a session store whose wizards expire after ttl of
// inactivity. Expired wizards are removed by Cleanup, driven by a cron job.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		byOwner: make(map[string]*Wizard),
		ttl:     ttl,
	}
}

// Open creates a fresh wizard for ownerID, replacing any existing one.
func (s *Sessions) Open(ownerID kernel.UUID) *Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := New(ownerID)
	s.byOwner[ownerID.String()] = w
	return w
}

// Get returns the active wizard for ownerID, if any.
func (s *Sessions) Get(ownerID kernel.UUID) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byOwner[ownerID.String()]
	return w, ok
}

// Discard drops the wizard for ownerID. All transient state is lost;
// nothing partial was ever persisted.
func (s *Sessions) Discard(ownerID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byOwner, ownerID.String())
}

// Len returns the number of active wizards.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.byOwner)
}

// Cleanup removes wizards idle longer than the store TTL and returns how
// many were dropped.
func (s *Sessions) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for owner, w := range s.byOwner {
		if w.TouchedAt().Before(cutoff) {
			delete(s.byOwner, owner)
			removed++
		}
	}
	return removed
}
