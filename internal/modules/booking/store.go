package booking

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an untouched draft survives.
const DefaultSessionTTL = 24 * time.Hour

const maxSweepInterval = time.Minute

type entry struct {
	form     *Form
	lastSeen time.Time
}

// Store keeps the live booking forms in memory, keyed by session id.
// Nothing is persisted; a restart drops every draft. Forms idle for longer
// than the TTL are closed and forgotten.
type Store struct {
	creator BookingCreator
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	forms     map[string]*entry
	lastSweep time.Time
}

func NewStore(creator BookingCreator, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		creator: creator,
		ttl:     ttl,
		now:     time.Now,
		forms:   make(map[string]*entry),
	}
}

// TTL is the idle lifetime of a session.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the live form of sessionID and marks it as used.
func (s *Store) Get(sessionID string) (*Form, bool) {
	s.mu.Lock()
	f, expired := s.lookupLocked(sessionID, s.now())
	s.mu.Unlock()

	if expired != nil {
		expired.Close()
	}
	return f, f != nil
}

// GetOrCreate returns the form of sessionID. An empty, unknown or expired id
// starts a new session; the returned id is the one to hand back to the client.
func (s *Store) GetOrCreate(sessionID string) (string, *Form) {
	now := s.now()

	s.mu.Lock()
	f, expired := s.lookupLocked(sessionID, now)
	if f != nil {
		s.mu.Unlock()
		return sessionID, f
	}

	evicted := s.sweepLocked(now)
	if expired != nil {
		evicted = append(evicted, expired)
	}

	id := uuid.NewString()
	f = NewForm(s.creator)
	s.forms[id] = &entry{form: f, lastSeen: now}
	s.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
	if len(evicted) > 0 {
		log.Printf("booking_sessions_evicted count=%d", len(evicted))
	}
	return id, f
}

// lookupLocked touches a live entry. An expired entry is removed and returned
// as the second value so the caller can close it outside the lock.
func (s *Store) lookupLocked(sessionID string, now time.Time) (*Form, *Form) {
	if sessionID == "" {
		return nil, nil
	}
	e, ok := s.forms[sessionID]
	if !ok {
		return nil, nil
	}
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.forms, sessionID)
		return nil, e.form
	}
	e.lastSeen = now
	return e.form, nil
}

func (s *Store) sweepLocked(now time.Time) []*Form {
	interval := s.ttl
	if interval > maxSweepInterval {
		interval = maxSweepInterval
	}
	if now.Sub(s.lastSweep) < interval {
		return nil
	}
	s.lastSweep = now

	var evicted []*Form
	for id, e := range s.forms {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.forms, id)
			evicted = append(evicted, e.form)
		}
	}
	return evicted
}

// Discard closes and forgets the form of sessionID.
func (s *Store) Discard(sessionID string) bool {
	s.mu.Lock()
	e, ok := s.forms[sessionID]
	delete(s.forms, sessionID)
	s.mu.Unlock()

	if ok {
		e.form.Close()
	}
	return ok
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}
