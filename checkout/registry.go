package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry keeps the live checkout sessions of this process. Sessions are
// dropped as soon as they close, or once they sit idle longer than the TTL.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	placer   OrderPlacer
	logger   *zap.Logger
	now      func() time.Time
}

func NewRegistry(ttl time.Duration, placer OrderPlacer, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		placer:   placer,
		logger:   logger,
		now:      time.Now,
	}
}

// Start opens a new session for the user over the given cart.
func (r *Registry) Start(userID uint, cart Cart) *Session {
	s := NewSession(uuid.NewString(), userID, cart, r.placer)
	s.onClose = r.remove

	r.mu.Lock()
	r.sessions[s.ID] = &entry{session: s, lastSeen: r.now()}
	r.mu.Unlock()

	r.logger.Info("checkout session started",
		zap.String("session_id", s.ID),
		zap.Uint("user_id", userID),
	)
	return s
}

// Get returns a live session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	if r.expired(e, now) {
		delete(r.sessions, id)
		r.logger.Info("checkout session expired", zap.String("session_id", id))
		return nil, ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

// Sweep evicts every idle session and reports how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.logger.Info("evicted idle checkout sessions", zap.Int("count", evicted))
	}
	return evicted
}

// Len is the number of sessions currently held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.ttl > 0 && now.Sub(e.lastSeen) > r.ttl
}

func (r *Registry) remove(s *Session) {
	r.mu.Lock()
	delete(r.sessions, s.ID)
	r.mu.Unlock()

	r.logger.Info("checkout session closed",
		zap.String("session_id", s.ID),
		zap.String("status", string(s.status)),
	)
}
