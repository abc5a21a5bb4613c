package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultIdleTimeout is how long an untouched visitor form is kept.
const DefaultIdleTimeout = 30 * time.Minute

// DefaultMaxSessions caps how many visitor forms are held at once.
const DefaultMaxSessions = 10000

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMaxSessions caps the number of live sessions. Opening a session past
// the cap closes the one seen least recently.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) {
		if n > 0 {
			r.maxSessions = n
		}
	}
}

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry hands every visitor session its own Controller and tears down
// forms that have gone idle.
type Registry struct {
	newController func() *Controller
	idleTimeout   time.Duration
	maxSessions   int
	now           func() time.Time
	log           zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates a registry. factory is called once per new session.
func NewRegistry(factory func() *Controller, idleTimeout time.Duration, log zerolog.Logger, opts ...RegistryOption) *Registry {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	r := &Registry{
		newController: factory,
		idleTimeout:   idleTimeout,
		maxSessions:   DefaultMaxSessions,
		now:           time.Now,
		log:           log,
		sessions:      make(map[string]*session),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the controller for an existing session without creating
// one.
func (r *Registry) Lookup(id string) (*Controller, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.ctrl, true
}

// Acquire returns the controller for id. Unknown or empty ids get a fresh
// controller under a newly generated id, which is returned alongside.
func (r *Registry) Acquire(id string) (*Controller, string) {
	r.mu.Lock()
	now := r.now()
	if s, ok := r.sessions[id]; ok && id != "" {
		s.lastSeen = now
		r.mu.Unlock()
		return s.ctrl, id
	}

	var evicted *Controller
	if len(r.sessions) >= r.maxSessions {
		evicted = r.evictOldestLocked()
	}
	id = uuid.NewString()
	s := &session{ctrl: r.newController(), lastSeen: now}
	r.sessions[id] = s
	r.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		r.log.Warn().Int("max_sessions", r.maxSessions).Msg("contact session limit reached, oldest form closed")
	}
	r.log.Debug().Str("session", id).Msg("contact session opened")
	return s.ctrl, id
}

func (r *Registry) evictOldestLocked() *Controller {
	var oldestID string
	var oldest *session
	for id, s := range r.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, s
		}
	}
	if oldest == nil {
		return nil
	}
	delete(r.sessions, oldestID)
	return oldest.ctrl
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle since before now minus the idle timeout and
// returns how many were dropped.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	var stale []*Controller
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.idleTimeout {
			stale = append(stale, s.ctrl)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, ctrl := range stale {
		ctrl.Close()
	}
	if len(stale) > 0 {
		r.log.Debug().Int("closed", len(stale)).Msg("idle contact sessions swept")
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return
		case <-ticker.C:
			r.Sweep(r.now())
		}
	}
}

// CloseAll tears down every session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.ctrl.Close()
	}
}
