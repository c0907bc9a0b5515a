package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"event-portal/internal/pkg/clock"
	"event-portal/internal/pkg/config"
	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

// TokenService binds the browser cookie to a session id.
type TokenService interface {
	GenerateToken(sessionID uuid.UUID, now time.Time) (string, error)
	ValidateToken(token string, now time.Time) (uuid.UUID, error)
	TokenDuration() time.Duration
}

// Registry owns every live session. Sessions idle for longer than the TTL are
// treated as gone and removed by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	factory shared.DataServiceFactory
	tokens  TokenService
	clock   clock.Clock
	ttl     time.Duration
	loc     *time.Location
	logger  *slog.Logger
}

func NewRegistry(
	factory shared.DataServiceFactory,
	tokens TokenService,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		factory:  factory,
		tokens:   tokens,
		clock:    clk,
		ttl:      cfg.Session.TTL,
		loc:      cfg.Calendar.Location(),
		logger:   logger,
	}
}

// Create starts an anonymous session with its own data service client.
func (r *Registry) Create() (*Session, error) {
	ds, err := r.factory.New()
	if err != nil {
		return nil, errs.Wrap(err, "create data service client")
	}

	s := New(uuid.New(), ds, r.clock, r.loc, r.logger)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return s, nil
}

// Get returns the session and refreshes its idle timer.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	now := r.clock.Now()

	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok && r.expired(s, now) {
		delete(r.sessions, id)
		r.mu.Unlock()
		s.close()
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "session %s expired", id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "session %s", id)
	}
	s.touch(now)
	return s, nil
}

func (r *Registry) Delete(id uuid.UUID) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.close()
	}
}

// Sweep removes expired sessions and returns how many were dropped.
func (r *Registry) Sweep() int {
	now := r.clock.Now()

	r.mu.Lock()
	var dropped []*Session
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			dropped = append(dropped, s)
		}
	}
	r.mu.Unlock()

	for _, s := range dropped {
		s.close()
	}
	return len(dropped)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Resolve maps a cookie token to its session. A missing, invalid or expired token,
// or one naming a swept session, yields a fresh session; fresh tells the caller to
// issue a new cookie.
func (r *Registry) Resolve(token string) (s *Session, fresh bool, err error) {
	if token != "" {
		if id, verr := r.tokens.ValidateToken(token, r.clock.Now()); verr == nil {
			if s, gerr := r.Get(id); gerr == nil {
				return s, false, nil
			}
		}
	}

	s, err = r.Create()
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Issue signs a cookie token for s.
func (r *Registry) Issue(s *Session) (string, error) {
	token, err := r.tokens.GenerateToken(s.ID, r.clock.Now())
	if err != nil {
		return "", errs.Wrap(err, "sign session token")
	}
	return token, nil
}

func (r *Registry) TokenDuration() time.Duration {
	return r.tokens.TokenDuration()
}

// Run sweeps expired sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("expired sessions swept", "count", n)
			}
		}
	}
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	if r.ttl <= 0 || s.busy() {
		return false
	}
	return now.Sub(s.idleSince()) > r.ttl
}
