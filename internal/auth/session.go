package auth

import (
	"context"
	"errors"
	"sync"

	"collab-dashboard/internal/model"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

// Session resolves the caller once and serves the snapshot afterwards.
type Session struct {
	fetcher IdentityFetcher
	l       log.Logger

	mu      sync.RWMutex
	user    *model.User
	loading bool
}

var _ UserContext = (*Session)(nil)

// NewSession creates a Session in the loading state. Call Load to resolve it.
func NewSession(fetcher IdentityFetcher, l log.Logger) *Session {
	return &Session{fetcher: fetcher, l: l, loading: true}
}

// Load fetches the caller. Failures leave the session anonymous and are returned
// for logging only; callers never need to block on them.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	identity, err := s.fetcher.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.user = nil
		if errors.Is(err, apigateway.ErrUnauthenticated) {
			s.l.Debugf(ctx, "auth.Session.Load: anonymous caller")
			return nil
		}
		s.l.Warnf(ctx, "auth.Session.Load: %v", err)
		return err
	}
	s.user = toUser(identity)
	return nil
}

// User implements UserContext.
func (s *Session) User() (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, s.loading
	}
	u := *s.user
	return &u, s.loading
}

func toUser(identity *apigateway.Identity) *model.User {
	if identity == nil {
		return nil
	}
	return &model.User{
		ID:       identity.ID,
		Name:     identity.Name,
		Surname:  identity.Surname,
		Email:    identity.Email,
		FullName: identity.FullName,
	}
}

// Static is a UserContext that always reports the same user and is never loading.
type Static struct {
	user *model.User
}

// NewStatic wraps user. A nil user models an anonymous caller.
func NewStatic(user *model.User) Static {
	return Static{user: user}
}

// User implements UserContext.
func (s Static) User() (*model.User, bool) {
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, false
}
