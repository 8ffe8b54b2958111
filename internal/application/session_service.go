package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// SessionService owns the auth token and current user profile. The token is
// the only durable state the client keeps; the in-memory session is rebuilt
// from it at every process start.
type SessionService struct {
	auth   ports.AuthAPI
	tokens ports.TokenStore
	log    *slog.Logger

	mu           sync.RWMutex
	session      domain.Session
	bootstrapped bool
}

func NewSessionService(auth ports.AuthAPI, tokens ports.TokenStore, log *slog.Logger) *SessionService {
	if log == nil {
		log = slog.Default()
	}

	return &SessionService{auth: auth, tokens: tokens, log: log}
}

func (s *SessionService) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// Bootstrap restores the session from a persisted token. A profile fetch
// failure of any kind just leaves the client logged out and clears the
// stale token; there is no user-facing recovery action at startup. It runs
// at most once per process.
func (s *SessionService) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	s.session.Loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.session.Loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrTokenNotFound) {
			s.log.Warn("load persisted token", "error", err)
		}
		return
	}

	user, err := s.auth.Profile(ctx)
	if err != nil {
		s.log.Debug("profile fetch failed, clearing persisted token", "error", err)
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.log.Warn("clear persisted token", "error", clearErr)
		}
		return
	}

	s.mu.Lock()
	s.session.Token = token
	s.session.User = &user
	s.mu.Unlock()
}

// Login authenticates against the backend, persists the returned token and
// populates the session. Backend errors propagate unchanged so the caller
// decides how to present them.
func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	result, err := s.auth.Login(ctx, creds)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.tokens.Save(ctx, result.Token); err != nil {
		return domain.User{}, fmt.Errorf("persist session token: %w", err)
	}

	s.mu.Lock()
	s.session.Token = result.Token
	user := result.User
	s.session.User = &user
	s.mu.Unlock()

	return result.User, nil
}

// Register creates an account with the same persistence contract as Login
// and returns the full backend payload, which may include auxiliary
// identity-verification data.
func (s *SessionService) Register(ctx context.Context, req domain.RegisterRequest) (domain.Registration, error) {
	result, err := s.auth.Register(ctx, req)
	if err != nil {
		return domain.Registration{}, err
	}

	if err := s.tokens.Save(ctx, result.Token); err != nil {
		return domain.Registration{}, fmt.Errorf("persist session token: %w", err)
	}

	s.mu.Lock()
	s.session.Token = result.Token
	user := result.User
	s.session.User = &user
	s.mu.Unlock()

	return result, nil
}

// Logout clears the persisted token and the in-memory session. It never
// fails and performs no network call; a failure to remove the token file is
// only logged.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn("clear persisted token", "error", err)
	}

	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.mu.Unlock()
}

// Invalidate is the global 401 handler: any API response with status 401
// drops the persisted token so the UI re-derives "not authenticated".
func (s *SessionService) Invalidate(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn("clear persisted token after 401", "error", err)
	}

	s.mu.Lock()
	s.session.Token = ""
	s.session.User = nil
	s.mu.Unlock()
}
