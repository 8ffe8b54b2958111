// Package chain combines two token stores: reads prefer the primary,
// writes fall through to the fallback when the primary cannot serve them.
package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/htdinh/pfob-cli/internal/adapters/token/env"
	filestore "github.com/htdinh/pfob-cli/internal/adapters/token/file"
	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

type Store struct {
	primary  ports.TokenStore
	fallback ports.TokenStore
}

var _ ports.TokenStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary, fallback ports.TokenStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewEnvFirstWithFileFallback prefers the process environment for reads and
// persists to a token file under fileRoot.
func NewEnvFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(envstore.NewStore(envstore.DefaultVar), filestore.NewStore(fileRoot))
}

func (s *Store) Load(ctx context.Context) (string, error) {
	token, err := s.primary.Load(ctx)
	if err == nil {
		return token, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackToken, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackToken, nil
	}
	if errors.Is(err, domain.ErrTokenNotFound) && errors.Is(fallbackErr, domain.ErrTokenNotFound) {
		return "", domain.ErrTokenNotFound
	}

	return "", fmt.Errorf("primary store load failed: %w; fallback store load failed: %w", err, fallbackErr)
}

func (s *Store) Save(ctx context.Context, token string) error {
	err := s.primary.Save(ctx, token)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary store save failed: %w; fallback store save failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	fallbackErr := s.fallback.Clear(ctx)
	if shouldSkipFallback(err) || shouldSkipFallback(fallbackErr) {
		return ctx.Err()
	}
	// a read-only primary cannot hold a stale token, so only the fallback
	// result matters for idempotent clears
	if fallbackErr != nil {
		return fmt.Errorf("fallback store clear failed: %w", fallbackErr)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
