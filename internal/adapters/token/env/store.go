// Package env reads the session token from an environment variable. The
// store is read-only; Save and Clear fail so a chained fallback can take
// over persistence.
package env

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

const DefaultVar = "PFOB_TOKEN"

var errReadOnly = errors.New("environment token store is read-only")

type Store struct {
	variable string
}

var _ ports.TokenStore = (*Store)(nil)

func NewStore(variable string) *Store {
	if variable == "" {
		variable = DefaultVar
	}
	return &Store{variable: variable}
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token := strings.TrimSpace(os.Getenv(s.variable))
	if token == "" {
		return "", domain.ErrTokenNotFound
	}

	return token, nil
}

func (s *Store) Save(ctx context.Context, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errReadOnly
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return errReadOnly
}
