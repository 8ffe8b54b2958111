package ports

import "context"

// TokenStore persists the single session token across process restarts.
type TokenStore interface {
	// Load returns the persisted token, or domain.ErrTokenNotFound when no
	// token is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an absent token is not an
	// error.
	Clear(ctx context.Context) error
}
