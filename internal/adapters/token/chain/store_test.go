package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type stubStore struct {
	token    string
	loadErr  error
	saveErr  error
	clearErr error

	saved   []string
	cleared int
}

func (s *stubStore) Load(_ context.Context) (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.token, nil
}

func (s *stubStore) Save(_ context.Context, token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, token)
	return nil
}

func (s *stubStore) Clear(_ context.Context) error {
	s.cleared++
	return s.clearErr
}

func TestNewStoreRejectsNil(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, &stubStore{})
	require.Error(t, err)

	_, err = NewStore(&stubStore{}, nil)
	require.Error(t, err)
}

func TestLoadPrefersPrimary(t *testing.T) {
	t.Parallel()

	store, err := NewStore(&stubStore{token: "from-env"}, &stubStore{token: "from-file"})
	require.NoError(t, err)

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-env", token)
}

func TestLoadFallsBack(t *testing.T) {
	t.Parallel()

	store, err := NewStore(&stubStore{loadErr: domain.ErrTokenNotFound}, &stubStore{token: "from-file"})
	require.NoError(t, err)

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-file", token)
}

func TestLoadBothMissing(t *testing.T) {
	t.Parallel()

	store, err := NewStore(
		&stubStore{loadErr: domain.ErrTokenNotFound},
		&stubStore{loadErr: domain.ErrTokenNotFound},
	)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestLoadSkipsFallbackOnCancel(t *testing.T) {
	t.Parallel()

	fallback := &stubStore{token: "from-file"}
	store, err := NewStore(&stubStore{loadErr: context.Canceled}, fallback)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveFallsThroughReadOnlyPrimary(t *testing.T) {
	t.Parallel()

	fallback := &stubStore{}
	store, err := NewStore(&stubStore{saveErr: errors.New("read-only")}, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "tok"))
	assert.Equal(t, []string{"tok"}, fallback.saved)
}

func TestClearReachesBothStores(t *testing.T) {
	t.Parallel()

	primary := &stubStore{clearErr: errors.New("read-only")}
	fallback := &stubStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Clear(context.Background()))
	assert.Equal(t, 1, primary.cleared)
	assert.Equal(t, 1, fallback.cleared)
}

func TestClearReportsFallbackFailure(t *testing.T) {
	t.Parallel()

	store, err := NewStore(&stubStore{}, &stubStore{clearErr: errors.New("disk full")})
	require.NoError(t, err)

	assert.Error(t, store.Clear(context.Background()))
}
