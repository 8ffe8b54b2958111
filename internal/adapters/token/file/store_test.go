package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "pfob"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-abc"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreLoadTrimsWhitespace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, tokenFileName), []byte("  tok-xyz\n"), 0o600))

	token, err := NewStore(root).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token)
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewStore(t.TempDir()).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreLoadBlankFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, tokenFileName), []byte("   \n"), 0o600))

	_, err := NewStore(root).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestStoreSaveRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	err := NewStore(t.TempDir()).Save(context.Background(), "   ")
	require.Error(t, err)
}

func TestStoreSavePermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "pfob")
	store := NewStore(root)
	require.NoError(t, store.Save(context.Background(), "tok"))

	dirInfo, err := os.Stat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(root, tokenFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestStoreClearIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestStoreRespectsContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(t.TempDir())
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, "tok"), context.Canceled)
	assert.ErrorIs(t, store.Clear(ctx), context.Canceled)
}
