package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(snapshotPathKey, filepath.Join(t.TempDir(), "snapshot.toml"))

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	return repo
}

func TestRepositoryLoadMissing(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	syncedAt := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	saved := domain.Snapshot{
		Linked: []domain.Account{
			{
				ID:            1,
				InstitutionID: "vcb",
				BankName:      "Vietcombank",
				AccountNumber: "00123456789",
				MaskedAccount: "•••6789",
				OwnerName:     "Nguyễn Văn A",
				Balance:       5000000,
				ESGPoint:      42.5,
				Goals: []domain.Goal{
					{ID: 9, BankAccountID: 1, Purpose: "Ăn uống", LimitAmount: 3000000, Cycle: domain.CycleMonthly, Spent: 1200000},
				},
			},
		},
		Suggested: []domain.SuggestedAccount{
			{InstitutionID: "tcb", AccountNumber: "19036789", BankName: "Techcombank", OwnerName: "Nguyễn Văn A"},
		},
		Recipients: []domain.Recipient{
			{ID: 2, OwnerName: "Trần Thị B", BankName: "BIDV", AccountNumber: "31410001"},
		},
		SyncedAt: syncedAt,
	}

	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestRepositorySaveOverwrites(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Snapshot{
		Linked: []domain.Account{{ID: 1, BankName: "Vietcombank"}},
	}))
	require.NoError(t, repo.Save(ctx, domain.Snapshot{
		Recipients: []domain.Recipient{{ID: 2, OwnerName: "B"}},
	}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Linked)
	require.Len(t, loaded.Recipients, 1)
}

func TestRepositoryFilePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "snapshot.toml")
	cfg := viper.New()
	cfg.Set(snapshotPathKey, path)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Snapshot{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryRejectsNewerSchema(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	cfg := viper.New()
	cfg.Set(snapshotPathKey, path)

	repo, err := NewRepository(cfg)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot schema version")
}
