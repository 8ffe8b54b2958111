package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type memorySnapshotRepo struct {
	snapshot domain.Snapshot
	saved    int
	loadErr  error
	saveErr  error
}

func (m *memorySnapshotRepo) Load(context.Context) (domain.Snapshot, error) {
	if m.loadErr != nil {
		return domain.Snapshot{}, m.loadErr
	}
	if m.snapshot.SyncedAt.IsZero() {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}
	return m.snapshot, nil
}

func (m *memorySnapshotRepo) Save(_ context.Context, snapshot domain.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshot = snapshot
	m.saved++
	return nil
}

func newAccountFixture(bank *fakeBankAPI) (*AccountService, *memorySnapshotRepo, *NotificationCenter, *RefreshSignal) {
	snapshots := &memorySnapshotRepo{}
	notices := NewNotificationCenter(newFakeScheduler())
	refresh := NewRefreshSignal()
	service := NewAccountService(bank, snapshots, notices, refresh, nil, nil)
	return service, snapshots, notices, refresh
}

func TestOverviewCachesSnapshot(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{overview: domain.AccountOverview{
		Linked:    []domain.Account{{ID: 1, BankName: "VCB"}},
		Suggested: []domain.SuggestedAccount{{InstitutionID: "tcb", AccountNumber: "999"}},
	}}
	service, snapshots, _, _ := newAccountFixture(bank)

	overview, err := service.Overview(context.Background())
	require.NoError(t, err)
	assert.Len(t, overview.Linked, 1)

	assert.Equal(t, 1, snapshots.saved)
	assert.Len(t, snapshots.snapshot.Linked, 1)
	assert.Len(t, snapshots.snapshot.Suggested, 1)
	assert.False(t, snapshots.snapshot.SyncedAt.IsZero())
}

func TestRecipientsUpdatesSnapshotWithoutTouchingAccounts(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{recipients: []domain.Recipient{{ID: 9, OwnerName: "Chi"}}}
	service, snapshots, _, _ := newAccountFixture(bank)

	recipients, err := service.Recipients(context.Background())
	require.NoError(t, err)
	require.Len(t, recipients, 1)

	assert.Len(t, snapshots.snapshot.Recipients, 1)
	assert.Empty(t, snapshots.snapshot.Linked)
}

func TestSyncBumpsRefreshSignalAndNotifies(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{sync: domain.SyncResult{Inserted: 12, Skipped: 3}}
	service, _, notices, refresh := newAccountFixture(bank)

	result, err := service.Sync(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Inserted)
	assert.Equal(t, uint64(1), refresh.Version())

	queued := notices.Notices()
	require.Len(t, queued, 1)
	assert.Equal(t, domain.NoticeSuccess, queued[0].Kind)
	assert.Contains(t, queued[0].Message, "12 new transactions")
	assert.Contains(t, queued[0].Message, "skipped 3")
}

func TestSyncFailureDoesNotBump(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{syncErr: errors.New("institution timeout")}
	service, _, notices, refresh := newAccountFixture(bank)

	_, err := service.Sync(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, uint64(0), refresh.Version())

	queued := notices.Notices()
	require.Len(t, queued, 1)
	assert.Equal(t, "Sync failed", queued[0].Title)
	assert.Equal(t, domain.NoticeDanger, queued[0].Kind)
}

func TestLinkSuccessNotifiesWithMaskedAccount(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{linked: domain.Account{ID: 4, BankName: "VCB", MaskedAccount: "***1234"}}
	service, _, notices, _ := newAccountFixture(bank)

	linked, err := service.Link(context.Background(), domain.LinkRequest{InstitutionID: "vcb", AccountNumber: "00001234"})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID(4), linked.ID)

	queued := notices.Notices()
	require.Len(t, queued, 1)
	assert.Contains(t, queued[0].Message, "VCB")
	assert.Contains(t, queued[0].Message, "***1234")
}

func TestLinkFailureSurfacesServerMessage(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{linkErr: &domain.RequestError{Status: 409, Message: "account already linked"}}
	service, _, notices, _ := newAccountFixture(bank)

	_, err := service.Link(context.Background(), domain.LinkRequest{})
	require.Error(t, err)

	queued := notices.Notices()
	require.Len(t, queued, 1)
	assert.Equal(t, "account already linked", queued[0].Message)
}

func TestCachedOverviewMissingSnapshot(t *testing.T) {
	t.Parallel()

	service, _, _, _ := newAccountFixture(&fakeBankAPI{})

	_, err := service.CachedOverview(context.Background())
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
