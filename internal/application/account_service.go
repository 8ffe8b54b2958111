package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// AccountService wraps the account pane flows: listing, linking a suggested
// account and syncing transactions. Every successful fetch refreshes the
// local snapshot cache so commands can fall back to it offline.
type AccountService struct {
	bank      ports.BankAPI
	snapshots ports.SnapshotRepository
	notices   *NotificationCenter
	refresh   *RefreshSignal
	clock     ports.Clock
	log       *slog.Logger
}

func NewAccountService(
	bank ports.BankAPI,
	snapshots ports.SnapshotRepository,
	notices *NotificationCenter,
	refresh *RefreshSignal,
	clock ports.Clock,
	log *slog.Logger,
) *AccountService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &AccountService{
		bank:      bank,
		snapshots: snapshots,
		notices:   notices,
		refresh:   refresh,
		clock:     clock,
		log:       log,
	}
}

func (s *AccountService) Overview(ctx context.Context) (domain.AccountOverview, error) {
	overview, err := s.bank.Accounts(ctx)
	if err != nil {
		return domain.AccountOverview{}, fmt.Errorf("fetch accounts: %w", err)
	}

	s.cache(ctx, func(snapshot *domain.Snapshot) {
		snapshot.Linked = overview.Linked
		snapshot.Suggested = overview.Suggested
	})

	return overview, nil
}

func (s *AccountService) Recipients(ctx context.Context) ([]domain.Recipient, error) {
	recipients, err := s.bank.Recipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recipients: %w", err)
	}

	s.cache(ctx, func(snapshot *domain.Snapshot) {
		snapshot.Recipients = recipients
	})

	return recipients, nil
}

// CachedOverview serves the account panes from the local snapshot without
// touching the network.
func (s *AccountService) CachedOverview(ctx context.Context) (domain.Snapshot, error) {
	return s.snapshots.Load(ctx)
}

// Link connects a suggested account through Open Banking and re-fetches the
// account panes.
func (s *AccountService) Link(ctx context.Context, req domain.LinkRequest) (domain.Account, error) {
	linked, err := s.bank.LinkAccount(ctx, req)
	if err != nil {
		s.notices.Notify(NoticeSpec{
			Kind:    domain.NoticeDanger,
			Title:   "Linking failed",
			Message: failureMessage(err, "Unable to link the suggested account. Please try again."),
		})
		return domain.Account{}, fmt.Errorf("link account: %w", err)
	}

	if _, err := s.Overview(ctx); err != nil {
		s.log.Warn("refresh accounts after link", "error", err)
	}

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeSuccess,
		Title:   "Account linked",
		Message: fmt.Sprintf("Added account %s • %s.", linked.BankName, linked.MaskedAccount),
	})

	return linked, nil
}

// Sync pulls fresh transactions for one account, then bumps the refresh
// signal so the transaction browser re-fetches.
func (s *AccountService) Sync(ctx context.Context, id domain.AccountID) (domain.SyncResult, error) {
	result, err := s.bank.SyncAccount(ctx, id)
	if err != nil {
		s.notices.Notify(NoticeSpec{
			Kind:    domain.NoticeDanger,
			Title:   "Sync failed",
			Message: failureMessage(err, "Unable to sync transactions. Please try again."),
		})
		return domain.SyncResult{}, fmt.Errorf("sync account %d: %w", id, err)
	}

	if _, err := s.Overview(ctx); err != nil {
		s.log.Warn("refresh accounts after sync", "error", err)
	}

	s.refresh.Bump()

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeSuccess,
		Title:   "Sync complete",
		Message: fmt.Sprintf("Added %d new transactions, skipped %d.", result.Inserted, result.Skipped),
	})

	return result, nil
}

func (s *AccountService) cache(ctx context.Context, update func(*domain.Snapshot)) {
	if s.snapshots == nil {
		return
	}

	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		snapshot = domain.Snapshot{}
	}
	update(&snapshot)
	snapshot.SyncedAt = s.clock.Now()

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.log.Warn("save account snapshot", "error", err)
	}
}
