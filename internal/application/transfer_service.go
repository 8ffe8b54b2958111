package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// TransferUI is the surrounding input surface the workflow drives: the open
// form (closed only on success, so the user can retry after a failure) and
// the data panes that must re-fetch once a transfer lands.
type TransferUI interface {
	CloseForm()
	RefreshAccounts(ctx context.Context) error
	RefreshRecipients(ctx context.Context) error
}

// TransferService runs the two-phase score-then-transfer workflow. The two
// steps are not transactional from the client's perspective; if the transfer
// step fails after scoring succeeded, reconciling any server-side scoring
// effects is the backend's job.
type TransferService struct {
	tx      ports.TransactionsAPI
	ui      TransferUI
	notices *NotificationCenter
	refresh *RefreshSignal
	format  *money.Formatter
	log     *slog.Logger
}

func NewTransferService(
	tx ports.TransactionsAPI,
	ui TransferUI,
	notices *NotificationCenter,
	refresh *RefreshSignal,
	log *slog.Logger,
) *TransferService {
	if log == nil {
		log = slog.Default()
	}

	return &TransferService{
		tx:      tx,
		ui:      ui,
		notices: notices,
		refresh: refresh,
		format:  money.NewFormatter(),
		log:     log,
	}
}

// Execute scores the transfer, then submits it carrying the score. Requests
// that fail client-side validation are rejected before any network call and
// produce no notice; the form's own validation already explains them. Errors
// from either step are reported as a notice and returned so the form can
// reset its submit state.
func (s *TransferService) Execute(ctx context.Context, req domain.TransferRequest) (domain.ESGScore, error) {
	if err := req.Validate(); err != nil {
		return domain.ESGScore{}, err
	}

	score, err := s.tx.ScoreTransfer(ctx, req)
	if err != nil {
		s.reportFailure("Transfer failed", "Unable to process the transfer right now.", err)
		return domain.ESGScore{}, fmt.Errorf("score transfer: %w", err)
	}

	req.ESGScore = &score.Score
	if _, err := s.tx.Transfer(ctx, req); err != nil {
		s.reportFailure("Transfer failed", "Unable to process the transfer right now.", err)
		return domain.ESGScore{}, fmt.Errorf("submit transfer: %w", err)
	}

	s.ui.CloseForm()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.ui.RefreshAccounts(groupCtx) })
	group.Go(func() error { return s.ui.RefreshRecipients(groupCtx) })
	if err := group.Wait(); err != nil {
		// The transfer itself landed; stale panes catch up on the next fetch.
		s.log.Warn("post-transfer refresh failed", "error", err)
	}

	s.refresh.Bump()

	s.notices.Notify(NoticeSpec{
		Kind:  domain.NoticeSuccess,
		Title: "Transfer complete",
		Message: fmt.Sprintf("Transferred %s VND. %s (grade %s, ESG score %s). ESG point balance: %s.",
			s.format.Number(req.Amount),
			score.Message,
			score.Grade,
			s.format.Points(score.Score),
			s.format.Points(score.AccountPoints),
		),
	})

	return score, nil
}

// ConvertPoints exchanges ESG points for balance on the given account and
// refreshes the account pane. Unlike transfers there is no scoring phase.
func (s *TransferService) ConvertPoints(ctx context.Context, req domain.ConvertRequest) (domain.ConvertResult, error) {
	if req.Points <= 0 {
		return domain.ConvertResult{}, domain.ErrPointsNotPositive
	}

	result, err := s.tx.ConvertPoints(ctx, req)
	if err != nil {
		s.reportFailure("Conversion failed", "Unable to convert ESG points right now.", err)
		return domain.ConvertResult{}, fmt.Errorf("convert esg points: %w", err)
	}

	s.ui.CloseForm()

	if err := s.ui.RefreshAccounts(ctx); err != nil {
		s.log.Warn("post-conversion refresh failed", "error", err)
	}

	s.notices.Notify(NoticeSpec{
		Kind:  domain.NoticeSuccess,
		Title: "Points converted",
		Message: fmt.Sprintf("Converted %s ESG points into %s VND. New balance: %s VND. Remaining points: %s.",
			s.format.Points(req.Points),
			s.format.Number(result.AmountReceived),
			s.format.Number(result.NewBalance),
			s.format.Points(result.RemainingPoints),
		),
	})

	return result, nil
}

func (s *TransferService) reportFailure(title, fallback string, err error) {
	if errors.Is(err, domain.ErrUnauthorized) {
		s.notices.Notify(NoticeSpec{
			Kind:    domain.NoticeDanger,
			Title:   "Session expired",
			Message: "Please sign in again to continue.",
		})
		return
	}

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeDanger,
		Title:   title,
		Message: failureMessage(err, fallback),
	})
}

// failureMessage picks the most specific description available: the
// server-supplied message, then the first field-level validation error, then
// the generic fallback.
func failureMessage(err error, fallback string) string {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Message != "" {
			return reqErr.Message
		}
		if len(reqErr.FieldErrors) > 0 && reqErr.FieldErrors[0].Msg != "" {
			return reqErr.FieldErrors[0].Msg
		}
	}

	return fallback
}
