package application

import (
	"context"
	"fmt"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// GoalService manages per-account spending goals and the cross-account goal
// views.
type GoalService struct {
	bank    ports.BankAPI
	goals   ports.GoalsAPI
	notices *NotificationCenter
}

func NewGoalService(bank ports.BankAPI, goals ports.GoalsAPI, notices *NotificationCenter) *GoalService {
	return &GoalService{bank: bank, goals: goals, notices: notices}
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goals.Goals(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch goals: %w", err)
	}
	return goals, nil
}

func (s *GoalService) Alerts(ctx context.Context) ([]domain.GoalAlert, error) {
	alerts, err := s.goals.Alerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch goal alerts: %w", err)
	}
	return alerts, nil
}

func (s *GoalService) AccountGoals(ctx context.Context, accountID domain.AccountID) ([]domain.Goal, error) {
	goals, err := s.bank.AccountGoals(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("fetch goals for account %d: %w", accountID, err)
	}
	return goals, nil
}

func (s *GoalService) Create(ctx context.Context, accountID domain.AccountID, spec domain.GoalSpec) (domain.Goal, error) {
	goal, err := s.bank.CreateGoal(ctx, accountID, spec)
	if err != nil {
		s.saveFailed(err)
		return domain.Goal{}, fmt.Errorf("create goal: %w", err)
	}

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeSuccess,
		Title:   "Goal created",
		Message: "The new spending goal is in place.",
	})

	return goal, nil
}

func (s *GoalService) Update(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID, spec domain.GoalSpec) (domain.Goal, error) {
	goal, err := s.bank.UpdateGoal(ctx, accountID, goalID, spec)
	if err != nil {
		s.saveFailed(err)
		return domain.Goal{}, fmt.Errorf("update goal %d: %w", goalID, err)
	}

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeInfo,
		Title:   "Goal updated",
		Message: "The spending goal has been adjusted.",
	})

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, accountID domain.AccountID, goalID domain.GoalID) error {
	if err := s.bank.DeleteGoal(ctx, accountID, goalID); err != nil {
		s.notices.Notify(NoticeSpec{
			Kind:    domain.NoticeDanger,
			Title:   "Goal deletion failed",
			Message: failureMessage(err, "Unable to delete the goal right now."),
		})
		return fmt.Errorf("delete goal %d: %w", goalID, err)
	}

	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeInfo,
		Title:   "Goal removed",
		Message: "The spending goal has been removed.",
	})

	return nil
}

func (s *GoalService) saveFailed(err error) {
	s.notices.Notify(NoticeSpec{
		Kind:    domain.NoticeDanger,
		Title:   "Goal not saved",
		Message: failureMessage(err, "Please check the goal details and try again."),
	})
}
