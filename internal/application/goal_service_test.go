package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func TestGoalCreateAndUpdateNotices(t *testing.T) {
	t.Parallel()

	bank := &fakeBankAPI{}
	notices := NewNotificationCenter(newFakeScheduler())
	service := NewGoalService(bank, &fakeGoalsAPI{}, notices)

	_, err := service.Create(context.Background(), 1, domain.GoalSpec{Purpose: "An uong", LimitAmount: 2_000_000, Cycle: domain.CycleMonthly})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), 1, 5, domain.GoalSpec{Purpose: "An uong", LimitAmount: 2_500_000, Cycle: domain.CycleMonthly})
	require.NoError(t, err)

	queued := notices.Notices()
	require.Len(t, queued, 2)
	assert.Equal(t, domain.NoticeSuccess, queued[0].Kind)
	assert.Equal(t, "Goal created", queued[0].Title)
	assert.Equal(t, domain.NoticeInfo, queued[1].Kind)
	assert.Equal(t, "Goal updated", queued[1].Title)
}

func TestGoalDeleteNotifiesInfo(t *testing.T) {
	t.Parallel()

	notices := NewNotificationCenter(newFakeScheduler())
	service := NewGoalService(&fakeBankAPI{}, &fakeGoalsAPI{}, notices)

	require.NoError(t, service.Delete(context.Background(), 1, 5))

	queued := notices.Notices()
	require.Len(t, queued, 1)
	assert.Equal(t, "Goal removed", queued[0].Title)
	assert.Equal(t, domain.NoticeInfo, queued[0].Kind)
}

func TestGoalListAndAlertsPassThrough(t *testing.T) {
	t.Parallel()

	goals := &fakeGoalsAPI{
		goals:  []domain.Goal{{ID: 1, Purpose: "Di chuyen"}},
		alerts: []domain.GoalAlert{{GoalID: 1, Message: "near limit"}},
	}
	service := NewGoalService(&fakeBankAPI{}, goals, NewNotificationCenter(newFakeScheduler()))

	listed, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	alerts, err := service.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "near limit", alerts[0].Message)
}
