package goals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htdinh/pfob-cli/internal/domain"
)

func TestRenderGoals(t *testing.T) {
	output, err := Render(
		[]domain.Goal{
			{
				Purpose:       "Ăn uống",
				LimitAmount:   3000000,
				Spent:         1200000,
				Cycle:         domain.CycleMonthly,
				BankName:      "Vietcombank",
				MaskedAccount: "•••6789",
			},
			{Purpose: "Mua sắm", LimitAmount: 1000000, Spent: 1500000, Cycle: domain.CycleWeekly},
		},
		[]domain.GoalAlert{
			{Purpose: "Mua sắm", Message: "Vượt hạn mức tuần này", Level: "danger"},
		},
	)

	require.NoError(t, err)
	assert.Contains(t, output, "Hạn mức chi tiêu (2)")
	assert.Contains(t, output, "Ăn uống (Vietcombank •••6789)")
	assert.Contains(t, output, "1.200.000 / 3.000.000 mỗi tháng")
	assert.Contains(t, output, "1.500.000 / 1.000.000 mỗi tuần")
	assert.Contains(t, output, "Vượt hạn mức tuần này")
}

func TestRenderGoalsEmpty(t *testing.T) {
	output, err := Render(nil, nil)

	require.NoError(t, err)
	assert.Contains(t, output, "Chưa đặt hạn mức nào.")
	assert.NotContains(t, output, "Cảnh báo")
}

func TestRenderProgressBarCapsAtLimit(t *testing.T) {
	s := newStyles()

	over := renderProgressBar(domain.Goal{LimitAmount: 100, Spent: 250}, s)
	assert.Contains(t, over, "========================")
	assert.NotContains(t, over, "-")

	half := renderProgressBar(domain.Goal{LimitAmount: 100, Spent: 50}, s)
	assert.Contains(t, half, "============")
	assert.Contains(t, half, "-")
}
