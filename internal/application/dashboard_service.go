package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/ports"
)

// dashboardWindow is the lookback for the overview stats.
const dashboardWindow = 30 * 24 * time.Hour

type TrendPoint struct {
	Label   string
	Day     time.Time
	Income  int64
	Expense int64
}

type CategoryTotals struct {
	Category string
	Income   int64
	Expense  int64
}

type DashboardData struct {
	Linked       []domain.Account
	Suggested    []domain.SuggestedAccount
	TotalBalance int64
	Summary      domain.Summary
	Breakdown    []CategoryTotals
	Alerts       []domain.GoalAlert
	Trend        []TrendPoint
}

// DashboardService aggregates the five overview fetches into one view.
type DashboardService struct {
	bank  ports.BankAPI
	tx    ports.TransactionsAPI
	goals ports.GoalsAPI
	clock ports.Clock
}

func NewDashboardService(bank ports.BankAPI, tx ports.TransactionsAPI, goals ports.GoalsAPI, clock ports.Clock) *DashboardService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &DashboardService{bank: bank, tx: tx, goals: goals, clock: clock}
}

// Overview fetches accounts, summary, breakdown, alerts and the recent
// transactions concurrently, then derives the dashboard aggregates.
func (s *DashboardService) Overview(ctx context.Context) (DashboardData, error) {
	filter := domain.TransactionFilter{Start: s.clock.Now().Add(-dashboardWindow)}

	var (
		overview     domain.AccountOverview
		summary      domain.Summary
		breakdown    []domain.BreakdownRow
		alerts       []domain.GoalAlert
		transactions []domain.Transaction
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		overview, err = s.bank.Accounts(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		summary, err = s.tx.Summary(groupCtx, filter)
		return err
	})
	group.Go(func() (err error) {
		breakdown, err = s.tx.Breakdown(groupCtx, filter)
		return err
	})
	group.Go(func() (err error) {
		alerts, err = s.goals.Alerts(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		transactions, err = s.tx.Transactions(groupCtx, filter)
		return err
	})
	if err := group.Wait(); err != nil {
		return DashboardData{}, fmt.Errorf("fetch dashboard data: %w", err)
	}

	var total int64
	for _, account := range overview.Linked {
		total += account.Balance
	}

	return DashboardData{
		Linked:       overview.Linked,
		Suggested:    overview.Suggested,
		TotalBalance: total,
		Summary:      summary,
		Breakdown:    aggregateBreakdown(breakdown),
		Alerts:       alerts,
		Trend:        buildTrend(transactions),
	}, nil
}

// buildTrend groups transactions per calendar day into income/expense
// totals, oldest day first. Labels use the dd/MM form the original charts
// showed.
func buildTrend(transactions []domain.Transaction) []TrendPoint {
	grouped := map[string]*TrendPoint{}
	for _, tx := range transactions {
		day := tx.Date.Truncate(24 * time.Hour)
		label := tx.Date.Format("02/01")
		point, ok := grouped[label]
		if !ok {
			point = &TrendPoint{Label: label, Day: day}
			grouped[label] = point
		}
		if tx.Type == domain.TypeExpense {
			point.Expense += tx.Amount
		} else {
			point.Income += tx.Amount
		}
	}

	trend := make([]TrendPoint, 0, len(grouped))
	for _, point := range grouped {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Day.Before(trend[j].Day) })

	return trend
}

// aggregateBreakdown folds per-type category rows into one entry per
// category. Uncategorized rows land under "Khác".
func aggregateBreakdown(rows []domain.BreakdownRow) []CategoryTotals {
	grouped := map[string]*CategoryTotals{}
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = "Khác"
		}
		entry, ok := grouped[category]
		if !ok {
			entry = &CategoryTotals{Category: category}
			grouped[category] = entry
			order = append(order, category)
		}
		if row.Type == domain.TypeExpense {
			entry.Expense += row.TotalAmount
		} else {
			entry.Income += row.TotalAmount
		}
	}

	totals := make([]CategoryTotals, 0, len(order))
	for _, category := range order {
		totals = append(totals, *grouped[category])
	}

	return totals
}
