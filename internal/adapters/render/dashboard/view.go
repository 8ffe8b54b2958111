// Package dashboard renders the aggregated finance overview: balances, the
// 30-day income/expense trend, category breakdown and goal alerts.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/htdinh/pfob-cli/internal/application"
	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
)

type RenderOptions struct {
	// TrendBarWidth caps the widest trend bar; zero uses a sane default.
	TrendBarWidth int
}

const defaultTrendBarWidth = 30

func renderView(data application.DashboardData, opts RenderOptions, s styles) string {
	format := money.NewFormatter()

	lines := []string{
		s.title.Render("Tổng quan tài chính"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(data.Linked))),
		s.balance.Render("Tổng số dư: " + format.VND(data.TotalBalance)),
	}

	lines = append(lines, s.section.Render(renderSummary(data, format, s)))

	if trend := renderTrend(data.Trend, opts, format, s); trend != "" {
		lines = append(lines, s.section.Render(trend))
	}

	if breakdown := renderBreakdown(data.Breakdown, format, s); breakdown != "" {
		lines = append(lines, s.section.Render(breakdown))
	}

	if alerts := renderAlerts(data.Alerts, s); alerts != "" {
		lines = append(lines, s.section.Render(alerts))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSummary(data application.DashboardData, format *money.Formatter, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("30 ngày gần nhất"),
		s.income.Render("  Thu: "+format.VND(data.Summary.TotalIncome)),
		s.expense.Render("  Chi: "+format.VND(data.Summary.TotalExpense)),
		s.detail.Render("  Còn lại: "+format.VND(data.Summary.Net)),
	)
}

func renderTrend(trend []application.TrendPoint, opts RenderOptions, format *money.Formatter, s styles) string {
	if len(trend) == 0 {
		return s.empty.Render("Chưa có giao dịch trong 30 ngày.")
	}

	width := opts.TrendBarWidth
	if width <= 0 {
		width = defaultTrendBarWidth
	}

	var peak int64
	for _, point := range trend {
		if point.Income > peak {
			peak = point.Income
		}
		if point.Expense > peak {
			peak = point.Expense
		}
	}

	lines := []string{s.title.Render("Biến động thu chi")}
	for _, point := range trend {
		lines = append(lines,
			fmt.Sprintf("%s %s %s",
				s.category.Render(point.Label),
				renderBar(point.Income, peak, width, s.barIncome, s),
				s.income.Render(format.Number(point.Income)),
			),
			fmt.Sprintf("%s %s %s",
				s.category.Render("     "),
				renderBar(point.Expense, peak, width, s.barExpense, s),
				s.expense.Render(format.Number(point.Expense)),
			),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBreakdown(breakdown []application.CategoryTotals, format *money.Formatter, s styles) string {
	if len(breakdown) == 0 {
		return ""
	}

	lines := []string{s.title.Render("Theo danh mục")}
	for _, entry := range breakdown {
		parts := []string{s.category.Render(entry.Category + ":")}
		if entry.Income > 0 {
			parts = append(parts, s.income.Render("+"+format.Number(entry.Income)))
		}
		if entry.Expense > 0 {
			parts = append(parts, s.expense.Render("-"+format.Number(entry.Expense)))
		}
		lines = append(lines, "  "+strings.Join(parts, " "))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAlerts(alerts []domain.GoalAlert, s styles) string {
	if len(alerts) == 0 {
		return ""
	}

	lines := []string{s.title.Render("Cảnh báo hạn mức")}
	for _, alert := range alerts {
		style := s.alert
		if alert.Level == "danger" {
			style = s.alertDang
		}
		lines = append(lines, "  "+style.Render(fmt.Sprintf("%s: %s", alert.Purpose, alert.Message)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBar(value, peak int64, width int, fill lipgloss.Style, s styles) string {
	if width <= 0 || peak <= 0 {
		return ""
	}

	filled := int(float64(width) * float64(value) / float64(peak))
	if filled > width {
		filled = width
	}
	if value > 0 && filled < 1 {
		filled = 1
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.empty.Render(strings.Repeat(" ", width-filled)),
		s.barBracket.Render("]"),
	)
}
