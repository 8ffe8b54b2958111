// Package transactions renders transaction listings and period summaries.
package transactions

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type styles struct {
	title   lipgloss.Style
	date    lipgloss.Style
	income  lipgloss.Style
	expense lipgloss.Style
	detail  lipgloss.Style
	esg     lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		date:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		income:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		expense: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		esg:     lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}

type renderReadyMsg struct{}

type model struct {
	transactions []domain.Transaction
	styles       styles
	output       string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return renderReadyMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.transactions, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(transactions []domain.Transaction) (string, error) {
	p := tea.NewProgram(
		model{transactions: transactions, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func renderView(transactions []domain.Transaction, s styles) string {
	format := money.NewFormatter()

	lines := []string{s.title.Render(fmt.Sprintf("Giao dịch (%d)", len(transactions)))}

	if len(transactions) == 0 {
		lines = append(lines, s.empty.Render("Không có giao dịch nào."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, tx := range transactions {
		lines = append(lines, renderTransaction(tx, format, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTransaction(tx domain.Transaction, format *money.Formatter, s styles) string {
	amount := s.income.Render("+" + format.Number(tx.Amount))
	if tx.Type == domain.TypeExpense {
		amount = s.expense.Render("-" + format.Number(tx.Amount))
	}

	category := tx.Category
	if category == "" {
		category = "Khác"
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.date.Render(tx.Date.Format("02/01/2006")),
		" ",
		amount,
		" ",
		s.detail.Render(category),
	)

	if tx.Description != "" {
		line += " " + s.detail.Render("("+tx.Description+")")
	}
	if tx.ESGScore != nil {
		line += " " + s.esg.Render(fmt.Sprintf("ESG %.2f", *tx.ESGScore))
	}

	return line
}

// RenderSummary formats the income/expense totals for a period.
func RenderSummary(summary domain.Summary) string {
	format := money.NewFormatter()
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render("Tổng kết"),
		s.income.Render("  Thu: "+format.VND(summary.TotalIncome)),
		s.expense.Render("  Chi: "+format.VND(summary.TotalExpense)),
		s.detail.Render("  Còn lại: "+format.VND(summary.Net)),
	)
}

// RenderBreakdown formats per-category totals.
func RenderBreakdown(rows []domain.BreakdownRow) string {
	format := money.NewFormatter()
	s := newStyles()

	lines := []string{s.title.Render("Theo danh mục")}
	if len(rows) == 0 {
		lines = append(lines, s.empty.Render("Không có dữ liệu."))
	}

	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = "Khác"
		}
		amount := s.income.Render("+" + format.Number(row.TotalAmount))
		if row.Type == domain.TypeExpense {
			amount = s.expense.Render("-" + format.Number(row.TotalAmount))
		}
		lines = append(lines, "  "+s.detail.Render(category+": ")+amount)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
