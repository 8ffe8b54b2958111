// Package accounts renders the linked-account and suggestion panes.
package accounts

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type RenderOptions struct {
	// SyncedAt stamps the output when rendering from the offline snapshot.
	SyncedAt time.Time
}

type styles struct {
	title    lipgloss.Style
	account  lipgloss.Style
	detail   lipgloss.Style
	points   lipgloss.Style
	goal     lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	stamp    lipgloss.Style
	suggestion lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		account:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		points:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		goal:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		stamp:    lipgloss.NewStyle().Faint(true),
		suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

type renderReadyMsg struct{}

type model struct {
	overview domain.AccountOverview
	opts     RenderOptions
	styles   styles
	output   string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return renderReadyMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.overview, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(overview domain.AccountOverview, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		model{overview: overview, opts: opts, styles: newStyles()},
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

func renderView(overview domain.AccountOverview, opts RenderOptions, s styles) string {
	format := money.NewFormatter()

	lines := []string{s.title.Render("Tài khoản liên kết")}

	if len(overview.Linked) == 0 {
		lines = append(lines, s.empty.Render("Chưa liên kết tài khoản nào."))
	}

	for _, account := range overview.Linked {
		lines = append(lines, s.section.Render(renderAccount(account, format, s)))
	}

	if len(overview.Suggested) > 0 {
		lines = append(lines, s.section.Render(renderSuggestions(overview.Suggested, s)))
	}

	if !opts.SyncedAt.IsZero() {
		lines = append(lines, s.section.Render(
			s.stamp.Render("Dữ liệu lưu lúc "+opts.SyncedAt.Format("15:04 02/01/2006")),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(account domain.Account, format *money.Formatter, s styles) string {
	parts := []string{
		s.account.Render(fmt.Sprintf("%s %s", account.BankName, account.MaskedAccount)),
		s.detail.Render("  Số dư: " + format.VND(account.Balance)),
		s.points.Render("  Điểm ESG: " + format.Points(account.ESGPoint)),
	}

	for _, goal := range account.Goals {
		parts = append(parts, s.goal.Render(fmt.Sprintf(
			"  Hạn mức %s: %s / %s (%s)",
			goal.Purpose,
			format.Number(goal.Spent),
			format.Number(goal.LimitAmount),
			goal.Cycle,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSuggestions(suggested []domain.SuggestedAccount, s styles) string {
	lines := []string{s.title.Render("Tài khoản gợi ý")}
	for _, suggestion := range suggested {
		lines = append(lines, s.suggestion.Render(fmt.Sprintf(
			"  %s %s (%s)",
			suggestion.BankName,
			suggestion.AccountNumber,
			suggestion.OwnerName,
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
