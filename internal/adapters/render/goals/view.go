// Package goals renders spending-limit goals and their alerts.
package goals

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/htdinh/pfob-cli/internal/domain"
	"github.com/htdinh/pfob-cli/internal/money"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

const progressBarWidth = 24

type styles struct {
	title      lipgloss.Style
	goal       lipgloss.Style
	detail     lipgloss.Style
	warning    lipgloss.Style
	danger     lipgloss.Style
	empty      lipgloss.Style
	section    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barOver    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		goal:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		danger:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:      lipgloss.NewStyle().Faint(true),
		section:    lipgloss.NewStyle().MarginTop(1),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barOver:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

type renderReadyMsg struct{}

type model struct {
	goals  []domain.Goal
	alerts []domain.GoalAlert
	styles styles
	output string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg { return renderReadyMsg{} }
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.goals, m.alerts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(goals []domain.Goal, alerts []domain.GoalAlert) (string, error) {
	p := tea.NewProgram(
		model{goals: goals, alerts: alerts, styles: newStyles()},
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

func renderView(goals []domain.Goal, alerts []domain.GoalAlert, s styles) string {
	format := money.NewFormatter()

	lines := []string{s.title.Render(fmt.Sprintf("Hạn mức chi tiêu (%d)", len(goals)))}

	if len(goals) == 0 {
		lines = append(lines, s.empty.Render("Chưa đặt hạn mức nào."))
	}

	for _, goal := range goals {
		lines = append(lines, s.section.Render(renderGoal(goal, format, s)))
	}

	if len(alerts) > 0 {
		lines = append(lines, s.section.Render(renderAlerts(alerts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGoal(goal domain.Goal, format *money.Formatter, s styles) string {
	header := goal.Purpose
	if goal.BankName != "" {
		header = fmt.Sprintf("%s (%s %s)", goal.Purpose, goal.BankName, goal.MaskedAccount)
	}

	detail := fmt.Sprintf("  %s / %s mỗi %s",
		format.Number(goal.Spent),
		format.Number(goal.LimitAmount),
		cycleLabel(goal.Cycle),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.goal.Render(header),
		lipgloss.JoinHorizontal(lipgloss.Top, "  ", renderProgressBar(goal, s), s.detail.Render(detail)),
	)
}

func renderProgressBar(goal domain.Goal, s styles) string {
	if goal.LimitAmount <= 0 {
		return ""
	}

	ratio := float64(goal.Spent) / float64(goal.LimitAmount)
	fill := s.barFill
	if ratio >= 1 {
		ratio = 1
		fill = s.barOver
	}

	filled := int(ratio * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", progressBarWidth-filled)),
		s.barBracket.Render("]"),
	)
}

func renderAlerts(alerts []domain.GoalAlert, s styles) string {
	lines := []string{s.title.Render("Cảnh báo")}
	for _, alert := range alerts {
		style := s.warning
		if alert.Level == "danger" {
			style = s.danger
		}
		lines = append(lines, "  "+style.Render(fmt.Sprintf("%s: %s", alert.Purpose, alert.Message)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cycleLabel(cycle domain.GoalCycle) string {
	switch cycle {
	case domain.CycleDaily:
		return "ngày"
	case domain.CycleWeekly:
		return "tuần"
	case domain.CycleMonthly:
		return "tháng"
	case domain.CycleYearly:
		return "năm"
	default:
		return string(cycle)
	}
}
