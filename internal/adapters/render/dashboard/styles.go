package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	balance    lipgloss.Style
	income     lipgloss.Style
	expense    lipgloss.Style
	category   lipgloss.Style
	detail     lipgloss.Style
	alert      lipgloss.Style
	alertDang  lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barIncome  lipgloss.Style
	barExpense lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		balance:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		income:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		expense:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		category:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		alert:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		alertDang:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barIncome:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		barExpense: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
