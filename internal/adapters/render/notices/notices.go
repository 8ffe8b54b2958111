// Package notices prints queued notifications, colour-coded by severity.
package notices

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/htdinh/pfob-cli/internal/domain"
)

type styles struct {
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	message lipgloss.Style
}

func newStyles() styles {
	return styles{
		info:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		danger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func Render(queued []domain.Notice) string {
	if len(queued) == 0 {
		return ""
	}

	s := newStyles()
	lines := make([]string, 0, len(queued))
	for _, notice := range queued {
		lines = append(lines, renderNotice(notice, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Flush writes all queued notices to w, one per line. Writing nothing for an
// empty queue keeps command output clean.
func Flush(w io.Writer, queued []domain.Notice) error {
	rendered := Render(queued)
	if rendered == "" {
		return nil
	}

	if _, err := fmt.Fprintln(w, rendered); err != nil {
		return fmt.Errorf("write notices: %w", err)
	}

	return nil
}

func renderNotice(notice domain.Notice, s styles) string {
	line := titleStyle(notice.Kind, s).Render(notice.Title)
	if notice.Message != "" {
		line += " " + s.message.Render(notice.Message)
	}
	if notice.ActionLabel != "" {
		line += " " + s.message.Render("["+notice.ActionLabel+"]")
	}

	return line
}

func titleStyle(kind domain.NoticeKind, s styles) lipgloss.Style {
	switch kind {
	case domain.NoticeSuccess:
		return s.success
	case domain.NoticeWarning:
		return s.warning
	case domain.NoticeDanger:
		return s.danger
	default:
		return s.info
	}
}
