package ui

import (
	"github.com/charmbracelet/lipgloss"

	"todo/internal/controller"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	buttonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	statusStyle   = lipgloss.NewStyle().Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)
	dialogTitleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// severityColor maps notice severity to a border color.
func severityColor(s controller.Severity) lipgloss.Color {
	switch s {
	case controller.SeverityWarning:
		return lipgloss.Color("11")
	case controller.SeverityError:
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("12")
	}
}
