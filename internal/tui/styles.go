package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle      = lipgloss.NewStyle().Faint(true)
	statusStyle     = lipgloss.NewStyle().Italic(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	buttonStyle         = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder())
	disabledButtonStyle = buttonStyle.Faint(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				Padding(0, 1)
	tableSelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)
