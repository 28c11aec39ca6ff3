package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/tui/theme"
)

var (
	// Report-viewer styles that compose from the shared theme
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary)

	headerStyle = theme.HeaderStyle

	metricLabelStyle = theme.MutedStyle

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(theme.Success)

	overBudgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error)

	savingsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Warning)

	projectStyle = lipgloss.NewStyle().
			Foreground(theme.Secondary)

	helpStyle = theme.HelpStyle

	errorStyle = theme.ErrorStyle

	dashboardStyle = theme.DashboardStyle
)
