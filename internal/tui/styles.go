package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	grantedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	deniedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)
