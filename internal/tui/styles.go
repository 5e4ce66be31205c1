package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	Container lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Divider   lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style

	// Phase colors
	PhaseNotRunning lipgloss.Style
	PhaseRunning    lipgloss.Style
	PhasePaused     lipgloss.Style
	PhaseEnded      lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Message: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	PhaseNotRunning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	PhaseRunning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("82")),

	PhasePaused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),

	PhaseEnded: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")),
}
