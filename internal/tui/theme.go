package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Cursor   lipgloss.Style
	Included lipgloss.Style
	Excluded lipgloss.Style
	Active   lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Included: lipgloss.NewStyle(),
		Excluded: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
