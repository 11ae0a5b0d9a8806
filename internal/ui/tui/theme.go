package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Working  lipgloss.Style
	Failed   lipgloss.Style
	Toast    lipgloss.Style
	Prompt   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Working: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}
}
