package tui

import "github.com/charmbracelet/lipgloss"

var (
	learningColor = lipgloss.Color("212")
	scheduleColor = lipgloss.Color("39")
	successColor  = lipgloss.Color("42")
	dangerColor   = lipgloss.Color("203")
	mutedColor    = lipgloss.Color("241")
	faintColor    = lipgloss.Color("238")
	textColor     = lipgloss.Color("252")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)

	taglineStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(learningColor).
			Padding(0, 2)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Background(faintColor).
				Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(learningColor).
			Padding(0, 2)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	textStyle  = lipgloss.NewStyle().Foreground(textColor)

	footerStyle = lipgloss.NewStyle().Foreground(mutedColor)
)
