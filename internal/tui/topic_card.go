package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/learning-journey/pkg/models"
)

// renderTopicCard shows the generated topic and its schedule action.
// disabled greys the action out while a new topic is being generated.
func renderTopicCard(topic models.Topic, disabled bool, width int) string {
	inner := cardWidth(width) - 6

	label := lipgloss.NewStyle().Foreground(learningColor).Bold(true).
		Render("✨ TODAY'S LEARNING CHALLENGE")
	title := lipgloss.NewStyle().Bold(true).Width(inner).
		Render(topic.Title)
	desc := mutedStyle.Width(inner).Render(topic.Description)

	action := buttonStyle.Background(scheduleColor).Render("[s] Schedule This Learning")
	if disabled {
		action = disabledButtonStyle.Render("[s] Schedule This Learning")
	}

	body := lipgloss.JoinVertical(lipgloss.Left, label, "", title, "", desc, "", action)
	return cardStyle.Width(cardWidth(width) - 2).Render(body)
}

func cardWidth(width int) int {
	switch {
	case width <= 0:
		return 80
	case width < 40:
		return 40
	case width > 100:
		return 100
	default:
		return width
	}
}
