package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

const (
	scheduleTitle     = "📚 My Learning Schedule"
	emptyScheduleHint = "Your scheduled learning sessions will appear here"
	upcomingHeading   = "📅 Upcoming Sessions"
	pastHeading       = "🏆 Completed Learning"
)

// renderSchedule draws the session list split into upcoming and completed.
// Each group only appears when it has entries.
func renderSchedule(sessions []models.ScheduledSession, now time.Time, width int) string {
	var s strings.Builder

	s.WriteString(sectionTitleStyle.Foreground(learningColor).Render(scheduleTitle) + "\n")
	if len(sessions) == 0 {
		s.WriteString(mutedStyle.Render(emptyScheduleHint) + "\n")
		return s.String()
	}
	s.WriteString(mutedStyle.Render("Track your learning journey and stay motivated!") + "\n")

	upcoming, past := schedule.Partition(sessions, now)

	if len(upcoming) > 0 {
		s.WriteString("\n" + sectionTitleStyle.Foreground(scheduleColor).Render(upcomingHeading) + "\n")
		for _, item := range upcoming {
			s.WriteString(renderSessionItem(item, scheduleColor, "Scheduled", width))
		}
	}

	if len(past) > 0 {
		s.WriteString("\n" + sectionTitleStyle.Foreground(successColor).Render(pastHeading) + "\n")
		for _, item := range past {
			s.WriteString(renderSessionItem(item, successColor, "Completed", width))
		}
	}

	return s.String()
}

func renderSessionItem(item models.ScheduledSession, accent lipgloss.Color, badge string, width int) string {
	inner := cardWidth(width) - 6

	title := lipgloss.NewStyle().Bold(true).Render(item.Topic.Title)
	tag := lipgloss.NewStyle().Foreground(accent).Render("[" + badge + "]")
	desc := mutedStyle.Width(inner).Render(item.Topic.Description)
	when := lipgloss.NewStyle().Foreground(accent).
		Render("🗓  " + item.Date.Format("Jan 02, 2006") + "   🕐 " + item.Time)

	body := lipgloss.JoinVertical(lipgloss.Left, title+"  "+tag, desc, when)
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1).
		MarginTop(1).
		Render(body) + "\n"
}
