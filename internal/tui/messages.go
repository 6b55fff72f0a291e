package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/strrl/learning-journey/internal/topics"
	"github.com/strrl/learning-journey/pkg/models"
)

type (
	// TopicGeneratedMsg carries the generator's answer back to the event loop
	TopicGeneratedMsg struct {
		Topic models.Topic
		Err   error
	}

	// ScheduleConfirmedMsg is emitted by the dialog when the user confirms
	ScheduleConfirmedMsg struct {
		Session models.ScheduledSession
	}

	// DialogCancelledMsg is emitted by the dialog on cancel
	DialogCancelledMsg struct{}

	// TickMsg is sent periodically for spinner animation
	TickMsg time.Time

	// toastExpiredMsg asks for a redraw once a toast has timed out
	toastExpiredMsg struct{}
)

// generateTopicCmd runs the generator off the event loop
func generateTopicCmd(ctx context.Context, gen topics.Generator) tea.Cmd {
	return func() tea.Msg {
		topic, err := gen.Generate(ctx)
		return TopicGeneratedMsg{Topic: topic, Err: err}
	}
}

// tickCmd creates a ticker for spinner animation
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func toastExpiryCmd(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
