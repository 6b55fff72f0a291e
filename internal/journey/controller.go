// Package journey holds the application state machine: the current topic,
// the in-flight generation, the scheduling dialog and the session list.
package journey

import (
	"errors"
	"log/slog"

	"github.com/strrl/learning-journey/internal/logger"
	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

var (
	ErrGenerationInFlight = errors.New("a topic is already being generated")
	ErrNoTopic            = errors.New("no topic to schedule")
	ErrDialogClosed       = errors.New("scheduling dialog is not open")
)

// State is the shell's position in its lifecycle
type State int

const (
	StateIdle State = iota
	StateGenerating
	StateTopicReady
	StateDialogOpen
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	case StateTopicReady:
		return "topic-ready"
	case StateDialogOpen:
		return "dialog-open"
	default:
		return "unknown"
	}
}

// Controller owns all application state. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Controller struct {
	book     *schedule.Book
	notifier notify.Notifier
	log      *slog.Logger

	current    *models.Topic
	generating bool
	dialogOpen bool
}

// NewController wraps a restored session book
func NewController(book *schedule.Book, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Log{}
	}
	return &Controller{
		book:     book,
		notifier: notifier,
		log:      logger.ComponentLogger("journey"),
	}
}

// State reports the current lifecycle state
func (c *Controller) State() State {
	switch {
	case c.generating:
		return StateGenerating
	case c.dialogOpen:
		return StateDialogOpen
	case c.current != nil:
		return StateTopicReady
	default:
		return StateIdle
	}
}

// CurrentTopic returns the topic on display, if any
func (c *Controller) CurrentTopic() (models.Topic, bool) {
	if c.current == nil {
		return models.Topic{}, false
	}
	return *c.current, true
}

// IsGenerating reports whether a generation request is in flight
func (c *Controller) IsGenerating() bool { return c.generating }

// IsDialogOpen reports whether the scheduling dialog is showing
func (c *Controller) IsDialogOpen() bool { return c.dialogOpen }

// Sessions returns a snapshot of the scheduled sessions, newest first
func (c *Controller) Sessions() []models.ScheduledSession {
	return c.book.Sessions()
}

// BeginGeneration marks a generation request as in flight. Only one may be
// outstanding; a second call fails until CompleteGeneration runs.
func (c *Controller) BeginGeneration() error {
	if c.generating {
		return ErrGenerationInFlight
	}
	c.generating = true
	c.log.Debug("generation started")
	return nil
}

// CompleteGeneration records the generator's answer. On failure the previous
// topic and sessions are untouched and the user is told.
func (c *Controller) CompleteGeneration(topic models.Topic, err error) {
	c.generating = false

	if err != nil {
		c.log.Error("topic generation failed", "error", err)
		c.notifier.Notify(notify.Notification{
			Title:       "Oops! Something went wrong",
			Description: "Please try generating a topic again.",
			Variant:     notify.VariantDestructive,
		})
		return
	}

	c.current = &topic
	c.log.Info("topic generated", "title", topic.Title)
	c.notifier.Notify(notify.Notification{
		Title:       "New Learning Topic Generated! 🎯",
		Description: "Ready to expand your knowledge?",
	})
}

// OpenDialog shows the scheduling dialog for the current topic.
func (c *Controller) OpenDialog() (models.Topic, error) {
	if c.current == nil {
		return models.Topic{}, ErrNoTopic
	}
	if c.generating {
		return models.Topic{}, ErrGenerationInFlight
	}
	c.dialogOpen = true
	return *c.current, nil
}

// CloseDialog hides the dialog without scheduling anything
func (c *Controller) CloseDialog() {
	c.dialogOpen = false
}

// ConfirmSchedule stores a session produced by the dialog and closes it.
func (c *Controller) ConfirmSchedule(s models.ScheduledSession) error {
	if !c.dialogOpen {
		return ErrDialogClosed
	}
	if err := c.Schedule(s); err != nil {
		return err
	}
	c.dialogOpen = false
	return nil
}

// Schedule adds a session directly, bypassing the dialog. The non-interactive
// commands use it; the UI goes through ConfirmSchedule.
func (c *Controller) Schedule(s models.ScheduledSession) error {
	if err := c.book.Add(s); err != nil {
		c.log.Error("failed to schedule session", "id", s.ID, "error", err)
		c.notifier.Notify(notify.Notification{
			Title:       "Could not save your session",
			Description: "Your schedule was left unchanged.",
			Variant:     notify.VariantDestructive,
		})
		return err
	}
	c.notifier.Notify(notify.Notification{
		Title:       "Learning Session Scheduled! 📅",
		Description: "Your session is set for " + s.Time,
	})
	return nil
}
