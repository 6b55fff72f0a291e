package journey

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/internal/storage"
	"github.com/strrl/learning-journey/internal/topics"
	"github.com/strrl/learning-journey/pkg/models"
)

const key = "learningJourneyTopics"

func newController(t *testing.T) (*Controller, *notify.Recorder, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	rec := &notify.Recorder{}
	return NewController(schedule.Restore(store, key), rec), rec, store
}

func TestStateMachine(t *testing.T) {
	c, _, _ := newController(t)
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.BeginGeneration())
	assert.Equal(t, StateGenerating, c.State())

	c.CompleteGeneration(models.Topic{Title: "X", Description: "Y"}, nil)
	assert.Equal(t, StateTopicReady, c.State())

	_, err := c.OpenDialog()
	require.NoError(t, err)
	assert.Equal(t, StateDialogOpen, c.State())

	c.CloseDialog()
	assert.Equal(t, StateTopicReady, c.State())
}

func TestOnlyOneGenerationInFlight(t *testing.T) {
	c, _, _ := newController(t)

	require.NoError(t, c.BeginGeneration())
	assert.ErrorIs(t, c.BeginGeneration(), ErrGenerationInFlight)
	assert.True(t, c.IsGenerating())

	c.CompleteGeneration(models.Topic{Title: "X"}, nil)
	assert.NoError(t, c.BeginGeneration(), "trigger re-enabled after completion")
}

func TestGenerationSuccessNotifies(t *testing.T) {
	c, rec, _ := newController(t)
	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{Title: "X", Description: "Y"}, nil)

	topic, ok := c.CurrentTopic()
	require.True(t, ok)
	assert.Equal(t, models.Topic{Title: "X", Description: "Y"}, topic)

	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Learning Topic Generated! 🎯", sent[0].Title)
	assert.Equal(t, notify.VariantDefault, sent[0].Variant)
}

func TestGenerationFailureKeepsPreviousState(t *testing.T) {
	c, rec, _ := newController(t)

	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{}, topics.ErrGenerationFailed)
	assert.Equal(t, StateIdle, c.State(), "no topic yet, back to idle")

	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{Title: "Keep me"}, nil)

	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{}, errors.New("status 502"))

	assert.False(t, c.IsGenerating())
	assert.Equal(t, StateTopicReady, c.State())
	topic, _ := c.CurrentTopic()
	assert.Equal(t, "Keep me", topic.Title)

	sent := rec.Sent()
	require.Len(t, sent, 3)
	assert.Equal(t, "Oops! Something went wrong", sent[2].Title)
	assert.Equal(t, notify.VariantDestructive, sent[2].Variant)
}

func TestOpenDialogRequiresTopic(t *testing.T) {
	c, _, _ := newController(t)
	_, err := c.OpenDialog()
	assert.ErrorIs(t, err, ErrNoTopic)
	assert.False(t, c.IsDialogOpen())
}

func TestOpenDialogBlockedWhileGenerating(t *testing.T) {
	c, _, _ := newController(t)
	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{Title: "X"}, nil)
	require.NoError(t, c.BeginGeneration())

	_, err := c.OpenDialog()
	assert.ErrorIs(t, err, ErrGenerationInFlight)
}

func TestConfirmSchedulePrependsPersistsAndNotifies(t *testing.T) {
	c, rec, store := newController(t)
	require.NoError(t, c.BeginGeneration())
	c.CompleteGeneration(models.Topic{Title: "X", Description: "Y"}, nil)
	topic, err := c.OpenDialog()
	require.NoError(t, err)

	s := models.ScheduledSession{
		ID:          "id-1",
		Topic:       topic,
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
		Time:        "10:00-11:00 AM",
		ScheduledAt: time.Now(),
	}
	require.NoError(t, c.ConfirmSchedule(s))

	assert.False(t, c.IsDialogOpen())
	sessions := c.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, "id-1", sessions[0].ID)
	assert.Equal(t, 1, store.Writes())

	last := rec.Sent()[len(rec.Sent())-1]
	assert.Equal(t, "Learning Session Scheduled! 📅", last.Title)
	assert.Equal(t, "Your session is set for 10:00-11:00 AM", last.Description)
}

func TestConfirmWithoutDialog(t *testing.T) {
	c, _, store := newController(t)
	err := c.ConfirmSchedule(models.ScheduledSession{ID: "x"})
	assert.ErrorIs(t, err, ErrDialogClosed)
	assert.Equal(t, 0, store.Writes())
}

func TestScheduleFailureNotifies(t *testing.T) {
	c, rec, _ := newController(t)
	require.NoError(t, c.Schedule(models.ScheduledSession{ID: "a", Time: "t"}))
	err := c.Schedule(models.ScheduledSession{ID: "a", Time: "t"})
	assert.ErrorIs(t, err, schedule.ErrDuplicateID)

	last := rec.Sent()[len(rec.Sent())-1]
	assert.Equal(t, notify.VariantDestructive, last.Variant)
	assert.Len(t, c.Sessions(), 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "generating", StateGenerating.String())
	assert.Equal(t, "topic-ready", StateTopicReady.String())
	assert.Equal(t, "dialog-open", StateDialogOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}
