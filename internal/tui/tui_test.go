package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strrl/learning-journey/internal/journey"
	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/internal/storage"
	"github.com/strrl/learning-journey/internal/topics"
	"github.com/strrl/learning-journey/pkg/models"
)

type fixedGenerator struct {
	topic models.Topic
	err   error
	calls int
}

func (g *fixedGenerator) Generate(ctx context.Context) (models.Topic, error) {
	g.calls++
	return g.topic, g.err
}

func newTestModel(t *testing.T, gen topics.Generator) (model, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	toaster := notify.NewToaster(time.Minute)
	ctrl := journey.NewController(schedule.Restore(store, "learningJourneyTopics"), toaster)

	m := initialModel(ctrl, gen, toaster)
	clock := func() time.Time { return dialogNow }
	m.now = clock
	m.dialog = NewDialog(clock)
	t.Cleanup(m.cancel)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(model), store
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(model), cmd
}

func TestViewportInitialization(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})

	assert.True(t, m.ready)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 40-headerHeight-footerHeight, m.viewport.Height)
	assert.Contains(t, m.View(), "Learning Journey")
	assert.Contains(t, m.View(), emptyScheduleHint)
}

func TestGenerateDisablesSecondTrigger(t *testing.T) {
	gen := &fixedGenerator{topic: topicXY}
	m, _ := newTestModel(t, gen)

	m, cmd := update(t, m, runes("g"))
	require.NotNil(t, cmd)
	assert.True(t, m.ctrl.IsGenerating())
	assert.Contains(t, m.View(), "Generating Magic...")

	m, cmd = update(t, m, runes("g"))
	assert.Nil(t, cmd, "second trigger ignored while generating")

	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	assert.False(t, m.ctrl.IsGenerating())

	_, cmd = update(t, m, runes("g"))
	assert.NotNil(t, cmd, "trigger re-enabled after completion")
}

func TestGenerateCommandCallsGenerator(t *testing.T) {
	gen := &fixedGenerator{topic: topicXY}
	cmd := generateTopicCmd(context.Background(), gen)

	msg, ok := cmd().(TopicGeneratedMsg)
	require.True(t, ok)
	assert.Equal(t, topicXY, msg.Topic)
	assert.NoError(t, msg.Err)
	assert.Equal(t, 1, gen.calls)
}

func TestTopicGeneratedShowsCardAndToast(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("g"))
	m, cmd := update(t, m, TopicGeneratedMsg{Topic: models.Topic{Title: "Understand Blockchain Technology", Description: "Blocks."}})

	assert.NotNil(t, cmd, "toast expiry is scheduled")
	view := m.View()
	assert.Contains(t, view, "Understand Blockchain Technology")
	assert.Contains(t, view, "New Learning Topic Generated!")
}

func TestGenerationFailureShowsErrorToast(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, TopicGeneratedMsg{Err: topics.ErrGenerationFailed})

	assert.False(t, m.ctrl.IsGenerating())
	assert.Equal(t, journey.StateIdle, m.ctrl.State())
	assert.Contains(t, m.View(), "Oops! Something went wrong")
}

func TestScheduleKeyNeedsTopic(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("s"))
	assert.False(t, m.dialog.IsOpen())
	assert.False(t, m.ctrl.IsDialogOpen())
}

func TestScheduleFlowPrependsSession(t *testing.T) {
	m, store := newTestModel(t, &fixedGenerator{})
	require.NoError(t, m.ctrl.Schedule(journey.NewSession(models.Topic{Title: "Older"}, dialogNow, "noon", dialogNow)))
	before := len(m.ctrl.Sessions())

	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	m, _ = update(t, m, runes("s"))
	require.True(t, m.dialog.IsOpen())
	require.Equal(t, journey.StateDialogOpen, m.ctrl.State())
	assert.Contains(t, m.View(), "Choose when you'd like to learn about")

	require.True(t, m.dialog.SelectDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)))
	m.dialog.SetTime("10:00-11:00 AM")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	confirmed := cmd()
	m, _ = update(t, m, confirmed)

	sessions := m.ctrl.Sessions()
	require.Len(t, sessions, before+1)
	got := sessions[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, topicXY, got.Topic)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local), got.Date)
	assert.Equal(t, "10:00-11:00 AM", got.Time)
	assert.Equal(t, "Older", sessions[1].Topic.Title)

	assert.False(t, m.dialog.IsOpen())
	assert.Equal(t, journey.StateTopicReady, m.ctrl.State())
	assert.Equal(t, 2, store.Writes())
	assert.Contains(t, m.View(), "Your session is set for 10:00-11:00 AM")
}

func TestConfirmDisabledDoesNotMutate(t *testing.T) {
	m, store := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	m, _ = update(t, m, runes("s"))

	m.dialog.SetTime("10:00-11:00 AM")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Empty(t, m.ctrl.Sessions())
	assert.Equal(t, 0, store.Writes())
	assert.True(t, m.dialog.IsOpen())
}

func TestCancelDialogReturnsToTopic(t *testing.T) {
	m, store := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	m, _ = update(t, m, runes("s"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.False(t, m.dialog.IsOpen())
	assert.Equal(t, journey.StateTopicReady, m.ctrl.State())
	assert.Equal(t, 0, store.Writes())
}

func TestKeysGoToDialogWhileOpen(t *testing.T) {
	gen := &fixedGenerator{topic: topicXY}
	m, _ := newTestModel(t, gen)
	m, _ = update(t, m, runes("g"))
	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	m, _ = update(t, m, runes("s"))

	m, cmd := update(t, m, runes("q"))
	assert.True(t, m.dialog.IsOpen(), "q does not quit from inside the dialog")
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
}

func TestQuitCancelsInFlightGeneration(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, errors.Is(m.ctx.Err(), context.Canceled))
}

func TestTickStopsAfterGeneration(t *testing.T) {
	m, _ := newTestModel(t, &fixedGenerator{})
	m, _ = update(t, m, runes("g"))

	_, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "spinner keeps ticking while generating")

	m, _ = update(t, m, TopicGeneratedMsg{Topic: topicXY})
	_, cmd = update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd)
}
