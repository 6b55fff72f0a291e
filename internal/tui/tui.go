package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/learning-journey/internal/journey"
	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/topics"
)

const (
	headerHeight = 3
	footerHeight = 2
)

type model struct {
	ctx    context.Context
	cancel context.CancelFunc

	ctrl    *journey.Controller
	gen     topics.Generator
	toaster *notify.Toaster
	now     func() time.Time

	dialog   Dialog
	loading  *LoadingIndicator
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

func initialModel(ctrl *journey.Controller, gen topics.Generator, toaster *notify.Toaster) model {
	ctx, cancel := context.WithCancel(context.Background())
	return model{
		ctx:     ctx,
		cancel:  cancel,
		ctrl:    ctrl,
		gen:     gen,
		toaster: toaster,
		now:     time.Now,
		dialog:  NewDialog(time.Now),
		loading: NewLoadingIndicator("Generating Magic..."),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.updateViewport()

	case TopicGeneratedMsg:
		m.ctrl.CompleteGeneration(msg.Topic, msg.Err)
		m.updateViewport()
		return m, toastExpiryCmd(m.toaster.TTL())

	case TickMsg:
		if m.ctrl.IsGenerating() {
			m.loading.Tick()
			m.updateViewport()
			return m, tickCmd()
		}
		return m, nil

	case ScheduleConfirmedMsg:
		if err := m.ctrl.ConfirmSchedule(msg.Session); err != nil {
			m.ctrl.CloseDialog()
		}
		m.updateViewport()
		return m, toastExpiryCmd(m.toaster.TTL())

	case DialogCancelledMsg:
		m.ctrl.CloseDialog()
		return m, nil

	case toastExpiredMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}

		if m.dialog.IsOpen() {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			m.cancel()
			return m, tea.Quit

		case "g":
			return m, m.startGeneration()

		case "s", "enter":
			topic, err := m.ctrl.OpenDialog()
			if err != nil {
				return m, nil
			}
			m.dialog.Open(topic)
			return m, nil

		case "esc":
			m.toaster.Dismiss()
			return m, nil
		}
	}

	if !m.dialog.IsOpen() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startGeneration kicks off a generation request unless one is running.
func (m *model) startGeneration() tea.Cmd {
	if err := m.ctrl.BeginGeneration(); err != nil {
		return nil
	}
	m.updateViewport()
	return tea.Batch(generateTopicCmd(m.ctx, m.gen), tickCmd())
}

func (m *model) updateViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

func (m model) renderBody() string {
	var s strings.Builder

	if m.ctrl.IsGenerating() {
		s.WriteString(m.loading.View() + "\n\n")
	} else {
		s.WriteString(buttonStyle.Render("✨ [g] Generate Learning Topic") + "\n\n")
	}

	if topic, ok := m.ctrl.CurrentTopic(); ok {
		s.WriteString(renderTopicCard(topic, m.ctrl.IsGenerating(), m.width) + "\n\n")
	}

	s.WriteString(renderSchedule(m.ctrl.Sessions(), m.now(), m.width))
	return s.String()
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	if m.dialog.IsOpen() {
		body := lipgloss.Place(m.width, m.height-headerHeight-footerHeight,
			lipgloss.Center, lipgloss.Center, m.dialog.View())
		return fmt.Sprintf("%s\n%s\n%s", header, body, footer)
	}

	return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
}

func (m model) renderHeader() string {
	title := headerStyle.Render("🧠 Learning Journey")
	tagline := taglineStyle.Render("Discover something new every day and build the habit of continuous learning! 🚀")
	return title + "\n" + tagline + "\n"
}

func (m model) renderFooter() string {
	toast := ""
	if t, ok := m.toaster.Current(); ok {
		style := lipgloss.NewStyle().Foreground(successColor)
		if t.Variant == notify.VariantDestructive {
			style = lipgloss.NewStyle().Foreground(dangerColor)
		}
		toast = style.Render(lipgloss.NewStyle().Bold(true).Render(t.Title) + "  " + t.Description)
	}

	info := "g: generate"
	if _, ok := m.ctrl.CurrentTopic(); ok {
		info += " • s: schedule"
	}
	info += " • ↑/↓: scroll • q: quit"
	if m.dialog.IsOpen() {
		info = "esc: cancel • ctrl+s: confirm • ctrl+c: quit"
	}

	return toast + "\n" + footerStyle.Render(info)
}

// Run starts the interactive UI and blocks until the user quits.
func Run(ctrl *journey.Controller, gen topics.Generator, toaster *notify.Toaster) error {
	m := initialModel(ctrl, gen, toaster)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
