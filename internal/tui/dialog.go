package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/strrl/learning-journey/internal/journey"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

type dialogFocus int

const (
	focusCalendar dialogFocus = iota
	focusTime
)

// Dialog collects a date and a time slot for a topic. It only holds
// transient input; the confirmed session is handed to the caller.
type Dialog struct {
	open      bool
	topic     models.Topic
	cursor    time.Time
	selected  time.Time
	hasDate   bool
	timeInput textinput.Model
	focus     dialogFocus
	now       func() time.Time
}

// NewDialog returns a closed dialog using now as its clock
func NewDialog(now func() time.Time) Dialog {
	ti := textinput.New()
	ti.Placeholder = "e.g., 10:00-11:00 AM"
	ti.Width = 30
	ti.Prompt = "🕐 "
	return Dialog{timeInput: ti, now: now}
}

// IsOpen reports whether the dialog is showing
func (d Dialog) IsOpen() bool { return d.open }

// Open shows the dialog for topic with cleared input
func (d *Dialog) Open(topic models.Topic) {
	d.reset()
	d.open = true
	d.topic = topic
	d.cursor = schedule.StartOfDay(d.now())
}

// Cancel closes the dialog and clears its input
func (d *Dialog) Cancel() {
	d.reset()
}

func (d *Dialog) reset() {
	d.open = false
	d.topic = models.Topic{}
	d.hasDate = false
	d.selected = time.Time{}
	d.timeInput.Reset()
	d.timeInput.Blur()
	d.focus = focusCalendar
}

// today is midnight of the current day in the clock's location
func (d Dialog) today() time.Time {
	return schedule.StartOfDay(d.now())
}

// IsSelectable reports whether day may be picked. Days before today may not.
func (d Dialog) IsSelectable(day time.Time) bool {
	return !schedule.StartOfDay(day.In(d.now().Location())).Before(d.today())
}

// SelectDate picks day. It reports false, leaving the selection alone,
// for days before today.
func (d *Dialog) SelectDate(day time.Time) bool {
	if !d.IsSelectable(day) {
		return false
	}
	day = schedule.StartOfDay(day.In(d.now().Location()))
	d.selected = day
	d.hasDate = true
	d.cursor = day
	return true
}

// SelectedDate returns the picked day, if any
func (d Dialog) SelectedDate() (time.Time, bool) {
	return d.selected, d.hasDate
}

// SetTime replaces the time slot text
func (d *Dialog) SetTime(slot string) {
	d.timeInput.SetValue(slot)
}

// TimeSlot returns the time slot text as typed
func (d Dialog) TimeSlot() string {
	return d.timeInput.Value()
}

// CanConfirm reports whether both a date and a non-blank time slot are set.
func (d Dialog) CanConfirm() bool {
	return d.open && d.hasDate && strings.TrimSpace(d.timeInput.Value()) != ""
}

// Confirm builds the session and closes the dialog. It does nothing and
// reports false when CanConfirm is false.
func (d *Dialog) Confirm() (models.ScheduledSession, bool) {
	if !d.CanConfirm() {
		return models.ScheduledSession{}, false
	}
	s := journey.NewSession(d.topic, d.selected, d.timeInput.Value(), d.now())
	d.reset()
	return s, true
}

func (d *Dialog) moveCursor(days, months int) {
	next := d.cursor.AddDate(0, months, days)
	if next.Before(d.today()) {
		next = d.today()
	}
	d.cursor = next
}

// Update handles a key while the dialog is open. Confirm and cancel are
// reported to the caller as ScheduleConfirmedMsg and DialogCancelledMsg.
func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.open {
		return d, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		d.timeInput, cmd = d.timeInput.Update(msg)
		return d, cmd
	}

	switch key.String() {
	case "esc":
		d.Cancel()
		return d, emit(DialogCancelledMsg{})
	case "ctrl+s":
		return d.confirmCmd()
	case "tab", "shift+tab":
		return d.toggleFocus()
	}

	if d.focus == focusTime {
		if key.String() == "enter" {
			return d.confirmCmd()
		}
		var cmd tea.Cmd
		d.timeInput, cmd = d.timeInput.Update(msg)
		return d, cmd
	}

	switch key.String() {
	case "left", "h":
		d.moveCursor(-1, 0)
	case "right", "l":
		d.moveCursor(1, 0)
	case "up", "k":
		d.moveCursor(-7, 0)
	case "down", "j":
		d.moveCursor(7, 0)
	case "[", "pgup":
		d.moveCursor(0, -1)
	case "]", "pgdown":
		d.moveCursor(0, 1)
	case " ":
		d.SelectDate(d.cursor)
	case "enter":
		if d.SelectDate(d.cursor) {
			return d.toggleFocus()
		}
	}
	return d, nil
}

func (d Dialog) confirmCmd() (Dialog, tea.Cmd) {
	s, ok := d.Confirm()
	if !ok {
		return d, nil
	}
	return d, emit(ScheduleConfirmedMsg{Session: s})
}

func (d Dialog) toggleFocus() (Dialog, tea.Cmd) {
	if d.focus == focusCalendar {
		d.focus = focusTime
		return d, d.timeInput.Focus()
	}
	d.focus = focusCalendar
	d.timeInput.Blur()
	return d, nil
}

// View renders the dialog box
func (d Dialog) View() string {
	if !d.open {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(learningColor).
		Render("🗓  Schedule Your Learning Session")
	subtitle := mutedStyle.Render("Choose when you'd like to learn about: ") +
		lipgloss.NewStyle().Bold(true).Render(d.topic.Title)

	dateLabel := sectionTitleStyle.Render("Select Date")
	if d.hasDate {
		dateLabel += mutedStyle.Render("  " + d.selected.Format("Mon, Jan 02 2006"))
	}
	timeLabel := sectionTitleStyle.Render("Select Time Slot")

	cancel := disabledButtonStyle.Foreground(textColor).Render("Cancel (esc)")
	confirm := disabledButtonStyle.Render("Confirm Schedule")
	if d.CanConfirm() {
		confirm = buttonStyle.Background(successColor).Render("Confirm Schedule (enter)")
	}

	help := footerStyle.Render("←/→/↑/↓: move • [ ]: month • space: pick date • tab: switch field")

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dateLabel,
		d.renderCalendar(),
		"",
		timeLabel,
		d.timeInput.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cancel, "  ", confirm),
		"",
		help,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(learningColor).
		Padding(1, 2).
		Render(body)
}

func (d Dialog) renderCalendar() string {
	var s strings.Builder

	first := time.Date(d.cursor.Year(), d.cursor.Month(), 1, 0, 0, 0, 0, d.cursor.Location())
	header := fmt.Sprintf("%s %d", first.Month(), first.Year())
	s.WriteString(lipgloss.NewStyle().Width(20).Align(lipgloss.Center).Bold(true).Render(header) + "\n")
	s.WriteString(mutedStyle.Render("Su Mo Tu We Th Fr Sa") + "\n")

	today := d.today()
	s.WriteString(strings.Repeat("   ", int(first.Weekday())))
	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		style := textStyle
		switch {
		case !d.IsSelectable(day):
			style = lipgloss.NewStyle().Foreground(faintColor)
		case d.hasDate && day.Equal(d.selected):
			style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(successColor)
		case day.Equal(today):
			style = lipgloss.NewStyle().Bold(true).Foreground(learningColor)
		}
		if d.focus == focusCalendar && day.Equal(d.cursor) {
			style = style.Reverse(true)
		}

		s.WriteString(style.Render(fmt.Sprintf("%2d", day.Day())))
		if day.Weekday() == time.Saturday {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return strings.TrimRight(s.String(), " \n")
}
