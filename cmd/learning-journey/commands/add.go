package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/journey"
	"github.com/strrl/learning-journey/internal/notify"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

const dateLayout = "2006-01-02"

type addOptions struct {
	title       string
	description string
	date        string
	slot        string
}

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	opts := &addOptions{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a session without TUI",
		Long: `Schedule a learning session non-interactively.
Without --title a topic is generated first, exactly as in the TUI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Topic title (generated when empty)")
	cmd.Flags().StringVar(&opts.description, "description", "", "Topic description")
	cmd.Flags().StringVar(&opts.date, "date", "", "Session day, YYYY-MM-DD (today or later)")
	cmd.Flags().StringVar(&opts.slot, "time", "", `Time slot label, e.g. "10:00-11:00 AM"`)
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

// parseSessionDate reads a YYYY-MM-DD day in local time and rejects days before today.
func parseSessionDate(value string, now time.Time) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", value)
	}
	if day.Before(schedule.StartOfDay(now)) {
		return time.Time{}, fmt.Errorf("date %s is in the past", value)
	}
	return day, nil
}

func runAdd(cmd *cobra.Command, opts *addOptions) error {
	now := time.Now()
	day, err := parseSessionDate(opts.date, now)
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.slot) == "" {
		return fmt.Errorf("time slot must not be empty")
	}

	rec := &notify.Recorder{}
	a, err := openApp(cmd, rec)
	if err != nil {
		return err
	}
	defer a.Close()

	topic := models.Topic{Title: opts.title, Description: opts.description}
	if strings.TrimSpace(topic.Title) == "" {
		if err := a.ctrl.BeginGeneration(); err != nil {
			return err
		}
		generated, genErr := a.gen.Generate(context.Background())
		a.ctrl.CompleteGeneration(generated, genErr)
		if genErr != nil {
			return genErr
		}
		topic = generated
	}

	session := journey.NewSession(topic, day, opts.slot, now)
	if err := a.ctrl.Schedule(session); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sent := rec.Sent()
	last := sent[len(sent)-1]
	fmt.Fprintf(out, "%s %s\n", last.Title, last.Description)
	fmt.Fprintf(out, "%s on %s (id %s)\n", topic.Title, day.Format("Jan 02, 2006"), session.ID)
	return nil
}
