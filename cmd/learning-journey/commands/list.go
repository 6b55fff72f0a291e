package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/schedule"
	"github.com/strrl/learning-journey/pkg/models"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show upcoming and completed sessions without TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return printSchedule(cmd.OutOrStdout(), a.ctrl.Sessions(), time.Now())
		},
	}
}

func printSchedule(w io.Writer, sessions []models.ScheduledSession, now time.Time) error {
	bold := color.New(color.Bold)
	upcomingColor := color.New(color.FgCyan, color.Bold)
	pastColor := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	bold.Fprintln(w, "My Learning Schedule")
	if len(sessions) == 0 {
		dim.Fprintln(w, "Your scheduled learning sessions will appear here")
		return nil
	}

	upcoming, past := schedule.Partition(sessions, now)
	if len(upcoming) > 0 {
		fmt.Fprintln(w)
		upcomingColor.Fprintf(w, "Upcoming Sessions (%d)\n", len(upcoming))
		for i, s := range upcoming {
			printSession(w, i+1, s)
		}
	}
	if len(past) > 0 {
		fmt.Fprintln(w)
		pastColor.Fprintf(w, "Completed Learning (%d)\n", len(past))
		for i, s := range past {
			printSession(w, i+1, s)
		}
	}
	return nil
}

func printSession(w io.Writer, n int, s models.ScheduledSession) {
	fmt.Fprintf(w, "%d. %s\n", n, s.Topic.Title)
	if s.Topic.Description != "" {
		fmt.Fprintf(w, "   %s\n", truncateString(s.Topic.Description, 80))
	}
	fmt.Fprintf(w, "   %s • %s\n", s.Date.Format("Jan 02, 2006"), s.Time)
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
