package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/schedule"
)

// NewDebugCommand creates the debug-store command
func NewDebugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-store",
		Short: "Show the raw stored session list and whether it parses",
		Args:  cobra.NoArgs,
		RunE:  runDebugStore,
	}
}

func runDebugStore(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store: %s (%s)\n", a.cfg.Store, a.cfg.StorePath())
	fmt.Fprintf(out, "Key:   %s\n", a.cfg.StorageKey)
	fmt.Fprintln(out, "==========================================")

	raw, ok, err := a.store.Get(a.cfg.StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read store: %w", err)
	}
	if !ok {
		fmt.Fprintln(out, "No value stored under this key")
		return nil
	}

	fmt.Fprintf(out, "Raw value (%d bytes):\n%s\n\n", len(raw), raw)

	sessions, err := schedule.Decode(raw)
	if err != nil {
		fmt.Fprintf(out, "Unreadable, the app will start with an empty schedule: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Parsed %d sessions:\n", len(sessions))
	for i, s := range sessions {
		fmt.Fprintf(out, "\n--- Session %d ---\nid:          %s\ntitle:       %s\ndate:        %s\ntime:        %s\nscheduledAt: %s\n",
			i+1, s.ID, s.Topic.Title, s.Date.Format("2006-01-02"), s.Time, s.ScheduledAt.Format("2006-01-02 15:04"))
	}
	return nil
}
