package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/config"
	"github.com/strrl/learning-journey/internal/tui"
)

const toastTTL = 4 * time.Second

var debugMode bool

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "learning-journey",
		Short: "Generate learning topics and schedule sessions for them",
		Long: `learning-journey is a TUI application that suggests a learning topic,
lets you schedule it for a day and time slot, and keeps track of upcoming
and completed sessions.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", false, "Run in debug mode (print the schedule without TUI)")
	flags.String("data-dir", "", "Directory for the store and log file")
	flags.String("store", config.StoreFile, "Store driver: file, duckdb or sqlite")
	flags.String("storage-key", config.DefaultStorageKey, "Key the session list is stored under")
	flags.String("webhook-url", "", "Generate topics by POSTing to this URL instead of the built-in samples")
	flags.Bool("desktop-notify", false, "Also send notifications to the desktop")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewDebugCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Debug mode: just print the schedule without TUI
	if debugMode {
		return printSchedule(cmd.OutOrStdout(), a.ctrl.Sessions(), time.Now())
	}

	if err := tui.Run(a.ctrl, a.gen, a.toaster); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
