package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/strrl/learning-journey/internal/notify"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate one learning topic and print it",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rec := &notify.Recorder{}
	a, err := openApp(cmd, rec)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.ctrl.BeginGeneration(); err != nil {
		return err
	}
	topic, genErr := a.gen.Generate(ctx)
	a.ctrl.CompleteGeneration(topic, genErr)

	out := cmd.OutOrStdout()
	for _, n := range rec.Sent() {
		fmt.Fprintf(out, "%s %s\n", n.Title, n.Description)
	}
	if genErr != nil {
		return genErr
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, topic.Title)
	fmt.Fprintln(out, topic.Description)
	return nil
}
