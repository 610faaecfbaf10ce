// Command validate checks YAML documents against a field schema and prints
// every refinement of the validation result as a JSON line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, ErrDocumentRejected):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate",
		Short:         "Validate YAML documents against a field schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addRunCommand(cmd)
	return cmd
}
