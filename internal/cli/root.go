// Package cli wires the goanimals command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/olehluchkiv/goanimals/internal/driver"
	"github.com/olehluchkiv/goanimals/internal/logging"
)

type rootOptions struct {
	logLevel string
	logFile  string

	logger  *slog.Logger
	cleanup func()
}

func (o *rootOptions) close() {
	if o.cleanup != nil {
		o.cleanup()
		o.cleanup = nil
	}
}

// NewRootCmd builds the command tree. Running it with no subcommand
// announces the default roster on stdout.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "goanimals",
		Short:        "Announce a dog, a cat and a bird",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger, cleanup, err := logging.Setup(cmd.ErrOrStderr(), opts.logFile, level)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			opts.logger = logger
			opts.cleanup = cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.close()
			return driver.Run(cmd.Context(), cmd.OutOrStdout(), driver.Default(), opts.logger)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also append JSON logs to this file")

	cmd.AddCommand(newDiagramCmd(opts))

	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
