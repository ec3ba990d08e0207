package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/phonebook/internal/console"
	"github.com/roach88/phonebook/internal/phonebook"
)

// runSession runs the interactive menu on the command's stdin and stdout.
func runSession(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose, cmd.ErrOrStderr())
	logger.Debug("configuration resolved", "file", cfg.File, "backend", cfg.Backend)

	st, err := openStore(cmd, cfg, logger, false)
	if err != nil {
		return err
	}
	defer st.Close()

	book := phonebook.New(st,
		console.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		phonebook.WithLogger(logger),
	)
	if err := book.Run(commandContext(cmd)); err != nil {
		return WrapExitError(ExitFailure, "session ended with unsaved changes", err)
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
