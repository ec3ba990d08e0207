package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/phonebook/internal/config"
	"github.com/roach88/phonebook/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	File    string // backing file, overrides the config file
	Backend string // "csv" | "sqlite", overrides the config file
	Config  string // path to a CUE config file
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the phonebook CLI.
// Without a subcommand it starts the interactive session.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "phonebook",
		Short: "Phonebook - console contact directory",
		Long: `A console contact directory.

Without a subcommand, starts an interactive session on the backing file
(phone_book.csv in the working directory by default): list, add, edit,
search and delete records through a numbered menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.File, "file", "", "backing file (default phone_book.csv)")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "storage backend (csv|sqlite)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a CUE config file")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(opts *RootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.File != "" {
		cfg.File = opts.File
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose
	return cfg, nil
}

// newLogger builds the stderr logger: warnings by default, everything with --verbose.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// openStore opens the configured backend and loads the Directory.
// A readOnly store never creates or writes the backing file.
// The caller must Close the returned store.
func openStore(cmd *cobra.Command, cfg config.Config, logger *slog.Logger, readOnly bool) (*store.Store, error) {
	open := store.Open
	if readOnly {
		open = store.OpenReadOnly
	}

	backend, err := open(cfg.Backend, cfg.File)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open backend", err)
	}

	st, err := store.New(commandContext(cmd), backend, logger)
	if err != nil {
		backend.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load directory", err)
	}
	return st, nil
}
