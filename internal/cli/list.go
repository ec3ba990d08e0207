package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every record",
		Long: `Print every record of the directory in stored order, one per line.

The directory is read only; nothing is written back.

Examples:
  phonebook list
  phonebook list --file contacts.csv
  phonebook list --backend sqlite --file phone_book.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return reportError(formatter, err)
	}

	st, err := openStore(cmd, cfg, newLogger(cfg.Verbose, cmd.ErrOrStderr()), true)
	if err != nil {
		return reportError(formatter, err)
	}
	defer st.Close()

	return formatter.Records(st.Records(), false)
}
