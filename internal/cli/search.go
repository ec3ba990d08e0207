package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/phonebook/internal/contact"
	"github.com/roach88/phonebook/internal/phonebook"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find records by keywords",
		Long: `Find records matching every comma-separated keyword.

A record matches when each keyword is a case-insensitive substring of at
least one of its fields. Matches are numbered from 1.

Examples:
  phonebook search ivanov
  phonebook search "ivanov, acme"
  phonebook search acme --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSearch(opts *RootOptions, query string, cmd *cobra.Command) error {
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

	found := st.Search(contact.ParseKeywords(query))

	if opts.Format != "json" && len(found) == 0 {
		return formatter.Success(phonebook.MsgNothingFound)
	}
	return formatter.Records(found, true)
}
