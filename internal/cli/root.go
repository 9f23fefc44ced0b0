package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/faizmokh/laporan/internal/config"
	"github.com/faizmokh/laporan/internal/version"
)

// NewRootCommand creates the report command. A nil logger means one is built
// from --verbose and LAPORAN_LOG_LEVEL when the command runs.
func NewRootCommand(ctx context.Context, logger *zap.Logger) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "laporan <file.csv> [date]",
		Short: "Render a CSV work log as an HTML report grouped by project.",
		Long: `laporan reads project,author,date,report rows from a CSV file, keeps the rows
matching --date and --author, decodes the percent-encoded report column and
prints an HTML table grouped by project to standard output.

The first row is treated as data. Passing the date as a second argument is
the same as --date.`,
		Example: `  laporan week.csv --date 2024-01-01 --author alice
  laporan week.csv 2024-01-01 > report.html`,
		Version: version.Info(),
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.DateSet = cmd.Flags().Changed("date")
			flags.AuthorSet = cmd.Flags().Changed("author")

			cfg, err := config.FromArgs(args, flags)
			if err != nil {
				return err
			}

			log := logger
			if log == nil {
				log, err = newLogger(cfg.Verbose)
				if err != nil {
					return err
				}
				defer func() { _ = log.Sync() }()
			}

			doc, err := buildReport(ctx, cfg, log)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flags.Date, "date", "", "Keep only rows whose date column equals DATE exactly")
	cmd.Flags().StringVar(&flags.Author, "author", "", "Keep only rows whose author column equals AUTHOR exactly")
	cmd.Flags().BoolVar(&flags.EagerDecode, "eager-decode", false, "Decode every report before filtering so bad encodings anywhere fail the run")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, nil)
	return cmd.Execute()
}

// Main is a helper used by cmd/laporan/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
