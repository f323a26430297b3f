// Package cli implements the hull command tree: eval, gen and check.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Logger is built in PersistentPreRunE and writes to the command's
	// error stream, so it never interleaves with JSON on stdout.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hull CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hull",
		Short: "hull - upper envelope of lines",
		Long: `Evaluate, generate and verify upper-envelope workloads.

A workload is a YAML file naming a container variant (dynamic, monotonic,
static), a numeric kind (int, float), a list of lines [a, b] and a list of
query positions. Each query returns max(a·x + b) over all lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
				NoColor:    true,
			}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log pruning decisions")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}
