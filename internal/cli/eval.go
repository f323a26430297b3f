package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hull/internal/workload"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <workload.yaml>",
		Short: "Answer every query of a workload",
		Long: `Build the workload's container from its lines and print the envelope's
maximum at each query position, in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, args[0], cmd)
		},
	}
}

func runEval(opts *RootOptions, path string, cmd *cobra.Command) error {
	w, err := loadWorkload(path)
	if err != nil {
		return err
	}

	res, err := workload.Run(w, opts.Logger)
	if err != nil {
		return badInput("evaluate "+path, err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(res, func(out io.Writer) error {
		for _, a := range res.Answers {
			if _, err := fmt.Fprintf(out, "x=%s max=%s\n", a.X, a.Max); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(out, "%s/%s: %d lines, %d retained, %d queries\n",
			res.Variant, res.Numeric, res.Inserted, res.Retained, len(res.Answers))
		return err
	})
}

// loadWorkload opens and decodes a workload file.
func loadWorkload(path string) (*workload.Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, badInput("open workload", err)
	}
	defer f.Close()

	w, err := workload.Load(f)
	if err != nil {
		return nil, badInput("load "+path, err)
	}
	return w, nil
}
