package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hull/internal/workload"
)

// CheckResult is the JSON payload of a successful check.
type CheckResult struct {
	Lines    int                `json:"lines"`
	Queries  int                `json:"queries"`
	Variants []workload.Variant `json:"variants"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <workload.yaml>",
		Short: "Verify every container against brute force",
		Long: `Build all three containers from the workload's lines and compare each
answer with the brute-force maximum over every line. The monotonic container
receives lines and queries sorted, whatever the file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	w, err := loadWorkload(path)
	if err != nil {
		return err
	}
	if err := workload.Check(w); err != nil {
		opts.Logger.Error("check failed", "workload", path, "err", err)
		return &commandError{code: ExitMismatch, op: "check " + path, err: err}
	}

	res := CheckResult{Lines: len(w.Lines), Queries: len(w.Queries), Variants: workload.Variants}
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Emit(res, func(out io.Writer) error {
		_, err := fmt.Fprintf(out, "ok: %d lines, %d queries verified across %v\n",
			res.Lines, res.Queries, res.Variants)
		return err
	})
}
