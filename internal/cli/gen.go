package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hull/builder"
	"github.com/katalvlaran/hull/envelope"
	"github.com/katalvlaran/hull/internal/workload"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	Kind    string
	Lines   int
	Queries int
	Seed    int64
	Numeric string
	Variant string
	Strict  bool
}

// ValidKinds lists the line-set generators gen understands.
var ValidKinds = []string{"random", "tangent", "parallel"}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated workload to stdout",
		Long: `Generate a deterministic workload from a seed. For the monotonic variant
lines are sorted by slope and queries ascending, so the output can be fed
to eval as-is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Kind, "kind", "random", "line set (random|tangent|parallel)")
	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 100, "number of lines")
	cmd.Flags().IntVarP(&opts.Queries, "queries", "q", 100, "number of queries")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&opts.Numeric, "numeric", "int", "numeric kind (int|float)")
	cmd.Flags().StringVar(&opts.Variant, "variant", "dynamic", "container variant (dynamic|monotonic|static)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "enable monotonic order checks in the workload")

	return cmd
}

func runGen(rootOpts *RootOptions, opts *GenOptions, cmd *cobra.Command) error {
	if !slices.Contains(ValidKinds, opts.Kind) {
		return badInput("gen",
			fmt.Errorf("invalid kind %q: must be one of %v", opts.Kind, ValidKinds))
	}

	var (
		w   *workload.Workload
		err error
	)
	switch workload.Numeric(opts.Numeric) {
	case workload.NumericInt:
		w, err = generate[int64](opts)
	case workload.NumericFloat:
		w, err = generate[float64](opts)
	default:
		err = fmt.Errorf("%w: %q", workload.ErrUnknownNumeric, opts.Numeric)
	}
	if err == nil {
		err = w.Validate()
	}
	if err != nil {
		return badInput("gen", err)
	}

	rootOpts.Logger.Debug("workload generated",
		"kind", opts.Kind, "variant", w.Variant, "numeric", w.Numeric,
		"lines", len(w.Lines), "queries", len(w.Queries), "seed", opts.Seed)

	return workload.Encode(cmd.OutOrStdout(), w)
}

func generate[T envelope.Number](opts *GenOptions) (*workload.Workload, error) {
	var (
		lines []envelope.Line[T]
		err   error
	)
	switch opts.Kind {
	case "tangent":
		lines, err = builder.Tangents[T](opts.Lines, builder.WithSeed(opts.Seed))
	case "parallel":
		lines, err = builder.Parallel[T](opts.Lines, builder.WithSeed(opts.Seed))
	default:
		lines, err = builder.Random[T](opts.Lines, builder.WithSeed(opts.Seed))
	}
	if err != nil {
		return nil, err
	}

	var xs []T
	if opts.Queries > 0 {
		xs, err = builder.Queries[T](opts.Queries, builder.WithSeed(opts.Seed+1))
		if err != nil {
			return nil, err
		}
	}

	variant := workload.Variant(opts.Variant)
	if variant == workload.VariantMonotonic {
		builder.SortBySlope(lines)
		builder.SortQueries(xs)
	}

	return workload.New(variant, opts.Strict, lines, xs), nil
}
