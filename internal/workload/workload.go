package workload

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hull/envelope"
)

// Load decodes and validates a workload. Unknown fields are rejected.
func Load(r io.Reader) (*Workload, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var w Workload
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode workload: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	return &w, nil
}

// Encode writes w as YAML.
func Encode(out io.Writer, w *Workload) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("encode workload: %w", err)
	}

	return enc.Close()
}

// Validate checks the variant, the numeric kind and that lines exist.
func (w *Workload) Validate() error {
	if !slices.Contains(Variants, w.Variant) {
		return fmt.Errorf("%w: %q", ErrUnknownVariant, w.Variant)
	}
	if w.Numeric != NumericInt && w.Numeric != NumericFloat {
		return fmt.Errorf("%w: %q", ErrUnknownNumeric, w.Numeric)
	}
	if len(w.Lines) == 0 {
		return ErrNoLines
	}

	return nil
}

// Run feeds w through its container and answers every query in file order.
// For the monotonic variant the file order must already be monotone; with
// strict set, violations surface as envelope.ErrOrderViolation.
// logger may be nil.
func Run(w *Workload, logger *slog.Logger) (*Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	switch w.Numeric {
	case NumericInt:
		return run(w, intCodec, logger)
	default:
		return run(w, floatCodec, logger)
	}
}

// Check builds all three containers from w and compares every answer with
// a brute-force maximum. Monotonic gets the lines and queries sorted.
// Float answers are compared with a relative tolerance of 1e-9.
func Check(w *Workload) error {
	if err := w.Validate(); err != nil {
		return err
	}
	switch w.Numeric {
	case NumericInt:
		return check(w, intCodec)
	default:
		return check(w, floatCodec)
	}
}

// codec converts between Scalar text and T.
type codec[T envelope.Number] struct {
	parse  func(string) (T, error)
	format func(T) string
	equal  func(want, got T) bool
}

var intCodec = codec[int64]{
	parse:  func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
	format: func(v int64) string { return strconv.FormatInt(v, 10) },
	equal:  func(want, got int64) bool { return want == got },
}

var floatCodec = codec[float64]{
	parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	format: func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	equal: func(want, got float64) bool {
		return math.Abs(want-got) <= 1e-9*math.Max(1, math.Abs(want))
	},
}

// container is the query surface shared by the three variants.
type container[T envelope.Number] interface {
	Maximum(x T) (T, error)
	Len() int
}

func decode[T envelope.Number](w *Workload, c codec[T]) ([]envelope.Line[T], []T, error) {
	lines := make([]envelope.Line[T], len(w.Lines))
	for i, p := range w.Lines {
		a, errA := c.parse(string(p[0]))
		b, errB := c.parse(string(p[1]))
		if err := errors.Join(errA, errB); err != nil {
			return nil, nil, fmt.Errorf("line %d: %w: %w", i, ErrBadNumber, err)
		}
		lines[i] = envelope.Line[T]{A: a, B: b}
	}

	xs := make([]T, len(w.Queries))
	for i, q := range w.Queries {
		x, err := c.parse(string(q))
		if err != nil {
			return nil, nil, fmt.Errorf("query %d: %w: %w", i, ErrBadNumber, err)
		}
		xs[i] = x
	}

	return lines, xs, nil
}

// build constructs the variant named v from lines.
func build[T envelope.Number](v Variant, lines []envelope.Line[T], opts ...envelope.Option) (container[T], error) {
	switch v {
	case VariantDynamic:
		d := envelope.NewDynamic[T](opts...)
		for _, l := range lines {
			d.Insert(l.A, l.B)
		}
		return d, nil
	case VariantMonotonic:
		m := envelope.NewMonotonic[T](opts...)
		for i, l := range lines {
			if err := m.Insert(l.A, l.B); err != nil {
				return nil, fmt.Errorf("line %d: %w", i, err)
			}
		}
		return m, nil
	case VariantStatic:
		return envelope.NewStatic(lines, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

func run[T envelope.Number](w *Workload, c codec[T], logger *slog.Logger) (*Result, error) {
	lines, xs, err := decode(w, c)
	if err != nil {
		return nil, err
	}

	var opts []envelope.Option
	if logger != nil {
		opts = append(opts, envelope.WithLogger(logger))
	}
	if w.Strict {
		opts = append(opts, envelope.WithStrictOrder())
	}

	ctr, err := build(w.Variant, lines, opts...)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Variant:  w.Variant,
		Numeric:  w.Numeric,
		Inserted: len(lines),
		Answers:  make([]Answer, 0, len(xs)),
	}
	for i, x := range xs {
		v, err := ctr.Maximum(x)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		res.Answers = append(res.Answers, Answer{X: c.format(x), Max: c.format(v)})
	}
	res.Retained = ctr.Len()

	if logger != nil {
		logger.Info("workload evaluated",
			"variant", res.Variant, "numeric", res.Numeric,
			"inserted", res.Inserted, "retained", res.Retained, "queries", len(res.Answers))
	}

	return res, nil
}

func check[T envelope.Number](w *Workload, c codec[T]) error {
	lines, xs, err := decode(w, c)
	if err != nil {
		return err
	}

	sortedLines := slices.Clone(lines)
	slices.SortStableFunc(sortedLines, func(x, y envelope.Line[T]) int {
		return cmp.Compare(x.A, y.A)
	})
	sortedXs := slices.Clone(xs)
	slices.Sort(sortedXs)

	for _, v := range Variants {
		in, qs := lines, xs
		if v == VariantMonotonic {
			in, qs = sortedLines, sortedXs
		}
		ctr, err := build(v, in)
		if err != nil {
			return err
		}
		for _, x := range qs {
			got, err := ctr.Maximum(x)
			if err != nil {
				return fmt.Errorf("%s: %w", v, err)
			}
			if want := bruteMax(lines, x); !c.equal(want, got) {
				return fmt.Errorf("%w: variant=%s x=%s got=%s want=%s",
					ErrMismatch, v, c.format(x), c.format(got), c.format(want))
			}
		}
	}

	return nil
}

func bruteMax[T envelope.Number](lines []envelope.Line[T], x T) T {
	best := lines[0].Eval(x)
	for _, l := range lines[1:] {
		best = max(best, l.Eval(x))
	}

	return best
}
