package workload

import (
	"fmt"

	"github.com/katalvlaran/hull/envelope"
)

// New assembles a workload from typed lines and queries. The numeric kind
// follows T: integer types produce "int", floating types "float".
func New[T envelope.Number](v Variant, strict bool, lines []envelope.Line[T], xs []T) *Workload {
	numeric := NumericFloat
	if one := T(1); one/(one+one) == 0 {
		numeric = NumericInt
	}

	w := &Workload{
		Variant: v,
		Numeric: numeric,
		Strict:  strict,
		Lines:   make([]Pair, len(lines)),
		Queries: make([]Scalar, len(xs)),
	}
	for i, l := range lines {
		w.Lines[i] = Pair{scalar(l.A), scalar(l.B)}
	}
	for i, x := range xs {
		w.Queries[i] = scalar(x)
	}

	return w
}

func scalar[T envelope.Number](v T) Scalar {
	return Scalar(fmt.Sprint(v))
}
