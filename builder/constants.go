// Package builder defines shared constants used by the line builders.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the builder name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random builder.
	MethodRandom = "Random"
	// MethodTangents is the canonical name for the Tangents builder.
	MethodTangents = "Tangents"
	// MethodParallel is the canonical name for the Parallel builder.
	MethodParallel = "Parallel"
	// MethodQueries is the canonical name for the Queries builder.
	MethodQueries = "Queries"
)

//-----------------------------------------------------------------------------
// Range Defaults
//   chosen so that a·x + b stays far from int64 overflow.
//-----------------------------------------------------------------------------

const (
	// DefaultSlopeSpan bounds slopes to [−DefaultSlopeSpan, DefaultSlopeSpan].
	DefaultSlopeSpan = 1_000.0
	// DefaultInterceptSpan bounds intercepts to [−span, span].
	DefaultInterceptSpan = 1_000_000.0
	// DefaultQuerySpan bounds query positions to [−span, span].
	DefaultQuerySpan = 10_000.0
)
