// File: builder/builder_test.go
// Package builder_test verifies determinism, ranges and error contracts of
// the line builders, and cross-checks the structured fixtures against the
// envelope containers.
package builder_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/hull/builder"
	"github.com/katalvlaran/hull/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seedDet = int64(7)
	nSmall  = 64
)

// TestRandom_Deterministic checks identical seeds give identical output.
func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random[int64](nSmall, builder.WithSeed(seedDet))
	require.NoError(t, err)
	b, err := builder.Random[int64](nSmall, builder.WithSeed(seedDet))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Random[int64](nSmall, builder.WithSeed(seedDet+1))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestRandom_Ranges checks drawn values respect the configured ranges.
func TestRandom_Ranges(t *testing.T) {
	lines, err := builder.Random[float64](nSmall,
		builder.WithRand(rand.New(rand.NewSource(seedDet))),
		builder.WithSlopeRange(-2, 3),
		builder.WithInterceptRange(10, 20))
	require.NoError(t, err)
	require.Len(t, lines, nSmall)
	for _, l := range lines {
		assert.GreaterOrEqual(t, l.A, -2.0)
		assert.LessOrEqual(t, l.A, 3.0)
		assert.GreaterOrEqual(t, l.B, 10.0)
		assert.LessOrEqual(t, l.B, 20.0)
	}

	ints, err := builder.Random[int32](nSmall, builder.WithSeed(seedDet), builder.WithSlopeRange(-1, 1))
	require.NoError(t, err)
	for _, l := range ints {
		assert.Contains(t, []int32{-1, 0, 1}, l.A)
	}
}

// TestBuilders_Errors verifies sentinel errors survive wrapping.
func TestBuilders_Errors(t *testing.T) {
	_, err := builder.Random[int64](0, builder.WithSeed(seedDet))
	assert.ErrorIs(t, err, builder.ErrBadSize)
	assert.Contains(t, err.Error(), builder.MethodRandom)

	_, err = builder.Random[int64](nSmall)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Queries[float64](nSmall)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Tangents[int64](-1)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.Parallel[int64](0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

// TestOptions_Panics verifies option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSlopeRange(2, 1) })
	assert.Panics(t, func() { builder.WithInterceptRange(1, 0) })
	assert.Panics(t, func() { builder.WithQueryRange(5, -5) })
	assert.NotPanics(t, func() { builder.WithQueryRange(3, 3) })
}

// TestTangents_AllOnEnvelope checks every tangent survives and the envelope
// reproduces x² at integer points.
func TestTangents_AllOnEnvelope(t *testing.T) {
	lines, err := builder.Tangents[int64](nSmall, builder.WithSeed(seedDet))
	require.NoError(t, err)

	d := envelope.NewDynamic[int64]()
	for _, l := range lines {
		d.Insert(l.A, l.B)
	}
	assert.Equal(t, nSmall, d.Len())
	for x := int64(-nSmall / 2); x < nSmall/2; x++ {
		got, err := d.Maximum(x)
		require.NoError(t, err)
		assert.Equal(t, x*x, got)
	}
}

// TestParallel_SingleSurvivor checks only the top parallel line is kept.
func TestParallel_SingleSurvivor(t *testing.T) {
	lines, err := builder.Parallel[int64](nSmall, builder.WithSeed(seedDet), builder.WithSlopeRange(2, 4))
	require.NoError(t, err)

	s := envelope.NewStatic(lines)
	assert.Equal(t, []envelope.Line[int64]{{A: 3, B: nSmall - 1}}, slices.Collect(s.Lines()))
}

// TestSortHelpers checks the Monotonic feeding order.
func TestSortHelpers(t *testing.T) {
	lines := []envelope.Line[int64]{{A: 3, B: 0}, {A: -1, B: 2}, {A: 3, B: -1}, {A: 0, B: 0}}
	builder.SortBySlope(lines)
	assert.Equal(t, []envelope.Line[int64]{{A: -1, B: 2}, {A: 0, B: 0}, {A: 3, B: 0}, {A: 3, B: -1}}, lines)

	xs, err := builder.Queries[int64](nSmall, builder.WithSeed(seedDet), builder.WithQueryRange(-100, 100))
	require.NoError(t, err)
	builder.SortQueries(xs)
	assert.True(t, slices.IsSorted(xs))
	for _, x := range xs {
		assert.GreaterOrEqual(t, x, int64(-100))
		assert.LessOrEqual(t, x, int64(100))
	}
}
