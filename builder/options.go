// SPDX-License-Identifier: MIT
// Package: hull/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type LineOption func(*lineConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic.
//   • Determinism is explicit: randomness comes only from WithSeed/WithRand.

package builder

import (
	"math"
	"math/rand"
)

// LineOption customizes a builder by mutating a lineConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type LineOption func(*lineConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) LineOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *lineConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) LineOption {
	return func(c *lineConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSlopeRange sets the closed slope range [lo, hi]. Panics if lo > hi.
func WithSlopeRange(lo, hi float64) LineOption {
	mustRange("WithSlopeRange", lo, hi)
	return func(c *lineConfig) {
		c.slope = span{lo, hi}
	}
}

// WithInterceptRange sets the closed intercept range [lo, hi].
// Panics if lo > hi.
func WithInterceptRange(lo, hi float64) LineOption {
	mustRange("WithInterceptRange", lo, hi)
	return func(c *lineConfig) {
		c.intercept = span{lo, hi}
	}
}

// WithQueryRange sets the closed range [lo, hi] for Queries.
// Panics if lo > hi.
func WithQueryRange(lo, hi float64) LineOption {
	mustRange("WithQueryRange", lo, hi)
	return func(c *lineConfig) {
		c.query = span{lo, hi}
	}
}

func mustRange(name string, lo, hi float64) {
	if lo > hi || math.IsNaN(lo) || math.IsNaN(hi) {
		panic("builder: " + name + "(lo>hi or NaN)")
	}
}
