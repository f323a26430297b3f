// SPDX-License-Identifier: MIT
// Package: hull/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil                              (builders needing it fail)
//   • slope     = [−DefaultSlopeSpan, +DefaultSlopeSpan]
//   • intercept = [−DefaultInterceptSpan, +DefaultInterceptSpan]
//   • query     = [−DefaultQuerySpan, +DefaultQuerySpan]

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hull/envelope"
)

// span is a closed interval [lo, hi].
type span struct {
	lo, hi float64
}

// draw returns a uniform value in [lo, hi].
func (s span) draw(rng *rand.Rand) float64 {
	return s.lo + rng.Float64()*(s.hi-s.lo)
}

// lineConfig aggregates all knobs used by builders.
// It is passed by VALUE to builders.
type lineConfig struct {
	rng       *rand.Rand
	slope     span
	intercept span
	query     span
}

// newLineConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newLineConfig(opts ...LineOption) lineConfig {
	cfg := lineConfig{
		slope:     span{-DefaultSlopeSpan, DefaultSlopeSpan},
		intercept: span{-DefaultInterceptSpan, DefaultInterceptSpan},
		query:     span{-DefaultQuerySpan, DefaultQuerySpan},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// convert maps a drawn float64 into T, rounding for integer types.
func convert[T envelope.Number](v float64) T {
	var zero T
	one := T(1)
	if one/(one+one) == zero {
		return T(math.Round(v))
	}

	return T(v)
}
