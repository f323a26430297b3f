// SPDX-License-Identifier: MIT
// Package: hull/builder
//
// impl_fixtures.go — structured line sets with known envelopes.
//
// Purpose:
//   • Tangents: every line survives; stresses retention and Monotonic sweeps.
//   • Parallel: every line but one is dominated; stresses equal-slope rules.
// Both are deterministic; an RNG, when configured, only shuffles the order.

package builder

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hull/envelope"
)

// Tangents returns the n tangents of y = x² at k = −⌊n/2⌋ … n−1−⌊n/2⌋,
// i.e. lines 2k·x − k². At integer x within that range the envelope equals x².
// With an RNG configured the output order is shuffled.
//
// Errors: ErrBadSize (n < 1).
// Complexity: O(n).
func Tangents[T envelope.Number](n int, opts ...LineOption) ([]envelope.Line[T], error) {
	if err := validateSize(MethodTangents, n); err != nil {
		return nil, err
	}
	cfg := newLineConfig(opts...)

	lines := make([]envelope.Line[T], n)
	for i := range lines {
		k := T(i - n/2)
		lines[i] = envelope.Line[T]{A: 2 * k, B: -k * k}
	}
	shuffle(cfg, lines)

	return lines, nil
}

// Parallel returns n lines with the slope at the midpoint of the slope range
// and intercepts 0 … n−1. Only the line with intercept n−1 is on the envelope.
// With an RNG configured the output order is shuffled.
//
// Errors: ErrBadSize (n < 1).
// Complexity: O(n).
func Parallel[T envelope.Number](n int, opts ...LineOption) ([]envelope.Line[T], error) {
	if err := validateSize(MethodParallel, n); err != nil {
		return nil, err
	}
	cfg := newLineConfig(opts...)

	a := convert[T]((cfg.slope.lo + cfg.slope.hi) / 2)
	lines := make([]envelope.Line[T], n)
	for i := range lines {
		lines[i] = envelope.Line[T]{A: a, B: T(i)}
	}
	shuffle(cfg, lines)

	return lines, nil
}

// SortBySlope orders lines by ascending slope in place, the order Monotonic
// requires. Equal slopes keep their relative order.
func SortBySlope[T envelope.Number](lines []envelope.Line[T]) {
	slices.SortStableFunc(lines, func(x, y envelope.Line[T]) int {
		return cmp.Compare(x.A, y.A)
	})
}

// SortQueries orders positions ascending in place.
func SortQueries[T envelope.Number](xs []T) {
	slices.Sort(xs)
}

func shuffle[T envelope.Number](cfg lineConfig, lines []envelope.Line[T]) {
	if cfg.rng == nil {
		return
	}
	cfg.rng.Shuffle(len(lines), func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})
}
