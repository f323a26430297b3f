// SPDX-License-Identifier: MIT
// Package: hull/builder
//
// impl_random.go — uniformly random line sets and query streams.

package builder

import "github.com/katalvlaran/hull/envelope"

// Random returns n lines with slope and intercept drawn uniformly from the
// configured ranges. Requires WithSeed or WithRand.
//
// Errors: ErrBadSize (n < 1), ErrNeedRandSource.
// Complexity: O(n).
func Random[T envelope.Number](n int, opts ...LineOption) ([]envelope.Line[T], error) {
	if err := validateSize(MethodRandom, n); err != nil {
		return nil, err
	}
	cfg := newLineConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	lines := make([]envelope.Line[T], n)
	for i := range lines {
		lines[i] = envelope.Line[T]{
			A: convert[T](cfg.slope.draw(cfg.rng)),
			B: convert[T](cfg.intercept.draw(cfg.rng)),
		}
	}

	return lines, nil
}

// Queries returns n positions drawn uniformly from the query range.
// Requires WithSeed or WithRand.
//
// Errors: ErrBadSize (n < 1), ErrNeedRandSource.
// Complexity: O(n).
func Queries[T envelope.Number](n int, opts ...LineOption) ([]T, error) {
	if err := validateSize(MethodQueries, n); err != nil {
		return nil, err
	}
	cfg := newLineConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodQueries, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	xs := make([]T, n)
	for i := range xs {
		xs[i] = convert[T](cfg.query.draw(cfg.rng))
	}

	return xs, nil
}
