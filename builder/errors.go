// SPDX-License-Identifier: MIT
// Package: hull/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Builders wrap them with the builder name via builderErrorf.
//   • Builders never panic; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive count was requested.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic builder ran without WithSeed or
// WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a seed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf prefixes sentinel with the builder name and a formatted
// detail, keeping sentinel reachable through errors.Is.
// Result: "<Method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateSize ensures n ≥ 1.
func validateSize(method string, n int) error {
	if n < 1 {
		return builderErrorf(method, ErrBadSize, "n must be ≥ 1, got %d", n)
	}

	return nil
}
