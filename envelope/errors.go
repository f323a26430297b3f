// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// errors.go — sentinel errors for the envelope package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the call site, never in the sentinel.
//   • Containers never panic on caller input; option constructors may.

package envelope

import "errors"

var (
	// ErrEmptyContainer indicates Maximum was called before any line was
	// inserted (or on a Static built from an empty batch). There is no
	// sentinel value that is safe across every numeric range, so the
	// query fails instead of returning a default.
	ErrEmptyContainer = errors.New("envelope: container has no lines")

	// ErrOrderViolation indicates a Monotonic container in strict mode
	// received a slope smaller than the previous one, or a query position
	// smaller than the previous query.
	ErrOrderViolation = errors.New("envelope: monotonic order violated")
)
