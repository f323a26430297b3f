// SPDX-License-Identifier: MIT

// Package builder generates deterministic line sets and query streams for
// envelope tests, benchmarks, demos and CLI workloads.
//
// 🚀 Fixtures:
//
//	Random    — n lines with slopes/intercepts drawn uniformly from the
//	            configured ranges (requires WithSeed or WithRand).
//	Tangents  — n tangents 2k·x − k² of y = x²; every line lies on the
//	            upper envelope, the worst case for pruning.
//	Parallel  — n lines sharing one slope; exactly one survives.
//	Queries   — n query positions drawn from the configured range.
//	SortBySlope / SortQueries — order inputs for the Monotonic container.
//
// ⚙️ Usage:
//
//	lines, err := builder.Random[int64](1000, builder.WithSeed(7),
//	    builder.WithSlopeRange(-50, 50))
//	xs, err := builder.Queries[int64](500, builder.WithSeed(8))
//
// Contract:
//   - Outputs are a pure function of (n, options). No globals.
//   - Option constructors panic on meaningless input (nil rand, lo > hi).
//   - Builders return sentinel errors (ErrBadSize, ErrNeedRandSource)
//     wrapped with the builder's name; match them with errors.Is.
//   - Integer instantiations round drawn values to the nearest integer.
package builder
