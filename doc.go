// Package hull is an in-memory toolkit for the upper envelope of lines —
// the "convex hull trick" behind many O(n²) → O(n log n) DP speedups.
//
// 🚀 What is in hull?
//
//	A small, generic, dependency-light library that brings together:
//		• Line primitives: evaluation and floor-exact intersection boundaries
//		• Dynamic envelope: any insert order, any query order (B-tree backed)
//		• Monotonic envelope: sorted inserts and queries in amortized O(1)
//		• Static envelope: batch build, read-only binary-search queries
//		• Builders: deterministic random, tangent and parallel line sets
//
// ✨ Why choose hull?
//
//   - Generic – int8…int64 and float32/float64 through one Number constraint
//   - Exact integers – boundaries round toward −∞, never truncate
//   - Explicit errors – empty containers and order violations are sentinels
//   - Observable – optional slog logger reports every pruned line
//
// Under the hood, everything is organized under these packages:
//
//	envelope/          — Line, Dynamic, Monotonic, Static
//	builder/           — deterministic line-set and query fixtures
//	internal/workload/ — YAML workloads, runner and brute-force checker
//	internal/cli/      — the hull command (eval, gen, check)
//	cmd/hull/          — binary entry point
//	examples/          — runnable programs
//
// Quick ASCII example:
//
//	  \        /
//	   \______/      max of y = −x+10, y = 5, y = 2x
//	                 (the flat line is never on top and is pruned)
//
//	go get github.com/katalvlaran/hull/envelope
package hull
