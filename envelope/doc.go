// SPDX-License-Identifier: MIT

// Package envelope maintains the upper envelope of a set of lines
// f(x) = a·x + b and answers "maximum value at x" queries.
//
// 🚀 What is the upper envelope?
//
//	Given lines f_i(x) = a_i·x + b_i, the upper envelope is the pointwise
//	maximum max_i f_i(x). It is piecewise linear and convex; each line that
//	appears on it owns one contiguous interval of x. Lines that own no
//	interval are dominated and are dropped. The technique is widely known
//	as the "convex hull trick" and is used to speed up DP recurrences of the
//	form dp[i] = max_j (m_j·x_i + c_j).
//
// ✨ Three containers, three trade-offs:
//
//   - Dynamic   — insert in any order, query in any order.
//     Insert: amortized O(log n). Maximum: O(log n).
//   - Monotonic — slopes must be non-decreasing on Insert and x must be
//     non-decreasing on Maximum. Both operations amortized O(1).
//   - Static    — built once from a batch (O(n log n)), then queried by
//     binary search in O(log n). Read-only after construction.
//
// ⚙️ Usage:
//
//	d := envelope.NewDynamic[int64]()
//	d.Insert(2, 0)
//	d.Insert(0, 5)
//	d.Insert(-1, 10)
//	best, err := d.Maximum(3) // 7
//
// Numeric semantics:
//
//   - T is any signed integer or floating-point type (see Number).
//   - For integers the boundary between two lines is computed with floor
//     division (rounding toward −∞). Truncating division would misclassify
//     dominated lines for negative intersections.
//   - +∞ / −∞ are the type's max/min value for integers and ±Inf for floats.
//   - Overflow of a·x + b is the caller's concern.
//
// Minimum queries are obtained by negation: insert (−a, −b) and negate
// the result of Maximum.
//
// Errors:
//   - ErrEmptyContainer — Maximum on a container without lines.
//   - ErrOrderViolation — Monotonic with WithStrictOrder received a decreasing
//     slope or query position.
//
// Concurrency: containers are not safe for concurrent use. A Static is
// immutable after NewStatic and may be shared between readers.
package envelope
