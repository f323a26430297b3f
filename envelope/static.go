// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// static.go — upper envelope built once from a batch of lines.
//
// Algorithm (NewStatic):
//  1. Copy and sort the batch by (A asc, B asc).
//  2. Sweep: a candidate parallel to the hull's last line replaces it
//     (sorting guarantees its intercept is not smaller). Then the last line's
//     boundary is recomputed against the candidate; while the second-to-last
//     line's recorded end is ≥ that boundary, the last line's region is
//     empty and it is popped.
//  3. Append the candidate with an end of +∞.
//
// Complexity: O(n log n) build, O(log n) Maximum, O(n) memory.

package envelope

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// Static is an immutable upper envelope. Maximum never mutates it, so a
// built Static may be queried from several goroutines.
type Static[T Number] struct {
	hull []segment[T]
}

// NewStatic builds the envelope of lines. The input slice is not modified.
// An empty batch yields a container whose Maximum reports ErrEmptyContainer.
func NewStatic[T Number](lines []Line[T], opts ...Option) *Static[T] {
	cfg := newConfig(opts...)
	num := traitsOf[T]()

	sorted := slices.Clone(lines)
	slices.SortFunc(sorted, func(x, y Line[T]) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	hull := make([]segment[T], 0, len(sorted))
	for _, cand := range sorted {
		if n := len(hull); n > 0 && hull[n-1].A == cand.A {
			hull = hull[:n-1]
		}
		for n := len(hull); n > 0; n = len(hull) {
			// The last line is tested with its own boundary against cand;
			// hull[n-2].end was fixed the same way, so ties round alike.
			b := num.boundary(hull[n-1].Line, cand)
			if n >= 2 && hull[n-2].end >= b {
				hull = hull[:n-1]
				continue
			}
			hull[n-1].end = b
			break
		}
		hull = append(hull, segment[T]{Line: cand, end: num.posInf})
	}

	if cfg.logger != nil {
		cfg.logger.Debug("envelope: static hull built",
			"container", "static", "input", len(lines), "retained", len(hull))
	}

	return &Static[T]{hull: slices.Clip(hull)}
}

// Maximum returns the envelope's value at x by binary search over the
// segment ends. Returns ErrEmptyContainer for an empty batch.
// Complexity: O(log n).
func (s *Static[T]) Maximum(x T) (T, error) {
	if len(s.hull) == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	i := sort.Search(len(s.hull), func(i int) bool {
		return s.hull[i].end >= x
	})
	if i == len(s.hull) {
		// only reachable for an unordered x such as NaN
		i--
	}

	return s.hull[i].Eval(x), nil
}

// Len reports the number of lines on the envelope.
func (s *Static[T]) Len() int {
	return len(s.hull)
}

// Lines yields the envelope's lines in ascending slope order.
func (s *Static[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for _, seg := range s.hull {
			if !yield(seg.Line) {
				return
			}
		}
	}
}
