// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// dynamic.go — fully dynamic upper envelope over a B-tree.
//
// Design:
//   • Segments live in a tidwall/btree ordered by slope. Slopes are unique
//     inside the tree: an equal-slope insert either loses (no-op) or replaces.
//   • Each segment caches end, the x where its region of maximality ends.
//     end is not part of the slope order, so mutating it in place is safe.
//   • Queries reuse the same tree with a probe key that compares by end.
//     This is valid only because ends strictly increase along slope order
//     between operations; the two lookups are kept behind separate helpers.
//
// Complexity:
//   • Insert: amortized O(log n). Every line is deleted at most once after
//     its single insertion, so deletions are charged to insertions.
//   • Maximum: O(log n) worst case.

package envelope

import (
	"iter"

	"github.com/tidwall/btree"
)

// Dynamic is an upper envelope accepting lines and queries in any order.
// The zero value is not usable; construct with NewDynamic.
type Dynamic[T Number] struct {
	tree *btree.BTreeG[*segment[T]]
	num  traits[T]
	cfg  config
}

// NewDynamic returns an empty Dynamic envelope.
func NewDynamic[T Number](opts ...Option) *Dynamic[T] {
	return &Dynamic[T]{
		tree: btree.NewBTreeGOptions(lessSegment[T], btree.Options{NoLocks: true}),
		num:  traitsOf[T](),
		cfg:  newConfig(opts...),
	}
}

// lessSegment orders by slope, or by cached end when either side is a probe.
func lessSegment[T Number](x, y *segment[T]) bool {
	if x.probe || y.probe {
		return x.end < y.end
	}

	return x.A < y.A
}

// Insert adds the line f(x) = a·x + b.
//
// Steps:
//  1. Place the line by slope. An existing line of equal slope with an
//     intercept ≥ b makes this a no-op; a smaller intercept is replaced.
//  2. Drop right neighbors whose region became empty.
//  3. If the new line's own region is empty, drop it and reconnect its
//     neighbors.
//  4. Otherwise drop left neighbors whose region became empty.
//
// Complexity: amortized O(log n).
func (d *Dynamic[T]) Insert(a, b T) {
	s := &segment[T]{Line: Line[T]{A: a, B: b}}
	if old, ok := d.positionForSlope(s); ok {
		if old.B >= b {
			return
		}
		d.remove(old)
	}
	d.tree.Set(s)

	for {
		y, ok := d.after(s)
		if !d.setBoundary(s, y, ok) {
			break
		}
		d.remove(y)
	}

	cur, hasCur := s, true
	if d.covered(s) {
		p, _ := d.before(s)
		succ, ok := d.after(s)
		d.remove(s)
		d.setBoundary(p, succ, ok)
		cur, hasCur = succ, ok
	}

	for {
		q, ok := d.leftOf(cur, hasCur)
		if !ok || !d.covered(q) {
			break
		}
		pq, _ := d.before(q)
		d.remove(q)
		d.setBoundary(pq, cur, hasCur)
	}
}

// Maximum returns max over inserted lines of a·x + b.
// Returns ErrEmptyContainer if no line was inserted.
// Complexity: O(log n).
func (d *Dynamic[T]) Maximum(x T) (T, error) {
	s, ok := d.firstWithBoundaryAtLeast(x)
	if !ok {
		var zero T
		return zero, ErrEmptyContainer
	}

	return s.Eval(x), nil
}

// Len reports the number of retained (non-dominated) lines.
func (d *Dynamic[T]) Len() int {
	return d.tree.Len()
}

// Lines yields the retained lines in ascending slope order.
// The container must not be mutated while iterating.
func (d *Dynamic[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		d.tree.Scan(func(s *segment[T]) bool {
			return yield(s.Line)
		})
	}
}

// Segments yields each retained line together with the x at which its
// region of maximality ends; the last end is +∞.
func (d *Dynamic[T]) Segments() iter.Seq2[Line[T], T] {
	return func(yield func(Line[T], T) bool) {
		d.tree.Scan(func(s *segment[T]) bool {
			return yield(s.Line, s.end)
		})
	}
}

// Clear removes every line.
func (d *Dynamic[T]) Clear() {
	d.tree.Clear()
}

// positionForSlope finds the retained segment with the same slope as s.
func (d *Dynamic[T]) positionForSlope(s *segment[T]) (*segment[T], bool) {
	return d.tree.Get(s)
}

// firstWithBoundaryAtLeast finds the leftmost segment whose end is ≥ x.
// Because the last segment's end is +∞, it only misses on an empty tree.
func (d *Dynamic[T]) firstWithBoundaryAtLeast(x T) (*segment[T], bool) {
	var (
		found *segment[T]
		ok    bool
	)
	d.tree.Ascend(&segment[T]{end: x, probe: true}, func(s *segment[T]) bool {
		found, ok = s, true
		return false
	})

	return found, ok
}

// after returns the right neighbor of s in slope order.
func (d *Dynamic[T]) after(s *segment[T]) (*segment[T], bool) {
	var (
		next *segment[T]
		ok   bool
	)
	d.tree.Ascend(s, func(it *segment[T]) bool {
		if it == s {
			return true
		}
		next, ok = it, true
		return false
	})

	return next, ok
}

// before returns the left neighbor of s in slope order.
func (d *Dynamic[T]) before(s *segment[T]) (*segment[T], bool) {
	var (
		prev *segment[T]
		ok   bool
	)
	d.tree.Descend(s, func(it *segment[T]) bool {
		if it == s {
			return true
		}
		prev, ok = it, true
		return false
	})

	return prev, ok
}

// leftOf is before(cur), where hasCur == false stands for the position past
// the last segment.
func (d *Dynamic[T]) leftOf(cur *segment[T], hasCur bool) (*segment[T], bool) {
	if !hasCur {
		return d.tree.Max()
	}

	return d.before(cur)
}

// setBoundary recomputes x.end against its right neighbor y and reports
// whether y's region is now empty (x.end ≥ y.end). Without y, x.end is +∞.
func (d *Dynamic[T]) setBoundary(x, y *segment[T], hasY bool) bool {
	if !hasY {
		x.end = d.num.posInf
		return false
	}
	x.end = d.num.boundary(x.Line, y.Line)

	return x.end >= y.end
}

// covered reports whether y's region is empty given its left neighbor,
// refreshing that neighbor's end as a side effect.
func (d *Dynamic[T]) covered(y *segment[T]) bool {
	p, ok := d.before(y)

	return ok && d.setBoundary(p, y, true)
}

// remove deletes a dominated segment.
func (d *Dynamic[T]) remove(s *segment[T]) {
	d.tree.Delete(s)
	if d.cfg.logger != nil {
		d.cfg.logger.Debug("envelope: dropped dominated line",
			"container", "dynamic", "a", s.A, "b", s.B, "retained", d.tree.Len())
	}
}
