// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// monotonic.go — upper envelope for monotone insert/query streams.
//
// Contract:
//   • Insert slopes are non-decreasing across calls.
//   • Maximum positions are non-decreasing across calls.
//   • Violations are undefined unless WithStrictOrder is set, in which case
//     they return ErrOrderViolation and leave the container untouched.
//
// Design:
//   • A slice used as a deque: new lines are pushed at the back, lines the
//     queries have moved past are popped from the front by advancing head.
//   • The dead prefix is reclaimed once it outgrows the live part, which
//     keeps memory O(live) and every operation amortized O(1).

package envelope

import "iter"

// Monotonic is an upper envelope for non-decreasing slopes and queries.
// The zero value is not usable; construct with NewMonotonic.
type Monotonic[T Number] struct {
	segs []segment[T]
	head int
	num  traits[T]
	cfg  config

	// last accepted slope and query, used only in strict mode.
	lastA, lastX T
	seenA, seenX bool
}

// NewMonotonic returns an empty Monotonic envelope.
func NewMonotonic[T Number](opts ...Option) *Monotonic[T] {
	return &Monotonic[T]{
		num: traitsOf[T](),
		cfg: newConfig(opts...),
	}
}

// Insert adds f(x) = a·x + b. a must be ≥ every slope inserted before.
//
// A line parallel to the current last one either loses (b not larger) and
// is discarded, or replaces it. Otherwise the back is popped while its
// region, squeezed between its left neighbor and the new line, is empty.
//
// Complexity: amortized O(1).
func (m *Monotonic[T]) Insert(a, b T) error {
	if m.cfg.strict {
		if m.seenA && a < m.lastA {
			return ErrOrderViolation
		}
		m.lastA, m.seenA = a, true
	}

	ins := segment[T]{Line: Line[T]{A: a, B: b}, end: m.num.posInf}
	if m.Len() > 0 {
		if back := &m.segs[len(m.segs)-1]; back.A == a {
			if back.B >= b {
				return nil
			}
			m.popBack()
		}
	}

	if m.Len() > 0 {
		back := &m.segs[len(m.segs)-1]
		back.end = m.num.boundary(back.Line, ins.Line)
		for m.Len() >= 2 && m.segs[len(m.segs)-2].end >= back.end {
			m.popBack()
			back = &m.segs[len(m.segs)-1]
			back.end = m.num.boundary(back.Line, ins.Line)
		}
	}
	m.segs = append(m.segs, ins)

	return nil
}

// Maximum returns the envelope's value at x. x must be ≥ every position
// queried before: front segments ending before x are discarded for good.
// Returns ErrEmptyContainer if no line was inserted.
//
// Complexity: amortized O(1).
func (m *Monotonic[T]) Maximum(x T) (T, error) {
	var zero T
	if m.Len() == 0 {
		return zero, ErrEmptyContainer
	}
	if m.cfg.strict {
		if m.seenX && x < m.lastX {
			return zero, ErrOrderViolation
		}
		m.lastX, m.seenX = x, true
	}

	for m.segs[m.head].end < x {
		m.popFront()
	}

	return m.segs[m.head].Eval(x), nil
}

// Len reports the number of retained lines.
func (m *Monotonic[T]) Len() int {
	return len(m.segs) - m.head
}

// Lines yields the retained lines in ascending slope order.
func (m *Monotonic[T]) Lines() iter.Seq[Line[T]] {
	return func(yield func(Line[T]) bool) {
		for _, s := range m.segs[m.head:] {
			if !yield(s.Line) {
				return
			}
		}
	}
}

// Clear removes every line and forgets the strict-mode history.
func (m *Monotonic[T]) Clear() {
	m.segs = m.segs[:0]
	m.head = 0
	m.seenA, m.seenX = false, false
}

func (m *Monotonic[T]) popBack() {
	s := m.segs[len(m.segs)-1]
	m.segs = m.segs[:len(m.segs)-1]
	if m.Len() == 0 {
		m.segs, m.head = m.segs[:0], 0
	}
	m.logDrop("dropped dominated line", s)
}

func (m *Monotonic[T]) popFront() {
	s := m.segs[m.head]
	m.head++
	if m.head > len(m.segs)-m.head {
		n := copy(m.segs, m.segs[m.head:])
		m.segs, m.head = m.segs[:n], 0
	}
	m.logDrop("dropped passed line", s)
}

func (m *Monotonic[T]) logDrop(msg string, s segment[T]) {
	if m.cfg.logger != nil {
		m.cfg.logger.Debug("envelope: "+msg,
			"container", "monotonic", "a", s.A, "b", s.B, "retained", m.Len())
	}
}
