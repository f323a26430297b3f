// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// line.go — the Line value type and the segment record containers store.

package envelope

// Line is the linear function f(x) = A·x + B.
// It is a plain value; containers copy it on insertion.
type Line[T Number] struct {
	A T // slope
	B T // intercept
}

// Eval returns A·x + B.
func (l Line[T]) Eval(x T) T {
	return l.A*x + l.B
}

// Boundary returns the x-coordinate where l stops being the maximum and o
// takes over, assuming l precedes o in ascending-slope order.
//
// For l.A != o.A it is (o.B − l.B) / (l.A − o.A), rounded toward −∞ for
// integer T. For parallel lines it is +∞ when l.B > o.B and −∞ otherwise.
//
// Complexity: O(1).
func (l Line[T]) Boundary(o Line[T]) T {
	return traitsOf[T]().boundary(l, o)
}

// segment is a retained line plus the cached x at which its region of
// maximality ends. end is only meaningful while the segment belongs to a
// container and is rewritten whenever the right neighbor changes.
type segment[T Number] struct {
	Line[T]
	end T

	// probe marks a search key for Dynamic's boundary lookups; real
	// segments never set it.
	probe bool
}
