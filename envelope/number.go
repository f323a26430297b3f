// SPDX-License-Identifier: MIT
// Package: hull/envelope
//
// number.go — numeric constraint and per-type arithmetic traits.
//
// Contract:
//   • Number covers signed integers and floats; unsigned types are excluded
//     because slopes and boundaries are routinely negative.
//   • traits[T] is resolved once per container (O(1)) and carries ±∞ and the
//     division rule, so the hot paths never re-derive them.

package envelope

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types a container can be instantiated with.
// Slopes, intercepts, query positions and results all share the same T.
type Number interface {
	constraints.Signed | constraints.Float
}

// traits describes how T behaves at the edges: what ±∞ means and whether
// division must be corrected to round toward −∞.
type traits[T Number] struct {
	integral bool
	posInf   T
	negInf   T
}

// traitsOf resolves traits for T.
// Floats are detected by 1/2 != 0; integer extremes are derived from the
// type's width.
// Complexity: O(1).
func traitsOf[T Number]() traits[T] {
	var zero T
	one := T(1)
	if one/(one+one) != zero {
		return traits[T]{posInf: T(math.Inf(1)), negInf: T(math.Inf(-1))}
	}

	bits := unsafe.Sizeof(zero) * 8
	maxVal := T(int64(uint64(1)<<(bits-1) - 1))

	return traits[T]{integral: true, posInf: maxVal, negInf: -maxVal - 1}
}

// div is a/b for floats and ⌊a/b⌋ for integers.
// Go's integer division truncates toward zero, so a non-zero remainder whose
// sign differs from b's means the quotient must step down by one.
func (t traits[T]) div(a, b T) T {
	q := a / b
	if t.integral {
		if r := a - q*b; r != 0 && (r < 0) != (b < 0) {
			q--
		}
	}

	return q
}

// boundary returns the x at which l stops being the maximum and o (the next
// line in ascending-slope order) takes over.
// Parallel lines have no intersection: +∞ when l lies strictly above o (o
// never wins), −∞ otherwise (l is dominated at once).
func (t traits[T]) boundary(l, o Line[T]) T {
	if l.A == o.A {
		if l.B > o.B {
			return t.posInf
		}
		return t.negInf
	}

	return t.div(o.B-l.B, l.A-o.A)
}
