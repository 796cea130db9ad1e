package algo

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlseq/seq"
)

// Compare orders a and b lexicographically: the first unequal element pair
// decides; if one view is a prefix of the other, the shorter is less.
// Returns -1, 0 or +1.
func Compare[T constraints.Ordered, A seq.Sequenced[T, A], B seq.Sequenced[T, B]](a A, b B) int {
	for !a.IsEmpty() && !b.IsEmpty() {
		x, y := a.Front(), b.Front()
		switch {
		case x < y:
			return -1
		case x > y:
			return +1
		}
		a, b = a.DropFront(), b.DropFront()
	}
	switch {
	case !b.IsEmpty():
		return -1
	case !a.IsEmpty():
		return +1
	}

	return 0
}

// CompareFunc is Compare with a caller-supplied ordering. cmp must return a
// negative value when x < y, zero when equal, positive when x > y.
func CompareFunc[T, U any, A seq.Sequenced[T, A], B seq.Sequenced[U, B]](a A, b B, cmp func(T, U) int) int {
	for !a.IsEmpty() && !b.IsEmpty() {
		if c := cmp(a.Front(), b.Front()); c != 0 {
			if c < 0 {
				return -1
			}

			return +1
		}
		a, b = a.DropFront(), b.DropFront()
	}
	switch {
	case !b.IsEmpty():
		return -1
	case !a.IsEmpty():
		return +1
	}

	return 0
}

// Equal reports whether a and b hold the same elements in the same order.
// Views of different lengths are unequal immediately; otherwise elements
// are compared front to back with a short-circuit on the first mismatch.
func Equal[T comparable, A seq.Sized[T, A], B seq.Sized[T, B]](a A, b B) bool {
	if a.Len() != b.Len() {
		return false
	}
	for !a.IsEmpty() {
		if a.Front() != b.Front() {
			return false
		}
		a, b = a.DropFront(), b.DropFront()
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T, U any, A seq.Sized[T, A], B seq.Sized[U, B]](a A, b B, eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for !a.IsEmpty() {
		if !eq(a.Front(), b.Front()) {
			return false
		}
		a, b = a.DropFront(), b.DropFront()
	}

	return true
}
