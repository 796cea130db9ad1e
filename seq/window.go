package seq

import "fmt"

// Window is a zero-copy sub-range of a base sequence: base + offset + count.
//
// A Window is valid only while its base's storage is alive and structurally
// unchanged; the library does no lifetime tracking. Re-slicing a Window
// composes offsets arithmetically: the result always points at the original
// base, never at another Window, so indirection depth stays constant.
//
// Window routes At and Length on its base through the resolver, so per-type
// overrides registered for the base remain effective under any stack of
// windows.
type Window[T any] struct {
	base   Indexer[T]
	offset int
	count  int
}

// WindowOf wraps base in a whole-sequence Window. If base already is a
// Window it is returned unchanged.
func WindowOf[T any](base Indexer[T]) Window[T] {
	if w, ok := base.(Window[T]); ok {
		return w
	}

	return Window[T]{base: base, offset: 0, count: Length(base)}
}

// NewWindow wraps count elements of base starting at offset.
//
// Panics unless 0 <= offset, 0 <= count and offset+count <= Length(base).
// A Window base is flattened rather than nested.
func NewWindow[T any](base Indexer[T], offset, count int) Window[T] {
	if w, ok := base.(Window[T]); ok {
		return w.Select(offset, count)
	}
	if n := Length(base); offset < 0 || count < 0 || offset+count > n {
		panic(fmt.Sprintf("seq: window [%d, %d+%d) out of range of %d elements", offset, offset, count, n))
	}

	return Window[T]{base: base, offset: offset, count: count}
}

// Len returns the number of elements in the window.
func (w Window[T]) Len() int { return w.count }

// IsEmpty reports whether the window holds no elements.
func (w Window[T]) IsEmpty() bool { return w.count == 0 }

// At returns the element at position i within the window.
// Panics if i is outside [0, Len).
func (w Window[T]) At(i int) T {
	if i < 0 || i >= w.count {
		panic(fmt.Sprintf("seq: window index %d of %d elements", i, w.count))
	}

	return At(w.base, w.offset+i)
}

// Front returns the first element. Panics on an empty window.
func (w Window[T]) Front() T { return w.At(0) }

// Back returns the last element. Panics on an empty window.
func (w Window[T]) Back() T { return w.At(w.count - 1) }

// DropFront returns the window without its first element.
// Panics on an empty window.
func (w Window[T]) DropFront() Window[T] { return w.Select(1, w.count-1) }

// DropBack returns the window without its last element.
// Panics on an empty window.
func (w Window[T]) DropBack() Window[T] { return w.Select(0, w.count-1) }

// Select returns the sub-window of count elements starting at offset,
// composed arithmetically onto the same base.
//
// Panics unless 0 <= offset, 0 <= count and offset+count <= Len.
func (w Window[T]) Select(offset, count int) Window[T] {
	if offset < 0 || count < 0 || offset+count > w.count {
		panic(fmt.Sprintf("seq: window select [%d, %d+%d) of %d elements", offset, offset, count, w.count))
	}

	return Window[T]{base: w.base, offset: w.offset + offset, count: count}
}

// Base returns the sequence the window was built over.
func (w Window[T]) Base() Indexer[T] { return w.base }

// Offset returns the window's starting position within its base.
func (w Window[T]) Offset() int { return w.offset }
