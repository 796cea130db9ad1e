package seq

// Reversed swaps the traversal direction of a bidirectional view: Front
// answers the base's Back, DropFront drops the base's last element, and so
// on. It holds no storage of its own.
type Reversed[T any, V Bidirectional[T, V]] struct {
	base V
}

// Reverse wraps v in a direction-swapping adapter. The element type cannot
// be inferred from v alone, so call sites name it: seq.Reverse[int](v).
func Reverse[T any, V Bidirectional[T, V]](v V) Reversed[T, V] {
	return Reversed[T, V]{base: v}
}

// Reverse undoes the adapter, returning the base view unchanged. Reversing
// a reversal is the identity.
func (r Reversed[T, V]) Reverse() V { return r.base }

// Front returns the base's last element. Panics on an empty view.
func (r Reversed[T, V]) Front() T { return r.base.Back() }

// Back returns the base's first element. Panics on an empty view.
func (r Reversed[T, V]) Back() T { return r.base.Front() }

// IsEmpty reports whether the base holds no elements.
func (r Reversed[T, V]) IsEmpty() bool { return r.base.IsEmpty() }

// Len returns the base's length.
func (r Reversed[T, V]) Len() int { return r.base.Len() }

// DropFront returns the reversal of the base without its last element.
// Panics on an empty view.
func (r Reversed[T, V]) DropFront() Reversed[T, V] {
	return Reversed[T, V]{base: r.base.DropBack()}
}

// DropBack returns the reversal of the base without its first element.
// Panics on an empty view.
func (r Reversed[T, V]) DropBack() Reversed[T, V] {
	return Reversed[T, V]{base: r.base.DropFront()}
}

// ReversedRandom is the direction-swapping adapter over a random-access
// base. It keeps the full RandomAccess surface by index arithmetic:
// position i answers the base's position Len-1-i.
type ReversedRandom[T any, V RandomAccess[T, V]] struct {
	base V
}

// ReverseRandom wraps v in a random-access direction-swapping adapter.
// The element type cannot be inferred from v alone, so call sites name it:
// seq.ReverseRandom[int](v).
func ReverseRandom[T any, V RandomAccess[T, V]](v V) ReversedRandom[T, V] {
	return ReversedRandom[T, V]{base: v}
}

// Reverse undoes the adapter, returning the base view unchanged.
func (r ReversedRandom[T, V]) Reverse() V { return r.base }

// Front returns the base's last element. Panics on an empty view.
func (r ReversedRandom[T, V]) Front() T { return r.base.Back() }

// Back returns the base's first element. Panics on an empty view.
func (r ReversedRandom[T, V]) Back() T { return r.base.Front() }

// IsEmpty reports whether the base holds no elements.
func (r ReversedRandom[T, V]) IsEmpty() bool { return r.base.IsEmpty() }

// Len returns the base's length.
func (r ReversedRandom[T, V]) Len() int { return r.base.Len() }

// At returns the element at position i, which is the base's element at
// position Len-1-i. Panics outside [0, Len).
func (r ReversedRandom[T, V]) At(i int) T {
	return r.base.At(r.base.Len() - 1 - i)
}

// DropFront returns the reversal of the base without its last element.
// Panics on an empty view.
func (r ReversedRandom[T, V]) DropFront() ReversedRandom[T, V] {
	return ReversedRandom[T, V]{base: r.base.DropBack()}
}

// DropBack returns the reversal of the base without its first element.
// Panics on an empty view.
func (r ReversedRandom[T, V]) DropBack() ReversedRandom[T, V] {
	return ReversedRandom[T, V]{base: r.base.DropFront()}
}

// Select returns the reversal of the mirrored base sub-range: positions
// [offset, offset+count) here are positions [Len-offset-count, Len-offset)
// of the base. Panics unless 0 <= offset, 0 <= count and
// offset+count <= Len.
func (r ReversedRandom[T, V]) Select(offset, count int) ReversedRandom[T, V] {
	return ReversedRandom[T, V]{base: r.base.Select(r.base.Len()-offset-count, count)}
}
