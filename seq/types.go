package seq

// Capability lattice: generic constraint interfaces tying a view's concrete
// type V to its element type T. Algorithms written against these compile for
// exactly the types that satisfy them, with no runtime dispatch.

// Indexer is the minimal dynamic basis every resolver function accepts:
// a length and positional access. It deliberately mirrors the smallest
// surface a foreign container can offer.
//
// At should panic if i < 0 or i >= Len().
type Indexer[T any] interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// At returns the element at position i.
	At(i int) T
}

// Sequenced is the lowest capability tier: sequential one-way traversal.
//
// DropFront returns the view without its first element; the receiver is
// unchanged (views are values). Front and DropFront on an empty view are
// precondition violations and panic.
type Sequenced[T, V any] interface {
	// Front returns the first element.
	Front() T

	// DropFront returns the view with the first element removed.
	DropFront() V

	// IsEmpty reports whether the view holds no elements.
	IsEmpty() bool
}

// Sized adds O(1) length to Sequenced.
type Sized[T, V any] interface {
	Sequenced[T, V]

	// Len returns the number of elements.
	Len() int
}

// Bidirectional adds reverse traversal to Sized.
//
// Back and DropBack on an empty view are precondition violations and panic.
type Bidirectional[T, V any] interface {
	Sized[T, V]

	// Back returns the last element.
	Back() T

	// DropBack returns the view with the last element removed.
	DropBack() V
}

// RandomAccess adds arbitrary positional access and sub-ranging to
// Bidirectional.
//
// At should panic outside [0, Len); Select should panic unless
// 0 <= offset, 0 <= count and offset+count <= Len.
type RandomAccess[T, V any] interface {
	Bidirectional[T, V]

	// At returns the element at position i.
	At(i int) T

	// Select returns the sub-view of count elements starting at offset.
	Select(offset, count int) V
}

// Contiguous adds raw addressable storage to RandomAccess. Data returns a
// slice header over the view's storage: same backing array, no copy.
type Contiguous[T, V any] interface {
	RandomAccess[T, V]

	// Data returns the underlying storage as a slice.
	Data() []T
}

// MutSequenced is a Sequenced view whose front element can be written
// through. Needed by the lock-step transfer algorithms (Copy/Move/Swap).
type MutSequenced[T, V any] interface {
	Sequenced[T, V]

	// SetFront overwrites the first element. Panics on an empty view.
	SetFront(val T)
}

// MutRandomAccess is a RandomAccess view with positional writes.
type MutRandomAccess[T, V any] interface {
	RandomAccess[T, V]

	// SetAt overwrites the element at position i. Panics outside [0, Len).
	SetAt(i int, val T)
}
