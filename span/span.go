package span

// Span is a read-only view over a caller-owned slice. The zero value is an
// empty span.
type Span[T any] struct {
	data []T
}

// New wraps s in a read-only span. The span aliases s: it sees later writes
// to the same backing array but cannot perform any itself.
func New[T any](s []T) Span[T] { return Span[T]{data: s} }

// Of builds a read-only span over its arguments.
func Of[T any](elems ...T) Span[T] { return Span[T]{data: elems} }

// Len returns the number of elements.
func (s Span[T]) Len() int { return len(s.data) }

// IsEmpty reports whether the span holds no elements.
func (s Span[T]) IsEmpty() bool { return len(s.data) == 0 }

// Front returns the first element. Panics on an empty span.
func (s Span[T]) Front() T { return s.data[0] }

// Back returns the last element. Panics on an empty span.
func (s Span[T]) Back() T { return s.data[len(s.data)-1] }

// At returns the element at position i. Panics outside [0, Len).
func (s Span[T]) At(i int) T { return s.data[i] }

// DropFront returns the span without its first element.
// Panics on an empty span.
func (s Span[T]) DropFront() Span[T] { return Span[T]{data: s.data[1:]} }

// DropBack returns the span without its last element.
// Panics on an empty span.
func (s Span[T]) DropBack() Span[T] { return Span[T]{data: s.data[:len(s.data)-1]} }

// Select returns the sub-span of count elements starting at offset.
// Panics unless 0 <= offset, 0 <= count and offset+count <= Len.
func (s Span[T]) Select(offset, count int) Span[T] {
	return Span[T]{data: s.data[offset : offset+count]}
}

// Data returns a slice header over the span's storage: same backing array,
// no copy. Callers must treat it as read-only.
func (s Span[T]) Data() []T { return s.data }

// MutSpan is a read-write view over a caller-owned slice. The zero value is
// an empty span.
type MutSpan[T any] struct {
	data []T
}

// NewMut wraps s in a read-write span aliasing the same backing array.
func NewMut[T any](s []T) MutSpan[T] { return MutSpan[T]{data: s} }

// ReadOnly returns the read-only flavor of the span over the same storage.
func (s MutSpan[T]) ReadOnly() Span[T] { return Span[T]{data: s.data} }

// AssumeMutable converts a read-only span back to read-write. This is the
// caller-asserted escape hatch: it is only correct when the caller owns the
// backing storage and writing it breaks no other reader's expectations.
func AssumeMutable[T any](s Span[T]) MutSpan[T] { return MutSpan[T]{data: s.data} }

// Len returns the number of elements.
func (s MutSpan[T]) Len() int { return len(s.data) }

// IsEmpty reports whether the span holds no elements.
func (s MutSpan[T]) IsEmpty() bool { return len(s.data) == 0 }

// Front returns the first element. Panics on an empty span.
func (s MutSpan[T]) Front() T { return s.data[0] }

// Back returns the last element. Panics on an empty span.
func (s MutSpan[T]) Back() T { return s.data[len(s.data)-1] }

// At returns the element at position i. Panics outside [0, Len).
func (s MutSpan[T]) At(i int) T { return s.data[i] }

// SetFront overwrites the first element. Panics on an empty span.
func (s MutSpan[T]) SetFront(val T) { s.data[0] = val }

// SetBack overwrites the last element. Panics on an empty span.
func (s MutSpan[T]) SetBack(val T) { s.data[len(s.data)-1] = val }

// SetAt overwrites the element at position i. Panics outside [0, Len).
func (s MutSpan[T]) SetAt(i int, val T) { s.data[i] = val }

// DropFront returns the span without its first element.
// Panics on an empty span.
func (s MutSpan[T]) DropFront() MutSpan[T] { return MutSpan[T]{data: s.data[1:]} }

// DropBack returns the span without its last element.
// Panics on an empty span.
func (s MutSpan[T]) DropBack() MutSpan[T] { return MutSpan[T]{data: s.data[:len(s.data)-1]} }

// Select returns the sub-span of count elements starting at offset.
// Panics unless 0 <= offset, 0 <= count and offset+count <= Len.
func (s MutSpan[T]) Select(offset, count int) MutSpan[T] {
	return MutSpan[T]{data: s.data[offset : offset+count]}
}

// Data returns a slice header over the span's storage: same backing array,
// no copy. Writes through it are visible to every other view of the storage.
func (s MutSpan[T]) Data() []T { return s.data }
