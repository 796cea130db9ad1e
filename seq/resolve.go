package seq

// Customization points. Each function resolves one primitive operation for
// the dynamic type of v through the priority chain documented in doc.go:
// override → native method → extension → derived fallback. The first rung
// with a valid implementation wins; later rungs are never consulted.
//
// Derived fallbacks are synthesized from other customization points, not
// from v's methods directly, so a single override (say, At) is honored by
// every operation derived from it.

// Front returns the first element of v.
//
// Fallback derivation: At(v, 0). Panics on an empty view.
func Front[T any](v Indexer[T]) T {
	if fn, ok := lookup[func(any) T](TierOverride, opFront, v); ok {
		return fn(v)
	}
	if p, ok := v.(interface{ Front() T }); ok {
		return p.Front()
	}
	if fn, ok := lookup[func(any) T](TierExtension, opFront, v); ok {
		return fn(v)
	}

	return At(v, 0)
}

// Back returns the last element of v.
//
// Fallback derivation: At(v, Length(v)-1). Panics on an empty view.
func Back[T any](v Indexer[T]) T {
	if fn, ok := lookup[func(any) T](TierOverride, opBack, v); ok {
		return fn(v)
	}
	if p, ok := v.(interface{ Back() T }); ok {
		return p.Back()
	}
	if fn, ok := lookup[func(any) T](TierExtension, opBack, v); ok {
		return fn(v)
	}

	return At(v, Length(v)-1)
}

// IsEmpty reports whether v holds no elements.
//
// Fallback derivation: Length(v) == 0. A view whose own IsEmpty disagrees
// with its Length is honored as given; consistency is the view's problem.
func IsEmpty[T any](v Indexer[T]) bool {
	if fn, ok := lookup[func(any) bool](TierOverride, opIsEmpty, v); ok {
		return fn(v)
	}
	if p, ok := v.(interface{ IsEmpty() bool }); ok {
		return p.IsEmpty()
	}
	if fn, ok := lookup[func(any) bool](TierExtension, opIsEmpty, v); ok {
		return fn(v)
	}

	return Length(v) == 0
}

// Length returns the number of elements in v.
//
// Length is part of the basis, so the native rung (v.Len) always resolves
// and the extension rung is unreachable; only an override can precede it.
func Length[T any](v Indexer[T]) int {
	if fn, ok := lookup[func(any) int](TierOverride, opLength, v); ok {
		return fn(v)
	}

	return v.Len()
}

// At returns the element of v at position i.
//
// At is part of the basis, so the native rung (v.At) always resolves and
// the extension rung is unreachable; only an override can precede it.
// Panics if i is outside [0, Length(v)).
func At[T any](v Indexer[T], i int) T {
	if fn, ok := lookup[func(any, int) T](TierOverride, opAt, v); ok {
		return fn(v, i)
	}

	return v.At(i)
}

// DropFront returns v without its first element.
//
// Go method sets cannot express "returns the receiver's own type" behind an
// interface, so for the self-returning operations (DropFront, DropBack,
// Select) the native rung lives in the compile-time lattice only; the
// dynamic chain here is override → extension → window arithmetic.
// Panics on an empty view.
func DropFront[T any](v Indexer[T]) Window[T] {
	if fn, ok := lookup[func(any) Indexer[T]](TierOverride, opDropFront, v); ok {
		return WindowOf(fn(v))
	}
	if fn, ok := lookup[func(any) Indexer[T]](TierExtension, opDropFront, v); ok {
		return WindowOf(fn(v))
	}

	return NewWindow[T](v, 1, Length(v)-1)
}

// DropBack returns v without its last element. Panics on an empty view.
func DropBack[T any](v Indexer[T]) Window[T] {
	if fn, ok := lookup[func(any) Indexer[T]](TierOverride, opDropBack, v); ok {
		return WindowOf(fn(v))
	}
	if fn, ok := lookup[func(any) Indexer[T]](TierExtension, opDropBack, v); ok {
		return WindowOf(fn(v))
	}

	return NewWindow[T](v, 0, Length(v)-1)
}

// Select returns the sub-view of count elements of v starting at offset.
//
// Panics unless 0 <= offset, 0 <= count and offset+count <= Length(v).
func Select[T any](v Indexer[T], offset, count int) Window[T] {
	if fn, ok := lookup[func(any, int, int) Indexer[T]](TierOverride, opSelect, v); ok {
		return WindowOf(fn(v, offset, count))
	}
	if fn, ok := lookup[func(any, int, int) Indexer[T]](TierExtension, opSelect, v); ok {
		return WindowOf(fn(v, offset, count))
	}

	return NewWindow[T](v, offset, count)
}

// Data returns the raw storage behind v.
//
// Contiguity cannot be derived, so there is no fallback rung: if no
// override, native method or extension resolves, Data panics with
// ErrNotContiguous. Use TryData when absence of storage is an expected
// outcome.
func Data[T any](v Indexer[T]) []T {
	if d, ok := resolveData(v); ok {
		return d
	}
	panic(ErrNotContiguous)
}

func resolveData[T any](v Indexer[T]) ([]T, bool) {
	if fn, ok := lookup[func(any) []T](TierOverride, opData, v); ok {
		return fn(v), true
	}
	if p, ok := v.(interface{ Data() []T }); ok {
		return p.Data(), true
	}
	if fn, ok := lookup[func(any) []T](TierExtension, opData, v); ok {
		return fn(v), true
	}

	return nil, false
}
