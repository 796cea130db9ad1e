package seq

import "fmt"

// Checked variants of the unchecked primitives. They trade one bounds branch
// for an error return; performance-critical call sites that already guard
// with IsEmpty/Length should call the unchecked forms instead.

// TryFront returns the first element of v, or ErrEmptyView.
func TryFront[T any](v Indexer[T]) (T, error) {
	if IsEmpty(v) {
		var zero T

		return zero, ErrEmptyView
	}

	return Front(v), nil
}

// TryBack returns the last element of v, or ErrEmptyView.
func TryBack[T any](v Indexer[T]) (T, error) {
	if IsEmpty(v) {
		var zero T

		return zero, ErrEmptyView
	}

	return Back(v), nil
}

// TryAt returns the element of v at position i, or ErrIndexOutOfRange.
func TryAt[T any](v Indexer[T], i int) (T, error) {
	if n := Length(v); i < 0 || i >= n {
		var zero T

		return zero, fmt.Errorf("seq: index %d of %d elements: %w", i, n, ErrIndexOutOfRange)
	}

	return At(v, i), nil
}

// TrySelect returns the sub-view of count elements starting at offset, or
// ErrBadRange.
func TrySelect[T any](v Indexer[T], offset, count int) (Window[T], error) {
	if n := Length(v); offset < 0 || count < 0 || offset+count > n {
		return Window[T]{}, fmt.Errorf("seq: select [%d, %d+%d) of %d elements: %w",
			offset, offset, count, n, ErrBadRange)
	}

	return Select(v, offset, count), nil
}

// TryData returns the raw storage behind v, or ErrNotContiguous when no
// Data strategy resolves for v's type.
func TryData[T any](v Indexer[T]) ([]T, error) {
	d, ok := resolveData(v)
	if !ok {
		return nil, ErrNotContiguous
	}

	return d, nil
}
