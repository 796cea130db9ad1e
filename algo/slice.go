package algo

import "github.com/katalvlaran/lvlseq/seq"

// End slicing over RandomAccess views. All of these are Select arithmetic:
// O(1), zero-copy, and unchecked per the library-wide contract. An n
// outside [0, Len] panics through the view's own Select.

// TakeFront returns the first n elements of v as a sub-view.
func TakeFront[T any, V seq.RandomAccess[T, V]](v V, n int) V {
	return v.Select(0, n)
}

// TakeBack returns the last n elements of v as a sub-view.
func TakeBack[T any, V seq.RandomAccess[T, V]](v V, n int) V {
	return v.Select(v.Len()-n, n)
}

// DropFront returns v without its first n elements.
func DropFront[T any, V seq.RandomAccess[T, V]](v V, n int) V {
	return v.Select(n, v.Len()-n)
}

// DropBack returns v without its last n elements.
func DropBack[T any, V seq.RandomAccess[T, V]](v V, n int) V {
	return v.Select(0, v.Len()-n)
}

// SliceFront splits v into its first element and the remainder.
// Panics on an empty view.
func SliceFront[T any, V seq.RandomAccess[T, V]](v V) (T, V) {
	return v.Front(), v.Select(1, v.Len()-1)
}

// SliceBack splits v into its last element and the remainder.
// Panics on an empty view.
func SliceBack[T any, V seq.RandomAccess[T, V]](v V) (T, V) {
	return v.Back(), v.Select(0, v.Len()-1)
}
