package algo

import "github.com/katalvlaran/lvlseq/seq"

// ForEach visits every element of v front to back, exactly once each.
func ForEach[T any, V seq.Sequenced[T, V]](v V, fn func(T)) {
	for !v.IsEmpty() {
		fn(v.Front())
		v = v.DropFront()
	}
}

// ForEachUntil visits elements front to back while fn returns true, and
// returns the residual view whose front is the element fn rejected (or the
// empty residual when fn never rejected).
func ForEachUntil[T any, V seq.Sequenced[T, V]](v V, fn func(T) bool) V {
	for !v.IsEmpty() {
		if !fn(v.Front()) {
			return v
		}
		v = v.DropFront()
	}

	return v
}

// Collect appends every element of v to dst and returns the result.
// Handy for materializing a view when a slice is genuinely needed.
func Collect[T any, V seq.Sequenced[T, V]](dst []T, v V) []T {
	ForEach(v, func(x T) { dst = append(dst, x) })

	return dst
}
