package algo

import "github.com/katalvlaran/lvlseq/seq"

// Lock-step transfer algorithms. Each advances both views together, stops
// as soon as either is exhausted, and returns the two residual views; at
// least one residual is always empty, and the residuals' combined length is
// the difference of the inputs' lengths, on the longer side.

// Copy assigns src's elements onto dst's, front to back, until either view
// is exhausted. It never resizes: excess source elements stay untouched and
// come back in the source residual.
func Copy[T any, D seq.MutSequenced[T, D], S seq.Sequenced[T, S]](dst D, src S) (D, S) {
	for !dst.IsEmpty() && !src.IsEmpty() {
		dst.SetFront(src.Front())
		dst, src = dst.DropFront(), src.DropFront()
	}

	return dst, src
}

// Move is Copy that additionally resets each transferred source element to
// the zero value, the concrete form of "valid but unspecified" a moved-from
// element is left in.
func Move[T any, D seq.MutSequenced[T, D], S seq.MutSequenced[T, S]](dst D, src S) (D, S) {
	var zero T
	for !dst.IsEmpty() && !src.IsEmpty() {
		dst.SetFront(src.Front())
		src.SetFront(zero)
		dst, src = dst.DropFront(), src.DropFront()
	}

	return dst, src
}

// Swap exchanges elements of a and b pairwise until either view is
// exhausted.
func Swap[T any, A seq.MutSequenced[T, A], B seq.MutSequenced[T, B]](a A, b B) (A, B) {
	for !a.IsEmpty() && !b.IsEmpty() {
		x, y := a.Front(), b.Front()
		a.SetFront(y)
		b.SetFront(x)
		a, b = a.DropFront(), b.DropFront()
	}

	return a, b
}
