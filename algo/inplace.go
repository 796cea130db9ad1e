package algo

import "github.com/katalvlaran/lvlseq/seq"

// In-place mutation algorithms over writable views. They rearrange or
// overwrite elements inside the view's own storage; the view itself (being
// a descriptor) is unchanged.

// Fill overwrites every element of v with val.
func Fill[T any, V seq.MutSequenced[T, V]](v V, val T) {
	for !v.IsEmpty() {
		v.SetFront(val)
		v = v.DropFront()
	}
}

// ReverseInPlace mirrors v's elements inside its storage, swapping the
// outermost pair inward. Unlike seq.Reverse it moves the elements instead
// of adapting traversal.
func ReverseInPlace[T any, V seq.MutRandomAccess[T, V]](v V) {
	for i, j := 0, v.Len()-1; i < j; i, j = i+1, j-1 {
		x, y := v.At(i), v.At(j)
		v.SetAt(i, y)
		v.SetAt(j, x)
	}
}
