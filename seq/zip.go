package seq

import "github.com/katalvlaran/lvlseq/tuple"

// Zipped pairs two sized views element by element, producing tuple.Pair
// values. Traversal advances both bases in lock-step and stops as soon as
// either is exhausted, so Len is the shorter of the two lengths.
type Zipped[A, B any, VA Sized[A, VA], VB Sized[B, VB]] struct {
	a VA
	b VB
}

// Zip pairs a and b element by element. The element types cannot be
// inferred from the views alone, so call sites name them:
// seq.Zip[int, string](xs, ys).
func Zip[A, B any, VA Sized[A, VA], VB Sized[B, VB]](a VA, b VB) Zipped[A, B, VA, VB] {
	return Zipped[A, B, VA, VB]{a: a, b: b}
}

// Front returns the pair of both bases' first elements.
// Panics if either base is empty.
func (z Zipped[A, B, VA, VB]) Front() tuple.Pair[A, B] {
	return tuple.MakePair(z.a.Front(), z.b.Front())
}

// DropFront advances both bases by one element.
// Panics if either base is empty.
func (z Zipped[A, B, VA, VB]) DropFront() Zipped[A, B, VA, VB] {
	return Zipped[A, B, VA, VB]{a: z.a.DropFront(), b: z.b.DropFront()}
}

// IsEmpty reports whether either base is exhausted.
func (z Zipped[A, B, VA, VB]) IsEmpty() bool {
	return z.a.IsEmpty() || z.b.IsEmpty()
}

// Len returns the shorter of the two base lengths.
func (z Zipped[A, B, VA, VB]) Len() int {
	return min(z.a.Len(), z.b.Len())
}

// ZippedRandom pairs two random-access views element by element, keeping
// the full RandomAccess surface: position i is the pair of both bases'
// elements at i, and Len is the shorter of the two lengths.
type ZippedRandom[A, B any, VA RandomAccess[A, VA], VB RandomAccess[B, VB]] struct {
	a VA
	b VB
}

// ZipRandom pairs a and b element by element with random access. The
// element types cannot be inferred from the views alone, so call sites
// name them: seq.ZipRandom[int, string](xs, ys).
func ZipRandom[A, B any, VA RandomAccess[A, VA], VB RandomAccess[B, VB]](a VA, b VB) ZippedRandom[A, B, VA, VB] {
	return ZippedRandom[A, B, VA, VB]{a: a, b: b}
}

// Front returns the pair of both bases' first elements.
// Panics if either base is empty.
func (z ZippedRandom[A, B, VA, VB]) Front() tuple.Pair[A, B] {
	return tuple.MakePair(z.a.Front(), z.b.Front())
}

// Back returns the pair at the last zipped position, Len-1.
// Panics if either base is empty.
func (z ZippedRandom[A, B, VA, VB]) Back() tuple.Pair[A, B] {
	n := z.Len()
	return tuple.MakePair(z.a.At(n-1), z.b.At(n-1))
}

// At returns the pair of both bases' elements at position i.
// Panics outside [0, Len).
func (z ZippedRandom[A, B, VA, VB]) At(i int) tuple.Pair[A, B] {
	return tuple.MakePair(z.a.At(i), z.b.At(i))
}

// IsEmpty reports whether either base is exhausted.
func (z ZippedRandom[A, B, VA, VB]) IsEmpty() bool {
	return z.a.IsEmpty() || z.b.IsEmpty()
}

// Len returns the shorter of the two base lengths.
func (z ZippedRandom[A, B, VA, VB]) Len() int {
	return min(z.a.Len(), z.b.Len())
}

// DropFront advances both bases by one element.
// Panics if either base is empty.
func (z ZippedRandom[A, B, VA, VB]) DropFront() ZippedRandom[A, B, VA, VB] {
	return ZippedRandom[A, B, VA, VB]{a: z.a.DropFront(), b: z.b.DropFront()}
}

// DropBack drops the last zipped position. A base longer than Len loses
// its unpaired tail as well, which is unobservable through the zip.
// Panics if either base is empty.
func (z ZippedRandom[A, B, VA, VB]) DropBack() ZippedRandom[A, B, VA, VB] {
	return z.Select(0, z.Len()-1)
}

// Select narrows both bases to the same [offset, offset+count) range.
// Panics unless 0 <= offset, 0 <= count and offset+count <= Len.
func (z ZippedRandom[A, B, VA, VB]) Select(offset, count int) ZippedRandom[A, B, VA, VB] {
	return ZippedRandom[A, B, VA, VB]{a: z.a.Select(offset, count), b: z.b.Select(offset, count)}
}
