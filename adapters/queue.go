package adapters

import "github.com/eapache/queue"

// Queue adapts an eapache ring-buffer queue to the seq.Indexer basis.
// The zero value is an empty, detached adapter.
//
// The underlying queue stores untyped elements; At asserts each one to T
// and panics on a mismatch, so a Queue[T] must only wrap queues that hold
// T values exclusively.
type Queue[T any] struct {
	q *queue.Queue
}

// WrapQueue wraps q. The adapter aliases the queue: later Add/Remove calls
// on q are visible through the adapter.
func WrapQueue[T any](q *queue.Queue) Queue[T] {
	return Queue[T]{q: q}
}

// Len returns the number of queued elements.
func (a Queue[T]) Len() int {
	if a.q == nil {
		return 0
	}

	return a.q.Length()
}

// At returns the i-th element from the front of the queue.
// Panics if i is outside [0, Len) or the element is not a T.
func (a Queue[T]) At(i int) T {
	return a.q.Get(i).(T)
}
