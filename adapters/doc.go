// Package adapters bridges third-party containers into the lvlseq view
// machinery without modifying them.
//
// What:
//
//   - Queue[T] wraps github.com/eapache/queue's ring buffer into the
//     seq.Indexer basis (Len + At). seq.WindowOf(adapters.WrapQueue[T](q))
//     then grants the full algorithm set: traversal, slicing, comparison.
//
// Why:
//
//	The whole point of the customization resolver is that a foreign type
//	joins the lattice by exposing two operations — or, when even that is
//	impossible, by registering overrides. This package is the worked
//	example of the wrapper route; see the tests for the override route.
//
// Complexity:
//
//	Queue.At and Queue.Len are O(1) (ring-buffer index arithmetic).
//
// Adapters are live views: they see elements added to or removed from the
// wrapped container. The usual view rule applies — do not mutate the
// container while iterating a window built over it.
package adapters
