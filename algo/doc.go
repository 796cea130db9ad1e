// Package algo implements generic sequence algorithms once, against the
// capability lattice in lvlseq/seq, so every conforming view — span, window,
// reversed adapter, zipped view, foreign container behind seq.WindowOf —
// runs them without modification.
//
// What:
//
//   - ForEach / ForEachUntil: single-pass traversal via Front/DropFront.
//   - Copy / Move / Swap: advance two views in lock-step, stop when either
//     side is exhausted, return both residual (unprocessed) views; at least
//     one residual is always empty. These never resize anything.
//   - TakeFront / TakeBack / DropFront / DropBack: n-element slicing from
//     one end of a RandomAccess view.
//   - SliceFront / SliceBack: first/last element plus remainder.
//   - Compare / CompareFunc, Equal / EqualFunc: lexicographic ordering and
//     element-wise equality with short-circuiting.
//
// Why:
//
//	Writing each algorithm against the tier it minimally needs — Sequenced
//	for traversal and transfer, Sized for equality, RandomAccess for
//	slicing — is what makes a type's capabilities compose: satisfy the tier
//	and the algorithm is yours.
//
// Complexity:
//
//	ForEach/Copy/Move/Swap/Compare/Equal: O(min over the traversed views).
//	TakeFront/TakeBack/DropFront/DropBack/SliceFront/SliceBack: O(1).
//
// Generic inference note: the element type usually cannot be inferred from
// the view arguments alone, so call sites name it first —
// algo.Copy[int](dst, src), algo.Compare[byte](a, b). ForEach infers
// everything from the callback.
//
// Precondition violations (n outside [0, Len], slicing an empty view) panic;
// that is the deliberate zero-overhead contract. Guard with Len/IsEmpty when
// the input is not already trusted.
package algo
