// Package tuple provides fixed-arity, ordered, heterogeneous value types:
// Pair, Triple and Quad.
//
// What:
//
//   - Pair[A, B], Triple[A, B, C], Quad[A, B, C, D] with exported positional
//     fields and Make* constructors.
//   - Unpack returns every element as separate values, which is the Go form
//     of structured decomposition (a, b := p.Unpack()).
//   - PairEqual/TripleEqual/QuadEqual compare element-wise over comparable
//     element types; comparing tuples of different arity is a compile error,
//     never a runtime false.
//   - SwapPairs/SwapTriples/SwapQuads exchange contents element-wise.
//   - MapFirst/MapSecond/MapBoth transform Pair elements.
//
// Why:
//
//   - Multi-value results: algorithms that produce element+remainder or
//     zipped element pairs need a value type to carry them.
//   - Arity in the type: a Pair can never silently gain or lose an element;
//     the compiler enforces what a runtime check never could.
//
// Complexity:
//
//	All operations are O(1) in the number of tuples and O(arity) in copies.
//	Tuples own no heap storage of their own; element lifetimes are the
//	elements' own business.
//
// Tuples are plain values: copy, compare (via the Equal helpers) and discard
// them like any other struct. There is no implicit conversion between tuple
// types — Go conversions are always spelled out, so a lossy conversion can
// never happen silently.
package tuple
