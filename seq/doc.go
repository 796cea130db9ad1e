// Package seq defines the capability lattice for sequence views, the
// customization resolver that routes every primitive operation through a
// deterministic priority chain, and the generic view adapters built on top
// of both (Window, Reversed, Zip).
//
// What:
//
//   - Capability tiers as generic constraint interfaces, each a strict
//     superset of the one below:
//     Sequenced → Sized → Bidirectional → RandomAccess → Contiguous.
//     A view satisfies a tier structurally — by having the methods — and a
//     view lacking a tier an algorithm demands fails to compile.
//   - Indexer[T], the minimal dynamic basis (Len + At). Any type exposing
//     just these two operations participates in every tier through WindowOf
//     and the resolver's derived fallbacks.
//   - Nine customization points (Front, Back, IsEmpty, Length, At, DropFront,
//     DropBack, Select, Data), each resolved per view type through a fixed
//     priority chain; see resolve.go.
//   - Window: zero-copy sub-range (base + offset + count) that flattens on
//     re-slicing instead of nesting.
//   - Reversed: direction-swapping adapter over any Bidirectional view;
//     reversing twice yields the original. ReversedRandom keeps the full
//     RandomAccess surface (mirrored At and Select) when the base has it.
//   - Zip: lock-step pairing of two sized views into tuple.Pair elements.
//     ZipRandom keeps the RandomAccess surface when both bases have it.
//
// Why:
//
//   - Minimal types get maximal reach: expose At+Len and every algorithm in
//     lvlseq/algo works on your type unchanged.
//   - Hot types keep control: override any single operation for any view
//     type without touching the others.
//
// Resolution order (first hit wins, per operation, per view type):
//
//  1. Override  — registered via Register*(TierOverride, fn); beats even the
//     view's own methods. For adapting types you cannot modify.
//  2. Native    — the view's own correspondingly named method.
//  3. Extension — registered via Register*(TierExtension, fn); the stand-in
//     for a freestanding function discovered next to the type.
//  4. Derived   — synthesized from the basis: Front=At(0), Back=At(Len-1),
//     IsEmpty=Len()==0, DropFront=window(1,Len-1), DropBack=window(0,Len-1),
//     Select(o,c)=window(o,c).
//
// Complexity:
//
//	Every resolver call is O(1) on top of the underlying operation; with no
//	registrations in place the registry probe is a nil-map length check.
//
// Errors:
//
//   - ErrEmptyView: Try* access on an empty view.
//   - ErrIndexOutOfRange: TryAt index outside [0, Len).
//   - ErrBadRange: TrySelect offset/count outside the view.
//   - ErrNotContiguous: TryData on a view with no Data strategy.
//
// Unchecked primitives panic on precondition violation; callers choosing the
// zero-overhead path guard with IsEmpty/Length themselves. Registration must
// complete before resolution begins (init time); the registries are not
// synchronized, matching the library-wide no-locks contract.
package seq
