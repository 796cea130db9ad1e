// Package span provides contiguous, non-owning views over caller-owned
// slices: Span (read-only) and MutSpan (read-write).
//
// What:
//
//   - Span[T] grants read access to a []T it does not own.
//   - MutSpan[T] adds element writes (SetFront/SetBack/SetAt).
//   - MutSpan converts to Span freely via ReadOnly; the reverse requires the
//     explicit AssumeMutable escape hatch — the caller asserts the storage
//     really is theirs to write.
//   - Both satisfy every capability tier in lvlseq/seq up to Contiguous and
//     plug into the resolver as seq.Indexer values.
//
// Why:
//
//   - A Go slice already is the pointer+count pair a contiguous view needs;
//     spans add the read-only/read-write split and the tier surface without
//     copying anything.
//
// Complexity:
//
//	Every operation is O(1). DropFront/DropBack/Select re-slice the same
//	backing array; no element is moved or copied.
//
// Invariants & caveats:
//
//   - A span is valid only while its backing array is alive and not
//     reallocated; validity is the caller's precondition, never checked.
//   - Read-only is an API-level contract: Span.Data hands back a slice
//     header over the shared storage, and Go cannot make that slice
//     immutable. Treat Span.Data as read-only or stay on the Span surface.
//   - Out-of-range access panics via ordinary slice indexing — the
//     zero-overhead path adds no checks of its own. Use the seq.Try*
//     variants for checked access.
package span
