// Package lvlseq is your toolbox for non-owning sequence views and the
// generic algorithms that run on them — from raw spans to reversible,
// windowable, zippable views with pluggable per-type customization.
//
// 🚀 What is lvlseq?
//
//	A modern, allocation-shy, pure-Go library that brings together:
//		• Capability tiers: Sequenced → Sized → Bidirectional → RandomAccess → Contiguous
//		• Customization points: per-type override/extension hooks with derived fallbacks
//		• Concrete views: Span/MutSpan over slices, Window sub-ranges, Reversed adapters
//		• Generic algorithms: ForEach, lock-step Copy/Move/Swap, slicing, lexicographic compare
//		• Tuples: fixed-arity Pair/Triple/Quad for multi-value results and zipping
//		• Adapters: wrap third-party containers (e.g. eapache/queue) without touching them
//
// ✨ Why choose lvlseq?
//
//   - Minimal contracts – expose At+Len and every algorithm works on your type
//   - Zero-copy – views are descriptors over caller-owned storage, never copies
//   - Pay only for what you use – unchecked primitives plus distinct Try* variants
//   - Extensible – override any single operation for any type, keep the rest derived
//
// Under the hood, everything is organized under five subpackages:
//
//	seq/      — capability lattice, customization resolver, Window/Reversed/Zip
//	span/     — contiguous read-only and read-write views over []T
//	algo/     — generic algorithms written once against the lattice
//	tuple/    — fixed-arity heterogeneous products
//	adapters/ — bridges from third-party containers into the view machinery
//
// Quick taste:
//
//	ints := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
//	s := span.New(ints)
//	sub := s.Select(2, 4)          // view of [2 3 4 5], no copy
//	r := seq.Reverse[int](sub)     // traverses 5 4 3 2
//
// Dive into each package's doc.go for contracts, complexity notes and examples.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
