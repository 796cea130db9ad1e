package seq

import "reflect"

// Tier selects which rung of the resolution ladder a registered
// implementation occupies.
type Tier uint8

const (
	// TierOverride is consulted before the view's own methods. Use it to
	// adapt a type whose methods cannot honor the operation, or to replace
	// a single operation on a type you do not control.
	TierOverride Tier = iota

	// TierExtension is consulted after the view's own methods and before
	// the derived fallbacks. It stands in for a freestanding function
	// defined next to the view type.
	TierExtension

	numTiers
)

// op enumerates the customization points.
type op uint8

const (
	opFront op = iota
	opBack
	opIsEmpty
	opLength
	opAt
	opDropFront
	opDropBack
	opSelect
	opData
	numOps
)

// tables[t][o] maps a view's dynamic type to its registered implementation,
// stored as a canonical closure (see the Register* functions). Registration
// happens at init time; resolution never writes, so no synchronization is
// used anywhere on this path.
var tables [numTiers][numOps]map[reflect.Type]any

func register[V any](t Tier, o op, impl any) {
	if t >= numTiers {
		panic("seq: unknown tier")
	}
	key := reflect.TypeOf((*V)(nil)).Elem()
	m := tables[t][o]
	if m == nil {
		m = make(map[reflect.Type]any)
		tables[t][o] = m
	}
	// Later registration for the same (tier, op, type) replaces the earlier.
	m[key] = impl
}

// lookup fetches the canonical closure registered for v's dynamic type, if
// any. The nil-map length check keeps the unregistered path at near-zero
// cost.
func lookup[F any](t Tier, o op, v any) (F, bool) {
	var zero F
	m := tables[t][o]
	if len(m) == 0 {
		return zero, false
	}
	impl, ok := m[reflect.TypeOf(v)]
	if !ok {
		return zero, false
	}
	fn, ok := impl.(F)

	return fn, ok
}

// RegisterFront installs fn as the Front implementation for view type V at
// tier t. V must be registered as the concrete type passed to the resolver,
// not an interface it satisfies.
func RegisterFront[T any, V Indexer[T]](t Tier, fn func(V) T) {
	register[V](t, opFront, func(v any) T { return fn(v.(V)) })
}

// RegisterBack installs fn as the Back implementation for view type V.
func RegisterBack[T any, V Indexer[T]](t Tier, fn func(V) T) {
	register[V](t, opBack, func(v any) T { return fn(v.(V)) })
}

// RegisterIsEmpty installs fn as the IsEmpty implementation for view type V.
//
// Nothing checks that a registered IsEmpty agrees with the view's Length;
// an inconsistent pair is honored as given.
func RegisterIsEmpty[V any](t Tier, fn func(V) bool) {
	register[V](t, opIsEmpty, func(v any) bool { return fn(v.(V)) })
}

// RegisterLength installs fn as the Length implementation for view type V.
func RegisterLength[V any](t Tier, fn func(V) int) {
	register[V](t, opLength, func(v any) int { return fn(v.(V)) })
}

// RegisterAt installs fn as the At implementation for view type V.
func RegisterAt[T any, V Indexer[T]](t Tier, fn func(V, int) T) {
	register[V](t, opAt, func(v any, i int) T { return fn(v.(V), i) })
}

// RegisterDropFront installs fn as the DropFront implementation for view
// type V. The result is re-wrapped by the resolver into a Window.
func RegisterDropFront[T any, V Indexer[T]](t Tier, fn func(V) V) {
	register[V](t, opDropFront, func(v any) Indexer[T] { return fn(v.(V)) })
}

// RegisterDropBack installs fn as the DropBack implementation for view
// type V.
func RegisterDropBack[T any, V Indexer[T]](t Tier, fn func(V) V) {
	register[V](t, opDropBack, func(v any) Indexer[T] { return fn(v.(V)) })
}

// RegisterSelect installs fn as the Select implementation for view type V.
func RegisterSelect[T any, V Indexer[T]](t Tier, fn func(V, int, int) V) {
	register[V](t, opSelect, func(v any, offset, count int) Indexer[T] {
		return fn(v.(V), offset, count)
	})
}

// RegisterData installs fn as the Data implementation for view type V.
func RegisterData[T any, V Indexer[T]](t Tier, fn func(V) []T) {
	register[V](t, opData, func(v any) []T { return fn(v.(V)) })
}
