package tuple

// Pair is an ordered 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds a Pair from its two elements.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both elements as separate values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// PairEqual reports whether x and y are element-wise equal.
func PairEqual[A, B comparable](x, y Pair[A, B]) bool {
	return x.First == y.First && x.Second == y.Second
}

// SwapPairs exchanges the contents of x and y element-wise.
func SwapPairs[A, B any](x, y *Pair[A, B]) {
	*x, *y = *y, *x
}

// MapFirst applies fn to the first element, keeping the second.
func MapFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return Pair[C, B]{First: fn(p.First), Second: p.Second}
}

// MapSecond applies fn to the second element, keeping the first.
func MapSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return Pair[A, C]{First: p.First, Second: fn(p.Second)}
}

// MapBoth applies fnA and fnB to the respective elements.
func MapBoth[A, B, C, D any](p Pair[A, B], fnA func(A) C, fnB func(B) D) Pair[C, D] {
	return Pair[C, D]{First: fnA(p.First), Second: fnB(p.Second)}
}

// Triple is an ordered 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple builds a Triple from its three elements.
func MakeTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Unpack returns all three elements as separate values.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// ToPair returns the first two elements as a Pair.
func (t Triple[A, B, C]) ToPair() Pair[A, B] {
	return Pair[A, B]{First: t.First, Second: t.Second}
}

// TripleEqual reports whether x and y are element-wise equal.
func TripleEqual[A, B, C comparable](x, y Triple[A, B, C]) bool {
	return x.First == y.First && x.Second == y.Second && x.Third == y.Third
}

// SwapTriples exchanges the contents of x and y element-wise.
func SwapTriples[A, B, C any](x, y *Triple[A, B, C]) {
	*x, *y = *y, *x
}

// Quad is an ordered 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// MakeQuad builds a Quad from its four elements.
func MakeQuad[A, B, C, D any](first A, second B, third C, fourth D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: first, Second: second, Third: third, Fourth: fourth}
}

// Unpack returns all four elements as separate values.
func (q Quad[A, B, C, D]) Unpack() (A, B, C, D) {
	return q.First, q.Second, q.Third, q.Fourth
}

// ToTriple returns the first three elements as a Triple.
func (q Quad[A, B, C, D]) ToTriple() Triple[A, B, C] {
	return Triple[A, B, C]{First: q.First, Second: q.Second, Third: q.Third}
}

// QuadEqual reports whether x and y are element-wise equal.
func QuadEqual[A, B, C, D comparable](x, y Quad[A, B, C, D]) bool {
	return x.First == y.First && x.Second == y.Second &&
		x.Third == y.Third && x.Fourth == y.Fourth
}

// SwapQuads exchanges the contents of x and y element-wise.
func SwapQuads[A, B, C, D any](x, y *Quad[A, B, C, D]) {
	*x, *y = *y, *x
}
