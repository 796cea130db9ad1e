package seq_test

import "github.com/katalvlaran/lvlseq/seq"

// collect materializes a view front to back. The element type is named at
// the call site: collect[int](v).
func collect[T any, V seq.Sequenced[T, V]](v V) []T {
	out := []T{}
	for !v.IsEmpty() {
		out = append(out, v.Front())
		v = v.DropFront()
	}

	return out
}

// minimalView exposes only the basis (Len + At); every other operation must
// come from the resolver's derived fallbacks.
type minimalView struct{ els []int }

func (m minimalView) Len() int     { return len(m.els) }
func (m minimalView) At(i int) int { return m.els[i] }
