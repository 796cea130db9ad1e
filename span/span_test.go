package span_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/span"
)

// TestSpan_ReadSurface covers the whole read-only tier surface.
func TestSpan_ReadSurface(t *testing.T) {
	data := []int{10, 20, 30, 40}
	s := span.New(data)

	require.Equal(t, 4, s.Len())
	require.False(t, s.IsEmpty())
	require.Equal(t, 10, s.Front())
	require.Equal(t, 40, s.Back())
	require.Equal(t, 30, s.At(2))
	require.Equal(t, []int{20, 30, 40}, s.DropFront().Data())
	require.Equal(t, []int{10, 20, 30}, s.DropBack().Data())
	require.Equal(t, []int{20, 30}, s.Select(1, 2).Data())
}

// TestSpan_Aliasing checks that spans are views, not copies: writes to the
// backing slice are visible through every derived span.
func TestSpan_Aliasing(t *testing.T) {
	data := []int{1, 2, 3}
	s := span.New(data)
	sub := s.Select(1, 2)

	data[1] = 99
	require.Equal(t, 99, s.At(1))
	require.Equal(t, 99, sub.Front())
}

// TestSpan_EmptyPanics checks the unchecked precondition contract.
func TestSpan_EmptyPanics(t *testing.T) {
	empty := span.Of[int]()
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.Len())
	require.Panics(t, func() { empty.Front() })
	require.Panics(t, func() { empty.Back() })
	require.Panics(t, func() { empty.At(0) })
	require.Panics(t, func() { empty.DropFront() })
	require.Panics(t, func() { empty.DropBack() })

	s := span.Of(1, 2, 3)
	require.Panics(t, func() { s.Select(2, 2) })
	require.Panics(t, func() { s.Select(-1, 1) })
}

// TestMutSpan_Writes checks element writes and their visibility through
// overlapping views of the same storage.
func TestMutSpan_Writes(t *testing.T) {
	data := []int{1, 2, 3, 4}
	m := span.NewMut(data)

	m.SetFront(10)
	m.SetBack(40)
	m.SetAt(1, 20)
	require.Equal(t, []int{10, 20, 3, 40}, data)

	sub := m.Select(1, 2)
	sub.SetFront(99)
	require.Equal(t, 99, data[1], "sub-span writes land in the shared storage")
}

// TestMutSpan_Conversions checks the one-way read-write → read-only
// conversion and the explicit escape hatch back.
func TestMutSpan_Conversions(t *testing.T) {
	data := []int{1, 2, 3}
	m := span.NewMut(data)

	ro := m.ReadOnly()
	require.Equal(t, m.Len(), ro.Len())
	require.Equal(t, m.Front(), ro.Front())

	back := span.AssumeMutable(ro)
	back.SetFront(7)
	require.Equal(t, 7, data[0], "AssumeMutable writes reach the original storage")
}

// TestSpan_ZeroValue checks that zero-value spans behave as empty views.
func TestSpan_ZeroValue(t *testing.T) {
	var s span.Span[string]
	var m span.MutSpan[string]
	require.True(t, s.IsEmpty())
	require.True(t, m.IsEmpty())
	require.Nil(t, s.Data())
}
