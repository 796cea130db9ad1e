package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/seq"
	"github.com/katalvlaran/lvlseq/span"
	"github.com/katalvlaran/lvlseq/tuple"
)

// TestZip_LockStep checks pairing order and the min-length contract.
func TestZip_LockStep(t *testing.T) {
	nums := span.Of(1, 2, 3, 4)
	words := span.Of("one", "two", "three")

	z := seq.Zip[int, string](nums, words)
	require.Equal(t, 3, z.Len(), "zip length is the shorter input")

	got := collect[tuple.Pair[int, string]](z)
	want := []tuple.Pair[int, string]{
		tuple.MakePair(1, "one"),
		tuple.MakePair(2, "two"),
		tuple.MakePair(3, "three"),
	}
	require.Equal(t, want, got)
}

// TestZip_EmptySide checks that one empty input empties the whole zip.
func TestZip_EmptySide(t *testing.T) {
	z := seq.Zip[int, string](span.Of(1, 2), span.Of[string]())
	require.True(t, z.IsEmpty())
	require.Zero(t, z.Len())
	require.Panics(t, func() { z.Front() })
}

// TestZipRandom_Surface checks indexed access over two unequal-length
// bases: positions pair up elementwise and the unpaired tail of the longer
// base is unreachable.
func TestZipRandom_Surface(t *testing.T) {
	nums := span.Of(1, 2, 3, 4)
	words := span.Of("one", "two", "three")

	z := seq.ZipRandom[int, string](nums, words)
	require.Equal(t, 3, z.Len())
	require.Equal(t, tuple.MakePair(1, "one"), z.Front())
	require.Equal(t, tuple.MakePair(3, "three"), z.Back())
	require.Equal(t, tuple.MakePair(2, "two"), z.At(1))
	require.Panics(t, func() { z.At(3) }, "the unpaired tail is out of range")

	sub := z.Select(1, 2)
	require.Equal(t, []tuple.Pair[int, string]{
		tuple.MakePair(2, "two"),
		tuple.MakePair(3, "three"),
	}, collect[tuple.Pair[int, string]](sub))

	require.Equal(t, []tuple.Pair[int, string]{
		tuple.MakePair(1, "one"),
		tuple.MakePair(2, "two"),
	}, collect[tuple.Pair[int, string]](z.DropBack()))
}
