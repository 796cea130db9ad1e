package algo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/seq"
	"github.com/katalvlaran/lvlseq/span"
)

// TestCompare_Lexicographic pins the standard lexicographic rules: first
// unequal pair decides, prefix is less.
func TestCompare_Lexicographic(t *testing.T) {
	cases := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"both empty", nil, nil, 0},
		{"first smaller", []int{1, 2, 3}, []int{1, 3, 0}, -1},
		{"first larger", []int{2, 0}, []int{1, 9, 9}, +1},
		{"prefix is less", []int{1, 2}, []int{1, 2, 3}, -1},
		{"extension is greater", []int{1, 2, 3}, []int{1, 2}, +1},
		{"empty vs non-empty", nil, []int{0}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := algo.Compare[int](span.New(tc.a), span.New(tc.b))
			require.Equal(t, tc.want, got)
		})
	}
}

// TestCompareFunc checks the caller-supplied ordering with heterogeneous
// element types.
func TestCompareFunc(t *testing.T) {
	words := span.Of("apple", "Banana", "cherry")
	upper := span.Of("APPLE", "BANANA", "CHERRY")

	got := algo.CompareFunc(words, upper, func(x, y string) int {
		return strings.Compare(strings.ToLower(x), strings.ToLower(y))
	})
	require.Zero(t, got)

	got = algo.CompareFunc(span.Of(1, 2), span.Of(1.0, 2.5), func(x int, y float64) int {
		switch {
		case float64(x) < y:
			return -1
		case float64(x) > y:
			return +1
		}

		return 0
	})
	require.Equal(t, -1, got)
}

// TestEqual pins element-wise equality with the equal-length requirement.
func TestEqual(t *testing.T) {
	require.True(t, algo.Equal[int](span.Of(1, 2, 3), span.Of(1, 2, 3)))
	require.False(t, algo.Equal[int](span.Of(1, 2, 3), span.Of(1, 2)))
	require.False(t, algo.Equal[int](span.Of(1, 2, 3), span.Of(1, 2, 4)))
	require.True(t, algo.Equal[int](span.Of[int](), span.Of[int]()))
}

// TestEqual_AcrossViewKinds checks equality between different conforming
// view types over the same elements.
func TestEqual_AcrossViewKinds(t *testing.T) {
	base := span.New([]int{0, 1, 2, 3, 4, 5})
	w := seq.WindowOf[int](base).Select(2, 3) // [2 3 4]
	require.True(t, algo.Equal[int](w, span.Of(2, 3, 4)))

	r := seq.Reverse[int](span.Of(4, 3, 2))
	require.True(t, algo.EqualFunc(w, r, func(x, y int) bool { return x == y }))
}
