package algo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlseq/algo"
	"github.com/katalvlaran/lvlseq/span"
)

// TransferSuite exercises the lock-step transfer algorithms across the
// shorter/longer/equal length combinations.
type TransferSuite struct {
	suite.Suite
}

func TestTransferSuite(t *testing.T) {
	suite.Run(t, new(TransferSuite))
}

// checkCopy runs Copy for a destination of length m and a source of length
// n and verifies the residual contract: min(m,n) elements transferred, the
// residuals' combined length is |m-n|, entirely on the longer side.
func (s *TransferSuite) checkCopy(m, n int) {
	srcData := make([]int, n)
	for i := range srcData {
		srcData[i] = 100 + i
	}
	dstData := make([]int, m)

	dstRes, srcRes := algo.Copy[int](span.NewMut(dstData), span.New(srcData))

	done := min(m, n)
	for i := 0; i < done; i++ {
		require.Equal(s.T(), srcData[i], dstData[i], "m=%d n=%d i=%d", m, n, i)
	}
	for i := done; i < m; i++ {
		require.Zero(s.T(), dstData[i], "m=%d n=%d i=%d: untouched tail", m, n, i)
	}

	require.True(s.T(), dstRes.IsEmpty() || srcRes.IsEmpty(),
		"m=%d n=%d: at least one residual must be empty", m, n)
	require.Equal(s.T(), m-done, dstRes.Len(), "m=%d n=%d", m, n)
	require.Equal(s.T(), n-done, srcRes.Len(), "m=%d n=%d", m, n)
}

// TestCopyResiduals sweeps length combinations 0..5 × 0..5.
func (s *TransferSuite) TestCopyResiduals() {
	for m := 0; m <= 5; m++ {
		for n := 0; n <= 5; n++ {
			s.checkCopy(m, n)
		}
	}
}

// TestCopyNeverResizes pins the non-resizing contract: a short destination
// leaves excess source elements untouched and reported via the residual.
func (s *TransferSuite) TestCopyNeverResizes() {
	src := []int{1, 2, 3, 4, 5}
	dst := []int{0, 0}

	dstRes, srcRes := algo.Copy[int](span.NewMut(dst), span.New(src))
	require.Equal(s.T(), []int{1, 2}, dst)
	require.Equal(s.T(), []int{1, 2, 3, 4, 5}, src, "source must be untouched")
	require.True(s.T(), dstRes.IsEmpty())
	require.Equal(s.T(), 3, srcRes.Len())
	require.Equal(s.T(), 3, srcRes.Front(), "residual starts at the first untransferred element")
}

// TestMoveZeroesSource checks the moved-from post-condition: transferred
// source elements are reset to the zero value, untransferred ones are not.
func (s *TransferSuite) TestMoveZeroesSource() {
	src := []int{1, 2, 3, 4}
	dst := make([]int, 3)

	dstRes, srcRes := algo.Move[int](span.NewMut(dst), span.NewMut(src))
	require.Equal(s.T(), []int{1, 2, 3}, dst)
	require.Equal(s.T(), []int{0, 0, 0, 4}, src, "moved-from elements become zero, the rest stay")
	require.True(s.T(), dstRes.IsEmpty())
	require.Equal(s.T(), 1, srcRes.Len())
}

// TestSwapExchanges checks pairwise exchange with unequal lengths.
func (s *TransferSuite) TestSwapExchanges() {
	a := []int{1, 2, 3}
	b := []int{7, 8, 9, 10}

	aRes, bRes := algo.Swap[int](span.NewMut(a), span.NewMut(b))
	require.Equal(s.T(), []int{7, 8, 9}, a)
	require.Equal(s.T(), []int{1, 2, 3, 10}, b)
	require.True(s.T(), aRes.IsEmpty())
	require.Equal(s.T(), 1, bRes.Len())
	require.Equal(s.T(), 10, bRes.Front())
}

// TestTransferBetweenViewKinds checks that transfer works across different
// view types, not just span-to-span: a window source feeding a span
// destination.
func (s *TransferSuite) TestTransferBetweenViewKinds() {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	dst := make([]int, 4)

	srcWindow := span.New(base).Select(2, 4) // [2 3 4 5]
	dstRes, srcRes := algo.Copy[int](span.NewMut(dst), srcWindow)
	require.Equal(s.T(), []int{2, 3, 4, 5}, dst)
	require.True(s.T(), dstRes.IsEmpty())
	require.True(s.T(), srcRes.IsEmpty())
}
