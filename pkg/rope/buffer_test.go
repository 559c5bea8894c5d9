package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromStringRoundTrips(t *testing.T) {
	gb := NewFromString(10, "hello")
	require.Equal(t, 5, gb.Len())
	require.Equal(t, "hello", gb.LeftChunk()+gb.RightChunk())
}

func TestNewFromStringEmpty(t *testing.T) {
	gb := NewFromString(10, "")
	require.True(t, gb.IsEmpty())
}

func TestNewFromStringPanicsWhenTooLong(t *testing.T) {
	require.Panics(t, func() { NewFromString(4, "hello") })
}

// Scenario 1: gap motion.
func TestMoveGapScenario(t *testing.T) {
	gb := NewFromString(10, "aaaabbbb")

	gb.MoveGap(2, 0)
	require.Equal(t, "aa", gb.LeftChunk())
	require.Equal(t, "aabbbb", gb.RightChunk())

	gb.MoveGap(6, 0)
	require.Equal(t, "aaaabb", gb.LeftChunk())
	require.Equal(t, "bb", gb.RightChunk())
}

// L4: move_gap is a no-op on the buffer's bytes when offset == len_left.
func TestMoveGapIdempotentOnBoundary(t *testing.T) {
	gb := NewFromChunks(10, []string{"aaaa", "bbbb"})
	before := gb.LeftChunk() + gb.RightChunk()
	lb := gb.Summarize().LineBreaks

	gb.MoveGap(gb.LenLeft(), lb)

	require.Equal(t, before, gb.LeftChunk()+gb.RightChunk())
}

func TestSummarizeAgreesWithScan(t *testing.T) {
	gb := NewFromChunks(20, []string{"foo\n", "bar\n", "baz"})
	whole := gb.LeftChunk() + gb.RightChunk()

	require.Equal(t, SummaryOf(whole), gb.Summarize())
}

func TestSummarizeRangeShortAndLong(t *testing.T) {
	gb := NewFromChunks(40, []string{"aaa\n", "bbb\n", "ccc\n", "ddd"})
	total := gb.Summarize()
	whole := gb.LeftChunk() + gb.RightChunk()

	for _, tc := range [][2]int{{0, 3}, {2, 14}, {0, len(whole)}} {
		got := gb.SummarizeRange(tc[0], tc[1], total)
		want := SummaryOf(whole[tc[0]:tc[1]])
		require.Equal(t, want, got, "range %v", tc)
	}
}

// P1: line_breaks_left tracks count_line_breaks(left_chunk) exactly.
func TestLineBreaksLeftCacheInvariant(t *testing.T) {
	gb := NewFromChunks(20, []string{"a\nb\n", "c\nd"})
	gb.MoveGap(3, gb.Summarize().LineBreaks)

	require.Equal(t, countLineBreaks(gb.LeftChunk()), int(gb.lineBreaksLeft))
}

// P2: len_left + len_right never exceeds the buffer's capacity.
func TestLenNeverExceedsCapacity(t *testing.T) {
	gb := NewFromChunks(10, []string{"aaaaa", "bbbbb"})
	require.LessOrEqual(t, gb.LenLeft()+gb.LenRight(), gb.MaxBytes())
}

func TestHasTrailingNewline(t *testing.T) {
	gb := NewFromString(10, "abc\n")
	require.True(t, gb.HasTrailingNewline())

	gb2 := NewFromString(10, "abc")
	require.False(t, gb2.HasTrailingNewline())
}

func TestAssertCharBoundaryPanicsMidRune(t *testing.T) {
	gb := NewFromString(10, "a🌎b")
	require.Panics(t, func() { gb.assertCharBoundary(2) })
}
