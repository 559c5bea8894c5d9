package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsSliceBothHalvesPopulated(t *testing.T) {
	gb := NewFromChunks(10, []string{"aaaa", "bbbb"})
	s := gb.AsSlice()

	require.Equal(t, "aaaa", s.LeftChunk())
	require.Equal(t, "bbbb", s.RightChunk())
	require.Equal(t, 8, s.Len())
	require.False(t, s.IsEmpty())
}

func TestAsSliceOnlyLeftPopulated(t *testing.T) {
	gb := New(10)
	gb.AppendStr("hi")
	gb.MoveGap(2, 0)
	s := gb.AsSlice()

	require.Equal(t, "hi", s.LeftChunk())
	require.Equal(t, "", s.RightChunk())
}

func TestAsSliceOnlyRightPopulated(t *testing.T) {
	gb := New(10)
	gb.AppendStr("hi")
	s := gb.AsSlice()

	require.Equal(t, "", s.LeftChunk())
	require.Equal(t, "hi", s.RightChunk())
}

func TestAsSliceEmpty(t *testing.T) {
	gb := New(10)
	s := gb.AsSlice()

	require.True(t, s.IsEmpty())
	require.Equal(t, ChunkSummary{}, s.Summarize())
}

func TestNewFromSliceRoundTrips(t *testing.T) {
	gb := NewFromChunks(10, []string{"aa\n", "bb"})
	s := gb.AsSlice()

	gb2 := NewFromSlice(10, s)

	require.Equal(t, gb.LeftChunk()+gb.RightChunk(), gb2.LeftChunk()+gb2.RightChunk())
	require.Equal(t, gb.Summarize(), gb2.Summarize())
}
