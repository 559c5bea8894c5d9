package rope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 4: inter-buffer transfer.
func TestAddFromRightScenario(t *testing.T) {
	left := NewFromString(10, "Hello")
	right := NewFromString(10, ", World!")

	left.AddFromRight(2, right)

	require.Equal(t, "Hello, ", left.LeftChunk()+left.RightChunk())
	require.Equal(t, "World!", right.LeftChunk()+right.RightChunk())
}

func TestMoveToRightScenario(t *testing.T) {
	left := NewFromString(15, "Hello, ")
	right := NewFromString(15, "World!")

	left.MoveToRight(2, right)

	require.Equal(t, "Hello", left.LeftChunk()+left.RightChunk())
	require.Equal(t, ", World!", right.LeftChunk()+right.RightChunk())
}

func TestAppendOtherEmptiesOther(t *testing.T) {
	left := NewFromString(20, "Hello, ")
	right := NewFromString(20, "World!")

	left.AppendOther(left.Summarize().LineBreaks, right)

	require.Equal(t, "Hello, World!", left.LeftChunk()+left.RightChunk())
	require.True(t, right.IsEmpty())
}
