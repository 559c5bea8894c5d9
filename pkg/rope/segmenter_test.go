package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Scenario 6: segmenter with multi-byte text.
func TestSegmenterMultiByteScenario(t *testing.T) {
	got := NewSegmenter(4, "Hello Earth 🌎!").Collect()

	require.Equal(t, []string{"Hell", "o Ea", "rth ", "🌎", "!"}, got)
}

// Scenario 7: resegmenter with a code-point straddling a chunk boundary.
func TestResegmenterCodePointStraddleScenario(t *testing.T) {
	leaves := NewResegmenter(4, []string{" 🌎", "!"}).Collect()

	require.Len(t, leaves, 3)
	require.Equal(t, " ", leaves[0].LeftChunk()+leaves[0].RightChunk())
	require.Equal(t, "🌎", leaves[1].LeftChunk()+leaves[1].RightChunk())
	require.Equal(t, "!", leaves[2].LeftChunk()+leaves[2].RightChunk())
}

func TestSegmenterShortStringYieldsOneChunk(t *testing.T) {
	got := NewSegmenter(100, "hi").Collect()
	require.Equal(t, []string{"hi"}, got)
}

// L1: concatenating every chunk a Segmenter yields reconstructs the input.
func TestSegmenterRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9 \n]{0,80}`).AsAny().Draw(t, "s").(string)
		maxBytes := rapid.IntRange(4, 32).AsAny().Draw(t, "maxBytes").(int)

		chunks := NewSegmenter(maxBytes, s).Collect()

		if strings.Join(chunks, "") != s {
			t.Fatalf("round trip failed: chunks=%v want=%q", chunks, s)
		}
	})
}

// L2: Resegmenter(segments) yields the same leaf contents, element for
// element, as Segmenter over the concatenation of those segments.
func TestResegmenterMatchesSegmenterOverConcatenation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 4).AsAny().Draw(t, "n").(int)
		maxBytes := rapid.IntRange(8, 32).AsAny().Draw(t, "maxBytes").(int)

		segments := make([]string, n)
		total := ""
		for i := range segments {
			s := rapid.StringMatching(`[a-zA-Z0-9]{0,20}`).AsAny().Draw(t, "segment").(string)
			segments[i] = s
			total += s
		}
		if len(total) < chunkMin(maxBytes) {
			return
		}

		want := NewSegmenter(maxBytes, total).Collect()
		got := NewResegmenter(maxBytes, segments).Collect()

		if len(want) != len(got) {
			t.Fatalf("length mismatch: want=%v got=%d leaves", want, len(got))
		}
		for i, leaf := range got {
			text := leaf.LeftChunk() + leaf.RightChunk()
			if text != want[i] {
				t.Fatalf("leaf %d: got %q want %q", i, text, want[i])
			}
		}
	})
}
