package rope

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

// P1-P4: invariants that must hold after any sequence of constructions and
// gap motions.
func TestGapBufferInvariantsHoldAfterRandomMoves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z0-9\n 🌎]{1,60}`).AsAny().Draw(t, "s").(string)
		maxBytes := rapid.IntRange(len(s), len(s)+32).AsAny().Draw(t, "maxBytes").(int)

		gb := NewFromString(maxBytes, s)

		moves := rapid.IntRange(0, 5).AsAny().Draw(t, "moves").(int)
		for i := 0; i < moves; i++ {
			offset := rapid.IntRange(0, gb.Len()).AsAny().Draw(t, "offset").(int)
			offset = adjustSplitPoint(gb.LeftChunk()+gb.RightChunk(), offset, true)
			gb.MoveGap(offset, gb.Summarize().LineBreaks)

			whole := gb.LeftChunk() + gb.RightChunk()

			// P1
			if int(gb.lineBreaksLeft) != countLineBreaks(gb.LeftChunk()) {
				t.Fatalf("P1 violated: cached=%d actual=%d", gb.lineBreaksLeft, countLineBreaks(gb.LeftChunk()))
			}
			// P2
			if gb.LenLeft()+gb.LenRight() > gb.MaxBytes() {
				t.Fatalf("P2 violated: %d+%d > %d", gb.LenLeft(), gb.LenRight(), gb.MaxBytes())
			}
			// P3
			if !utf8.ValidString(whole) {
				t.Fatalf("P3 violated: %q is not valid UTF-8", whole)
			}
			// P4
			if gb.Summarize() != SummaryOf(whole) {
				t.Fatalf("P4 violated: summarize()=%+v scan=%+v", gb.Summarize(), SummaryOf(whole))
			}
			if whole != s {
				t.Fatalf("gap motion changed the logical text: got %q want %q", whole, s)
			}
		}
	})
}
