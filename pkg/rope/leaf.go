package rope

// Summarizer is implemented by leaves (and, transitively, by the internal
// nodes of a tree built from them) that can report a summary of their
// contents. GapBuffer satisfies it via Summarize.
type Summarizer interface {
	Summarize() ChunkSummary
}

// BalancedLeaf is the capability contract a surrounding rope tree needs
// from its leaves to keep them within [ChunkMin, MaxBytes] after edits.
// GapBuffer satisfies it via Summarize and IsUnderfilled; the merge and
// transfer step itself is the package-level BalanceLeaves function. The
// tree itself is out of scope here (see SPEC_FULL.md's Non-goals).
type BalancedLeaf interface {
	Summarizer
	IsUnderfilled(summary ChunkSummary) bool
}

// IsUnderfilled reports whether summary describes fewer bytes than this
// buffer's MinBytes threshold. Only the receiver's capacity is consulted,
// not its current contents.
func (gb *GapBuffer) IsUnderfilled(summary ChunkSummary) bool {
	return summary.Bytes < gb.MinBytes()
}

// BalanceLeaves restores left and right to within [ChunkMin, MaxBytes]
// bytes each, given their current summaries. It merges them into left when
// they jointly fit in one leaf, otherwise moves bytes across the boundary
// in the direction of whichever side is underfilled. leftSummary and
// rightSummary are updated in place to match.
//
// Panics if the two buffers don't share the same capacity.
func BalanceLeaves(left *GapBuffer, leftSummary *ChunkSummary, right *GapBuffer, rightSummary *ChunkSummary) {
	if left.maxBytes != right.maxBytes {
		panic("rope: BalanceLeaves: buffers have different capacities")
	}

	switch {
	case left.Len()+right.Len() <= left.maxBytes:
		left.AppendOther(leftSummary.LineBreaks, right)
		*leftSummary = leftSummary.Add(*rightSummary)
		*rightSummary = ChunkSummary{}

	case left.Len() < left.MinBytes():
		missingLeft := left.MinBytes() - left.Len()
		movedLeft := left.AddFromRight(missingLeft, right)
		*leftSummary = leftSummary.Add(movedLeft)
		*rightSummary = rightSummary.Sub(movedLeft)

	case right.Len() < right.MinBytes():
		missingRight := right.MinBytes() - right.Len()
		movedRight := left.MoveToRight(missingRight, right)
		*leftSummary = leftSummary.Sub(movedRight)
		*rightSummary = rightSummary.Add(movedRight)
	}
}

// ReplaceableLeaf is the capability contract a surrounding rope tree needs
// to splice edits into its leaves, possibly producing extra sibling leaves
// when the edit doesn't fit in place.
type ReplaceableLeaf interface {
	Summarizer
	Replace(summary ChunkSummary, start, end int, s string) (ChunkSummary, []*GapBuffer)
	RemoveUpTo(summary ChunkSummary, upTo int) ChunkSummary
}

// Replace replaces the text in [start, end) of the buffer's logical
// contents (as reported by summary) with s, returning the buffer's new
// summary and any extra leaves produced when the edit didn't fit in place.
//
// When built with the smallchunks build tag, an empty extras slice is
// returned as nil rather than a zero-length non-nil slice, mirroring the
// original's small_chunks feature (see SPEC_FULL.md §6).
//
// Panics if start > end, end > summary.Bytes, or start/end aren't
// code-point boundaries.
func (gb *GapBuffer) Replace(summary ChunkSummary, start, end int, s string) (ChunkSummary, []*GapBuffer) {
	if start > end || end > summary.Bytes {
		panic("rope: Replace: invalid range")
	}
	gb.assertCharBoundary(start)
	gb.assertCharBoundary(end)

	if gb.Len()-(end-start)+len(s) <= gb.maxBytes {
		var newSummary ChunkSummary
		if end > start {
			newSummary = gb.ReplaceNonOverflowing(start, end, s, summary)
		} else {
			newSummary = gb.Insert(start, s, summary)
		}
		return newSummary, nil
	}

	newSummary, extras := gb.ReplaceOverflowing(start, end, s, summary)

	if len(extras) == 0 {
		if smallChunks {
			return newSummary, nil
		}
		return newSummary, []*GapBuffer{}
	}
	return newSummary, extras
}

// RemoveUpTo deletes the first upTo bytes of the buffer's logical contents
// and returns its new summary. It's Replace with an empty replacement
// string over [0, upTo).
func (gb *GapBuffer) RemoveUpTo(summary ChunkSummary, upTo int) ChunkSummary {
	newSummary, _ := gb.Replace(summary, 0, upTo, "")
	return newSummary
}
