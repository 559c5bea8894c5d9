package rope

// copyWithin copies the bytes gb.bytes[srcStart:srcEnd] to
// gb.bytes[dstStart:dstStart+(srcEnd-srcStart)]. Source and destination may
// overlap; Go's copy (like Rust's slice::copy_within) handles that
// correctly.
func (gb *GapBuffer) copyWithin(srcStart, srcEnd, dstStart int) {
	n := srcEnd - srcStart
	copy(gb.bytes[dstStart:dstStart+n], gb.bytes[srcStart:srcEnd])
}

// MoveGap physically relocates the gap so the left segment ends at
// byteOffset. totLineBreaks must be the buffer's current total line-break
// count (used to recompute the cache by subtraction when that's cheaper
// than rescanning).
//
// Panics if byteOffset is not a code-point boundary.
func (gb *GapBuffer) MoveGap(byteOffset, totLineBreaks int) {
	gb.assertCharBoundary(byteOffset)

	offset := byteOffset

	switch {
	case offset < gb.LenLeft():
		// aa|bb~~~ccc => aa~~~bbccc
		lenMoved := gb.LenLeft() - offset

		if lenMoved <= gb.LenLeft()/2 {
			gb.lineBreaksLeft -= uint16(countLineBreaks(gb.LeftChunk()[offset:]))
		} else {
			gb.lineBreaksLeft = uint16(countLineBreaks(gb.LeftChunk()[:offset]))
		}

		gb.lenRight += uint16(lenMoved)

		lenLeft := gb.LenLeft()
		lenRight := gb.LenRight()
		gb.copyWithin(offset, lenLeft, gb.maxBytes-lenRight)
		gb.lenLeft -= uint16(lenMoved)

	case offset > gb.LenLeft():
		// aaa~~~bb|cc => aaabb~~~cc
		lenMoved := offset - gb.LenLeft()

		var movedLineBreaks int
		if lenMoved <= gb.LenRight()/2 {
			movedLineBreaks = countLineBreaks(gb.RightChunk()[:lenMoved])
		} else {
			movedLineBreaks = totLineBreaks - int(gb.lineBreaksLeft) - countLineBreaks(gb.RightChunk()[lenMoved:])
		}

		gb.lineBreaksLeft += uint16(movedLineBreaks)

		start := gb.maxBytes - gb.LenRight()
		end := start + lenMoved
		lenLeft := gb.LenLeft()
		gb.copyWithin(start, end, lenLeft)
		gb.lenLeft += uint16(lenMoved)
		gb.lenRight -= uint16(lenMoved)
	}
}

// AppendStr appends s to the right segment, shifting it leftward to make
// room. The left segment is untouched.
//
// Panics if len(s) exceeds the gap.
func (gb *GapBuffer) AppendStr(s string) {
	if len(s) > gb.GapLen() {
		panic("rope: AppendStr: string is longer than the gap")
	}

	start := gb.maxBytes - gb.LenRight()
	gb.copyWithin(start, gb.maxBytes, start-len(s))
	copy(gb.bytes[gb.maxBytes-len(s):], s)
	gb.lenRight += uint16(len(s))
}

// AppendTwo is AppendStr for two strings appended in order.
//
// Panics if their combined length exceeds the gap.
func (gb *GapBuffer) AppendTwo(a, b string) {
	if len(a)+len(b) > gb.GapLen() {
		panic("rope: AppendTwo: combined length is longer than the gap")
	}

	start := gb.maxBytes - gb.LenRight()
	gb.copyWithin(start, gb.maxBytes, start-len(a)-len(b))

	end := gb.maxBytes - len(b)
	copy(gb.bytes[end-len(a):end], a)
	copy(gb.bytes[gb.maxBytes-len(b):], b)

	gb.lenRight += uint16(len(a) + len(b))
}

// Prepend prepends s to the left segment, shifting it rightward to make
// room. prependedLineBreaks must equal the exact number of '\n' bytes in s.
//
// Panics if len(s) exceeds the gap.
func (gb *GapBuffer) Prepend(s string, prependedLineBreaks int) {
	if len(s) > gb.GapLen() {
		panic("rope: Prepend: string is longer than the gap")
	}

	lenFirst := gb.LenLeft()
	gb.copyWithin(0, lenFirst, len(s))
	copy(gb.bytes[:len(s)], s)

	gb.lenLeft += uint16(len(s))
	gb.lineBreaksLeft += uint16(prependedLineBreaks)
}

// PrependTwo is Prepend for two strings, prepended in order (a before b).
//
// Panics if their combined length exceeds the gap.
func (gb *GapBuffer) PrependTwo(a, b string, prependedLineBreaks int) {
	if len(a)+len(b) > gb.GapLen() {
		panic("rope: PrependTwo: combined length is longer than the gap")
	}

	lenFirst := gb.LenLeft()
	gb.copyWithin(0, lenFirst, len(a)+len(b))
	copy(gb.bytes[:len(a)], a)
	copy(gb.bytes[len(a):len(a)+len(b)], b)

	gb.lenLeft += uint16(len(a) + len(b))
	gb.lineBreaksLeft += uint16(prependedLineBreaks)
}

// Insert moves the gap to insertAt and writes s there, returning the new
// whole-buffer summary. summary must be the buffer's summary before the
// insertion.
//
// Panics if insertAt is not a code-point boundary or len(s) exceeds the gap.
func (gb *GapBuffer) Insert(insertAt int, s string, summary ChunkSummary) ChunkSummary {
	gb.assertCharBoundary(insertAt)
	if len(s) > gb.GapLen() {
		panic("rope: Insert: string is longer than the gap")
	}

	gb.MoveGap(insertAt, summary.LineBreaks)

	start := gb.LenLeft()
	copy(gb.bytes[start:start+len(s)], s)
	gb.lenLeft += uint16(len(s))

	insertedLineBreaks := countLineBreaks(s)
	gb.lineBreaksLeft += uint16(insertedLineBreaks)

	return ChunkSummary{Bytes: gb.Len(), LineBreaks: summary.LineBreaks + insertedLineBreaks}
}

// removeUpTo deletes the first byteOffset bytes. removedLineBreaks must be
// the number of '\n' bytes in the removed region; the cached count is
// decremented by it with saturating arithmetic (see DESIGN.md's Open
// Question decision — a caller-supplied overcount masks as zero rather
// than panicking or going negative).
//
// Panics if byteOffset is not a code-point boundary.
func (gb *GapBuffer) removeUpTo(byteOffset, removedLineBreaks int) {
	gb.assertCharBoundary(byteOffset)

	if byteOffset <= gb.LenLeft() {
		lenMoved := gb.LenLeft() - byteOffset
		end := gb.LenLeft()
		gb.copyWithin(end-lenMoved, end, 0)
		gb.lenLeft = uint16(lenMoved)
	} else {
		gb.lenRight -= uint16(byteOffset - gb.LenLeft())
		gb.lenLeft = 0
	}

	if removedLineBreaks >= int(gb.lineBreaksLeft) {
		gb.lineBreaksLeft = 0
	} else {
		gb.lineBreaksLeft -= uint16(removedLineBreaks)
	}
}

// TruncateFrom deletes everything at and after byteOffset.
// removedLineBreaksLeft must equal the number of '\n' bytes removed from
// the left segment (zero when byteOffset lies in the right segment).
//
// Panics if byteOffset is not a code-point boundary.
func (gb *GapBuffer) TruncateFrom(byteOffset, removedLineBreaksLeft int) {
	gb.assertCharBoundary(byteOffset)

	if byteOffset <= gb.LenLeft() {
		gb.lenLeft = uint16(byteOffset)
		gb.lenRight = 0
		gb.lineBreaksLeft -= uint16(removedLineBreaksLeft)
	} else {
		rel := byteOffset - gb.LenLeft()
		start := gb.maxBytes - gb.LenRight()
		end := start + rel
		gb.copyWithin(start, end, gb.maxBytes-rel)
		gb.lenRight = uint16(rel)
	}
}

// TruncateFromWithSummary is TruncateFrom, but it recomputes the exact
// removed line-break count internally (scanning whichever side of the cut
// is shorter) and returns the buffer's new summary.
func (gb *GapBuffer) TruncateFromWithSummary(offset int, summary ChunkSummary) ChunkSummary {
	gb.assertCharBoundary(offset)

	if offset <= gb.LenLeft() {
		var lineBreaks int
		if offset <= gb.LenLeft()/2 {
			lineBreaks = countLineBreaks(gb.LeftChunk()[:offset])
		} else {
			lineBreaks = int(gb.lineBreaksLeft) - countLineBreaks(gb.LeftChunk()[offset:])
		}

		gb.lenLeft = uint16(offset)
		gb.lenRight = 0
		gb.lineBreaksLeft = uint16(lineBreaks)

		return ChunkSummary{Bytes: offset, LineBreaks: lineBreaks}
	}

	rel := offset - gb.LenLeft()

	var lineBreaksRight int
	if rel <= gb.LenRight()/2 {
		lineBreaksRight = countLineBreaks(gb.RightChunk()[:rel])
	} else {
		lineBreaksRight = summary.LineBreaks - int(gb.lineBreaksLeft) - countLineBreaks(gb.RightChunk()[rel:])
	}

	start := gb.maxBytes - gb.LenRight()
	end := start + rel
	gb.copyWithin(start, end, gb.maxBytes-rel)
	gb.lenRight = uint16(rel)

	return ChunkSummary{
		Bytes:      gb.Len(),
		LineBreaks: int(gb.lineBreaksLeft) + lineBreaksRight,
	}
}

// ReplaceNonOverflowing replaces the text in [start, end) with s, where the
// result still fits in maxBytes, and returns the new summary. summary must
// be the buffer's summary before the replacement.
//
// Panics if start/end aren't code-point boundaries or the result would
// overflow the buffer's capacity.
func (gb *GapBuffer) ReplaceNonOverflowing(start, end int, s string, summary ChunkSummary) ChunkSummary {
	gb.assertCharBoundary(start)
	gb.assertCharBoundary(end)

	lenReplaced := end - start
	if gb.Len()-lenReplaced+len(s) > gb.maxBytes {
		panic("rope: ReplaceNonOverflowing: result would exceed capacity")
	}

	gb.MoveGap(end, summary.LineBreaks)

	removedSummary := gb.SummarizeRange(start, end, summary)
	addedSummary := SummaryOf(s)

	if s != "" {
		switch {
		case lenReplaced < len(s):
			replace := s[:lenReplaced]
			add := s[lenReplaced:]
			copy(gb.bytes[start:end], replace)
			adding := len(s) - lenReplaced
			copy(gb.bytes[end:end+adding], add)
			gb.lenLeft += uint16(adding)
		case lenReplaced > len(s):
			copy(gb.bytes[start:start+len(s)], s)
			gb.lenLeft = uint16(start + len(s))
		default:
			copy(gb.bytes[start:end], s)
		}
	} else {
		gb.lenLeft -= uint16(lenReplaced)
	}

	gb.lineBreaksLeft -= uint16(removedSummary.LineBreaks)
	gb.lineBreaksLeft += uint16(addedSummary.LineBreaks)

	return summary.Sub(removedSummary).Add(addedSummary)
}

// ReplaceOverflowing replaces the text in [start, end) with s, where the
// result would exceed maxBytes, and returns the buffer's new summary
// together with any extra leaves the tree must splice in after it.
//
// Panics if start/end aren't code-point boundaries or the result would
// actually fit (callers must choose between ReplaceNonOverflowing and this
// based on that check, exactly as ReplaceableLeaf.Replace does in leaf.go).
func (gb *GapBuffer) ReplaceOverflowing(start, end int, s string, summary ChunkSummary) (ChunkSummary, []*GapBuffer) {
	gb.assertCharBoundary(start)
	gb.assertCharBoundary(end)

	if gb.Len()-(end-start)+len(s) <= gb.maxBytes {
		panic("rope: ReplaceOverflowing: result would fit in capacity")
	}

	var extraLeft, extraRight string
	if end <= gb.LenLeft() {
		extraLeft = gb.LeftChunk()[end:]
		extraRight = gb.RightChunk()
	} else {
		rel := end - gb.LenLeft()
		extraLeft = ""
		extraRight = gb.RightChunk()[rel:]
	}

	minB := gb.MinBytes()

	switch {
	case start < minB:
		// The remaining self-buffer would be too small: absorb as much of
		// s (and, if needed, extraLeft then extraRight) as reaches the
		// min_bytes floor, and resegment the remainder.
		replacement := s
		truncateFrom := end
		missing := minB - start

		var extras []*GapBuffer
		switch {
		case len(s) >= missing:
			left, right := splitAdjusted(s, missing, true)
			replacement = left
			extras = NewResegmenter(gb.maxBytes, []string{right, extraLeft, extraRight}).Collect()
		case len(s)+len(extraLeft) >= missing:
			missing -= len(s)
			left, right := splitAdjusted(extraLeft, missing, true)
			truncateFrom += len(left)
			extras = NewResegmenter(gb.maxBytes, []string{right, extraRight}).Collect()
		default:
			missing -= len(s) + len(extraLeft)
			left, right := splitAdjusted(extraRight, missing, true)
			truncateFrom += len(extraLeft) + len(left)
			extras = NewResegmenter(gb.maxBytes, []string{right}).Collect()
		}

		newSummary := gb.TruncateFromWithSummary(truncateFrom, summary)
		finalSummary := gb.ReplaceNonOverflowing(start, end, replacement, newSummary)

		return finalSummary, extras

	case len(s)+(gb.Len()-end) < minB:
		// The last emitted leaf would be too small: keep more of self's
		// prefix, pushing the overflow backwards into the resegmenter.
		var truncateFrom int
		missing := minB - len(s) - (gb.Len() - end)

		var newLeft, newRight string
		if start <= gb.LenLeft() {
			newLeft = gb.LeftChunk()[:start]
			newRight = ""
		} else {
			rel := start - gb.LenLeft()
			newLeft = gb.LeftChunk()
			newRight = gb.RightChunk()[:rel]
		}

		var addToExtras1, addToExtras2 string
		if missing <= len(newRight) {
			keepInSelf, addToExtras := splitAdjusted(newRight, len(newRight)-missing, true)
			truncateFrom = len(newLeft) + len(keepInSelf)
			addToExtras1, addToExtras2 = "", addToExtras
		} else {
			missing -= len(newRight)
			keepInSelf, addToExtras := splitAdjusted(newLeft, len(newLeft)-missing, true)
			truncateFrom = len(keepInSelf)
			addToExtras1, addToExtras2 = addToExtras, newRight
		}

		extras := NewResegmenter(gb.maxBytes, []string{addToExtras1, addToExtras2, s, extraLeft, extraRight}).Collect()

		newSummary := gb.TruncateFromWithSummary(truncateFrom, summary)

		return newSummary, extras

	default:
		extras := NewResegmenter(gb.maxBytes, []string{s, extraLeft, extraRight}).Collect()
		newSummary := gb.TruncateFromWithSummary(start, summary)
		return newSummary, extras
	}
}
