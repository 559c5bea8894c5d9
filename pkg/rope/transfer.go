package rope

// AddFromRight moves up to bytesToAdd bytes from the start of right onto
// the end of self, and returns the summary of the bytes moved. The split
// point is adjusted downward to a code-point boundary, so fewer bytes move
// when bytesToAdd falls inside a code point.
//
// Panics (when debug assertions are enabled) if right doesn't hold at least
// bytesToAdd bytes, or if self wouldn't fit them.
func (gb *GapBuffer) AddFromRight(bytesToAdd int, right *GapBuffer) ChunkSummary {
	if debugAssertionsEnabled {
		if right.Len() < bytesToAdd {
			panic("rope: AddFromRight: right does not hold enough bytes")
		}
		if gb.Len()+bytesToAdd > gb.maxBytes {
			panic("rope: AddFromRight: self does not have room")
		}
	}

	if bytesToAdd <= right.LenLeft() {
		moveLeft, keepRight := splitAdjusted(right.LeftChunk(), bytesToAdd, false)

		var summary ChunkSummary
		if len(moveLeft) <= right.LenLeft() {
			summary = SummaryOf(moveLeft)
		} else {
			summary = ChunkSummary{
				Bytes:      len(moveLeft),
				LineBreaks: int(right.lineBreaksLeft) - countLineBreaks(keepRight),
			}
		}

		gb.AppendStr(moveLeft)
		right.removeUpTo(len(moveLeft), summary.LineBreaks)

		return summary
	}

	moveLeft, _ := splitAdjusted(right.RightChunk(), bytesToAdd-right.LenLeft(), false)

	summary := ChunkSummary{
		Bytes:      right.LenLeft(),
		LineBreaks: int(right.lineBreaksLeft),
	}.Add(SummaryOf(moveLeft))

	gb.AppendTwo(right.LeftChunk(), moveLeft)
	right.removeUpTo(summary.Bytes, summary.LineBreaks)

	return summary
}

// MoveToRight moves up to bytesToMove bytes from the end of self onto the
// start of right, and returns the summary of the bytes moved. The split
// point is adjusted upward to a code-point boundary, so fewer bytes move
// when the cut falls inside a code point.
//
// Panics (when debug assertions are enabled) if self doesn't hold at least
// bytesToMove bytes, or if right wouldn't fit them.
func (gb *GapBuffer) MoveToRight(bytesToMove int, right *GapBuffer) ChunkSummary {
	if debugAssertionsEnabled {
		if bytesToMove > gb.Len() {
			panic("rope: MoveToRight: self does not hold enough bytes")
		}
		if right.Len()+bytesToMove > right.maxBytes {
			panic("rope: MoveToRight: right does not have room")
		}
	}

	if bytesToMove <= gb.LenRight() {
		_, moveRight := splitAdjusted(gb.RightChunk(), gb.LenRight()-bytesToMove, true)

		summary := SummaryOf(moveRight)

		right.Prepend(moveRight, summary.LineBreaks)
		gb.TruncateFrom(gb.Len()-len(moveRight), 0)

		return summary
	}

	_, moveRight := splitAdjusted(gb.LeftChunk(), gb.LenLeft()-(bytesToMove-gb.LenRight()), true)

	moveRightSummary := SummaryOf(moveRight)
	summary := moveRightSummary.Add(SummaryOf(gb.RightChunk()))

	right.PrependTwo(moveRight, gb.RightChunk(), summary.LineBreaks)

	gb.TruncateFrom(gb.Len()-gb.LenRight()-len(moveRight), moveRightSummary.LineBreaks)

	return summary
}

// AppendOther moves every byte out of other and appends it to the end of
// self, leaving other empty. totLineBreaks must equal self's own current
// summary's LineBreaks count (i.e. before other is appended).
//
// Panics if the combined length would exceed self's capacity.
func (gb *GapBuffer) AppendOther(totLineBreaks int, other *GapBuffer) {
	if gb.Len()+other.Len() > gb.maxBytes {
		panic("rope: AppendOther: combined length exceeds capacity")
	}

	lenLeft := gb.LenLeft()
	lenRight := gb.LenRight()

	// Move this buffer's right chunk after its left chunk.
	gb.copyWithin(gb.maxBytes-lenRight, gb.maxBytes, lenLeft)

	// Move the other buffer's left chunk, then its right chunk, into this
	// buffer's new right chunk.
	end := gb.maxBytes - other.LenRight()
	copy(gb.bytes[end-other.LenLeft():end], other.LeftChunk())
	copy(gb.bytes[end:], other.RightChunk())

	gb.lenLeft += gb.lenRight
	gb.lineBreaksLeft = uint16(totLineBreaks)
	gb.lenRight = uint16(other.Len())

	other.lenLeft = 0
	other.lineBreaksLeft = 0
	other.lenRight = 0
}
