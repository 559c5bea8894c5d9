package rope

// GapSlice is a non-owning view into a GapBuffer: its two contiguous
// halves plus the shared line-break-count cache, produced without copying
// the buffer's backing storage. It lets a tree iterate and summarize
// leaves without taking ownership of them.
//
// Its bytes span is narrowed to the minimal contiguous region covering
// both halves: the whole capacity when both are non-empty (the gap sits
// between them), just the populated prefix when the right half is empty,
// just the populated suffix when the left half is empty, or nil when both
// are empty.
type GapSlice struct {
	bytes          []byte
	lenLeft        int
	lenRight       int
	lineBreaksLeft int
}

// AsSlice returns a GapSlice view of the buffer's current contents.
func (gb *GapBuffer) AsSlice() GapSlice {
	var bytes []byte
	switch {
	case gb.LenLeft() > 0 && gb.LenRight() > 0:
		bytes = gb.bytes
	case gb.LenLeft() > 0:
		bytes = gb.bytes[:gb.LenLeft()]
	case gb.LenRight() > 0:
		bytes = gb.bytes[gb.maxBytes-gb.LenRight():]
	default:
		bytes = nil
	}
	return GapSlice{
		bytes:          bytes,
		lenLeft:        gb.LenLeft(),
		lenRight:       gb.LenRight(),
		lineBreaksLeft: int(gb.lineBreaksLeft),
	}
}

// LeftChunk returns the slice's left segment.
func (s GapSlice) LeftChunk() string {
	return string(s.bytes[:s.lenLeft])
}

// RightChunk returns the slice's right segment.
func (s GapSlice) RightChunk() string {
	return string(s.bytes[len(s.bytes)-s.lenRight:])
}

// Len returns the combined byte length of the slice's two segments.
func (s GapSlice) Len() int { return s.lenLeft + s.lenRight }

// IsEmpty reports whether the slice is empty.
func (s GapSlice) IsEmpty() bool { return s.Len() == 0 }

// Summarize returns the exact summary of the slice's text.
func (s GapSlice) Summarize() ChunkSummary {
	return ChunkSummary{
		Bytes:      s.Len(),
		LineBreaks: s.lineBreaksLeft + countLineBreaks(s.RightChunk()),
	}
}
