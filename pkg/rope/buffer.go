package rope

// GapBuffer is a fixed-capacity gap buffer: the owning storage for one
// rope leaf's bytes, with a movable gap separating a left and a right
// segment. Capacity (maxBytes) is set once at construction and never
// changes — this is the Go analogue of Rust's GapBuffer<const MAX_BYTES>,
// see config.go for why it's a field rather than a type parameter.
//
// Invariants (must hold between every exported call):
//   - lenLeft+lenRight <= maxBytes.
//   - bytes[:lenLeft] and bytes[maxBytes-lenRight:] are each valid UTF-8.
//   - lineBreaksLeft is the exact count of '\n' bytes in bytes[:lenLeft].
type GapBuffer struct {
	bytes          []byte
	maxBytes       int
	lenLeft        uint16
	lenRight       uint16
	lineBreaksLeft uint16
}

const maxCapacity = 1<<16 - 1

func checkCapacity(maxBytes int) {
	if maxBytes <= 0 || maxBytes > maxCapacity {
		panic("rope: max bytes must be in 1..=65535")
	}
}

// New returns an empty GapBuffer with the given capacity.
func New(maxBytes int) *GapBuffer {
	checkCapacity(maxBytes)
	return &GapBuffer{bytes: make([]byte, maxBytes), maxBytes: maxBytes}
}

// NewFromString builds a GapBuffer holding exactly s.
//
// Panics if len(s) > maxBytes.
func NewFromString(maxBytes int, s string) *GapBuffer {
	checkCapacity(maxBytes)
	if len(s) > maxBytes {
		panic("rope: NewFromString: string is longer than capacity")
	}
	if s == "" {
		return New(maxBytes)
	}
	return NewFromChunks(maxBytes, []string{s})
}

// NewFromChunks packs chunks into one buffer, placing roughly half of the
// total bytes on each side of the gap (UTF-8-adjusted so no chunk's
// contents straddle the gap incorrectly).
//
// Panics if the chunks are all empty or their combined length exceeds
// maxBytes.
func NewFromChunks(maxBytes int, chunks []string) *GapBuffer {
	checkCapacity(maxBytes)

	totalLen := 0
	for _, c := range chunks {
		totalLen += len(c)
	}
	if totalLen == 0 {
		panic("rope: NewFromChunks: chunks are all empty")
	}
	if totalLen > maxBytes {
		panic("rope: NewFromChunks: combined chunk length exceeds capacity")
	}

	addToFirst := totalLen / 2

	bytes := make([]byte, maxBytes)
	lenLeftChunk := 0
	lineBreaksLeftChunk := 0

	for i, chunk := range chunks {
		if lenLeftChunk+len(chunk) <= addToFirst {
			copy(bytes[lenLeftChunk:lenLeftChunk+len(chunk)], chunk)
			lenLeftChunk += len(chunk)
			lineBreaksLeftChunk += countLineBreaks(chunk)
			continue
		}

		toFirst, toSecond := splitAdjusted(chunk, addToFirst-lenLeftChunk, true)

		copy(bytes[lenLeftChunk:lenLeftChunk+len(toFirst)], toFirst)
		lenLeftChunk += len(toFirst)
		lineBreaksLeftChunk += countLineBreaks(toFirst)

		lenRightChunk := totalLen - lenLeftChunk
		start := maxBytes - lenRightChunk

		copy(bytes[start:start+len(toSecond)], toSecond)
		start += len(toSecond)

		for _, segment := range chunks[i+1:] {
			copy(bytes[start:start+len(segment)], segment)
			start += len(segment)
		}

		return &GapBuffer{
			bytes:          bytes,
			maxBytes:       maxBytes,
			lenLeft:        uint16(lenLeftChunk),
			lineBreaksLeft: uint16(lineBreaksLeftChunk),
			lenRight:       uint16(lenRightChunk),
		}
	}

	panic("rope: NewFromChunks: unreachable, total length was zero")
}

// NewFromSlice allocates a fresh buffer of the given capacity, copying the
// slice's two halves into their canonical offsets and inheriting its
// counters.
func NewFromSlice(maxBytes int, slice GapSlice) *GapBuffer {
	checkCapacity(maxBytes)

	bytes := make([]byte, maxBytes)
	copy(bytes[:slice.lenLeft], slice.LeftChunk())
	copy(bytes[maxBytes-slice.lenRight:], slice.RightChunk())

	return &GapBuffer{
		bytes:          bytes,
		maxBytes:       maxBytes,
		lenLeft:        uint16(slice.lenLeft),
		lineBreaksLeft: uint16(slice.lineBreaksLeft),
		lenRight:       uint16(slice.lenRight),
	}
}

// MaxBytes returns this buffer's fixed capacity.
func (gb *GapBuffer) MaxBytes() int { return gb.maxBytes }

// MinBytes returns the rebalance target for this buffer's capacity.
func (gb *GapBuffer) MinBytes() int { return minBytes(gb.maxBytes) }

// ChunkMin returns the minimum legal size for this buffer's capacity.
func (gb *GapBuffer) ChunkMin() int { return chunkMin(gb.maxBytes) }

// LenLeft returns the size of the left segment.
func (gb *GapBuffer) LenLeft() int { return int(gb.lenLeft) }

// LenRight returns the size of the right segment.
func (gb *GapBuffer) LenRight() int { return int(gb.lenRight) }

// Len returns the combined byte length of the left and right segments.
func (gb *GapBuffer) Len() int { return gb.LenLeft() + gb.LenRight() }

// GapLen returns the number of unused bytes separating the two segments.
func (gb *GapBuffer) GapLen() int { return gb.maxBytes - gb.Len() }

// IsEmpty reports whether the buffer holds no text.
func (gb *GapBuffer) IsEmpty() bool { return gb.Len() == 0 }

// LeftChunk returns the left segment as a string.
func (gb *GapBuffer) LeftChunk() string {
	return string(gb.bytes[:gb.lenLeft])
}

// RightChunk returns the right segment as a string.
func (gb *GapBuffer) RightChunk() string {
	return string(gb.bytes[gb.maxBytes-int(gb.lenRight):])
}

// LastChunk returns the right segment if it's non-empty, the left one
// otherwise.
func (gb *GapBuffer) LastChunk() string {
	if gb.LenRight() == 0 {
		return gb.LeftChunk()
	}
	return gb.RightChunk()
}

// HasTrailingNewline reports whether the buffer's text ends in '\n'.
func (gb *GapBuffer) HasTrailingNewline() bool {
	return lastByteIsNewline(gb.LastChunk())
}

// IsCharBoundary reports whether offset lies on a UTF-8 code-point
// boundary of the buffer's logical text.
func (gb *GapBuffer) IsCharBoundary(offset int) bool {
	if offset <= gb.LenLeft() {
		return isCharBoundary(gb.LeftChunk(), offset)
	}
	return isCharBoundary(gb.RightChunk(), offset-gb.LenLeft())
}

// assertCharBoundary panics with a nicely formatted diagnostic if offset
// does not lie on a code-point boundary. This is the single place
// leaf-layer misuse becomes an observable external failure.
func (gb *GapBuffer) assertCharBoundary(offset int) {
	if debugAssertionsEnabled && offset > gb.Len() {
		panic("rope: assertCharBoundary: offset out of range")
	}
	if gb.IsCharBoundary(offset) {
		return
	}
	if offset < gb.LenLeft() {
		byteOffsetNotCharBoundary(gb.LeftChunk(), offset)
	} else {
		byteOffsetNotCharBoundary(gb.RightChunk(), offset-gb.LenLeft())
	}
}

// Summarize returns the exact summary of the buffer's whole text.
func (gb *GapBuffer) Summarize() ChunkSummary {
	return ChunkSummary{
		Bytes:      gb.Len(),
		LineBreaks: int(gb.lineBreaksLeft) + countLineBreaks(gb.RightChunk()),
	}
}

// summarizeSpan summarizes the given sub-range without consulting total,
// scanning only the bytes in [start, end).
func (gb *GapBuffer) summarizeSpan(start, end int) ChunkSummary {
	ll := gb.LenLeft()
	switch {
	case end <= ll:
		chunk := gb.LeftChunk()[start:end]
		return ChunkSummary{Bytes: len(chunk), LineBreaks: countLineBreaks(chunk)}
	case start <= ll:
		left := gb.LeftChunk()[start:]
		right := gb.RightChunk()[:end-ll]
		return ChunkSummary{
			Bytes:      len(left) + len(right),
			LineBreaks: countLineBreaks(left) + countLineBreaks(right),
		}
	default:
		chunk := gb.RightChunk()[start-ll : end-ll]
		return ChunkSummary{Bytes: len(chunk), LineBreaks: countLineBreaks(chunk)}
	}
}

// SummarizeRange returns the exact summary of the sub-range [start, end) of
// the buffer's text. total must be the buffer's current whole-buffer
// summary; start and end must lie on code-point boundaries.
//
// For short ranges this scans directly; for ranges longer than half the
// buffer it computes total minus the two flanking summaries, to avoid
// rescanning the larger half.
func (gb *GapBuffer) SummarizeRange(start, end int, total ChunkSummary) ChunkSummary {
	if debugAssertionsEnabled {
		if total != gb.Summarize() {
			panic("rope: SummarizeRange: total does not match buffer summary")
		}
	}

	if end-start <= gb.Len()/2 {
		return gb.summarizeSpan(start, end)
	}

	return total.Sub(gb.summarizeSpan(0, start)).Sub(gb.summarizeSpan(end, gb.Len()))
}
