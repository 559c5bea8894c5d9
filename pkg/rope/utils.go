package rope

import (
	"fmt"
	"unicode/utf8"
)

// These four helpers are, in the full rope this leaf layer belongs to,
// supplied by the surrounding tree (spec: "helpers consumed from the tree
// layer"). Since the tree itself is out of scope here, they're implemented
// directly with a UTF-8-boundary-walking technique (utf8.RuneStart scans),
// applied to single-offset code-point-boundary adjustment.

// countLineBreaks returns the exact number of '\n' bytes in s. A lone '\r'
// is not a line break; "\r\n" is counted once, via its '\n'.
func countLineBreaks(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// lastByteIsNewline reports whether s ends in a '\n' byte.
func lastByteIsNewline(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '\n'
}

// adjustSplitPoint returns the offset nearest to at that lies on a UTF-8
// code-point boundary of s, adjusting downward when up is false and upward
// when up is true.
func adjustSplitPoint(s string, at int, up bool) int {
	if at <= 0 {
		return 0
	}
	if at >= len(s) {
		return len(s)
	}
	if up {
		for at < len(s) && !utf8.RuneStart(s[at]) {
			at++
		}
	} else {
		for at > 0 && !utf8.RuneStart(s[at]) {
			at--
		}
	}
	return at
}

// splitAdjusted splits s at the nearest code-point boundary to at, moving
// the split downward when up is false and upward when up is true.
func splitAdjusted(s string, at int, up bool) (string, string) {
	adj := adjustSplitPoint(s, at, up)
	return s[:adj], s[adj:]
}

// isCharBoundary reports whether offset lies on a code-point boundary of s
// (the start of s, the end of s, or a byte that is not a UTF-8 continuation
// byte all count as boundaries).
func isCharBoundary(s string, offset int) bool {
	if offset == 0 || offset == len(s) {
		return true
	}
	if offset < 0 || offset > len(s) {
		return false
	}
	return utf8.RuneStart(s[offset])
}

// boundaryError is the single user-facing failure this package produces:
// assertCharBoundary translates a misused byte offset that splits a code
// point into a diagnostic naming the offset and the surrounding bytes.
type boundaryError struct {
	offset  int
	context string
}

func (e *boundaryError) Error() string {
	return fmt.Sprintf(
		"rope: byte offset %d does not lie on a char boundary (near %q)",
		e.offset, e.context,
	)
}

// byteOffsetNotCharBoundary panics with a boundaryError naming offset and a
// small window of chunk around it, to help a caller find the bug without
// printing the whole (potentially huge) chunk.
func byteOffsetNotCharBoundary(chunk string, offset int) {
	lo := offset - 4
	if lo < 0 {
		lo = 0
	}
	hi := offset + 4
	if hi > len(chunk) {
		hi = len(chunk)
	}
	panic(&boundaryError{offset: offset, context: chunk[lo:hi]})
}
