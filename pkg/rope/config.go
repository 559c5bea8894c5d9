package rope

// DefaultMaxBytes is the leaf capacity used by production ropes.
//
// Rust's GapBuffer<const MAX_BYTES: usize> fixes this as a compile-time
// generic parameter; Go has no integer-valued generics, so this package
// carries the capacity as a runtime field (GapBuffer.maxBytes) set once at
// construction and never mutated, with these two constants supplying the
// "two distinct capacities in test and release builds" the spec calls for.
const DefaultMaxBytes = 1024

// TestMaxBytes is a tiny capacity suited to exercising overflow,
// segmentation, and code-point-straddling behavior cheaply (a handful of
// bytes is enough to force multi-leaf splits). This package's own tests do
// not reference it; they pass their capacities explicitly.
const TestMaxBytes = 10

// debugAssertionsEnabled gates the extra invariant checks ported from the
// original implementation's debug_assert! calls. They're redundant with
// correct callers but document real invariants, so they're kept behind a
// flag rather than deleted; flip to true when chasing a leaf-layer bug.
const debugAssertionsEnabled = false

// minBytes returns the rebalance target for a leaf of the given capacity:
// leaves below this are considered underfilled.
func minBytes(maxBytes int) int {
	return maxBytes / 4
}

// chunkMin returns the minimum legal size for a leaf of the given capacity.
// A single 4-byte code point can land on a split boundary, so validity
// checks must tolerate an underflow of up to 3 bytes below minBytes, even
// though rebalancing always aims at minBytes itself.
func chunkMin(maxBytes int) int {
	m := minBytes(maxBytes) - 3
	if m < 0 {
		return 0
	}
	return m
}
