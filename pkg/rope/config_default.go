//go:build !smallchunks

package rope

// smallChunks mirrors the original's `small_chunks` Cargo feature: when
// false (the default build), Replace always returns its extras iterator on
// overflow, even if it happens to be empty.
const smallChunks = false
