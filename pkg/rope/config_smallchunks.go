//go:build smallchunks

package rope

// smallChunks mirrors the original's `small_chunks` Cargo feature: when
// true (built with `-tags smallchunks`), an empty extras slice on overflow
// is coerced to "no overflow" so callers never see a zero-length extras
// list.
const smallChunks = true
