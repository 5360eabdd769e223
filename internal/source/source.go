// Package source unifies the byte-input abstractions the parser can drive:
// a stable in-memory slice, an in-place mutable slice, a null-padded owned
// buffer, and a streaming reader adapter. Each advertises its guarantees
// through methods. The parser consults UTF8Guaranteed to skip validation
// and Volatile to decide ownership; it reads every source through the
// bounds-checked Byte and Slice, whatever NullPadded or Mutable report.
package source

// Source is the unified byte-input contract. Implementations are not
// required to be safe for concurrent use; a Source is owned by exactly one
// Parser at a time.
type Source interface {
	// Byte returns the byte at offset, or 0 if offset is at or past the
	// logical end and the source is not null-padded (callers on a
	// null-padded source may read up to NullPadTail bytes past Len()).
	Byte(offset int) byte

	// Slice returns the bytes in [start, end). The returned slice may
	// alias the source's backing array; callers must not retain it past
	// the source's lifetime for Volatile sources.
	Slice(start, end int) []byte

	// Len returns the number of bytes currently available. For a
	// streaming source this may first fetch more input, so that at least
	// MinStreamWindow bytes are buffered past the furthest offset read; it
	// blocks until that much is available or the underlying stream
	// reports EOF.
	Len() int

	// Trim signals that bytes before offset are no longer needed. No-op
	// for non-volatile sources.
	Trim(offset int)

	// UTF8Guaranteed reports whether string bodies are already known to
	// be valid UTF-8, letting the parser skip validation on completion.
	UTF8Guaranteed() bool

	// Mutable reports whether the parser may overwrite escape runs during
	// string materialization so the result remains a borrow into the
	// source.
	Mutable() bool

	// MutableSlice returns a writable view of [start, end). Only valid to
	// call when Mutable() is true.
	MutableSlice(start, end int) []byte

	// NullPadded reports whether bytes [Len(), Len()+NullPadTail) are
	// guaranteed readable and zero, letting the parser elide bounds
	// checks in hot loops.
	NullPadded() bool

	// Volatile reports whether the buffer's front may be discarded
	// between reads; materialized strings from a volatile source must be
	// copied, never borrowed.
	Volatile() bool
}

// NullPadTail is the guaranteed number of zero bytes available past the
// logical end of a null-padded source.
const NullPadTail = 64

// MinStreamWindow is the minimum number of bytes a streaming source
// attempts to keep buffered ahead of the cursor.
const MinStreamWindow = 800
