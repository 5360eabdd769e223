package quickjson

import (
	"context"
	"io"
	"log/slog"

	"github.com/quickjson/quickjson/internal/source"
)

// Source wraps the input abstraction described in §4.1: a unified byte
// cursor with compile-time capability flags (UTF-8-guaranteed, in-place
// mutable, null-padded, volatile). Construct one with the From*
// functions below; a Source is consumed by exactly one parse at a time.
type Source struct {
	inner source.Source
}

// FromString wraps a Go string as a stable, UTF-8-guaranteed source (Go
// strings are always valid UTF-8). Borrowed Value strings alias s.
func FromString(s string) Source {
	return Source{inner: source.NewStringSlice(s)}
}

// FromBytes wraps b as a stable source, validating its UTF-8 once up
// front so per-string validation can be skipped during parsing. b must
// outlive any borrowed Value produced while parsing it.
func FromBytes(b []byte) Source {
	return Source{inner: source.NewValidatedSlice(b)}
}

// FromMutableBytes wraps b as a source that reports itself as writable.
// The parser does not write to it: escapes are decoded into new strings
// and b keeps its original text. Go has no mutable string type, so this
// stands in for the specification's "mutable UTF-8 string" constructor
// as well — pass the UTF-8 bytes of the string.
func FromMutableBytes(b []byte) Source {
	return Source{inner: source.NewMutable(b)}
}

// FromNullPadded copies b into an owned buffer with a guaranteed
// 64-byte zero tail past its logical end. The parser still reads it
// through bounds-checked accessors.
func FromNullPadded(b []byte) Source {
	return Source{inner: source.NewNullPadded(b)}
}

// FromReader adapts any io.Reader into a buffered, volatile, streaming
// source. ctx bounds each individual fetch; parsing never suspends
// mid-value, so cancellation only takes effect between fetches. A nil
// ctx is treated as context.Background().
func FromReader(ctx context.Context, r io.Reader) Source {
	return Source{inner: source.NewReader(ctx, r)}
}

// loggable is implemented by Source backends (currently only *source.Reader)
// that can emit slow-path diagnostics; setLogger is a no-op for the rest.
type loggable interface{ SetLogger(*slog.Logger) }

func (s Source) setLogger(l *slog.Logger) {
	if lg, ok := s.inner.(loggable); ok {
		lg.SetLogger(l)
	}
}
