package source

import "unicode/utf8"

// Slice is a stable, borrowed byte slice. UTF-8 is not assumed valid; the
// parser validates string bodies on completion unless constructed via
// NewValidatedSlice.
type Slice struct {
	buf      []byte
	utf8OK   bool
}

// NewSlice wraps b as a stable source. b must outlive any borrowed string
// values produced while parsing it.
func NewSlice(b []byte) *Slice {
	return &Slice{buf: b}
}

// NewValidatedSlice wraps b as a stable source whose UTF-8 validity is
// asserted by the caller (or pre-checked here), letting the parser skip
// per-string UTF-8 validation.
func NewValidatedSlice(b []byte) *Slice {
	return &Slice{buf: b, utf8OK: utf8.Valid(b)}
}

// NewStringSlice wraps a Go string, which is always valid UTF-8.
func NewStringSlice(s string) *Slice {
	return &Slice{buf: []byte(s), utf8OK: true}
}

func (s *Slice) Byte(offset int) byte {
	if offset < 0 || offset >= len(s.buf) {
		return 0
	}
	return s.buf[offset]
}

func (s *Slice) Slice(start, end int) []byte   { return s.buf[start:end] }
func (s *Slice) Len() int                      { return len(s.buf) }
func (s *Slice) Trim(int)                      {}
func (s *Slice) UTF8Guaranteed() bool          { return s.utf8OK }
func (s *Slice) Mutable() bool                 { return false }
func (s *Slice) MutableSlice(_, _ int) []byte  { return nil }
func (s *Slice) NullPadded() bool              { return false }
func (s *Slice) Volatile() bool                { return false }
