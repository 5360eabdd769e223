// Package value implements the materialized tree shape: an
// order-preserving Object with linear or binary-search Get, an Array, and
// the String/Number representations described in §3 of the specification.
package value

import "github.com/quickjson/quickjson/internal/numlex"

// Kind tags which JSON type a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the materialized tree node. Exactly one of the typed fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Bool   bool
	Number numlex.Number
	Str    String
	Array  []Value
	Object *Object
}

// String is a materialized JSON string. Text is always a Go string of its
// own; Owned is true when escapes were decoded or the source is volatile,
// and false when the text was taken unchanged from a stable source. The
// specification's small-buffer optimization for owned strings is left to
// the Go runtime's own short-string handling, since Go strings are
// already immutable, reference-counted-free views and do not benefit from
// a hand-rolled inline buffer the way a manually-managed heap string
// would.
type String struct {
	Text  string
	Owned bool
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Num returns a numeric value.
func Num(n numlex.Number) Value { return Value{Kind: KindNumber, Number: n} }

// Str returns a string value.
func Str(s String) Value { return Value{Kind: KindString, Str: s} }
