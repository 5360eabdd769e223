// Package builder defines the pluggable "on this event do that" contract
// the parser core drives. A Builder is specialized per concrete type at
// the call site (see parser.Parser[S, B]) rather than invoked through a
// single dynamic interface per byte, so the compiler can inline each
// event call — the "builder polymorphism" design note.
package builder

import "github.com/quickjson/quickjson/internal/numlex"

// Builder is the full event contract. Each parse selects one concrete
// implementation: Materialized (builds a value.Value tree), Discard
// (discards everything; lazy parsing uses it and keeps only the byte
// spans the parser returns), or a deserializer-visitor adapter.
type Builder interface {
	// Null/Bool/Number/String are called when a leaf value completes.
	// start/end are the value's byte span.
	Null(start, end int)
	Bool(v bool, start, end int)
	Number(n numlex.Number, start, end int)
	// String receives the decoded text (always a Go string of its own) and
	// whether it is owned: true when escapes were decoded or the source is
	// volatile, false when it was taken unchanged from a stable source.
	String(s string, owned bool, start, end int)

	// BeginArray/EndArray bracket an array; EndArray is called after the
	// last element's completion callback.
	BeginArray(start int)
	EndArray(start, end int)

	// BeginObject/Key/EndObject bracket an object; Key is called after
	// each member's key string completes (before its value), EndObject
	// after the last member's value completion callback.
	BeginObject(start int)
	Key(s string, owned bool, start, end int)
	EndObject(start, end int)
}
