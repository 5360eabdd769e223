package quickjson

import (
	"fmt"

	"github.com/quickjson/quickjson/internal/parser"
)

// PathElem is one component of a Path: either an object key or an array
// index, the Go realization of the `jsonp!`-macro-built path from
// original_source/src/pointer.rs (Go has no macros, so a variadic
// constructor stands in for it).
type PathElem struct {
	key     string
	index   int
	isIndex bool
}

// Key builds a key-typed path element.
func Key(k string) PathElem { return PathElem{key: k} }

// Index builds an index-typed path element.
func Index(i int) PathElem { return PathElem{index: i, isIndex: true} }

func (e PathElem) String() string {
	if e.isIndex {
		return fmt.Sprintf("[%d]", e.index)
	}
	return "." + e.key
}

// Path is an ordered sequence of PathElem describing a descent through
// nested objects/arrays, as consumed by ParseAt/ParseLazyAt and
// Value.Pointer-equivalent lookups.
type Path []PathElem

// At builds a Path from a mix of string keys and int indices, standing
// in for the `jsonp!` macro: At("users", 0, "name").
func At(parts ...any) Path {
	p := make(Path, len(parts))
	for i, part := range parts {
		switch v := part.(type) {
		case string:
			p[i] = Key(v)
		case int:
			p[i] = Index(v)
		default:
			panic(fmt.Sprintf("quickjson.At: unsupported path component %T", part))
		}
	}
	return p
}

func (p Path) toComponents() []parser.Component {
	out := make([]parser.Component, len(p))
	for i, e := range p {
		if e.isIndex {
			out[i] = parser.IndexComponent(e.index)
		} else {
			out[i] = parser.KeyComponent(e.key)
		}
	}
	return out
}

// Spanned pairs a value with the byte extent it occupied in its source,
// realizing original_source/src/span.rs's Span<T> for callers that want
// to re-slice surrounding context (e.g. associated comments) relative to
// a parsed value.
type Spanned[T any] struct {
	Value      T
	Start, End int
}
