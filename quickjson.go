// Package quickjson implements a JSON/JSONC parsing core offering four
// consumption shapes over one byte-level engine: a materialized tree
// (Parse), a lazy/deferred tree (ParseLazy), a deserializer-visitor
// adapter (Deserialize), and a skip-to-path extractor (ParseAt,
// ParseLazyAt) that descends into a document without materializing
// sibling subtrees.
package quickjson

import (
	"context"
	"io"

	"github.com/quickjson/quickjson/internal/builder"
	"github.com/quickjson/quickjson/internal/lazy"
	"github.com/quickjson/quickjson/internal/parser"
	"github.com/quickjson/quickjson/internal/source"
	"github.com/quickjson/quickjson/internal/xcomment"
)

// Parse builds a fully materialized Value tree from src.
func Parse(src Source, cfg Config) (Value, *Error) {
	mb := &builder.Materialized{}
	p := parser.New[source.Source, *builder.Materialized](src.inner, mb, cfg.toParserConfig(), nil)
	if _, _, err := p.ParseRoot(); err != nil {
		return Value{}, wrapErr(err)
	}
	return wrapValue(mb.Root()), nil
}

// ParseString is a convenience wrapper parsing strict JSON from s.
func ParseString(s string) (Value, *Error) {
	return Parse(FromString(s), NewConfig())
}

// ParseBytes is a convenience wrapper parsing strict JSON from b.
func ParseBytes(b []byte) (Value, *Error) {
	return Parse(FromBytes(b), NewConfig())
}

// ParseReader parses JSON streamed from r, with the grammar set by cfg.
func ParseReader(ctx context.Context, r io.Reader, cfg Config) (Value, *Error) {
	src := FromReader(ctx, r)
	src.setLogger(cfg.logger())
	return Parse(src, cfg)
}

// ParseLazy validates the outermost value's byte extent and returns a
// LazyValue whose children are parsed on demand. Lazy mode requires a
// non-volatile source (not FromReader); see §4.9.
func ParseLazy(src Source, cfg Config) (LazyValue, *Error) {
	root, err := lazy.NewRoot(src.inner, cfg.toParserConfig())
	if err != nil {
		return LazyValue{}, wrapErr(err)
	}
	return LazyValue{inner: root}, nil
}

// ParseAt skips to path without materializing sibling subtrees, then
// parses the target value into a materialized Value.
func ParseAt(src Source, cfg Config, path Path) (Value, *Error) {
	mb := &builder.Materialized{}
	p := parser.New[source.Source, *builder.Materialized](src.inner, mb, cfg.toParserConfig(), nil)
	if _, _, err := p.SkipToPath(path.toComponents()); err != nil {
		return Value{}, wrapErr(err)
	}
	return wrapValue(mb.Root()), nil
}

// ParseLazyAt skips to path and returns the target as a LazyValue,
// without materializing it or any sibling subtree.
func ParseLazyAt(src Source, cfg Config, path Path) (LazyValue, *Error) {
	root, err := lazy.NewRoot(src.inner, cfg.toParserConfig())
	if err != nil {
		return LazyValue{}, wrapErr(err)
	}
	child, derr := root.Pointer(path.toComponents())
	if derr != nil {
		return LazyValue{}, wrapErr(derr)
	}
	return LazyValue{inner: child}, nil
}

// Deserialize drives v with typed events as the document is parsed,
// without building an intermediate Value tree; used to adapt quickjson
// into a host ecosystem's generic serialization framework (§6).
func Deserialize(src Source, cfg Config, v Visitor) error {
	vb := &visitorBuilder{v: v}
	p := parser.New[source.Source, *visitorBuilder](src.inner, vb, cfg.toParserConfig(), nil)
	if _, _, err := p.ParseRoot(); err != nil {
		return wrapErr(err)
	}
	if vb.err != nil {
		return vb.err
	}
	return nil
}

// ParseWithComments parses src and, when cfg.AllowComments is set, also
// returns every recorded comment span in source order.
func ParseWithComments(src Source, cfg Config) (Value, []Comment, *Error) {
	sidecar := &xcomment.Sidecar{}
	mb := &builder.Materialized{}
	p := parser.New[source.Source, *builder.Materialized](src.inner, mb, cfg.toParserConfig(), sidecar)
	if _, _, err := p.ParseRoot(); err != nil {
		return Value{}, nil, wrapErr(err)
	}
	return wrapValue(mb.Root()), sidecar.Comments, nil
}

// ParseWithMetadata parses src and additionally returns line-offset and
// comment metadata for editor-style consumers.
func ParseWithMetadata(src Source, cfg Config) (Value, Metadata, *Error) {
	sidecar := &xcomment.Sidecar{}
	mb := &builder.Materialized{}
	p := parser.New[source.Source, *builder.Materialized](src.inner, mb, cfg.toParserConfig(), sidecar)
	if _, _, err := p.ParseRoot(); err != nil {
		return Value{}, Metadata{}, wrapErr(err)
	}
	return wrapValue(mb.Root()), Metadata{sidecar: sidecar}, nil
}
