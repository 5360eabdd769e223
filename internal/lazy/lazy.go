// Package lazy implements the lazy/deferred-materialization value shape
// from §4.9: a cell holding only the byte span of a JSON value until a
// typed accessor is called. Lazy mode is incompatible with volatile
// sources (§4.9); NewRoot accepts any source.Source and does not check
// whether it is volatile.
package lazy

import (
	"github.com/quickjson/quickjson/internal/builder"
	"github.com/quickjson/quickjson/internal/errs"
	"github.com/quickjson/quickjson/internal/numlex"
	"github.com/quickjson/quickjson/internal/parser"
	"github.com/quickjson/quickjson/internal/source"
	"github.com/quickjson/quickjson/internal/value"
)

// Value is a pointer to the byte where a JSON value begins, plus enough
// of the source and config to materialize it on demand.
type Value struct {
	src        source.Source
	cfg        parser.Config
	start, end int
}

// NewRoot validates the outermost value's byte extent (the no-tail
// invariant included) and returns it as a lazy root, without
// materializing anything beneath it.
func NewRoot(src source.Source, cfg parser.Config) (Value, *errs.Error) {
	p := parser.New[source.Source, builder.Discard](src, builder.Discard{}, cfg, nil)
	start, end, err := p.ParseRoot()
	if err != nil {
		return Value{}, err
	}
	return Value{src: src, cfg: cfg, start: start, end: end}, nil
}

// Start and End report the value's byte span.
func (v Value) Start() int { return v.start }
func (v Value) End() int   { return v.end }

func (v Value) leadByte() byte { return v.src.Byte(v.start) }

// IsNull reports whether the value is the JSON null literal.
func (v Value) IsNull() bool { return v.leadByte() == 'n' }

// AsBool materializes the value as a boolean.
func (v Value) AsBool() (bool, bool) {
	switch v.leadByte() {
	case 't':
		return true, true
	case 'f':
		return false, true
	default:
		return false, false
	}
}

// AsNumber materializes the value as a Number.
func (v Value) AsNumber() (numlex.Number, bool) {
	c := v.leadByte()
	if c != '-' && (c < '0' || c > '9') {
		return numlex.Number{}, false
	}
	root, ok := v.materializeLeaf()
	if !ok || root.Kind != value.KindNumber {
		return numlex.Number{}, false
	}
	return root.Number, true
}

// AsString materializes the value as a string.
func (v Value) AsString() (string, bool) {
	if v.leadByte() != '"' {
		return "", false
	}
	root, ok := v.materializeLeaf()
	if !ok || root.Kind != value.KindString {
		return "", false
	}
	return root.Str.Text, true
}

func (v Value) materializeLeaf() (value.Value, bool) {
	mb := &builder.Materialized{}
	p := parser.New[source.Source, *builder.Materialized](v.src, mb, v.cfg, nil)
	p.Seek(v.start)
	if _, _, err := p.Value(); err != nil {
		return value.Value{}, false
	}
	return mb.Root(), true
}

// AsArray upgrades the cell to a lazy Array, memoizing children as they
// are queried by index.
func (v Value) AsArray() (*Array, bool) {
	if v.leadByte() != '[' {
		return nil, false
	}
	return &Array{root: v, cache: make(map[int]Value)}, true
}

// AsObject upgrades the cell to a lazy Object, memoizing children as they
// are queried by key.
func (v Value) AsObject() (*Object, bool) {
	if v.leadByte() != '{' {
		return nil, false
	}
	return &Object{root: v, cache: make(map[string]Value)}, true
}

// Materialize fully builds this value, and everything beneath it, into a
// materialized value.Value tree — used to compare lazy and materialized
// parses for equality (§8 property 5) and to hand a lazy sub-value to a
// caller that ultimately wants the full tree.
func (v Value) Materialize() (value.Value, bool) {
	return v.materializeLeaf()
}

// Pointer performs a one-shot, non-caching descent to the sub-value named
// by path, returning a lazy reference (or, if the path ends at a leaf,
// the lazy leaf itself — materializing it is still the caller's choice).
func (v Value) Pointer(path []parser.Component) (Value, *errs.Error) {
	if len(path) == 0 {
		return v, nil
	}
	p := parser.New[source.Source, builder.Discard](v.src, builder.Discard{}, v.cfg, nil)
	p.Seek(v.start)
	start, end, err := p.SkipToPath(path)
	if err != nil {
		return Value{}, err
	}
	return Value{src: v.src, cfg: v.cfg, start: start, end: end}, nil
}

// Array is a lazy JSON array: child values are scanned from raw bytes and
// cached the first time each index is queried.
type Array struct {
	root  Value
	cache map[int]Value
}

// Get returns element i, scanning from the array's start and skipping
// elements before it. Results are cached by index: a repeated query for
// an index already returned uses the cache, and every other query
// re-scans from the start, since the underlying skip primitives do not
// expose a mid-container resume point.
func (a *Array) Get(i int) (Value, *errs.Error) {
	if v, ok := a.cache[i]; ok {
		return v, nil
	}
	p := parser.New[source.Source, builder.Discard](a.root.src, builder.Discard{}, a.root.cfg, nil)
	p.Seek(a.root.start)
	start, end, err := p.SkipToPath([]parser.Component{parser.IndexComponent(i)})
	if err != nil {
		return Value{}, err
	}
	child := Value{src: a.root.src, cfg: a.root.cfg, start: start, end: end}
	a.cache[i] = child
	return child, nil
}

// Object is a lazy JSON object: child values are scanned from raw bytes
// and cached the first time each key is queried.
type Object struct {
	root  Value
	cache map[string]Value
}

// Get returns the value for key, scanning from the object's start
// (cache permitting).
func (o *Object) Get(key string) (Value, *errs.Error) {
	if v, ok := o.cache[key]; ok {
		return v, nil
	}
	p := parser.New[source.Source, builder.Discard](o.root.src, builder.Discard{}, o.root.cfg, nil)
	p.Seek(o.root.start)
	start, end, err := p.SkipToPath([]parser.Component{parser.KeyComponent(key)})
	if err != nil {
		return Value{}, err
	}
	child := Value{src: o.root.src, cfg: o.root.cfg, start: start, end: end}
	o.cache[key] = child
	return child, nil
}
