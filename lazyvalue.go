package quickjson

import "github.com/quickjson/quickjson/internal/lazy"

// LazyValue is a pointer to the byte where a JSON value begins; its
// children are parsed only on demand (§4.9). A LazyValue is only valid
// while the Source it was parsed from is alive, and requires a
// non-volatile source (not FromReader).
type LazyValue struct {
	inner lazy.Value
}

// Start and End report the value's byte span in its source.
func (v LazyValue) Start() int { return v.inner.Start() }
func (v LazyValue) End() int   { return v.inner.End() }

// IsNull reports whether this is the JSON null literal.
func (v LazyValue) IsNull() bool { return v.inner.IsNull() }

// AsBool materializes this leaf as a boolean.
func (v LazyValue) AsBool() (bool, bool) { return v.inner.AsBool() }

// AsNumber materializes this leaf as a Number.
func (v LazyValue) AsNumber() (Number, bool) { return v.inner.AsNumber() }

// AsString materializes this leaf as a string.
func (v LazyValue) AsString() (string, bool) { return v.inner.AsString() }

// AsArray upgrades this cell to a lazy array view.
func (v LazyValue) AsArray() (*LazyArray, bool) {
	a, ok := v.inner.AsArray()
	if !ok {
		return nil, false
	}
	return &LazyArray{inner: a}, true
}

// AsObject upgrades this cell to a lazy object view.
func (v LazyValue) AsObject() (*LazyObject, bool) {
	o, ok := v.inner.AsObject()
	if !ok {
		return nil, false
	}
	return &LazyObject{inner: o}, true
}

// Pointer performs a one-shot, non-caching descent to the sub-value
// named by path.
func (v LazyValue) Pointer(path Path) (LazyValue, *Error) {
	child, err := v.inner.Pointer(path.toComponents())
	if err != nil {
		return LazyValue{}, wrapErr(err)
	}
	return LazyValue{inner: child}, nil
}

// Materialize fully builds this value, and everything beneath it, into
// a materialized Value tree.
func (v LazyValue) Materialize() (Value, bool) {
	inner, ok := v.inner.Materialize()
	if !ok {
		return Value{}, false
	}
	return wrapValue(inner), true
}

// LazyArray is a lazy JSON array: elements are scanned from raw bytes
// and cached the first time each index is queried.
type LazyArray struct {
	inner *lazy.Array
}

// Get returns element i, scanning and caching as needed.
func (a *LazyArray) Get(i int) (LazyValue, *Error) {
	v, err := a.inner.Get(i)
	if err != nil {
		return LazyValue{}, wrapErr(err)
	}
	return LazyValue{inner: v}, nil
}

// LazyObject is a lazy JSON object: members are scanned from raw bytes
// and cached the first time each key is queried.
type LazyObject struct {
	inner *lazy.Object
}

// Get returns the value for key, scanning and caching as needed.
func (o *LazyObject) Get(key string) (LazyValue, *Error) {
	v, err := o.inner.Get(key)
	if err != nil {
		return LazyValue{}, wrapErr(err)
	}
	return LazyValue{inner: v}, nil
}
