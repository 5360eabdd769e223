package quickjson

import (
	"github.com/quickjson/quickjson/internal/numlex"
)

// Visitor is the event contract Deserialize drives, analogous to the
// original's serde-adapter boundary (§6): a generic serialization
// framework implements Visitor once and gets every quickjson document
// shape for free. Event order matches Builder: for objects, OnKey fires
// before the member's value events; EndArray/EndObject fire after the
// last child's value event.
//
// A non-nil return from any method is fatal: Deserialize records the
// first one and returns it once the underlying parse completes. Because
// the builder-polymorphism event methods this drives are void (no
// per-event error plumbing, to keep the hot materialized/lazy/skip
// builders allocation-free), a failing visitor does not abort the
// byte-level scan early — it stops accepting further events and the
// wasted remainder of the scan is discarded once Deserialize returns the
// error. See DESIGN.md.
type Visitor interface {
	OnNull() error
	OnBool(v bool) error
	OnNumber(n Number) error
	OnString(s string) error
	BeginArray() error
	EndArray() error
	BeginObject() error
	OnKey(s string) error
	EndObject() error
}

// visitorBuilder adapts a Visitor to the internal builder.Builder event
// contract Parser drives.
type visitorBuilder struct {
	v   Visitor
	err error
}

func (b *visitorBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *visitorBuilder) Null(int, int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.OnNull())
}

func (b *visitorBuilder) Bool(v bool, _, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.OnBool(v))
}

func (b *visitorBuilder) Number(n numlex.Number, _, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.OnNumber(n))
}

func (b *visitorBuilder) String(s string, _ bool, _, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.OnString(s))
}

func (b *visitorBuilder) BeginArray(int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.BeginArray())
}

func (b *visitorBuilder) EndArray(_, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.EndArray())
}

func (b *visitorBuilder) BeginObject(int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.BeginObject())
}

func (b *visitorBuilder) Key(s string, _ bool, _, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.OnKey(s))
}

func (b *visitorBuilder) EndObject(_, _ int) {
	if b.err != nil {
		return
	}
	b.fail(b.v.EndObject())
}

// DecodeVisitor materializes into a tree of any (nil, bool, Number,
// string, []any, map[string]any), the way encoding/json.Unmarshal does
// into an interface{} target — bundled for drop-in comparison benchmarks
// against the standard library, per SPEC_FULL.md §6.
type DecodeVisitor struct {
	stack []decodeFrame
	root  any
	key   string
}

type decodeFrame struct {
	isObject bool
	arr      []any
	obj      map[string]any
}

func (d *DecodeVisitor) push(v any) error {
	if len(d.stack) == 0 {
		d.root = v
		return nil
	}
	top := &d.stack[len(d.stack)-1]
	if top.isObject {
		top.obj[d.key] = v
	} else {
		top.arr = append(top.arr, v)
	}
	return nil
}

func (d *DecodeVisitor) OnNull() error        { return d.push(nil) }
func (d *DecodeVisitor) OnBool(v bool) error  { return d.push(v) }
func (d *DecodeVisitor) OnNumber(n Number) error {
	return d.push(n)
}
func (d *DecodeVisitor) OnString(s string) error { return d.push(s) }

func (d *DecodeVisitor) BeginArray() error {
	d.stack = append(d.stack, decodeFrame{})
	return nil
}

func (d *DecodeVisitor) EndArray() error {
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return d.push(top.arr)
}

func (d *DecodeVisitor) BeginObject() error {
	d.stack = append(d.stack, decodeFrame{isObject: true, obj: map[string]any{}})
	return nil
}

func (d *DecodeVisitor) OnKey(s string) error {
	d.key = s
	return nil
}

func (d *DecodeVisitor) EndObject() error {
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return d.push(top.obj)
}

// Root returns the decoded tree after a successful Deserialize call.
func (d *DecodeVisitor) Root() any { return d.root }
