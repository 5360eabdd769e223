package builder

import (
	"github.com/quickjson/quickjson/internal/numlex"
	"github.com/quickjson/quickjson/internal/value"
)

type frame struct {
	isObject bool
	arr      []value.Value
	obj      []value.Pair
}

// Materialized builds a fully materialized value.Value tree, matching the
// "materialized" consumption shape in §2.
type Materialized struct {
	stack      []frame
	root       value.Value
	haveRoot   bool
	pendingKey string
	keyOwned   bool
}

// Root returns the completed tree once parsing has finished.
func (b *Materialized) Root() value.Value { return b.root }

func (b *Materialized) push(v value.Value) {
	if len(b.stack) == 0 {
		b.root = v
		b.haveRoot = true
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.isObject {
		top.obj = append(top.obj, value.Pair{Key: b.pendingKey, Val: v})
	} else {
		top.arr = append(top.arr, v)
	}
}

func (b *Materialized) Null(int, int)      { b.push(value.Null()) }
func (b *Materialized) Bool(v bool, _, _ int) { b.push(value.Bool(v)) }
func (b *Materialized) Number(n numlex.Number, _, _ int) { b.push(value.Num(n)) }

func (b *Materialized) String(s string, owned bool, _, _ int) {
	b.push(value.Str(value.String{Text: s, Owned: owned}))
}

func (b *Materialized) BeginArray(int) {
	b.stack = append(b.stack, frame{})
}

func (b *Materialized) EndArray(_, _ int) {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.push(value.Value{Kind: value.KindArray, Array: top.arr})
}

func (b *Materialized) BeginObject(int) {
	b.stack = append(b.stack, frame{isObject: true})
}

func (b *Materialized) Key(s string, owned bool, _, _ int) {
	b.pendingKey = s
	b.keyOwned = owned
}

func (b *Materialized) EndObject(_, _ int) {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.push(value.Value{Kind: value.KindObject, Object: value.NewObject(top.obj)})
}
