package quickjson

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/quickjson/quickjson/internal/value"
)

func TestParseObjectAndArray(t *testing.T) {
	v, err := ParseString(`{"a":1,"b":[true,null,false]}`)
	require.Nil(t, err)

	obj, ok := v.AsObject()
	require.True(t, ok)

	a, ok := obj.Get("a")
	require.True(t, ok)
	n, ok := a.AsNumber()
	require.True(t, ok)
	require.Equal(t, NumberUnsigned, n.Kind)
	require.Equal(t, uint64(1), n.Unsigned)

	pairs := obj.Pairs()
	require.Equal(t, []string{"a", "b"}, []string{pairs[0].Key, pairs[1].Key})

	b := v.Key("b")
	arr, ok := b.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 3)

	bv, _ := arr[0].AsBool()
	require.True(t, bv)
	require.True(t, arr[1].IsNull())
	fv, _ := arr[2].AsBool()
	require.False(t, fv)
}

func TestTrailingCommaRejectedByDefault(t *testing.T) {
	_, err := ParseString(`[1, 2, 3,]`)
	require.NotNil(t, err)
	require.Equal(t, KindTrailingComma, err.Kind())
}

func TestTrailingCommaSpanPointsAtComma(t *testing.T) {
	src := `[1, 2, 3,]`
	_, err := ParseString(src)
	require.NotNil(t, err)
	require.Equal(t, KindTrailingComma, err.Kind())
	start, end := err.Span()
	require.Equal(t, 8, start)
	require.Equal(t, 9, end)
	require.Equal(t, ",", src[start:end])
}

func TestObjectTrailingCommaSpanPointsAtComma(t *testing.T) {
	src := `{"a":1,}`
	_, err := ParseString(src)
	require.NotNil(t, err)
	require.Equal(t, KindTrailingComma, err.Kind())
	start, end := err.Span()
	require.Equal(t, 6, start)
	require.Equal(t, 7, end)
	require.Equal(t, ",", src[start:end])
}

func TestTrailingCommaAllowed(t *testing.T) {
	cfg := NewConfig().WithAllowTrailingComma(true)
	v, err := Parse(FromString(`[1, 2, 3,]`), cfg)
	require.Nil(t, err)
	arr, ok := v.AsArray()
	require.True(t, ok)
	require.Len(t, arr, 3)
}

func TestLeadingDecimalRejected(t *testing.T) {
	_, err := ParseString(`.5`)
	require.NotNil(t, err)
	require.Equal(t, KindLeadingDecimal, err.Kind())
}

func TestNumberOverflow(t *testing.T) {
	_, err := ParseString(`1e400`)
	require.NotNil(t, err)
	require.Equal(t, KindNumberOverflow, err.Kind())
}

func TestNumberBoundaries(t *testing.T) {
	v, err := ParseString(`1.7976931348623157e308`)
	require.Nil(t, err)
	n, _ := v.AsNumber()
	require.Equal(t, NumberFloat, n.Kind)
	require.InDelta(t, 1.7976931348623157e308, n.Float, 1e292)

	v2, err := ParseString(`2.2250738585072014e-308`)
	require.Nil(t, err)
	n2, _ := v2.AsNumber()
	require.Equal(t, NumberFloat, n2.Kind)
}

func TestUnicodeSurrogatePairString(t *testing.T) {
	v, err := ParseString("\"\\uD834\\uDD1E\"")
	require.Nil(t, err)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "\U0001D11E", s)
}

func TestCommentsRequireOptIn(t *testing.T) {
	_, err := ParseString(`{"x": /* ignore */ 1}`)
	require.NotNil(t, err)
	require.Equal(t, KindUnexpectedToken, err.Kind())

	cfg := NewConfig().WithAllowComments(true)
	v, err2 := Parse(FromString(`{"x": /* ignore */ 1}`), cfg)
	require.Nil(t, err2)
	x := v.Key("x")
	n, _ := x.AsNumber()
	require.Equal(t, uint64(1), n.Unsigned)
}

func TestUnclosedStringSpansToEOF(t *testing.T) {
	src := `"abc`
	_, err := ParseString(src)
	require.NotNil(t, err)
	require.Equal(t, KindUnclosedString, err.Kind())
	start, end := err.Span()
	require.Equal(t, 0, start)
	require.Equal(t, len(src), end)
}

func TestNoTailInvariant(t *testing.T) {
	_, err := ParseString(`1 2`)
	require.NotNil(t, err)
	require.Equal(t, KindUnexpectedToken, err.Kind())
}

func TestParseAtPath(t *testing.T) {
	doc := `{"users":[{"name":"Walter"}]}`
	v, err := ParseAt(FromString(doc), NewConfig(), At("users", 0, "name"))
	require.Nil(t, err)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "Walter", s)
}

func TestParseLazyAtPath(t *testing.T) {
	doc := `{"users":[{"name":"Walter"}]}`
	v, err := ParseLazyAt(FromString(doc), NewConfig(), At("users", 0, "name"))
	require.Nil(t, err)
	s, ok := v.AsString()
	require.True(t, ok)
	require.Equal(t, "Walter", s)
}

func TestLazyEquivalence(t *testing.T) {
	doc := `{"a":1,"b":[1,2,{"c":"d"}]}`
	materialized, err := ParseString(doc)
	require.Nil(t, err)

	lz, lerr := ParseLazy(FromString(doc), NewConfig())
	require.Nil(t, lerr)
	lzMat, ok := lz.Materialize()
	require.True(t, ok)

	// The lazy path (scan-on-demand, cache, Materialize) and the direct
	// path (Parse) must produce identical trees; cmp.Diff walks the whole
	// structure rather than spot-checking a couple of accessors.
	diff := cmp.Diff(materialized.inner, lzMat.inner,
		cmp.AllowUnexported(value.Object{}),
		cmpopts.IgnoreFields(value.Object{}, "sortedIdx"),
	)
	require.Empty(t, diff, "lazy materialization diverged from direct parse:\n%s", diff)
}

func TestDeserializeDecodesObjectKeys(t *testing.T) {
	doc := `{"a":1,"b":[true,null,"x"]}`
	dv := &DecodeVisitor{}
	err := Deserialize(FromString(doc), NewConfig(), dv)
	require.NoError(t, err)

	m, ok := dv.Root().(map[string]any)
	require.True(t, ok)
	require.Contains(t, m, "a")
	require.Contains(t, m, "b")
}

func TestParseReaderStreaming(t *testing.T) {
	doc := strings.Repeat(" ", 10) + `{"k":"v"}`
	v, err := ParseReader(nil, strings.NewReader(doc), NewConfig())
	require.Nil(t, err)
	s, ok := v.Key("k").AsString()
	require.True(t, ok)
	require.Equal(t, "v", s)
}

func TestParseWithComments(t *testing.T) {
	cfg := NewConfig().WithAllowComments(true)
	v, comments, err := ParseWithComments(FromString("// hi\n{\"a\":1}"), cfg)
	require.Nil(t, err)
	require.Len(t, comments, 1)
	n, _ := v.Key("a").AsNumber()
	require.Equal(t, uint64(1), n.Unsigned)
}
