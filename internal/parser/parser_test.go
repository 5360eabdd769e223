package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickjson/quickjson/internal/builder"
	"github.com/quickjson/quickjson/internal/errs"
	"github.com/quickjson/quickjson/internal/source"
)

func parseAll(t *testing.T, input string, cfg Config) (*builder.Materialized, *errs.Error) {
	t.Helper()
	src := source.NewStringSlice(input)
	mb := &builder.Materialized{}
	p := New[*source.Slice, *builder.Materialized](src, mb, cfg, nil)
	_, _, err := p.ParseRoot()
	return mb, err
}

func TestLeadingZeroRejected(t *testing.T) {
	_, err := parseAll(t, `01`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindLeadingZero, err.Kind)
}

func TestMissingDigitAfterNegative(t *testing.T) {
	_, err := parseAll(t, `-`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindMissingDigitAfterNegative, err.Kind)
}

func TestTrailingDecimalRejected(t *testing.T) {
	_, err := parseAll(t, `1.`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindTrailingDecimal, err.Kind)
}

func TestExpectedExponentValue(t *testing.T) {
	_, err := parseAll(t, `1e`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindExpectedExponentValue, err.Kind)
}

func TestLeadingDecimalRejected(t *testing.T) {
	_, err := parseAll(t, `.5`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindLeadingDecimal, err.Kind)
}

func TestOptionalCommaMode(t *testing.T) {
	mb, err := parseAll(t, `[1 2 3]`, Config{RequireComma: false})
	require.Nil(t, err)
	require.Len(t, mb.Root().Array, 3)
}

func TestObjectRequiresColon(t *testing.T) {
	_, err := parseAll(t, `{"a" 1}`, Config{RequireComma: true})
	require.NotNil(t, err)
	require.Equal(t, errs.KindExpectedByte, err.Kind)
}

func TestSkipToPathThroughNestedContainers(t *testing.T) {
	src := source.NewStringSlice(`{"skip1":1,"skip2":[1,2,3],"target":{"a":[10,20,30]}}`)
	mb := &builder.Materialized{}
	p := New[*source.Slice, *builder.Materialized](src, mb, Config{RequireComma: true}, nil)
	_, _, err := p.SkipToPath([]Component{
		KeyComponent("target"),
		KeyComponent("a"),
		IndexComponent(1),
	})
	require.Nil(t, err)
	require.Equal(t, uint64(20), mb.Root().Number.Unsigned)
}

func TestSkipToPathMissingKey(t *testing.T) {
	src := source.NewStringSlice(`{"a":1}`)
	mb := &builder.Materialized{}
	p := New[*source.Slice, *builder.Materialized](src, mb, Config{RequireComma: true}, nil)
	_, _, err := p.SkipToPath([]Component{KeyComponent("missing")})
	require.NotNil(t, err)
}

func TestSkipToPathOutOfRangeIndex(t *testing.T) {
	src := source.NewStringSlice(`[1,2]`)
	mb := &builder.Materialized{}
	p := New[*source.Slice, *builder.Materialized](src, mb, Config{RequireComma: true}, nil)
	_, _, err := p.SkipToPath([]Component{IndexComponent(5)})
	require.NotNil(t, err)
}

func TestSkipToPathUncheckedThroughNestedContainers(t *testing.T) {
	src := source.NewStringSlice(`{"skip1":1,"skip2":[1,2,3],"target":{"a":[10,20,30]}}`)
	mb := &builder.Materialized{}
	p := New[*source.Slice, *builder.Materialized](src, mb, Config{RequireComma: true}, nil)
	_, _, err := p.SkipToPath([]Component{
		KeyComponent("target"),
		KeyComponent("a"),
		IndexComponent(0),
	})
	require.Nil(t, err)

	src2 := source.NewStringSlice(`{"skip1":1,"skip2":[1,2,3],"target":{"a":[10,20,30]}}`)
	mb2 := &builder.Materialized{}
	p2 := New[*source.Slice, *builder.Materialized](src2, mb2, Config{RequireComma: true}, nil)
	start, end := p2.SkipToPathUnchecked([]Component{
		KeyComponent("target"),
		KeyComponent("a"),
		IndexComponent(1),
	})
	require.Equal(t, uint64(20), mb2.Root().Number.Unsigned)
	require.True(t, end > start)
}
