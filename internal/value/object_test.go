package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickjson/quickjson/internal/numlex"
)

func numFromInt(i int) numlex.Number {
	return numlex.Number{Kind: numlex.KindUnsigned, Unsigned: uint64(i)}
}

func numToInt(v Value) int64 {
	return int64(v.Number.Unsigned)
}

func TestObjectGetLinearScan(t *testing.T) {
	obj := NewObject([]Pair{
		{Key: "a", Val: Bool(true)},
		{Key: "b", Val: Bool(false)},
	})
	v, ok := obj.Get("b")
	require.True(t, ok)
	require.Equal(t, false, v.Bool)

	_, ok = obj.Get("missing")
	require.False(t, ok)
}

func TestObjectGetIndexedAboveThreshold(t *testing.T) {
	pairs := make([]Pair, 0, linearScanThreshold+4)
	for i := 0; i < linearScanThreshold+4; i++ {
		pairs = append(pairs, Pair{Key: fmt.Sprintf("k%02d", i), Val: Num(numFromInt(i))})
	}
	obj := NewObject(pairs)

	v, ok := obj.Get("k03")
	require.True(t, ok)
	require.Equal(t, int64(3), numToInt(v))

	_, ok = obj.Get("does-not-exist")
	require.False(t, ok)
}

func TestObjectPreservesDuplicateKeys(t *testing.T) {
	obj := NewObject([]Pair{
		{Key: "x", Val: Num(numFromInt(1))},
		{Key: "x", Val: Num(numFromInt(2))},
	})
	require.Equal(t, 2, obj.Len())
	require.Equal(t, "x", obj.Pairs[0].Key)
	require.Equal(t, "x", obj.Pairs[1].Key)
}
