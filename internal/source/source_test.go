package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceOutOfBoundsByteIsZero(t *testing.T) {
	s := NewStringSlice("ab")
	require.Equal(t, byte('a'), s.Byte(0))
	require.Equal(t, byte(0), s.Byte(-1))
	require.Equal(t, byte(0), s.Byte(2))
}

func TestValidatedSliceDetectsInvalidUTF8(t *testing.T) {
	ok := NewValidatedSlice([]byte("hello"))
	require.True(t, ok.UTF8Guaranteed())

	bad := NewValidatedSlice([]byte{0xff, 0xfe})
	require.False(t, bad.UTF8Guaranteed())
}

func TestMutableSliceIsWritableInPlace(t *testing.T) {
	buf := []byte(`"ab"`)
	m := NewMutable(buf)
	require.True(t, m.Mutable())
	ms := m.MutableSlice(1, 3)
	ms[0] = 'X'
	require.Equal(t, byte('X'), m.Byte(1))
}

func TestNullPaddedTailIsZero(t *testing.T) {
	n := NewNullPadded([]byte("abc"))
	require.Equal(t, 3, n.Len())
	require.True(t, n.NullPadded())
	for i := 0; i < NullPadTail; i++ {
		require.Equal(t, byte(0), n.Byte(3+i))
	}
}

func TestNullPaddedWriteStringReusesCapacity(t *testing.T) {
	n := NewNullPadded([]byte("a long enough initial payload"))
	n.WriteString([]byte("short"))
	require.Equal(t, 5, n.Len())
	require.Equal(t, byte(0), n.Byte(5))
}

func TestReaderStreamsAndTrims(t *testing.T) {
	doc := strings.Repeat("x", MinStreamWindow+10) + "END"
	r := NewReader(nil, strings.NewReader(doc))

	require.True(t, r.Volatile())
	require.Equal(t, len(doc), r.Len())
	require.Equal(t, byte('x'), r.Byte(0))

	tail := r.Slice(len(doc)-3, len(doc))
	require.Equal(t, "END", string(tail))

	r.Trim(len(doc) - 3)
	require.Equal(t, byte('E'), r.Byte(len(doc)-3))
	require.Nil(t, r.Err())
}
