package strlex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanBorrowsWhenNoEscapes(t *testing.T) {
	decoded, consumed, hadEscape, kind, _ := Scan([]byte(`hello"tail`))
	require.Equal(t, ErrNone, kind)
	require.False(t, hadEscape)
	require.Equal(t, "hello", decoded)
	require.Equal(t, len(`hello"`), consumed)
}

func TestScanSingleCharEscapes(t *testing.T) {
	decoded, _, hadEscape, kind, _ := Scan([]byte(`a\nb\tc\"d"`))
	require.Equal(t, ErrNone, kind)
	require.True(t, hadEscape)
	require.Equal(t, "a\nb\tc\"d", decoded)
}

func TestScanSurrogatePair(t *testing.T) {
	// U+1D11E MUSICAL SYMBOL G CLEF as a 𝄞 UTF-16 surrogate
	// pair escape.
	input := []byte("\\uD834\\uDD1E\"")
	decoded, _, hadEscape, kind, _ := Scan(input)
	require.Equal(t, ErrNone, kind)
	require.True(t, hadEscape)
	require.Equal(t, "\U0001D11E", decoded)
}

func TestScanLoneHighSurrogateRejected(t *testing.T) {
	_, _, _, kind, _ := Scan([]byte(`\uD834"`))
	require.Equal(t, ErrInvalidEscapeSequence, kind)
}

func TestScanControlCharacterRejected(t *testing.T) {
	_, _, _, kind, errAt := Scan([]byte("ab\tcd\""))
	require.Equal(t, ErrControlCharacter, kind)
	require.Equal(t, 2, errAt)
}

func TestScanUnclosedString(t *testing.T) {
	_, _, _, kind, _ := Scan([]byte("abc"))
	require.Equal(t, ErrUnclosedString, kind)
}

func TestScanInvalidEscapeSequence(t *testing.T) {
	_, _, _, kind, _ := Scan([]byte(`\q"`))
	require.Equal(t, ErrInvalidEscapeSequence, kind)
}

func TestScanUncheckedToleratesControlBytes(t *testing.T) {
	decoded, consumed := ScanUnchecked([]byte("ab\tcd\"tail"))
	require.Equal(t, "ab\tcd", decoded)
	require.Equal(t, len("ab\tcd\""), consumed)
}

func TestScanUncheckedDecodesEscapes(t *testing.T) {
	decoded, _ := ScanUnchecked([]byte(`a\nb"`))
	require.Equal(t, "a\nb", decoded)
}
