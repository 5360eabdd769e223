package numlex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func lexInt(s string, neg bool) Lexeme {
	return Lexeme{Negative: neg, IntDigits: []byte(s)}
}

func TestConvertIntegerPreference(t *testing.T) {
	t.Run("unsigned for non-negative", func(t *testing.T) {
		n, ok, _ := Convert(lexInt("18446744073709551615", false))
		require.True(t, ok)
		require.Equal(t, KindUnsigned, n.Kind)
		require.Equal(t, uint64(math.MaxUint64), n.Unsigned)
	})

	t.Run("signed for negative within int64 range", func(t *testing.T) {
		n, ok, _ := Convert(lexInt("9223372036854775808", true))
		require.True(t, ok)
		require.Equal(t, KindSigned, n.Kind)
		require.Equal(t, int64(math.MinInt64), n.Signed)
	})

	t.Run("falls to float when negative magnitude overflows int64", func(t *testing.T) {
		n, ok, _ := Convert(lexInt("9223372036854775809", true))
		require.True(t, ok)
		require.Equal(t, KindFloat, n.Kind)
	})

	t.Run("falls to float when unsigned magnitude overflows uint64", func(t *testing.T) {
		n, ok, _ := Convert(lexInt("18446744073709551616", false))
		require.True(t, ok)
		require.Equal(t, KindFloat, n.Kind)
	})
}

func TestConvertFloatClingerFastPath(t *testing.T) {
	tests := []struct {
		name string
		lex  Lexeme
		want float64
	}{
		{"simple fraction", Lexeme{IntDigits: []byte("1"), FracDigits: []byte("5"), HasFrac: true}, 1.5},
		{"exact power of ten", Lexeme{IntDigits: []byte("2"), HasExp: true, Exp: 3}, 2000},
		{"negative", Lexeme{Negative: true, IntDigits: []byte("1"), FracDigits: []byte("25"), HasFrac: true}, -1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok, _ := Convert(tt.lex)
			require.True(t, ok)
			require.Equal(t, KindFloat, n.Kind)
			require.Equal(t, tt.want, n.Float)
		})
	}
}

func TestConvertFloatBoundaries(t *testing.T) {
	t.Run("max finite double", func(t *testing.T) {
		lex := Lexeme{
			IntDigits:  []byte("17976931348623157"),
			HasExp:     true,
			Exp:        308 - 16, // 17 significant digits, want exponent so value == DBL_MAX
		}
		n, ok, _ := Convert(lex)
		require.True(t, ok)
		require.Equal(t, KindFloat, n.Kind)
		require.InDelta(t, math.MaxFloat64, n.Float, math.MaxFloat64*1e-15)
	})

	t.Run("overflow to infinity is rejected", func(t *testing.T) {
		lex := Lexeme{IntDigits: []byte("1"), HasExp: true, Exp: 400}
		_, ok, _ := Convert(lex)
		require.False(t, ok)
	})
}

func TestConvertFloatManyDigits(t *testing.T) {
	// 19 integer digits plus fractional digits exercises the manyDigits
	// path (collectDigits truncates precision beyond 19 significant
	// digits and sets truncated/manyDigits), forcing the
	// Eisel-Lemire/decimal-fallback arms instead of Clinger.
	lex := Lexeme{
		IntDigits:  []byte("1234567890123456789"),
		FracDigits: []byte("89"),
		HasFrac:    true,
	}
	n, ok, _ := Convert(lex)
	require.True(t, ok)
	require.Equal(t, KindFloat, n.Kind)
	require.InDelta(t, 1234567890123456789.89, n.Float, 1e4)
}

func TestConvertReportsFallbackEngagement(t *testing.T) {
	t.Run("clinger fast path does not engage fallback", func(t *testing.T) {
		_, ok, usedFallback := Convert(Lexeme{IntDigits: []byte("1"), FracDigits: []byte("5"), HasFrac: true})
		require.True(t, ok)
		require.False(t, usedFallback)
	})

	t.Run("negative effective exponent beyond 19 significant digits forces the long-decimal path", func(t *testing.T) {
		// Eisel-Lemire's table only covers q >= 0 (eiseLemire.go); enough
		// fractional digits to push the folded exponent negative and past
		// 19 significant digits guarantees it bails and decimalFallback runs.
		lex := Lexeme{
			IntDigits:  []byte("1"),
			FracDigits: []byte("1234567890123456789012345"),
			HasFrac:    true,
		}
		_, ok, usedFallback := Convert(lex)
		require.True(t, ok)
		require.True(t, usedFallback)
	})
}
