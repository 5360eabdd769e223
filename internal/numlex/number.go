// Package numlex converts decimal literal text into the IEEE-754-correct
// double (or integer) value the specification requires: an integer fast
// path, a Clinger-style fast path for floats, an Eisel-Lemire
// approximation, and a long-decimal fallback, run in that order until one
// of them can produce a trusted result.
package numlex

import (
	"math"

	"github.com/quickjson/quickjson/internal/simd"
)

// Kind tags which arm of the Number union a parsed literal produced.
type Kind uint8

const (
	KindUnsigned Kind = iota
	KindSigned
	KindFloat
)

// Number is the tagged discriminated union described by the
// specification: Float is always finite, Signed is always strictly
// negative, and integers exactly representable as uint64 prefer the
// integer tags over Float.
type Number struct {
	Kind     Kind
	Unsigned uint64
	Signed   int64
	Float    float64
}

// Lexeme is the decomposed decimal literal the scanner hands to the
// number engine: the digit run with sign and decimal point already
// stripped out, plus enough bookkeeping to run the fast paths.
type Lexeme struct {
	Negative bool
	// IntDigits is the integer-part digit run (no leading sign), at least
	// one digit, no leading zero unless it is exactly "0".
	IntDigits []byte
	// FracDigits is the fractional digit run, or nil if there was no '.'.
	FracDigits []byte
	// Exp is the signed decimal exponent from an 'e'/'E' suffix, 0 if absent.
	Exp int
	// HasExp/HasFrac record whether those suffixes were present at all,
	// distinguishing "123" from "123e0".
	HasExp, HasFrac bool
}

// Convert runs the full integer/float pipeline over lex, returning the
// resulting Number or false if the magnitude is not finite (overflow).
// usedFallback reports whether neither fast path could certify the
// result and the long-decimal math/big path had to run, for callers that
// want to log slow-path engagement.
func Convert(lex Lexeme) (n Number, ok bool, usedFallback bool) {
	if !lex.HasFrac && !lex.HasExp {
		if n, ok := convertInteger(lex); ok {
			return n, true, false
		}
	}
	f, ok, usedFallback := convertFloat(lex)
	if !ok {
		return Number{}, false, usedFallback
	}
	return Number{Kind: KindFloat, Float: f}, true, usedFallback
}

// convertInteger implements the integer fast path: accumulate digits as a
// uint64, and if that does not overflow, choose Unsigned or Signed
// (treating the magnitude 2^63 negated as int64 minimum) per the
// specification's integer-preference invariant.
func convertInteger(lex Lexeme) (Number, bool) {
	var v uint64
	for _, d := range lex.IntDigits {
		digit := uint64(d - '0')
		if v > (math.MaxUint64-digit)/10 {
			return Number{}, false
		}
		v = v*10 + digit
	}
	if !lex.Negative || v == 0 {
		return Number{Kind: KindUnsigned, Unsigned: v}, true
	}
	if v <= 1<<63 {
		if v == 1<<63 {
			return Number{Kind: KindSigned, Signed: math.MinInt64}, true
		}
		return Number{Kind: KindSigned, Signed: -int64(v)}, true
	}
	return Number{}, false
}

// convertFloat runs the three-stage float conversion pipeline: Clinger
// fast path, Eisel-Lemire, long-decimal fallback. usedFallback is true
// only when the third stage ran.
func convertFloat(lex Lexeme) (f float64, ok bool, usedFallback bool) {
	mantissa, exp10, truncated, manyDigits := collectDigits(lex)

	if !manyDigits {
		if f, ok := clingerFastPath(mantissa, exp10, lex.Negative); ok {
			return f, true, false
		}
	}

	f, ok = eiselLemire(mantissa, exp10, truncated)
	if ok && manyDigits {
		// The folded mantissa may have dropped digits; trust the result
		// only if mantissa+1 converts to the same double.
		up, upOK := eiselLemire(mantissa+1, exp10, truncated)
		ok = upOK && up == f
	}
	if ok {
		if lex.Negative {
			f = -f
		}
		return f, true, false
	}

	f = decimalFallback(lex)
	if !finite(f) {
		return 0, false, true
	}
	return f, true, true
}

// collectDigits folds integer and fractional digit runs into a single
// mantissa (up to 19 significant digits kept exactly; beyond that the
// result is flagged manyDigits so Eisel-Lemire is double-checked), and
// derives the base-10 exponent the folded mantissa must be scaled by.
func collectDigits(lex Lexeme) (mantissa uint64, exp10 int, truncated, manyDigits bool) {
	digits := 0
	sawNonZero := false
	consume := func(run []byte) {
		for _, d := range run {
			if d == '0' && !sawNonZero {
				// Leading zeros do not count toward precision or exponent.
				if digits == 0 {
					continue
				}
			}
			sawNonZero = sawNonZero || d != '0'
			if digits < 19 {
				mantissa = mantissa*10 + uint64(d-'0')
				digits++
			} else {
				truncated = truncated || d != '0'
				exp10++
			}
		}
	}
	consume(lex.IntDigits)

	// Fold the fractional run eight digits at a time via the SIMD
	// decimal-ingest primitive (§4.2) while there is still precision
	// budget and a full 8-byte chunk available; fall back to one digit
	// at a time for the remainder.
	frac := lex.FracDigits
	for len(frac) >= 8 && digits <= 19-8 {
		v, ok := simd.EightDigits(frac)
		if !ok {
			break
		}
		mantissa = mantissa*100000000 + uint64(v)
		digits += 8
		exp10 -= 8
		frac = frac[8:]
	}
	for _, d := range frac {
		if digits < 19 {
			mantissa = mantissa*10 + uint64(d-'0')
			digits++
			exp10--
		} else {
			truncated = truncated || d != '0'
		}
	}
	exp10 += lex.Exp
	manyDigits = digits >= 19 && (truncated || len(lex.FracDigits) > 0 || len(lex.IntDigits) > 19)
	return mantissa, exp10, truncated, manyDigits
}
