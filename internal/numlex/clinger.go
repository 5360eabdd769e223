package numlex

import "math"

// pow10 holds the exact double value of 10^i for i in [0, 22], the range
// over which a power of ten is exactly representable in a float64 (the
// Clinger fast-path precondition).
var pow10 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// clingerFastPath implements Clinger's 1990 algorithm: if the mantissa
// fits in 2^53 and the scaling power of ten is exactly representable
// (|exp10| <= 22), float64 multiplication/division by that power is
// correctly rounded, so mantissa (op) 10^|exp10| is the answer outright.
// A "disguised" extension handles exp10 up to 37 by first lifting extra
// zero digits into the mantissa while it still fits in 2^53.
func clingerFastPath(mantissa uint64, exp10 int, negative bool) (float64, bool) {
	const maxMantissa = 1 << 53

	if mantissa >= maxMantissa {
		return 0, false
	}

	e := exp10
	m := mantissa
	if e < -22 || e > 22 {
		// Disguised fast path: absorb positive excess exponent into the
		// mantissa as long as it stays exact and within 2^53.
		if e > 22 && e <= 22+19 {
			for e > 22 && m < maxMantissa {
				m *= 10
				e--
			}
		}
		if e < -22 || e > 22 || m >= maxMantissa {
			return 0, false
		}
	}

	var f float64
	if e >= 0 {
		f = float64(m) * pow10[e]
	} else {
		f = float64(m) / pow10[-e]
	}
	if negative {
		f = -f
	}
	return f, true
}

// finite reports whether f is neither infinite nor NaN, used to reject a
// decimalFallback result that overflowed float64's range.
func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
