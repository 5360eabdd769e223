package numlex

import "math/big"

// decimalFallback is the long-decimal slow path: when neither Clinger's
// fast path nor Eisel-Lemire can certify a correctly-rounded result, build
// the literal's exact rational value and round it to the nearest float64
// (ties to even), which is what the specification's arbitrary-precision
// shift-table Decimal ultimately computes too. math/big.Rat.Float64
// already performs that correctly-rounded conversion, so this is the one
// place the implementation leans on the standard library instead of a
// hand-rolled shift-table: no pack library offers arbitrary-precision
// decimal arithmetic, and big.Rat is the idiomatic Go primitive for an
// exact rational used exactly once per slow-path literal (see DESIGN.md).
func decimalFallback(lex Lexeme) float64 {
	num := new(big.Int)
	allDigits := make([]byte, 0, len(lex.IntDigits)+len(lex.FracDigits))
	allDigits = append(allDigits, lex.IntDigits...)
	allDigits = append(allDigits, lex.FracDigits...)
	if len(allDigits) == 0 {
		return 0
	}
	num.SetString(string(allDigits), 10)

	exp := lex.Exp - len(lex.FracDigits)

	rat := new(big.Rat).SetInt(num)
	if exp > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		rat.Mul(rat, new(big.Rat).SetInt(scale))
	} else if exp < 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
		rat.Quo(rat, new(big.Rat).SetInt(scale))
	}

	f, _ := rat.Float64()
	if lex.Negative {
		f = -f
	}
	return f
}
