package floater

import (
	"errors"
	"math/big"

	"golang.org/x/exp/slices"
)

// ErrRecurring indicates the decimal expansion of a rational does not
// terminate, e.g. 1/3.
var ErrRecurring = errors.New(`floater: recurring decimal expansion`)

// FormatRat is the string variant of [AppendRat].
func FormatRat(rat *big.Rat, minDecimals int) (string, error) {
	b, err := AppendRat(nil, rat, minDecimals)
	if err != nil {
		return ``, err
	}
	return string(b), nil
}

// AppendRat appends the exact decimal representation of rat to b.
//
// At least minDecimals fractional digits are written, padding with trailing
// zeros as necessary, but no more than are required to represent the value
// exactly. The decimal point is omitted only if no fractional digits are
// written. If the expansion is infinite, b is returned unmodified, along with
// [ErrRecurring].
//
// A panic will occur if rat is nil.
func AppendRat(b []byte, rat *big.Rat, minDecimals int) ([]byte, error) {
	if rat == nil {
		panic(`floater: append rat: cannot format nil value`)
	}

	decimals, exact := rat.FloatPrec()
	if !exact {
		return b, ErrRecurring
	}
	decimals = max(decimals, minDecimals)

	b = slices.Grow(b, ratBufferSize(rat, decimals))

	// trivial case: no fractional digits, FloatString would still be correct
	// but this avoids the intermediate string
	if rat.IsInt() && decimals == 0 {
		return rat.Num().Append(b, 10), nil
	}

	// note: FloatString rounds to decimals, which is always exact here
	return append(b, rat.FloatString(decimals)...), nil
}

// ratBufferSize approximates the upper bound of the formatted length, which
// is the sign, the integer digits, the decimal point, and the decimals.
func ratBufferSize(rat *big.Rat, decimals int) int {
	// log10(2) ~= 0.30103, rounded up to be safe
	bits := rat.Num().BitLen() - rat.Denom().BitLen() + 1
	return 3 + max(bits, 1)*30103/100000 + 1 + decimals
}
