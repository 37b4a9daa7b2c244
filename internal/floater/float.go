package floater

import (
	"bytes"
	"math"
	"strconv"
)

const (
	// fixed notation is used for decimal exponents within [fixedMinExp, fixedMaxExp)
	fixedMinExp = -4
	fixedMaxExp = 16
)

// FormatFloat is the string variant of [AppendFloat].
func FormatFloat(f float64) string {
	return string(AppendFloat(make([]byte, 0, 24), f))
}

// AppendFloat appends the shortest decimal representation of f that will
// parse back to the same value.
//
// If the decimal exponent (the exponent in scientific notation) is within
// [-4, 16), fixed notation will be used, always including at least one
// fractional digit, e.g. "0.0", "3.0", "0.0001". Otherwise, scientific
// notation is used, with the mantissa trimmed, and at least two exponent
// digits, e.g. "1e+16", "1.5e-05". Non-finite values are rendered as "nan",
// "inf", and "-inf".
func AppendFloat(b []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(b, `nan`...)
	case math.IsInf(f, 1):
		return append(b, `inf`...)
	case math.IsInf(f, -1):
		return append(b, `-inf`...)
	}

	if f == 0 {
		if math.Signbit(f) {
			return append(b, `-0.0`...)
		}
		return append(b, `0.0`...)
	}

	start := len(b)
	b = strconv.AppendFloat(b, f, 'e', -1, 64)

	exp, ok := decimalExponent(b[start:])
	if !ok {
		panic(`floater: append float: unreachable`)
	}

	if exp < fixedMinExp || exp >= fixedMaxExp {
		// strconv already pads the exponent to two digits
		return b
	}

	b = strconv.AppendFloat(b[:start], f, 'f', -1, 64)
	if bytes.IndexByte(b[start:], '.') < 0 {
		b = append(b, '.', '0')
	}
	return b
}

// decimalExponent extracts the exponent from the output of
// [strconv.AppendFloat] with the 'e' format.
func decimalExponent(b []byte) (int, bool) {
	i := bytes.IndexByte(b, 'e')
	if i < 0 {
		return 0, false
	}
	exp, err := strconv.Atoi(string(b[i+1:]))
	if err != nil {
		return 0, false
	}
	return exp, true
}
