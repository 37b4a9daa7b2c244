package summator

import (
	"fmt"
	"math"
	"math/big"

	"github.com/joeycumines/go-summator/internal/floater"
)

// Mode selects the text representation of each quotient.
type Mode int

const (
	// ModeFloat divides using float64 (correctly rounded), and formats the
	// shortest text that round-trips, always with a fractional part or an
	// exponent, e.g. "3.0", "2.5", "1e+16". Quotients outside the float64
	// range fail with ErrOverflow.
	ModeFloat Mode = iota

	// ModeExact formats the exact quotient, with at least one fractional
	// digit, e.g. "3.0", "1234567890123456789.1".
	ModeExact
)

func (x Mode) String() string {
	switch x {
	case ModeFloat:
		return `float`
	case ModeExact:
		return `exact`
	default:
		return fmt.Sprintf(`Mode(%d)`, int(x))
	}
}

// Quotients returns the exact values of Even/Divisor and Odd/Divisor. A nil
// sum is treated as zero.
func (x *Result) Quotients() (even, odd *big.Rat) {
	d := big.NewInt(Divisor)
	even = quotient(x.Even, d)
	odd = quotient(x.Odd, d)
	return
}

func quotient(sum, d *big.Int) *big.Rat {
	if sum == nil {
		return new(big.Rat)
	}
	return new(big.Rat).SetFrac(sum, d)
}

// Format is the string variant of AppendText.
func (x *Result) Format(mode Mode) (string, error) {
	b, err := x.AppendText(nil, mode)
	if err != nil {
		return ``, err
	}
	return string(b), nil
}

// AppendText appends both quotients to b, separated by a single space,
// without a trailing newline. On error, b is returned unmodified.
func (x *Result) AppendText(b []byte, mode Mode) ([]byte, error) {
	even, odd := x.Quotients()
	start := len(b)
	var err error
	if b, err = appendQuotient(b, even, mode); err != nil {
		return b[:start], err
	}
	b = append(b, ' ')
	if b, err = appendQuotient(b, odd, mode); err != nil {
		return b[:start], err
	}
	return b, nil
}

func appendQuotient(b []byte, q *big.Rat, mode Mode) ([]byte, error) {
	switch mode {
	case ModeFloat:
		f, _ := q.Float64()
		if math.IsInf(f, 0) {
			return b, ErrOverflow
		}
		return floater.AppendFloat(b, f), nil
	case ModeExact:
		return floater.AppendRat(b, q, 1)
	default:
		return b, fmt.Errorf(`summator: unsupported mode: %s`, mode)
	}
}
