package summator

import (
	"math/big"
	"strings"
	"unicode"
)

// DefaultMaxDigits is the default for Config.MaxDigits.
const DefaultMaxDigits = 4300

// ParseInt parses s as a base 10 integer, of arbitrary size.
//
// Surrounding whitespace is ignored, including the line terminator, if any.
// An optional sign may precede the digits, and single underscores may be used
// to group digits, e.g. "-1_000". Only ASCII digits are accepted. If maxDigits
// is positive, integers with more than maxDigits digits are rejected.
//
// Any error will be a *ParseError, matching ErrParse.
func ParseInt(s string, maxDigits int) (*big.Int, error) {
	digits, neg, err := scanInt(s, maxDigits)
	if err != nil {
		return nil, &ParseError{Err: err, Text: s}
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		panic(`summator: parse int: unreachable`)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// scanInt validates s, returning only the digits, and if they are negative.
func scanInt(s string, maxDigits int) (string, bool, error) {
	s = strings.TrimFunc(s, isSpace)

	var neg bool
	if len(s) != 0 {
		switch s[0] {
		case '-':
			neg = true
			fallthrough
		case '+':
			s = s[1:]
		}
	}

	if len(s) == 0 || !isDigit(s[0]) || !isDigit(s[len(s)-1]) {
		return ``, false, ErrSyntax
	}

	var (
		underscores int
		prev        byte
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isDigit(c):
		case c == '_' && prev != '_':
			underscores++
		default:
			return ``, false, ErrSyntax
		}
		prev = c
	}

	if maxDigits > 0 && len(s)-underscores > maxDigits {
		return ``, false, ErrDigitLimit
	}

	if underscores != 0 {
		s = strings.ReplaceAll(s, `_`, ``)
	}

	return s, neg, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// (U+001C through U+001F), which are also stripped.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
