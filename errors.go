package summator

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// maxErrorText bounds the length of the input text, included in error
// messages, in runes.
const maxErrorText = 200

var (
	// ErrParse is the root of all parse failures, see also ParseError.
	ErrParse = errors.New(`summator: parse failure`)

	// ErrSyntax indicates the text is not a base 10 integer.
	ErrSyntax = errors.New(`invalid literal for base 10 integer`)

	// ErrDigitLimit indicates the integer has more digits than permitted,
	// see also Config.MaxDigits.
	ErrDigitLimit = errors.New(`exceeds the digit limit`)

	// ErrOverflow indicates a quotient cannot be represented as a float64,
	// see also ModeFloat.
	ErrOverflow = errors.New(`summator: quotient too large for a float`)
)

// ParseError models a line that could not be parsed. It matches ErrParse,
// and the underlying cause (e.g. ErrSyntax), using errors.Is.
type ParseError struct {
	// Err is the cause, e.g. ErrSyntax or ErrDigitLimit.
	Err error
	// Text is the line content, excluding the line terminator.
	Text string
	// Line is the 1-based line number, or 0 if unknown.
	Line int
}

func (x *ParseError) Error() string {
	if x.Line <= 0 {
		return fmt.Sprintf(`summator: %v: %q`, x.Err, truncateText(x.Text))
	}
	return fmt.Sprintf(`summator: line %d: %v: %q`, x.Line, x.Err, truncateText(x.Text))
}

func (x *ParseError) Unwrap() []error {
	return []error{ErrParse, x.Err}
}

func truncateText(s string) string {
	if utf8.RuneCountInString(s) <= maxErrorText {
		return s
	}
	var n int
	for i := range s {
		if n == maxErrorText {
			return s[:i] + `...`
		}
		n++
	}
	return s
}
