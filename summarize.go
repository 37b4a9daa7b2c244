package summator

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
)

// DefaultMaxLineSize is the default for Config.MaxLineSize.
const DefaultMaxLineSize = 1 << 20

// Config models optional configuration, for Summarize.
type Config struct {
	// Logger receives diagnostic events, if non-nil.
	Logger *logiface.Logger[logiface.Event]

	// MaxDigits restricts the number of digits per integer, if positive.
	// **Defaults to DefaultMaxDigits, if 0, or Config is nil.**
	// Set to a negative value to disable the limit.
	MaxDigits int

	// MaxLineSize is the maximum length of a line, in bytes, excluding the
	// line terminator. Longer lines fail with bufio.ErrTooLong.
	// **Defaults to DefaultMaxLineSize, if <= 0, or Config is nil.**
	MaxLineSize int
}

// Summarize reads r until EOF, parsing each line as an integer, and summing
// it using an Accumulator.
//
// The first failure aborts, and no Result is returned. Parse failures are
// reported as a *ParseError, while read failures are wrapped, and returned as
// is. The context is checked prior to each line.
func Summarize(ctx context.Context, r io.Reader, config *Config) (*Result, error) {
	var (
		logger      *logiface.Logger[logiface.Event]
		maxDigits   = DefaultMaxDigits
		maxLineSize = DefaultMaxLineSize
	)
	if config != nil {
		logger = config.Logger
		if config.MaxDigits != 0 {
			maxDigits = config.MaxDigits
		}
		if config.MaxLineSize > 0 {
			maxLineSize = config.MaxLineSize
		}
	}

	scanner := bufio.NewScanner(r)
	// +2 fits a "\r\n" terminator, or a lone "\r" plus the lookahead byte
	scanner.Buffer(make([]byte, 0, min(4096, maxLineSize+2)), maxLineSize+2)
	scanner.Split(ScanLines)

	var acc Accumulator
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := acc.Lines() + 1
		text := scanner.Text()

		if len(text) > maxLineSize {
			err := fmt.Errorf(`summator: read line %d: %w`, line, bufio.ErrTooLong)
			logger.Err().
				Err(err).
				Log(`failed to read input`)
			return nil, err
		}

		v, err := ParseInt(text, maxDigits)
		if err != nil {
			if err, ok := err.(*ParseError); ok {
				err.Line = line
			}
			logger.Err().
				Err(err).
				Int(`line`, line).
				Log(`failed to parse line`)
			return nil, err
		}

		logger.Trace().
			Int(`line`, line).
			Bool(`odd`, acc.OddTurn()).
			Stringer(`value`, v).
			Log(`accumulated value`)

		acc.Add(v)
	}

	if err := scanner.Err(); err != nil {
		err = fmt.Errorf(`summator: read line %d: %w`, acc.Lines()+1, err)
		logger.Err().
			Err(err).
			Log(`failed to read input`)
		return nil, err
	}

	result := acc.Result()

	logger.Debug().
		Int(`lines`, result.Lines).
		Stringer(`even`, result.Even).
		Stringer(`odd`, result.Odd).
		Log(`summarized input`)

	return result, nil
}
