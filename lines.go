package summator

import (
	"bytes"
)

// ScanLines is a bufio.SplitFunc that splits on universal newlines, i.e. any
// of "\n", "\r\n", or a lone "\r". The terminator is not included in the
// token. A final line without a terminator is still returned, and empty input
// yields no tokens.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// lone "\r" or "\r\n"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need the next byte to tell if it's "\r\n"
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// request more data
	return 0, nil, nil
}
