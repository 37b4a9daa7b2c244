package summator

import (
	"bufio"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func scanAll(t *testing.T, r io.Reader) []string {
	t.Helper()
	scanner := bufio.NewScanner(r)
	scanner.Split(ScanLines)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return lines
}

func TestScanLines(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		in   string
		out  []string
	}{
		{`empty`, ``, []string{}},
		{`single no terminator`, `5`, []string{`5`}},
		{`single lf`, "5\n", []string{`5`}},
		{`lf`, "1\n2\n3\n", []string{`1`, `2`, `3`}},
		{`crlf`, "1\r\n2\r\n3\r\n", []string{`1`, `2`, `3`}},
		{`cr`, "1\r2\r3\r", []string{`1`, `2`, `3`}},
		{`mixed`, "1\r\n2\r3\n4", []string{`1`, `2`, `3`, `4`}},
		{`blank lines`, "1\n\n2\n", []string{`1`, ``, `2`}},
		{`lone terminator`, "\n", []string{``}},
		{`cr then lf separately`, "\r\r\n", []string{``, ``}},
		{`trailing cr`, "1\r", []string{`1`}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if v := scanAll(t, strings.NewReader(tc.in)); !reflect.DeepEqual(v, tc.out) {
				t.Errorf(`expected %q, got %q`, tc.out, v)
			}
			// one byte at a time, to exercise the "\r" lookahead
			if v := scanAll(t, iotest.OneByteReader(strings.NewReader(tc.in))); !reflect.DeepEqual(v, tc.out) {
				t.Errorf(`one byte reader: expected %q, got %q`, tc.out, v)
			}
		})
	}
}
