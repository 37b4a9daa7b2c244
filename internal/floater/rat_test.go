package floater

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

func ExampleFormatRat() {
	for _, s := range []string{`0`, `30/10`, `25/10`, `-7/10`, `12345678901234567891/10`} {
		rat, ok := new(big.Rat).SetString(s)
		if !ok {
			panic(`unexpected`)
		}
		v, err := FormatRat(rat, 1)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s\n", s, v)
	}
	//output:
	//0: 0.0
	//30/10: 3.0
	//25/10: 2.5
	//-7/10: -0.7
	//12345678901234567891/10: 1234567890123456789.1
}

func TestAppendRat(t *testing.T) {
	for _, tc := range [...]struct {
		in          string
		minDecimals int
		out         string
	}{
		{`0`, 0, `0`},
		{`0`, 1, `0.0`},
		{`30/10`, 1, `3.0`},
		{`25/10`, 1, `2.5`},
		{`-5/10`, 1, `-0.5`},
		{`1/8`, 1, `0.125`},
		{`1/8`, 5, `0.12500`},
		{`12345678901234567891/10`, 1, `1234567890123456789.1`},
		{`-100000000000000000000000000000001/10`, 1, `-10000000000000000000000000000000.1`},
		{`7`, 0, `7`},
		{`7`, 3, `7.000`},
		{`1/1024`, 0, `0.0009765625`},
	} {
		t.Run(tc.in, func(t *testing.T) {
			rat, ok := new(big.Rat).SetString(tc.in)
			if !ok {
				t.Fatal(tc.in)
			}
			v, err := FormatRat(rat, tc.minDecimals)
			if err != nil {
				t.Fatal(err)
			}
			if v != tc.out {
				t.Errorf(`expected %q, got %q`, tc.out, v)
			}
		})
	}
}

func TestAppendRat_recurring(t *testing.T) {
	b, err := AppendRat([]byte(`prefix`), big.NewRat(1, 3), 1)
	if !errors.Is(err, ErrRecurring) {
		t.Fatal(err)
	}
	if string(b) != `prefix` {
		t.Fatal(string(b))
	}
}

func TestAppendRat_nil(t *testing.T) {
	defer func() {
		if r := recover(); r != `floater: append rat: cannot format nil value` {
			t.Fatal(r)
		}
	}()
	_, _ = AppendRat(nil, nil, 0)
}
