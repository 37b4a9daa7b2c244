package summator_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joeycumines/go-summator"
)

func ExampleSummarize() {
	input := "1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n"

	result, err := summator.Summarize(context.Background(), strings.NewReader(input), nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Even, result.Odd, result.Lines)

	out, err := result.Format(summator.ModeFloat)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	//output:
	//25 30 10
	//2.5 3.0
}

func ExampleSummarize_parseFailure() {
	_, err := summator.Summarize(context.Background(), strings.NewReader("1\nabc\n3\n"), nil)

	var pe *summator.ParseError
	fmt.Println(errors.Is(err, summator.ErrParse), errors.As(err, &pe) && pe.Line == 2)
	fmt.Println(err)

	//output:
	//true true
	//summator: line 2: invalid literal for base 10 integer: "abc"
}

func ExampleAccumulator() {
	var acc summator.Accumulator
	for _, v := range []int64{3, 4, 5} {
		acc.AddInt64(v)
	}

	for _, mode := range []summator.Mode{summator.ModeFloat, summator.ModeExact} {
		out, err := acc.Result().Format(mode)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s: %s\n", mode, out)
	}

	//output:
	//float: 0.8 0.4
	//exact: 0.8 0.4
}
