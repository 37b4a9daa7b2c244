// Command summator reads one integer per line from stdin, and prints the sum
// of the values on even lines, and the sum of the values on odd lines (both
// 0-based), each divided by 10, separated by a space.
//
// Usage:
//
//	summator [--exact] [--max-digits N] [--max-line-size N] [--log-level LEVEL]
//
// All flags may also be set via environment variables, prefixed with
// SUMMATOR_, e.g. SUMMATOR_LOG_LEVEL=debug. Logs are written to stderr, as
// JSON. Nothing is written to stdout unless the entire input was valid.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command, returning the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args if nil
		args = []string{}
	}
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
