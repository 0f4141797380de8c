// Command postfix converts infix expressions to postfix notation.
//
// Usage:
//
//	postfix [-steps] [expression ...]
//
// With no arguments, expressions are read one per line from stdin. Blank
// lines are skipped. The exit status is 1 if any expression was rejected.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"infix-postfix/internal/notation"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("postfix", flag.ContinueOnError)
	fset.SetOutput(stderr)
	showSteps := fset.Bool("steps", false, "print the conversion trace after each result")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	exprs := fset.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := sc.Text(); strings.TrimSpace(line) != "" {
				exprs = append(exprs, line)
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(stderr, "reading stdin: %v\n", err)
			return 1
		}
	}

	status := 0
	for _, expr := range exprs {
		if err := notation.Validate(expr); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", expr, err)
			status = 1
			continue
		}

		res := notation.Convert(expr)
		fmt.Fprintf(stdout, "%s => %s\n", notation.Clean(expr), res.Postfix)

		if *showSteps {
			if err := notation.WriteSteps(stdout, res.Steps); err != nil {
				fmt.Fprintf(stderr, "writing steps: %v\n", err)
				return 1
			}
			fmt.Fprintln(stdout)
		}
	}

	return status
}
