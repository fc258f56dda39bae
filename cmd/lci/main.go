// Command lci is the line-oriented lambda-calculus interpreter
// described in spec.md §6: it loads include files named on the command
// line and, depending on flags, runs Main or drops into an interactive
// REPL.
package main

import (
	"fmt"
	"os"

	"github.com/lambdalang/lci/pkg/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	os.Exit(cli.Run(os.Args[1:]))
}
