// Command argp splits a command line the way a program declaring the given
// parameters would, and prints the result. Without a definition file it uses
// a demo parser taking one positional argument and a --param (-O) parameter
// with one to five values.
//
//	argp -- input.txt --param a b c
//	argp --def tool.hcl --format json -- -v build out/
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(out, errOut io.Writer, args []string) error {
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	return cmd.Execute()
}
