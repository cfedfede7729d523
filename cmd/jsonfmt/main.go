// Package main provides a CLI tool that pretty-prints JSON documents.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cory-johannsen/reelsim/internal/jsonfmt"
)

const (
	exitOK        = 0
	exitFailure   = 1
	exitMalformed = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run formats the document named by args and returns the process exit code:
// exitMalformed for invalid JSON, exitFailure for usage and I/O errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("in", "", "input JSON file; empty formats the first argument as a JSON string")
	output := fs.String("out", "", "output file; empty prints the formatted document")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if *input == "" {
		if fs.NArg() != 1 {
			fs.Usage()
			return exitFailure
		}
		out, err := jsonfmt.Format([]byte(fs.Arg(0)))
		if err != nil {
			fmt.Fprintln(stdout, err)
			return exitMalformed
		}
		fmt.Fprintln(stdout, string(out))
		return exitOK
	}

	msg, err := jsonfmt.FormatFile(*input, *output)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		if jsonfmt.IsMalformed(err) {
			return exitMalformed
		}
		return exitFailure
	}
	fmt.Fprintln(stdout, msg)
	return exitOK
}
