// Package main provides the CLI entrypoint for datavec-generator.
//
// datavec-generator emits fixed-size data vector definitions for the
// embedded DSL:
//   - A concatenation helper presenting two vectors as one
//   - One fixed-size constructor per requested size
//   - A chooser building any supported total by greedy concatenation
//
// Generated text goes to stdout (or --output); logs go to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"datavec-generator/internal/logger"
)

const programName = "datavec-generator"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	logger.Sync()

	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			_, _ = fmt.Fprintf(stderr, "Hint: %s\n", hint)
		}

		return 1
	}

	return 0
}
