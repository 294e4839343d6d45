// Package main provides the CLI entrypoint for matrix-normalizer.
//
// matrix-normalizer reads a declarative CI build matrix and expands it into
// a flat list of [os, build, settings] rows:
//   - one row per build variant of every operating system entry
//   - compiler flags and environment merged from defaults and overrides
//   - an empty tag list added where none is given
//
// The rows are printed to stdout and written to the output file as JSON.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"matrix-normalizer/internal/app"
	"matrix-normalizer/internal/cli"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run holds the program logic so it can be tested without exiting.
func run(stdout, stderr io.Writer, args []string) error {
	config, shouldExit, err := cli.Parse(args, stderr)
	if err != nil {
		return err
	}

	if shouldExit {
		return nil
	}

	return app.NewApp(stdout, stderr, config).Run()
}
