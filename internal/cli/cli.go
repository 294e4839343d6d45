package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"matrix-normalizer/internal/app"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean telling the caller to exit cleanly (help was requested), or an
// ExitError for usage mistakes.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("matrix-normalizer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
matrix-normalizer - expands a CI build matrix into normalized (os, build, settings) rows.

Usage:
  matrix-normalizer [options] INPUT OUTPUT

Arguments:
  INPUT   Build matrix file (.json, .yaml/.yml or .hcl).
  OUTPUT  Destination file (.json, or .yaml/.yml for YAML output).

Options:
`)
		flagSet.PrintDefaults()
	}

	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() != 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected 2 arguments (INPUT OUTPUT), got %d", flagSet.NArg())}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:  flagSet.Arg(0),
		OutputPath: flagSet.Arg(1),
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
