package matrix

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Kind -linecomment

// Kind classifies a ConfigError.
type Kind int

const (
	KindIO     Kind = iota // io
	KindParse              // parse
	KindSchema             // schema
)

// Sentinel errors matched by ConfigError through errors.Is.
var (
	// ErrIO indicates the input could not be read or the output could not be written.
	ErrIO = errors.New("i/o error")
	// ErrParse indicates the input is not valid in its format.
	ErrParse = errors.New("parse error")
	// ErrSchema indicates a required key is missing or has the wrong shape.
	ErrSchema = errors.New("schema error")
)

// ConfigError is returned for every failure to load, normalize or write a
// build matrix.
type ConfigError struct {
	Kind Kind
	// Path is the file involved, if any.
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.Kind.String() + " error"
	if e.Path != "" {
		msg += " in " + e.Path
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ConfigError) Is(target error) bool {
	switch e.Kind {
	case KindIO:
		return target == ErrIO
	case KindParse:
		return target == ErrParse
	case KindSchema:
		return target == ErrSchema
	default:
		return false
	}
}

// SchemaError builds a schema ConfigError.
func SchemaError(format string, args ...any) *ConfigError {
	return &ConfigError{Kind: KindSchema, Message: fmt.Sprintf(format, args...)}
}

func ioError(path string, err error) *ConfigError {
	return &ConfigError{Kind: KindIO, Path: path, Err: err}
}

func parseError(path string, err error) *ConfigError {
	return &ConfigError{Kind: KindParse, Path: path, Err: err}
}
