package command

import (
	"fmt"
	"path/filepath"

	"gitgub.com/cam-per/hypnagogic/diag"
)

type ErrorKind uint8

const (
	InputNotFound ErrorKind = iota
	InvalidConfig
	InputParsingFailed
	ProcessorFailed
	OutputWriteFailed
	IO
)

var summaries = map[ErrorKind]string{
	InputNotFound:      "Input not found",
	InvalidConfig:      "Invalid Config File",
	InputParsingFailed: "Image Parsing Failed",
	ProcessorFailed:    "Processing Failed",
	OutputWriteFailed:  "Output Failed",
	IO:                 "Generic IO Error",
}

// Error is what a command reports to the user. Apart from InputNotFound it
// defers reasons and help to the error it wraps.
type Error struct {
	Kind   ErrorKind
	Config string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Summary()
	}
	return fmt.Sprintf("%s: %v", e.Summary(), e.Err)
}

func (e *Error) Unwrap() error   { return e.Err }
func (e *Error) Summary() string { return summaries[e.Kind] }

func (e *Error) Reasons() []string {
	if e.Kind == InputNotFound {
		return []string{
			fmt.Sprintf("Failed to find the input for a config (%s)", e.Config),
			fmt.Sprintf("Searched in `%s`", filepath.Dir(e.Path)),
			fmt.Sprintf("Expected to find an input file named %q", filepath.Base(e.Path)),
		}
	}
	return diag.ReasonsOf(e.Err)
}

func (e *Error) Helptext() string {
	if e.Kind == InputNotFound {
		return fmt.Sprintf("Double check that the file %q exists, and if it does, that it's named correctly", filepath.Base(e.Path))
	}
	return diag.HelptextOf(e.Err)
}

func ioError(path string, err error) *Error {
	return &Error{Kind: IO, Path: path, Err: &diag.IOError{Path: path, Err: err}}
}
