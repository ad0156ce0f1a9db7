// Package diag holds the error contract shared by every stage of the pipeline.
//
// An error that implements UserError can be shown to an end user as is: a one
// line summary, an ordered list of reasons and an optional hint. Errors that
// batch several failures report one reason per failure.
package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
)

type UserError interface {
	error
	// Summary is a single line describing what failed.
	Summary() string
	// Reasons lists each fully formed cause, nil when there is nothing to add.
	Reasons() []string
	// Helptext suggests a remedy, empty when there is none.
	Helptext() string
}

// As returns the outermost UserError in err's chain.
func As(err error) (UserError, bool) {
	var ue UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// ReasonsOf delegates to the UserError in err's chain. Wrapping errors use it
// so that detail is not lost on the way up.
func ReasonsOf(err error) []string {
	if ue, ok := As(err); ok {
		return ue.Reasons()
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}

func HelptextOf(err error) string {
	if ue, ok := As(err); ok {
		return ue.Helptext()
	}
	return ""
}

func Render(w io.Writer, err error) {
	if err == nil {
		return
	}
	ue, ok := As(err)
	if !ok {
		fmt.Fprintf(w, "Error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", ue.Summary())
	for _, reason := range ue.Reasons() {
		fmt.Fprintf(w, " - %s\n", reason)
	}
	if help := ue.Helptext(); help != "" {
		fmt.Fprintf(w, "hint: %s\n", help)
	}
}

// IOError is a raw filesystem failure.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string   { return "Generic IO Error" }
func (e *IOError) Summary() string { return e.Error() }
func (e *IOError) Unwrap() error   { return e.Err }

func (e *IOError) Reasons() []string {
	return []string{
		fmt.Sprintf("Operation on %q failed for reason of %q", e.Path, ioKind(e.Err)),
	}
}

func (e *IOError) Helptext() string {
	return "Make sure the directories or files aren't in use, and you have permission to access them"
}

func ioKind(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	case errors.Is(err, os.ErrExist):
		return "already exists"
	case err == nil:
		return "unknown"
	}
	return err.Error()
}
