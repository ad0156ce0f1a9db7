package operations

import (
	"errors"
	"fmt"

	"gitgub.com/cam-per/hypnagogic/diag"
)

var ErrDMINotFound = errors.New("operations: input kind not supported")

// ProcessorError is returned by PerformOperation. When it wraps a UserError
// the wrapped error supplies the summary, reasons and help.
type ProcessorError struct {
	Operation string
	Input     string
	Err       error
}

func UnsupportedInput(operation string, input Input) *ProcessorError {
	if input == nil {
		return &ProcessorError{Operation: operation, Input: "no", Err: ErrDMINotFound}
	}
	return &ProcessorError{Operation: operation, Input: input.Kind(), Err: ErrDMINotFound}
}

func Wrap(operation string, err error) *ProcessorError {
	return &ProcessorError{Operation: operation, Err: err}
}

func (e *ProcessorError) Error() string { return fmt.Sprintf("%s: %v", e.Operation, e.Err) }
func (e *ProcessorError) Unwrap() error { return e.Err }

func (e *ProcessorError) Summary() string {
	if ue, ok := diag.As(e.Err); ok {
		return ue.Summary()
	}
	if errors.Is(e.Err, ErrDMINotFound) {
		return "Input Kind Not Supported"
	}
	return "Processing Failed"
}

func (e *ProcessorError) Reasons() []string {
	if errors.Is(e.Err, ErrDMINotFound) {
		return []string{fmt.Sprintf("The %s operation only accepts dmi input, but was given %s input", e.Operation, e.Input)}
	}
	return diag.ReasonsOf(e.Err)
}

func (e *ProcessorError) Helptext() string {
	if errors.Is(e.Err, ErrDMINotFound) {
		return "Check that the config points at a .dmi file"
	}
	return diag.HelptextOf(e.Err)
}
