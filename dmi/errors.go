package dmi

import (
	"errors"
	"fmt"
)

var (
	ErrNotPNG          = errors.New("dmi: not a png file")
	ErrNoDescription   = errors.New("dmi: no Description text chunk")
	ErrCompression     = errors.New("dmi: unknown text chunk compression method")
	ErrSheetTooSmall   = errors.New("dmi: sheet holds fewer icons than described")
	ErrBadIconSize     = errors.New("dmi: icon size must be positive")
	ErrImageCount      = errors.New("dmi: image count does not match dirs and frames")
	ErrFrameSize       = errors.New("dmi: frame size differs from icon size")
	ErrNotLatin1       = errors.New("dmi: description is not representable in Latin-1")
	ErrBadMetadataLine = errors.New("dmi: malformed description")
)

// DecodeError is returned by Decode.
type DecodeError struct {
	// Reason is a full sentence naming what was wrong with the input.
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "dmi: decode: " + e.Reason
	}
	return fmt.Sprintf("dmi: decode: %s: %v", e.Reason, e.Err)
}

func (e *DecodeError) Unwrap() error   { return e.Err }
func (e *DecodeError) Summary() string { return "Failed to read DMI" }

func (e *DecodeError) Reasons() []string {
	reasons := []string{e.Reason}
	if e.Err != nil {
		reasons = append(reasons, fmt.Sprintf("Underlying error: %v", e.Err))
	}
	return reasons
}

func (e *DecodeError) Helptext() string {
	return "Make sure the file is a DMI saved by BYOND or a compatible editor"
}

// EncodeError is returned by Encode.
type EncodeError struct {
	State  string
	Reason string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Err == nil {
		return "dmi: encode: " + e.Reason
	}
	return fmt.Sprintf("dmi: encode: %s: %v", e.Reason, e.Err)
}

func (e *EncodeError) Unwrap() error   { return e.Err }
func (e *EncodeError) Summary() string { return "Failed to write DMI" }

func (e *EncodeError) Reasons() []string {
	var reasons []string
	if e.State != "" {
		reasons = append(reasons, fmt.Sprintf("Icon state %q could not be written", e.State))
	}
	reasons = append(reasons, e.Reason)
	if e.Err != nil {
		reasons = append(reasons, fmt.Sprintf("Underlying error: %v", e.Err))
	}
	return reasons
}

func (e *EncodeError) Helptext() string {
	return "This is likely a bug in the operation that produced the icon"
}
