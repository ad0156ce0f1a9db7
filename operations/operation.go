// Package operations defines the contract shared by every sprite transform.
package operations

import (
	"image"

	"gitgub.com/cam-per/hypnagogic/dmi"
	"gitgub.com/cam-per/hypnagogic/internal/logger"
)

// Operation is a configured transform.
//
// VerifyConfig checks the configuration on its own and must not need any
// input. PerformOperation consumes an already decoded input, has no side
// effects beyond its result and never mutates the input.
type Operation interface {
	Name() string
	VerifyConfig() error
	PerformOperation(input Input, mode Mode) (*Payload, error)
}

// Loggable operations accept an injected logger before they run.
type Loggable interface {
	SetLogger(lggr logger.Logger)
}

type Mode uint8

const (
	ModeStandard Mode = iota
	// ModeDebug is reserved for operations that can emit extra output.
	ModeDebug
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeDebug:
		return "debug"
	}
	return "unknown"
}

// Input is a decoded input file. The set of variants is closed.
type Input interface {
	Kind() string
	input()
}

type DMIInput struct {
	Icon *dmi.Icon
}

type PNGInput struct {
	Image image.Image
}

func (DMIInput) Kind() string { return "dmi" }
func (PNGInput) Kind() string { return "png" }
func (DMIInput) input()       {}
func (PNGInput) input()       {}

// Payload is the result of an operation. Exactly one field is set.
type Payload struct {
	Icon  *dmi.Icon
	Image image.Image
}

func PayloadFromIcon(icon *dmi.Icon) *Payload   { return &Payload{Icon: icon} }
func PayloadFromImage(img image.Image) *Payload { return &Payload{Image: img} }

// Run verifies op's config and then performs it on input.
func Run(lggr logger.Logger, op Operation, input Input, mode Mode) (*Payload, error) {
	lggr.Infow("Executing operation", "operation", op.Name(), "input", input.Kind(), "mode", mode.String())

	if err := op.VerifyConfig(); err != nil {
		return nil, err
	}
	if l, ok := op.(Loggable); ok {
		l.SetLogger(logger.Named(lggr, op.Name()))
	}
	payload, err := op.PerformOperation(input, mode)
	if err != nil {
		lggr.Debugw("Operation failed", "operation", op.Name(), "err", err)
		return nil, err
	}
	return payload, nil
}
