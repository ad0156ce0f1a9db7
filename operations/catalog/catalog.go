// Package catalog maps config modes to operations.
package catalog

import (
	"fmt"
	"strings"

	"gitgub.com/cam-per/hypnagogic/config"
	"gitgub.com/cam-per/hypnagogic/operations"
	"gitgub.com/cam-per/hypnagogic/operations/masking"
)

func Modes() []string {
	return []string{masking.Mode}
}

// Load reads the config at path and decodes its operation.
func Load(path string) (operations.Operation, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Decode(f)
}

func Decode(f *config.File) (operations.Operation, error) {
	var op operations.Operation
	switch f.Mode {
	case masking.Mode:
		op = &masking.DMIMasking{}
	default:
		return nil, &config.ConfigError{Source: f.Source, Problems: []string{
			fmt.Sprintf("Unknown mode %q, expected one of: %s", f.Mode, strings.Join(Modes(), ", ")),
		}}
	}
	if err := f.Decode(op); err != nil {
		return nil, err
	}
	return op, nil
}
