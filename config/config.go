// Package config reads operation config files.
//
// A config file is TOML. The mode key names the operation, every other key
// belongs to that operation:
//
//	mode = "DmiMasking"
//	target_states = ["helmet"]
//	mask_suffix = "masked"
//	unmasked_suffix = "unmasked"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const ModeKey = "mode"

// File is a config file whose operation has not been decoded yet.
type File struct {
	Source string
	Mode   string
	data   []byte
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

func Parse(source string, data []byte) (*File, error) {
	var head map[string]any
	if err := toml.Unmarshal(data, &head); err != nil {
		return nil, syntaxError(source, err)
	}
	mode, ok := head[ModeKey].(string)
	if !ok || mode == "" {
		return nil, &ConfigError{Source: source, Problems: []string{
			fmt.Sprintf("The %q key is missing or is not a string", ModeKey),
		}}
	}
	return &File{Source: source, Mode: mode, data: data}, nil
}

// Decode strictly decodes the operation's keys into v. v must declare a
// field for the mode key.
func (f *File) Decode(v any) error {
	dec := toml.NewDecoder(bytes.NewReader(f.data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return &ConfigError{Source: f.Source, Problems: []string{strict.String()}, Err: err}
		}
		return syntaxError(f.Source, err)
	}
	return nil
}

func syntaxError(source string, err error) *ConfigError {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return &ConfigError{Source: source, Err: err, Problems: []string{
			fmt.Sprintf("TOML syntax error at line %d, column %d: %s", row, col, decodeErr.Error()),
		}}
	}
	return &ConfigError{Source: source, Err: err, Problems: []string{err.Error()}}
}
