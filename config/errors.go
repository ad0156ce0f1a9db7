package config

import (
	"fmt"
	"strings"
)

// ConfigError reports every problem found in one config at once.
type ConfigError struct {
	Source   string
	Problems []string
	Err      error
}

func (e *ConfigError) Error() string {
	msg := "invalid config"
	if e.Source != "" {
		msg += " " + e.Source
	}
	return msg + ": " + strings.Join(e.Problems, "; ")
}

func (e *ConfigError) Unwrap() error   { return e.Err }
func (e *ConfigError) Summary() string { return "Invalid Config" }

func (e *ConfigError) Reasons() []string {
	reasons := make([]string, 0, len(e.Problems)+1)
	if e.Source != "" {
		reasons = append(reasons, fmt.Sprintf("Error within config %q", e.Source))
	}
	return append(reasons, e.Problems...)
}

func (e *ConfigError) Helptext() string {
	return "Make sure the config conforms to the schema, and that all values are valid"
}

// Problems collects validation failures; Err returns nil when there were none.
type Problems []string

func (p *Problems) Addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p Problems) Err() error {
	if len(p) == 0 {
		return nil
	}
	return &ConfigError{Problems: p}
}
