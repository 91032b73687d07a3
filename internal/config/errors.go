package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownConfigField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownConfigField) instead of string matching.
	ErrUnknownConfigField = errors.New("unknown config field")
	// ErrUnsupportedFormat is returned for config files with an unrecognized extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// FieldError reports a configuration problem at a dotted key path such as
// "server.jekyllPort" or "environments.production.css.input".
type FieldError struct {
	Key     string
	Problem string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Key, e.Problem, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Key, e.Problem)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(key, format string, args ...any) error {
	return &FieldError{Key: key, Problem: fmt.Sprintf(format, args...)}
}
