package errors

import (
	stderrors "errors"
	"fmt"
)

// LoadError reports a theme layer that could not be loaded.
// Fatal is set for mandatory layers; the caller must not go on rendering.
type LoadError struct {
	Layer string
	Path  string
	Fatal bool
	Err   error
}

// NewLoadError constructs a LoadError.
func NewLoadError(layer, path string, fatal bool, err error) error {
	return &LoadError{Layer: layer, Path: path, Fatal: fatal, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	severity := "WARNING"
	if e.Fatal {
		severity = "ERROR"
	}
	msg := "unknown error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("[%s] cannot load %s from %s: %s", severity, e.Layer, e.Path, msg)
}

// Unwrap exposes the underlying error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError captures a failure to create, read or write the settings file.
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(op, path string, err error) error {
	return &ConfigError{Op: op, Path: path, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsFatal reports whether err carries a fatal LoadError.
func IsFatal(err error) bool {
	var le *LoadError
	if stderrors.As(err, &le) {
		return le.Fatal
	}
	return false
}

// ValidationError captures a settings value that is out of range.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
