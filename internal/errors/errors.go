// Package errors provides the typed error kinds surfaced by the remappings command.
// Every failure that reaches the command line is one of these kinds, so the
// entry point can report a single diagnostic line and exit non-zero.
package errors

import (
	"fmt"
	"path/filepath"
)

// ErrorType represents the category of an error.
type ErrorType string

// Error type constants. Config, root and parsing errors all mean the project
// configuration could not be loaded; output errors mean the listing could not
// be written.
const (
	ErrTypeConfig  ErrorType = "config"
	ErrTypeRoot    ErrorType = "root"
	ErrTypeParsing ErrorType = "parsing"
	ErrTypeOutput  ErrorType = "output"
)

// RemapError is the base error type carrying structured error information.
// Path names the file or directory involved, when there is one.
type RemapError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *RemapError) Error() string {
	msg := fmt.Sprintf("%s error: %s", e.Type, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *RemapError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a RemapError of the same type, so that
// errors.Is(err, &RemapError{Type: ErrTypeOutput}) matches any output error.
func (e *RemapError) Is(target error) bool {
	t, ok := target.(*RemapError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// ConfigError reports a configuration file or flag that could not be used.
type ConfigError struct {
	*RemapError
}

// NewConfigError creates a configuration error without path context.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		RemapError: &RemapError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewConfigErrorWithPath creates a configuration error tied to a file.
func NewConfigErrorWithPath(path, message string, cause error) *ConfigError {
	return &ConfigError{
		RemapError: &RemapError{
			Type:    ErrTypeConfig,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// RootError reports a project root that could not be resolved.
type RootError struct {
	*RemapError
}

// NewRootError creates a root resolution error for the given path.
func NewRootError(path, message string, cause error) *RootError {
	return &RootError{
		RemapError: &RemapError{
			Type:    ErrTypeRoot,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// ParsingError represents a malformed remapping. Path names its source
// (a file, an environment variable, a config key) when known.
type ParsingError struct {
	*RemapError
}

// NewParsingError creates a parsing error with source and context information.
func NewParsingError(path, message string, cause error) *ParsingError {
	return &ParsingError{
		RemapError: &RemapError{
			Type:    ErrTypeParsing,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// OutputError reports a failed write to the output stream.
type OutputError struct {
	*RemapError
}

// NewOutputError creates an output error wrapping the writer's failure.
func NewOutputError(cause error) *OutputError {
	return &OutputError{
		RemapError: &RemapError{
			Type:    ErrTypeOutput,
			Message: "failed to write remappings",
			Cause:   cause,
		},
	}
}

// WrapRootError converts a filesystem error on a candidate root into a RootError
// with an absolute path, so the diagnostic points at the real location.
func WrapRootError(path string, err error) error {
	if err == nil {
		return nil
	}

	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}
	return NewRootError(absPath, "cannot access project root", err)
}

// IsConfigLoad reports whether err means the project configuration could not
// be produced.
func IsConfigLoad(err error) bool {
	var re *RemapError
	if !as(err, &re) {
		return false
	}
	switch re.Type {
	case ErrTypeConfig, ErrTypeRoot, ErrTypeParsing:
		return true
	default:
		return false
	}
}

// IsOutput reports whether err is a failed write of the listing.
func IsOutput(err error) bool {
	var re *RemapError
	return as(err, &re) && re.Type == ErrTypeOutput
}

// as walks the Unwrap chain looking for a *RemapError, including one embedded
// in a wrapper type. The promoted Unwrap of a wrapper skips straight to Cause,
// so wrappers must be matched before unwrapping.
func as(err error, target **RemapError) bool {
	for err != nil {
		switch e := err.(type) {
		case *RemapError:
			*target = e
			return true
		case *ConfigError:
			*target = e.RemapError
			return true
		case *RootError:
			*target = e.RemapError
			return true
		case *ParsingError:
			*target = e.RemapError
			return true
		case *OutputError:
			*target = e.RemapError
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
