package errors

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestRemapError(t *testing.T) {
	tests := []struct {
		name        string
		errorType   ErrorType
		path        string
		message     string
		cause       error
		expectedMsg string
	}{
		{
			name:        "error with path",
			errorType:   ErrTypeConfig,
			path:        "/project/foundry.toml",
			message:     "failed to read config",
			cause:       nil,
			expectedMsg: "config error for /project/foundry.toml: failed to read config",
		},
		{
			name:        "error without path",
			errorType:   ErrTypeConfig,
			path:        "",
			message:     "invalid profile",
			cause:       nil,
			expectedMsg: "config error: invalid profile",
		},
		{
			name:        "error with cause",
			errorType:   ErrTypeOutput,
			path:        "",
			message:     "failed to write remappings",
			cause:       errors.New("broken pipe"),
			expectedMsg: "output error: failed to write remappings: broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &RemapError{
				Type:    tt.errorType,
				Path:    tt.path,
				Message: tt.message,
				Cause:   tt.cause,
			}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}

			if err.Unwrap() != tt.cause {
				t.Errorf("expected cause %v, got %v", tt.cause, err.Unwrap())
			}
		})
	}
}

func TestRemapErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err1   *RemapError
		err2   error
		expect bool
	}{
		{
			name:   "same error type",
			err1:   &RemapError{Type: ErrTypeParsing},
			err2:   &RemapError{Type: ErrTypeParsing},
			expect: true,
		},
		{
			name:   "different error type",
			err1:   &RemapError{Type: ErrTypeParsing},
			err2:   &RemapError{Type: ErrTypeOutput},
			expect: false,
		},
		{
			name:   "not a RemapError",
			err1:   &RemapError{Type: ErrTypeRoot},
			err2:   errors.New("standard error"),
			expect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err1.Is(tt.err2)
			if result != tt.expect {
				t.Errorf("expected %v, got %v", tt.expect, result)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		expected ErrorType
		path     string
	}{
		{"config", NewConfigError("bad flag", nil).RemapError, ErrTypeConfig, ""},
		{"config with path", NewConfigErrorWithPath("/p/foundry.toml", "bad toml", cause).RemapError, ErrTypeConfig, "/p/foundry.toml"},
		{"root", NewRootError("/missing", "not a directory", nil).RemapError, ErrTypeRoot, "/missing"},
		{"parsing", NewParsingError("remappings.txt:3", "invalid remapping", nil).RemapError, ErrTypeParsing, "remappings.txt:3"},
		{"output", NewOutputError(cause).RemapError, ErrTypeOutput, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, ok := tt.err.(*RemapError)
			if !ok {
				t.Fatalf("expected *RemapError, got %T", tt.err)
			}
			if re.Type != tt.expected {
				t.Errorf("expected type %s, got %s", tt.expected, re.Type)
			}
			if re.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, re.Path)
			}
		})
	}
}

func TestWrapRootError(t *testing.T) {
	if WrapRootError("anything", nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := WrapRootError("relative/dir", errors.New("no such file or directory"))
	var rootErr *RootError
	if !errors.As(err, &rootErr) {
		t.Fatalf("expected *RootError, got %T", err)
	}
	if !filepath.IsAbs(rootErr.Path) {
		t.Errorf("expected absolute path, got %q", rootErr.Path)
	}
	if !strings.Contains(err.Error(), "no such file or directory") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		configLoad bool
		output     bool
	}{
		{"config error", NewConfigError("bad", nil), true, false},
		{"root error", NewRootError("/x", "missing", nil), true, false},
		{"parsing error", NewParsingError("", "invalid remapping", nil), true, false},
		{"output error", NewOutputError(errors.New("broken pipe")), false, true},
		{"wrapped output error", fmt.Errorf("printing: %w", NewOutputError(nil)), false, true},
		{"plain error", errors.New("plain"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigLoad(tt.err); got != tt.configLoad {
				t.Errorf("IsConfigLoad: expected %v, got %v", tt.configLoad, got)
			}
			if got := IsOutput(tt.err); got != tt.output {
				t.Errorf("IsOutput: expected %v, got %v", tt.output, got)
			}
		})
	}
}
