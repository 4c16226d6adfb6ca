package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "foundry.toml")
	if err := os.WriteFile(file, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "no root",
			config:      Config{},
			expectError: false,
		},
		{
			name:        "existing root",
			config:      Config{Root: dir},
			expectError: false,
		},
		{
			name:        "relative root",
			config:      Config{Root: "."},
			expectError: false,
		},
		{
			name:        "missing root",
			config:      Config{Root: filepath.Join(dir, "does-not-exist")},
			expectError: true,
		},
		{
			name:        "root is a file",
			config:      Config{Root: file},
			expectError: true,
		},
		{
			name:        "profile with dot",
			config:      Config{Profile: "ci.fast"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError && tt.config.Root != "" && !filepath.IsAbs(tt.config.Root) {
				t.Errorf("expected absolute root, got %q", tt.config.Root)
			}
		})
	}
}

func TestProfileSelection(t *testing.T) {
	t.Setenv(ProfileEnv, "")
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profile != DefaultProfile {
		t.Errorf("expected %q, got %q", DefaultProfile, cfg.Profile)
	}

	t.Setenv(ProfileEnv, "ci")
	cfg = Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profile != "ci" {
		t.Errorf("expected profile from env, got %q", cfg.Profile)
	}

	cfg = Config{Profile: "local"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profile != "local" {
		t.Errorf("expected flag to win over env, got %q", cfg.Profile)
	}
}

func TestLoggingPrecedence(t *testing.T) {
	tests := []struct {
		config    Config
		verbose   bool
		debug     bool
		shouldLog bool
	}{
		{Config{}, false, false, true},
		{Config{Verbose: true}, true, false, true},
		{Config{Debug: true}, false, true, true},
		{Config{Verbose: true, Quiet: true}, false, false, false},
		{Config{Debug: true, Quiet: true}, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.config.IsVerbose(); got != tt.verbose {
			t.Errorf("IsVerbose() for %+v = %v, expected %v", tt.config, got, tt.verbose)
		}
		if got := tt.config.IsDebug(); got != tt.debug {
			t.Errorf("IsDebug() for %+v = %v, expected %v", tt.config, got, tt.debug)
		}
		if got := tt.config.ShouldLog(); got != tt.shouldLog {
			t.Errorf("ShouldLog() for %+v = %v, expected %v", tt.config, got, tt.shouldLog)
		}
	}
}
