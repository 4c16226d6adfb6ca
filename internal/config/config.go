// Package config holds the command-line options of the remappings command.
// It centralizes flag values and validates them before any project files
// are read, so bad input fails early with a config error.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"remappings/internal/errors"
)

// DefaultProfile is the configuration profile used when none is selected.
const DefaultProfile = "default"

// ProfileEnv names the environment variable that selects a profile when the
// --profile flag is absent.
const ProfileEnv = "FOUNDRY_PROFILE"

// Config holds all runtime options for a remappings invocation.
// Root is empty when the project root should be discovered.
type Config struct {
	Root    string
	Profile string
	Pretty  bool
	Verbose bool
	Debug   bool
	Quiet   bool
}

// Validate checks and normalizes the options. An explicit root is made
// absolute and must name an existing directory.
func (c *Config) Validate() error {
	if err := c.validateRoot(); err != nil {
		return err
	}

	if err := c.validateProfile(); err != nil {
		return err
	}

	c.normalizeConfig()
	return nil
}

func (c *Config) validateRoot() error {
	if c.Root == "" {
		return nil
	}

	absRoot, err := filepath.Abs(c.Root)
	if err != nil {
		return errors.NewConfigErrorWithPath(c.Root, "invalid root path", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return errors.WrapRootError(absRoot, err)
	}
	if !info.IsDir() {
		return errors.NewRootError(absRoot, "project root is not a directory", nil)
	}

	c.Root = absRoot
	return nil
}

func (c *Config) validateProfile() error {
	if strings.ContainsAny(c.Profile, ". \t") {
		return errors.NewConfigError("profile name must not contain dots or whitespace: "+c.Profile, nil)
	}
	return nil
}

func (c *Config) normalizeConfig() {
	if c.Profile == "" {
		c.Profile = strings.TrimSpace(os.Getenv(ProfileEnv))
	}
	if c.Profile == "" {
		c.Profile = DefaultProfile
	}
}

// IsVerbose reports whether informational logging is enabled. Quiet wins.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsDebug reports whether debug logging is enabled. Quiet wins.
func (c *Config) IsDebug() bool {
	return c.Debug && !c.Quiet
}

// ShouldLog reports whether any diagnostics besides the final error line
// should be emitted.
func (c *Config) ShouldLog() bool {
	return !c.Quiet
}
