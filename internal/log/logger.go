// Package log builds the diagnostic logger for the remappings command.
// Diagnostics go to stderr so they never mix with the remapping listing.
package log

import (
	"io"

	"github.com/sirupsen/logrus"

	"remappings/internal/config"
)

// NewLogger creates a text logger writing to w at the level implied by cfg:
// warnings by default, info with --verbose, debug with --debug, and nothing
// with --quiet.
func NewLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(Level(cfg))
	return logger
}

// Level maps the verbosity flags to a logrus level.
func Level(cfg *config.Config) logrus.Level {
	switch {
	case !cfg.ShouldLog():
		return logrus.PanicLevel
	case cfg.IsDebug():
		return logrus.DebugLevel
	case cfg.IsVerbose():
		return logrus.InfoLevel
	default:
		return logrus.WarnLevel
	}
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
