// Package cmd implements the command-line interface of the remappings tool.
// It wires flag parsing to project loading and printing, and owns exit codes.
package cmd

import (
	"io"

	"remappings/internal/config"
	"remappings/internal/log"
	"remappings/internal/printer"
	"remappings/internal/project"
)

func executeRemappings(cfg *config.Config, stdout, stderr io.Writer) error {
	logger := log.NewLogger(cfg, stderr)

	proj, err := project.NewLoader(cfg, logger).Load()
	if err != nil {
		return err
	}

	logger.WithField("count", len(proj.Remappings)).Debug("printing remappings")
	return printer.New(stdout, cfg.Pretty).Print(proj.Remappings)
}
