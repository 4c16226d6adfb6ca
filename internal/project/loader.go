// Package project loads a Solidity project's configuration: it resolves the
// project root, reads foundry.toml and remappings.txt, infers remappings from
// installed libraries and merges them into one ordered list.
package project

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"remappings/internal/config"
	"remappings/internal/errors"
	"remappings/internal/remapping"
)

// Project is a loaded project configuration.
type Project struct {
	Root       string
	Profile    string
	Remappings []remapping.Remapping
}

// Loader produces a Project from command-line options.
type Loader struct {
	config *config.Config
	logger logrus.FieldLogger
	getwd  func() (string, error)
}

// NewLoader creates a Loader. cfg must already be validated.
func NewLoader(cfg *config.Config, logger logrus.FieldLogger) *Loader {
	return &Loader{
		config: cfg,
		logger: logger,
		getwd:  os.Getwd,
	}
}

// Load resolves the root and collects remappings from, in order of
// precedence, the config file or environment, remappings.txt, and library
// inference. A remapping whose context and prefix were already seen is
// dropped.
func (l *Loader) Load() (*Project, error) {
	wd, err := l.getwd()
	if err != nil {
		return nil, errors.NewRootError("", "failed to determine working directory", err)
	}

	root, err := ResolveRoot(l.config.Root, wd)
	if err != nil {
		return nil, err
	}
	l.logger.WithField("root", root).Info("resolved project root")

	settings, err := LoadSettings(root, l.config.Profile)
	if err != nil {
		return nil, err
	}

	var sources [][]remapping.Remapping

	configured, err := remapping.ParseAll(settings.Remappings, settings.RemappingsSource)
	if err != nil {
		return nil, err
	}
	l.logSource(settings.RemappingsSource, configured)
	sources = append(sources, configured)

	fromFile, err := l.readRemappingsFile(root)
	if err != nil {
		return nil, err
	}
	l.logSource(RemappingsFileName, fromFile)
	sources = append(sources, fromFile)

	if settings.AutoDetect {
		inferred, err := NewInferrer(root, settings.Libs).Infer()
		if err != nil {
			return nil, err
		}
		l.logSource("inferred", inferred)
		sources = append(sources, inferred)
	} else {
		l.logger.Debug("remapping inference disabled")
	}

	return &Project{
		Root:       root,
		Profile:    l.config.Profile,
		Remappings: Merge(sources...),
	}, nil
}

func (l *Loader) readRemappingsFile(root string) ([]remapping.Remapping, error) {
	path := filepath.Join(root, RemappingsFileName)

	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewConfigErrorWithPath(path, "failed to open remappings file", err)
	}
	defer file.Close()

	return remapping.ParseList(file, path)
}

func (l *Loader) logSource(source string, remappings []remapping.Remapping) {
	if len(remappings) == 0 {
		return
	}
	l.logger.WithFields(logrus.Fields{
		"source": source,
		"count":  len(remappings),
	}).Debug("collected remappings")
}

// Merge concatenates sources in order, keeping only the first remapping for
// each context and prefix.
func Merge(sources ...[]remapping.Remapping) []remapping.Remapping {
	seen := make(map[string]bool)
	var merged []remapping.Remapping

	for _, source := range sources {
		for _, r := range source {
			key := r.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, r)
		}
	}

	return merged
}
