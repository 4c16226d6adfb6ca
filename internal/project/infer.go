package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"remappings/internal/errors"
	"remappings/internal/remapping"
)

// sourceDirs are checked in order inside a library; the first one present
// becomes the remapping target.
var sourceDirs = []string{"src", "contracts"}

// LibFilter decides whether a directory entry under a lib dir is a library.
// Filters compose: an entry is a library only if every filter accepts it.
type LibFilter func(entry fs.DirEntry) bool

// Inferrer derives remappings from the libraries installed under the
// configured lib directories.
type Inferrer struct {
	root    string
	libs    []string
	filters []LibFilter
}

// NewInferrer creates an Inferrer for libs relative to root.
func NewInferrer(root string, libs []string) *Inferrer {
	return &Inferrer{
		root:    root,
		libs:    libs,
		filters: buildFilters(),
	}
}

func buildFilters() []LibFilter {
	return []LibFilter{
		directoryFilter(),
		hiddenFilter(),
	}
}

// Infer lists one remapping per library, lib dirs in configured order and
// libraries in name order. Missing lib dirs are skipped.
func (in *Inferrer) Infer() ([]remapping.Remapping, error) {
	var remappings []remapping.Remapping

	for _, lib := range in.libs {
		libDir := filepath.Join(in.root, filepath.FromSlash(lib))

		entries, err := os.ReadDir(libDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.NewConfigErrorWithPath(libDir, "failed to read lib directory", err)
		}

		for _, entry := range entries {
			if !in.accept(entry) {
				continue
			}
			remappings = append(remappings, in.remappingFor(lib, entry.Name()))
		}
	}

	return remappings, nil
}

func (in *Inferrer) accept(entry fs.DirEntry) bool {
	for _, filter := range in.filters {
		if !filter(entry) {
			return false
		}
	}
	return true
}

func (in *Inferrer) remappingFor(lib, name string) remapping.Remapping {
	rel := path.Join(filepath.ToSlash(lib), name)
	target := rel + "/"

	for _, dir := range sourceDirs {
		info, err := os.Stat(filepath.Join(in.root, filepath.FromSlash(rel), dir))
		if err == nil && info.IsDir() {
			target = rel + "/" + dir + "/"
			break
		}
	}

	return remapping.Remapping{
		Prefix: name + "/",
		Target: target,
	}
}

func directoryFilter() LibFilter {
	return func(entry fs.DirEntry) bool {
		return entry.IsDir()
	}
}

func hiddenFilter() LibFilter {
	return func(entry fs.DirEntry) bool {
		return !strings.HasPrefix(entry.Name(), ".")
	}
}
