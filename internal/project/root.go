package project

import (
	stderrors "errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"remappings/internal/errors"
)

// ResolveRoot picks the project root. An explicit root wins; otherwise the
// worktree root of the git repository enclosing dir, or dir itself when dir
// is not inside a repository.
func ResolveRoot(explicit, dir string) (string, error) {
	if explicit != "" {
		root, err := filepath.Abs(explicit)
		if err != nil {
			return "", errors.WrapRootError(explicit, err)
		}
		return root, nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.WrapRootError(dir, err)
	}

	root, found, err := gitRoot(absDir)
	if err != nil {
		return "", err
	}
	if !found {
		return absDir, nil
	}
	return root, nil
}

func gitRoot(dir string) (string, bool, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if stderrors.Is(err, git.ErrRepositoryNotExists) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewRootError(dir, "failed to open git repository", err)
	}

	wt, err := repo.Worktree()
	if stderrors.Is(err, git.ErrIsBareRepository) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewRootError(dir, "failed to open git worktree", err)
	}

	return wt.Filesystem.Root(), true, nil
}
