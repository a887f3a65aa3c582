package worktree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Path is the on-disk location of a worktree: Root/Repository/Branch.
// Branch names containing "/" map to nested directories.
type Path struct {
	Root       string
	Repository string
	Branch     string
}

// String returns the absolute worktree directory.
func (p Path) String() string {
	return filepath.Join(p.Root, p.Repository, filepath.FromSlash(p.Branch))
}

// ResolvePath computes the deterministic worktree path for a repository
// and branch under root. It rejects names that are empty or would place
// the worktree outside root/repository.
func ResolvePath(root, repository, branch string) (Path, error) {
	switch {
	case root == "":
		return Path{}, fmt.Errorf("%w: empty worktree root", ErrInvalidInput)
	case repository == "":
		return Path{}, fmt.Errorf("%w: empty repository name", ErrInvalidInput)
	case branch == "":
		return Path{}, fmt.Errorf("%w: empty branch name", ErrInvalidInput)
	}

	if repository == "." || repository == ".." || strings.ContainsAny(repository, `/\`) {
		return Path{}, fmt.Errorf("%w: repository name %q is not a single path element", ErrInvalidInput, repository)
	}
	if strings.HasPrefix(branch, "/") || filepath.IsAbs(branch) {
		return Path{}, fmt.Errorf("%w: branch name %q is absolute", ErrInvalidInput, branch)
	}
	for _, elem := range strings.Split(branch, "/") {
		if elem == ".." {
			return Path{}, fmt.Errorf("%w: branch name %q escapes the repository directory", ErrInvalidInput, branch)
		}
	}

	return Path{Root: root, Repository: repository, Branch: branch}, nil
}
