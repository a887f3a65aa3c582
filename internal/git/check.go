package git

import (
	"context"
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir (or the working directory when empty)
// is inside a git work tree.
func IsInsideRepo(ctx context.Context, dir string) bool {
	return runGit(ctx, dir, "rev-parse", "--is-inside-work-tree") == nil
}
