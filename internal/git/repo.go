package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repo runs git commands against the repository containing Dir.
// An empty Dir means the process working directory.
type Repo struct {
	Dir string
}

// NewRepo returns a Repo bound to dir.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

// WorktreeListPorcelain returns the raw output of `git worktree list --porcelain`.
func (r *Repo) WorktreeListPorcelain(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "worktree", "list", "--porcelain")
	return string(out), err
}

// WorktreeListRaw returns the human-readable `git worktree list` output verbatim.
func (r *Repo) WorktreeListRaw(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "worktree", "list")
	return string(out), err
}

// BranchRefs returns local and remote-tracking refs in the format [ParseBranches] reads.
func (r *Repo) BranchRefs(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "for-each-ref", "--format="+branchFormat, "refs/heads", "refs/remotes")
	return string(out), err
}

// CurrentBranch returns the branch checked out in the invoking worktree,
// or "" when HEAD is detached.
func (r *Repo) CurrentBranch(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// AddWorktree checks out an existing branch into a new worktree at path.
func (r *Repo) AddWorktree(ctx context.Context, path, branch string) error {
	return runGit(ctx, r.Dir, "worktree", "add", path, branch)
}

// AddWorktreeNewBranch creates branch and a worktree for it at path.
// startPoint is optional; git uses HEAD when it is empty.
func (r *Repo) AddWorktreeNewBranch(ctx context.Context, path, branch, startPoint string) error {
	args := []string{"worktree", "add", "-b", branch, path}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	return runGit(ctx, r.Dir, args...)
}

// RemoveWorktree removes the worktree at path. It never forces, so git
// refuses to drop uncommitted changes.
func (r *Repo) RemoveWorktree(ctx context.Context, path string) error {
	return runGit(ctx, r.Dir, "worktree", "remove", path)
}

// UpdateSubmodules initializes submodules recursively inside path.
func (r *Repo) UpdateSubmodules(ctx context.Context, path string) error {
	return runGit(ctx, path, "submodule", "update", "--init", "--recursive")
}

// OriginURL returns the URL of the origin remote.
func (r *Repo) OriginURL(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Name returns the repository name: the last element of the origin URL
// without ".git", or the main worktree's folder name when there is no origin.
func (r *Repo) Name(ctx context.Context) (string, error) {
	if url, err := r.OriginURL(ctx); err == nil {
		if name := ExtractRepoNameFromURL(url); name != "" {
			return name, nil
		}
	}

	main, err := r.MainPath(ctx)
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(main), ".git")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("cannot derive repository name from %q", main)
	}
	return name, nil
}

// MainPath returns the main worktree directory, resolved through the common
// git dir so it is the same from every linked worktree. For a bare
// repository it is the bare directory itself.
func (r *Repo) MainPath(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.Dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	common := strings.TrimSpace(string(out))
	if !filepath.IsAbs(common) {
		base := r.Dir
		if base == "" {
			if base, err = os.Getwd(); err != nil {
				return "", err
			}
		}
		common = filepath.Join(base, common)
	}
	common = filepath.Clean(common)
	if filepath.Base(common) == ".git" {
		return filepath.Dir(common), nil
	}
	return common, nil
}

// ExtractRepoNameFromURL extracts the repository name from a git URL.
// Handles https, ssh and scp-like forms.
func ExtractRepoNameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSpace(url), "/")
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	return url
}
