package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/gww/internal/log"
)

// Target is a resolved branch together with where its worktree lives or will live.
type Target struct {
	Branch           string
	Repository       string
	Path             string
	ExistsAsWorktree bool
	ExistsAsBranch   bool
	// StartPoint is the remote-tracking ref a new local branch is created
	// from when only a remote ref exists.
	StartPoint string
}

// CheckoutOptions controls side steps of Checkout.
type CheckoutOptions struct {
	InitSubmodules bool
}

// Checkout makes sure a worktree exists for target and returns its path.
// An existing worktree is returned unchanged without calling vcs.
func Checkout(ctx context.Context, vcs VCS, target Target, opts CheckoutOptions) (string, error) {
	l := log.FromContext(ctx)

	if target.ExistsAsWorktree {
		l.Debug("worktree exists", "branch", target.Branch, "path", target.Path)
		return target.Path, nil
	}

	if err := os.MkdirAll(filepath.Dir(target.Path), 0755); err != nil {
		return "", fmt.Errorf("failed to create worktree parent directory: %w", err)
	}

	if target.ExistsAsBranch {
		if err := vcs.AddWorktree(ctx, target.Path, target.Branch); err != nil {
			return "", err
		}
	} else {
		if err := vcs.AddWorktreeNewBranch(ctx, target.Path, target.Branch, target.StartPoint); err != nil {
			return "", err
		}
	}

	if opts.InitSubmodules {
		if err := vcs.UpdateSubmodules(ctx, target.Path); err != nil {
			l.Warnf("submodule update failed in %s: %v", target.Path, err)
		}
	}

	return target.Path, nil
}
