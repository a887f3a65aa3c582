package worktree

import (
	"context"
	"fmt"
)

// Remove deletes the worktree of target. The branch itself is kept and
// uncommitted changes make the tool refuse.
func Remove(ctx context.Context, vcs VCS, target Target) error {
	if !target.ExistsAsWorktree {
		return withDetail(ErrWorktreeNotFound,
			fmt.Sprintf("no worktree for branch %q", target.Branch))
	}
	return vcs.RemoveWorktree(ctx, target.Path)
}
