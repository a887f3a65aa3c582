package worktree

import (
	"context"
	"fmt"

	"github.com/raphi011/gww/internal/git"
)

// Inventory is a point-in-time snapshot of worktrees and branches.
// It is rebuilt for every invocation and never persisted.
type Inventory struct {
	Worktrees []git.Worktree
	Branches  []git.Branch
	// Current is the branch checked out where gww was invoked, empty when detached.
	Current string
}

// LoadInventory queries vcs for worktrees, branches and the current branch.
func LoadInventory(ctx context.Context, vcs VCS) (*Inventory, error) {
	wtOut, err := vcs.WorktreeListPorcelain(ctx)
	if err != nil {
		return nil, err
	}
	worktrees, err := git.ParseWorktrees(wtOut)
	if err != nil {
		return nil, fmt.Errorf("parse worktree list: %w", err)
	}

	refOut, err := vcs.BranchRefs(ctx)
	if err != nil {
		return nil, err
	}
	branches, err := git.ParseBranches(refOut)
	if err != nil {
		return nil, fmt.Errorf("parse branch refs: %w", err)
	}

	current, err := vcs.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	return &Inventory{Worktrees: worktrees, Branches: branches, Current: current}, nil
}

// RawList returns the tool's human-readable worktree listing unmodified.
func RawList(ctx context.Context, vcs VCS) (string, error) {
	return vcs.WorktreeListRaw(ctx)
}
