package worktree

import "context"

// VCS is the version-control tool the engine drives. *git.Repo implements it.
// All arguments are passed to the tool as separate argv entries.
type VCS interface {
	WorktreeListPorcelain(ctx context.Context) (string, error)
	WorktreeListRaw(ctx context.Context) (string, error)
	BranchRefs(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
	AddWorktree(ctx context.Context, path, branch string) error
	AddWorktreeNewBranch(ctx context.Context, path, branch, startPoint string) error
	RemoveWorktree(ctx context.Context, path string) error
	UpdateSubmodules(ctx context.Context, path string) error
}
