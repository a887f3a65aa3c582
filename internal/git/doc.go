// Package git provides git operations via shell commands.
//
// All operations call the git CLI through the cmd package. A failing git call
// returns a *cmd.ExitError whose message is git's own stderr.
//
// # Repository Operations
//
// A [Repo] is bound to one working directory and exposes the calls the
// worktree engine needs:
//
//   - [Repo.WorktreeListPorcelain], [Repo.WorktreeListRaw]: worktree listings
//   - [Repo.BranchRefs]: local and remote-tracking refs with commit metadata
//   - [Repo.CurrentBranch]: branch checked out in the invoking worktree
//   - [Repo.AddWorktree], [Repo.AddWorktreeNewBranch], [Repo.RemoveWorktree]
//   - [Repo.UpdateSubmodules]: submodule init for a fresh worktree
//   - [Repo.Name]: repository name from origin, falling back to the folder
//
// # Parsing
//
// [ParseWorktrees] and [ParseBranches] turn raw git output into records.
// Malformed input is reported as an error wrapping [ErrParse].
package git
