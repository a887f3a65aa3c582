// Package cmd runs external commands and turns their failures into errors
// that carry what the tool printed on stderr.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoDir, "git", "worktree", "add", path, branch); err != nil {
//	    // err.Error() is git's own stderr text
//	}
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "worktree", "list", "--porcelain")
//
// Failures are reported as [*ExitError] so callers can tell an external tool
// failure apart from other errors with [errors.As]. A cancelled context is
// returned as the bare context error.
package cmd
