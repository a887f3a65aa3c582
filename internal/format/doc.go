// Package format renders candidates for display.
//
// A candidate label has five segments separated by single spaces:
//
//	[T*] feature/login "Fix token refresh" [Jane Doe] (2d ago)
//
//   - Tag: source ('T' worktree, 'L' local branch, 'R' remote-tracking ref)
//     followed by '*' for the current branch or a space otherwise.
//   - Name: the branch name without a remote prefix.
//   - Subject: the quoted subject of the branch tip commit.
//   - Author: the bracketed author of the branch tip commit.
//   - Time: when the candidate was last used, relative to now.
//
// Missing metadata is shown as "unknown subject", "unknown author" and
// "unknown time" so every label keeps the same shape.
package format
