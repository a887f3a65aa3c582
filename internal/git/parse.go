package git

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrParse is wrapped by every error caused by git output in an unexpected shape.
var ErrParse = errors.New("unexpected git output")

// fieldSep separates fields in the for-each-ref format used by [Repo.BranchRefs].
const fieldSep = "\x1f"

// branchFormat is the for-each-ref format matching [ParseBranches].
const branchFormat = "%(refname)%1f%(committerdate:unix)%1f%(authorname)%1f%(subject)"

// Worktree is one record of `git worktree list --porcelain`.
type Worktree struct {
	Path        string
	Branch      string // empty when detached or bare
	Head        string
	Bare        bool
	Detached    bool
	Locked      bool
	LockReason  string
	Prunable    bool
	PruneReason string
}

// Branch is a local or remote-tracking ref.
type Branch struct {
	Name      string // short name, e.g. "main" or "origin/main"
	Remote    string // empty for local branches
	Committed time.Time
	Author    string
	Subject   string
}

// IsRemote reports whether b is a remote-tracking ref.
func (b Branch) IsRemote() bool {
	return b.Remote != ""
}

func parseErr(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrParse, line, fmt.Sprintf(format, args...))
}

// ParseWorktrees parses the output of `git worktree list --porcelain`.
// Records are separated by blank lines and start with a "worktree" line.
// Unknown attribute lines are ignored.
func ParseWorktrees(out string) ([]Worktree, error) {
	var (
		worktrees []Worktree
		current   *Worktree
	)
	flush := func() {
		if current != nil {
			worktrees = append(worktrees, *current)
			current = nil
		}
	}

	for i, line := range strings.Split(out, "\n") {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			flush()
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		if key == "worktree" {
			flush()
			if value == "" {
				return nil, parseErr(lineNo, "worktree line without a path")
			}
			current = &Worktree{Path: value}
			continue
		}
		if current == nil {
			return nil, parseErr(lineNo, "%q before any worktree line", line)
		}

		switch key {
		case "HEAD":
			current.Head = value
		case "branch":
			current.Branch = strings.TrimPrefix(value, "refs/heads/")
		case "bare":
			current.Bare = true
		case "detached":
			current.Detached = true
		case "locked":
			current.Locked = true
			current.LockReason = value
		case "prunable":
			current.Prunable = true
			current.PruneReason = value
		}
	}
	flush()

	return worktrees, nil
}

// ParseBranches parses for-each-ref output produced with branchFormat.
// Symbolic <remote>/HEAD refs and refs outside refs/heads and refs/remotes
// are skipped.
func ParseBranches(out string) ([]Branch, error) {
	var branches []Branch

	for i, line := range strings.Split(out, "\n") {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, fieldSep, 4)
		if len(fields) != 4 {
			return nil, parseErr(lineNo, "expected 4 fields, got %d", len(fields))
		}
		refname, stamp, author, subject := fields[0], fields[1], fields[2], fields[3]

		var b Branch
		switch {
		case strings.HasPrefix(refname, "refs/heads/"):
			b.Name = strings.TrimPrefix(refname, "refs/heads/")
		case strings.HasPrefix(refname, "refs/remotes/"):
			short := strings.TrimPrefix(refname, "refs/remotes/")
			remote, rest, ok := strings.Cut(short, "/")
			if !ok || rest == "HEAD" {
				continue
			}
			b.Name = short
			b.Remote = remote
		default:
			continue
		}
		if b.Name == "" {
			return nil, parseErr(lineNo, "empty ref name in %q", refname)
		}

		secs, err := strconv.ParseInt(stamp, 10, 64)
		if err != nil {
			return nil, parseErr(lineNo, "invalid commit timestamp %q", stamp)
		}
		b.Committed = time.Unix(secs, 0)
		b.Author = author
		b.Subject = subject

		branches = append(branches, b)
	}

	return branches, nil
}
