package worktree

import "errors"

var (
	// ErrInvalidInput is returned for empty or path-escaping names.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBranchNotFound is returned when an explicit branch matches nothing
	// and creation was not requested.
	ErrBranchNotFound = errors.New("branch not found")
	// ErrWorktreeNotFound is returned when removal targets a branch without a worktree.
	ErrWorktreeNotFound = errors.New("worktree not found")
	// ErrSelectionCancelled is returned when the picker is dismissed or unavailable.
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// detailError carries a user-facing message while still matching its kind
// with errors.Is.
type detailError struct {
	msg  string
	kind error
}

func (e *detailError) Error() string { return e.msg }
func (e *detailError) Unwrap() error { return e.kind }

func withDetail(kind error, msg string) error {
	return &detailError{msg: msg, kind: kind}
}
