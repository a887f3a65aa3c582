package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/raphi011/gww/internal/worktree"
)

// exitCode maps err to the process exit code, reporting it on stderr.
// A cancelled selection is a normal outcome and exits 0 silently.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, worktree.ErrSelectionCancelled) {
		return 0
	}
	fmt.Fprintf(stderr, "gww: %v\n", err)
	return 1
}
