package worktree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gww/internal/cmd"
)

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing worktree", func(t *testing.T) {
		t.Parallel()
		vcs := &fakeVCS{}
		err := Remove(context.Background(), vcs, Target{Branch: "x", Path: "/wt/repo/x", ExistsAsWorktree: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"remove /wt/repo/x"}, vcs.calls)
	})

	t.Run("no worktree does not call tool", func(t *testing.T) {
		t.Parallel()
		vcs := &fakeVCS{}
		err := Remove(context.Background(), vcs, Target{Branch: "x", Path: "/wt/repo/x", ExistsAsBranch: true})
		assert.ErrorIs(t, err, ErrWorktreeNotFound)
		assert.Empty(t, vcs.calls)
	})

	t.Run("tool refusal passes through", func(t *testing.T) {
		t.Parallel()
		vcs := &fakeVCS{removeErr: &cmd.ExitError{Name: "git", Stderr: "fatal: '/wt/repo/x' contains modified or untracked files, use --force to delete it", Err: errors.New("exit status 128")}}
		err := Remove(context.Background(), vcs, Target{Branch: "x", Path: "/wt/repo/x", ExistsAsWorktree: true})
		var exitErr *cmd.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, err.Error(), "use --force")
	})
}
