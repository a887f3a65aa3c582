package worktree

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/gww/internal/cmd"
	"github.com/raphi011/gww/internal/log"
)

func TestCheckout_ExistingWorktree(t *testing.T) {
	t.Parallel()

	vcs := &fakeVCS{}
	target := Target{Branch: "main", Path: "/somewhere/else", ExistsAsWorktree: true, ExistsAsBranch: true}

	got, err := Checkout(context.Background(), vcs, target, CheckoutOptions{InitSubmodules: true})
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", got)
	assert.Empty(t, vcs.calls, "existing worktree must not trigger any tool call")
}

func TestCheckout_Creates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target func(root string) Target
		want   func(root string) []string
	}{
		{
			name: "existing branch",
			target: func(root string) Target {
				return Target{Branch: "feat/x", Path: filepath.Join(root, "repo", "feat", "x"), ExistsAsBranch: true}
			},
			want: func(root string) []string {
				return []string{"add " + filepath.Join(root, "repo", "feat", "x") + " feat/x"}
			},
		},
		{
			name: "new branch",
			target: func(root string) Target {
				return Target{Branch: "release", Path: filepath.Join(root, "repo", "release")}
			},
			want: func(root string) []string {
				return []string{"add -b release " + filepath.Join(root, "repo", "release")}
			},
		},
		{
			name: "new branch from remote ref",
			target: func(root string) Target {
				return Target{Branch: "feature", Path: filepath.Join(root, "repo", "feature"), StartPoint: "origin/feature"}
			},
			want: func(root string) []string {
				return []string{"add -b feature " + filepath.Join(root, "repo", "feature") + " origin/feature"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			vcs := &fakeVCS{}
			target := tt.target(root)

			got, err := Checkout(context.Background(), vcs, target, CheckoutOptions{})
			require.NoError(t, err)
			assert.Equal(t, target.Path, got)
			assert.Equal(t, tt.want(root), vcs.calls)
			assert.DirExists(t, filepath.Dir(target.Path), "parent directories are created")
		})
	}
}

func TestCheckout_Submodules(t *testing.T) {
	t.Parallel()

	t.Run("runs after creation", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		vcs := &fakeVCS{}
		path := filepath.Join(root, "repo", "x")

		_, err := Checkout(context.Background(), vcs, Target{Branch: "x", Path: path, ExistsAsBranch: true}, CheckoutOptions{InitSubmodules: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"add " + path + " x", "submodules " + path}, vcs.calls)
	})

	t.Run("failure is a warning", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		vcs := &fakeVCS{subErr: errors.New("no network")}
		var buf bytes.Buffer
		ctx := log.WithLogger(context.Background(), log.New(&buf, false, false))
		path := filepath.Join(root, "repo", "x")

		got, err := Checkout(ctx, vcs, Target{Branch: "x", Path: path}, CheckoutOptions{InitSubmodules: true})
		require.NoError(t, err)
		assert.Equal(t, path, got)
		assert.Contains(t, buf.String(), "Warning: submodule update failed")
	})
}

func TestCheckout_ToolError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	gitErr := &cmd.ExitError{Name: "git", Stderr: "fatal: 'x' is already checked out at '/elsewhere'", Err: errors.New("exit status 128")}
	vcs := &fakeVCS{addErr: gitErr}

	_, err := Checkout(context.Background(), vcs, Target{Branch: "x", Path: filepath.Join(root, "repo", "x"), ExistsAsBranch: true}, CheckoutOptions{InitSubmodules: true})

	var exitErr *cmd.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "fatal: 'x' is already checked out at '/elsewhere'", err.Error())
	assert.Len(t, vcs.calls, 1, "submodules are not touched after a failed add")
}

func TestCheckout_ParentDirFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	blocker := filepath.Join(root, "repo")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))
	vcs := &fakeVCS{}

	_, err := Checkout(context.Background(), vcs, Target{Branch: "a/b", Path: filepath.Join(blocker, "a", "b")}, CheckoutOptions{})
	assert.Error(t, err)
	assert.Empty(t, vcs.calls)
}
