package git

import (
	"context"
	"errors"
	"testing"
)

func TestCheckGit_Available(t *testing.T) {
	t.Parallel()
	// git must be available in CI and dev environments
	if err := CheckGit(); err != nil {
		t.Fatalf("CheckGit() = %v, want nil (git should be in PATH)", err)
	}
}

func TestErrGitNotFound_Sentinel(t *testing.T) {
	t.Parallel()
	if !errors.Is(ErrGitNotFound, ErrGitNotFound) {
		t.Error("ErrGitNotFound should match itself with errors.Is")
	}
}

func TestIsInsideRepo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if !IsInsideRepo(ctx, setupTestRepo(t)) {
		t.Error("IsInsideRepo(repo) = false, want true")
	}
	if IsInsideRepo(ctx, resolveTempDir(t)) {
		t.Error("IsInsideRepo(plain dir) = true, want false")
	}
}
