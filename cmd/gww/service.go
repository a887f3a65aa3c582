package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/config"
	"github.com/raphi011/gww/internal/git"
	"github.com/raphi011/gww/internal/history"
	"github.com/raphi011/gww/internal/log"
	"github.com/raphi011/gww/internal/ui/picker"
	"github.com/raphi011/gww/internal/worktree"
)

var errNotRepo = errors.New("not a git repository")

// newService builds the worktree engine for the repository containing the
// working directory.
func newService(cmd *cobra.Command) (*worktree.Service, error) {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	cfg := config.FromContext(ctx)
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	if !git.IsInsideRepo(ctx, workDir) {
		return nil, errNotRepo
	}

	repo := git.NewRepo(workDir)
	name, err := repo.Name(ctx)
	if err != nil {
		return nil, err
	}

	access, err := history.Open(cfg.HistoryFile)
	if err != nil {
		l.Warnf("failed to load history: %v", err)
	}

	// picker draws on stderr; nil files make it refuse to start
	in, _ := cmd.InOrStdin().(*os.File)
	out, _ := cmd.ErrOrStderr().(*os.File)

	opts := worktree.Options{
		Root:           cfg.WorktreeRoot,
		Repository:     name,
		InitSubmodules: cfg.InitSubmodules,
	}
	l.Debug("engine options", "root", opts.Root, "repository", opts.Repository, "history", access.File())

	return worktree.NewService(opts, repo, picker.New(in, out, cfg.NoColour), access), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
