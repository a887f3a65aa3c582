package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/log"
	"github.com/raphi011/gww/internal/output"
)

func newCheckoutCmd() *cobra.Command {
	var (
		create          bool
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Short:   "Check out a branch in its own worktree",
		Aliases: []string{"co"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Check out a branch in its own worktree and print its path.

Without a branch, pick one from a fuzzy list of worktrees, local branches and
remote-tracking branches, most recently used first.

A branch that already has a worktree is not touched; its path is printed. A
branch without a worktree gets one at <root>/<repository>/<branch>. A branch
that only exists on a remote is created locally from the remote branch.

The path is printed as a line starting with GWW_CD:, which the shell wrapper
from 'gww autocd' turns into a cd.`,
		Example: `  gww checkout              # pick a branch interactively
  gww co feature/login      # switch to feature/login
  gww co origin/release     # create local release from origin/release
  gww co -b spike           # create branch spike and its worktree
  gww co --copy main        # also copy the worktree path to the clipboard`,
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, firstArg(args), create, copyToClipboard)
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch if it does not exist")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the worktree path to the clipboard")

	return cmd
}

func runCheckout(cmd *cobra.Command, name string, create, copyToClipboard bool) error {
	ctx := cmd.Context()

	svc, err := newService(cmd)
	if err != nil {
		return err
	}

	_, path, err := svc.ResolveAndCheckout(ctx, name, create)
	if err != nil {
		return err
	}

	if copyToClipboard {
		if err := clipboard.WriteAll(path); err != nil {
			log.FromContext(ctx).Warnf("failed to copy to clipboard: %v", err)
		}
	}

	output.FromContext(ctx).Cd(path)
	return nil
}
