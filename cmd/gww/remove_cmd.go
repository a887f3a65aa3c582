package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/log"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove [branch]",
		Short:   "Remove a branch's worktree",
		Aliases: []string{"rm"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove the worktree of a branch. The branch itself is kept.

Without a branch, pick one of the existing worktrees from a fuzzy list.
Worktrees with uncommitted changes or untracked files are not removed;
git's refusal is shown instead.`,
		Example: `  gww remove                # pick a worktree interactively
  gww rm feature/login      # remove the feature/login worktree`,
		ValidArgsFunction: completeWorktrees,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			target, err := svc.ResolveAndRemove(ctx, firstArg(args))
			if err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Removed worktree %s\n", target.Path)
			return nil
		},
	}
}
