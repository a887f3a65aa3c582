package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/output"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List worktrees",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long:    `List the worktrees of the current repository exactly as 'git worktree list' prints them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			raw, err := svc.RawList(ctx)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Print(raw)
			return nil
		},
	}
}
