package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/worktree"
)

// completeBranches completes every candidate branch name, most recent first.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeCandidates(cmd, args, toComplete, func(worktree.Candidate) bool { return true })
}

// completeWorktrees completes branches that have a worktree.
func completeWorktrees(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeCandidates(cmd, args, toComplete, func(c worktree.Candidate) bool { return c.HasWorktree })
}

func completeCandidates(cmd *cobra.Command, args []string, toComplete string, keep func(worktree.Candidate) bool) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	svc, err := newService(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	candidates, err := svc.Candidates(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, c := range candidates {
		if keep(c) && strings.HasPrefix(c.Name, toComplete) {
			matches = append(matches, c.Name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}
