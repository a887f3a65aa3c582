package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/output"
)

func newTimechooserCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "timechooser",
		Short:  "Time building the branch list",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newService(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			candidates, err := svc.Candidates(ctx)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			output.FromContext(ctx).Printf("Built %d branch entries in %s\n", len(candidates), elapsed.Round(10*time.Microsecond))
			return nil
		},
	}
}
