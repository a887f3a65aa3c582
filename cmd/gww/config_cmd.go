package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/config"
	"github.com/raphi011/gww/internal/log"
	"github.com/raphi011/gww/internal/output"
)

func newConfigCmd() *cobra.Command {
	var (
		initFile bool
		force    bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Show the effective configuration",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Print the effective configuration as TOML, after applying the config
file (~/.config/gww/config.toml) and environment overrides.

With --init, write a commented default config file instead.`,
		Example: `  gww config                # show effective configuration
  gww config --init         # create ~/.config/gww/config.toml
  gww config --init --force # overwrite an existing config file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if initFile {
				path, err := config.Path()
				if err != nil {
					return fmt.Errorf("locate config file: %w", err)
				}
				if err := config.Init(path, force); err != nil {
					return err
				}
				log.FromContext(ctx).Printf("Created config file: %s\n", path)
				return nil
			}

			cfg := config.FromContext(ctx)
			if cfg == nil {
				def := config.Default()
				cfg = &def
			}
			return cfg.Encode(output.FromContext(ctx).Writer())
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file (with --init)")

	return cmd
}
