package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/config"
	"github.com/raphi011/gww/internal/git"
	"github.com/raphi011/gww/internal/log"
	"github.com/raphi011/gww/internal/output"
	"github.com/raphi011/gww/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// run executes gww with args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return exitCode(rootCmd.ExecuteContext(ctx), stderr)
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	rootCmd := &cobra.Command{
		Use:   "gww",
		Short: "Git worktree wrapper",
		Long: `gww keeps one git worktree per branch under a common root directory
(<root>/<repository>/<branch>) and switches between them.

Pick a branch with the fuzzy picker or name it, and gww checks it out in its
own worktree, creating the worktree (and the branch with -b) when needed.
Install the shell wrapper from 'gww autocd' to cd into the result.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		Args:                       cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			ctx = log.WithLogger(ctx, logger)
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			path, err := config.Path()
			if err != nil {
				logger.Warnf("%v", err)
			}
			cfg, err := config.Load(path, os.LookupEnv)
			if err != nil {
				logger.Warnf("%v", err)
			}
			ctx = config.WithConfig(ctx, &cfg)
			styles.Init(cfg.NoColour)

			cmd.SetContext(ctx)

			if !needsGit(cmd) {
				return nil
			}
			return git.CheckGit()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.FromContext(cmd.Context()).Println("No command provided; defaulting to `checkout`. Use `gww --help` for options.")
			return runCheckout(cmd, "", false, false)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRemoveCmd())

	rootCmd.AddCommand(newAutocdCmd())
	rootCmd.AddCommand(newTimechooserCmd())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// needsGit reports whether cmd talks to git.
func needsGit(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "completion", "__complete", "__completeNoDesc", "help", "autocd", "config":
		return false
	}
	return true
}
