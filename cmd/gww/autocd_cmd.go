package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gww/internal/output"
)

// posixWrapper works for bash and zsh. %[1]s is the cd prefix.
const posixWrapper = `gww() {
    local output exit_code cd_path
    output=$(command gww "$@")
    exit_code=$?
    cd_path=$(printf '%%s\n' "$output" | sed -n 's/^%[1]s//p' | tail -n 1)
    [ -n "$output" ] && printf '%%s\n' "$output" | grep -v '^%[1]s'
    if [ $exit_code -eq 0 ] && [ -n "$cd_path" ]; then
        cd "$cd_path" || return
    fi
    return $exit_code
}
`

const fishWrapper = `function gww
    set -l output (command gww $argv)
    set -l exit_code $status
    set -l cd_path
    for line in $output
        if string match -q '%[1]s*' -- $line
            set cd_path (string replace '%[1]s' '' -- $line)
        else
            printf '%%s\n' $line
        end
    end
    if test $exit_code -eq 0; and test -n "$cd_path"
        cd $cd_path
    end
    return $exit_code
end
`

var autocdShells = []string{"bash", "zsh", "fish"}

func newAutocdCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "autocd [bash|zsh|fish]",
		Short:     "Print the shell wrapper that changes directory after checkout",
		GroupID:   GroupUtility,
		ValidArgs: autocdShells,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Print a shell function named gww that wraps the binary. It passes all
output through except the GWW_CD: line, and changes into that directory when
the command succeeds.

The shell defaults to the basename of $SHELL, or bash when unknown.`,
		Example: `  # Bash / Zsh (add to ~/.bashrc or ~/.zshrc)
  eval "$(gww autocd)"

  # Fish (add to ~/.config/fish/config.fish)
  gww autocd fish | source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := firstArg(args)
			if shell == "" {
				shell = shellFromEnv(os.Getenv("SHELL"))
			}
			output.FromContext(cmd.Context()).Print(autocdScript(shell))
			return nil
		},
	}
}

func shellFromEnv(shell string) string {
	name := filepath.Base(shell)
	for _, s := range autocdShells {
		if name == s {
			return s
		}
	}
	return "bash"
}

func autocdScript(shell string) string {
	tmpl := posixWrapper
	if strings.EqualFold(shell, "fish") {
		tmpl = fishWrapper
	}
	return fmt.Sprintf(tmpl, output.CdPrefix)
}
