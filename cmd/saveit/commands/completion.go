package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for saveit.

To load completions:

Bash:
  $ source <(saveit completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ saveit completion bash > /etc/bash_completion.d/saveit
  # macOS:
  $ saveit completion bash > $(brew --prefix)/etc/bash_completion.d/saveit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ saveit completion zsh > "${fpath[1]}/_saveit"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ saveit completion fish | source
  # To load completions for each session, execute once:
  $ saveit completion fish > ~/.config/fish/completions/saveit.fish

PowerShell:
  PS> saveit completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> saveit completion powershell > saveit.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
