package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/savedir"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for plax.

To load completions:

Bash:
  $ source <(plax completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ plax completion bash > /etc/bash_completion.d/plax
  # macOS:
  $ plax completion bash > $(brew --prefix)/etc/bash_completion.d/plax

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ plax completion zsh > "${fpath[1]}/_plax"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ plax completion fish | source

  # To load completions for each session, execute once:
  $ plax completion fish > ~/.config/fish/completions/plax.fish

PowerShell:
  PS> plax completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> plax completion powershell > plax.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return nil
		},
	}

	return cmd
}

// completeSaves offers save names from the save directory for the first
// argument of commands that take a <save>.
func (c *CLI) completeSaves(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, err := c.dir()
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	saves, err := savedir.List(dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveDefault
	}
	var names []string
	for _, s := range saves {
		if strings.HasPrefix(s.Name, toComplete) {
			names = append(names, s.Name+"\t"+s.Subject)
		}
	}
	return names, cobra.ShellCompDirectiveDefault
}

func (c *CLI) registerSaveCompletion(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		if cmd.HasSubCommands() {
			c.registerSaveCompletion(cmd)
			continue
		}
		if strings.Contains(cmd.Use, "<save>") && cmd.ValidArgsFunction == nil {
			cmd.ValidArgsFunction = c.completeSaves
		}
	}
}
