package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `To load completions:

Bash:
  $ source <(timeslash completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ timeslash completion bash > /etc/bash_completion.d/timeslash
  # macOS:
  $ timeslash completion bash > /usr/local/etc/bash_completion.d/timeslash

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ timeslash completion zsh > "${fpath[1]}/_timeslash"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ timeslash completion fish | source

  # To load completions for each session, execute once:
  $ timeslash completion fish > ~/.config/fish/completions/timeslash.fish
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			fmt.Print(humanBashCompletion)
		case "zsh":
			rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			rootCmd.GenPowerShellCompletion(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// humanBashCompletion is a handcrafted, minimal bash completion script
// that avoids the robotic verbosity of auto-generated ones.
const humanBashCompletion = `
# timeslash bash completion

_timeslash_completion() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="eval range serve update completion help"

    case "${prev}" in
        eval)
            COMPREPLY=( $(compgen -W "--format --tz --at --help" -- ${cur}) )
            return 0
            ;;
        range)
            COMPREPLY=( $(compgen -W "--format --tz --at --help" -- ${cur}) )
            return 0
            ;;
        serve)
            COMPREPLY=( $(compgen -W "--listen --help" -- ${cur}) )
            return 0
            ;;
        update)
            COMPREPLY=( $(compgen -W "--help" -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- ${cur}) )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "plain json yaml unix" -- ${cur}) )
            return 0
            ;;
        --tz)
            local zones="Local UTC Europe/Amsterdam America/New_York Asia/Tokyo"
            COMPREPLY=( $(compgen -W "${zones}" -- ${cur}) )
            return 0
            ;;
        *)
            ;;
    esac

    # Global Flags
    if [[ ${cur} == -* ]] ; then
        COMPREPLY=( $(compgen -W "--help --version --config --tz --at" -- ${cur}) )
        return 0
    fi

    # Subcommands
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
}

complete -F _timeslash_completion timeslash
`
