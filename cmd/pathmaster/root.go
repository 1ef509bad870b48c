package main

import (
	"fmt"

	"github.com/arthur-debert/pathmaster/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "pathmaster",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddCommand(
		newAddCmd(),
		newDeleteCmd(),
		newListCmd(),
		newCheckCmd(),
		newFlushCmd(),
		newHistoryCmd(),
		newRestoreCmd(),
		newGenConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pathmaster version %s\n", version)
			cmd.Printf("  commit: %s\n", commit)
			cmd.Printf("  built:  %s\n", date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(pathmaster completion bash)

Zsh:
  $ pathmaster completion zsh > "${fpath[1]}/_pathmaster"

Fish:
  $ pathmaster completion fish | source
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "PATHMASTER",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "dir", ".", MsgFlagManDir)
	return cmd
}
