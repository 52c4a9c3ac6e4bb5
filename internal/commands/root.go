package commands

import (
	"github.com/spf13/cobra"

	"github.com/financely/financely/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "financely",
		Short:   "Personal finance insights and advice",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "workspace directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newAdviseCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSIPCommand())

	return rootCmd
}
