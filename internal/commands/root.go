package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillbooks/statement-parser/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "statement-parser",
		Short:   "Parse Chase bank statement PDFs into classified transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
