package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "twupgrade-cli",
		Short: "Tailwind upgrade notes CLI",
		Long: `twupgrade-cli works with the Tailwind v3 vs v4 article without running the server.

Available commands:
  render     Render the page to stdout, or export the page and its icons to a directory
  check      Validate the article content
  version    Print the version

Use "twupgrade-cli [command] --help" for more information about a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd(), newCheckCmd(), newVersionCmd())
	return root
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "❌ %v\n", err)
		os.Exit(1)
	}
}
