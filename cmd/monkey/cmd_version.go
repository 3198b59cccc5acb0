package main

import (
	"fmt"

	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
)

// getVersionCmd returns the definition of the version command.
func getVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the language implemented by this tool.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "monkey language %s\n", monkey.LanguageVersion)
		},
	}
}
