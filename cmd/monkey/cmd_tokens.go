package main

import (
	"fmt"
	"strings"

	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
)

// getTokensCmd returns the definition of the tokens command.
func getTokensCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <source>...",
		Short: "Print the tokens of the source given on the command line, one per line.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := monkey.Tokens(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			for _, t := range ts {
				fmt.Fprintf(out, "%d:%d\t%s\n", t.Line(), t.Pos(), t)
			}
			return err
		},
	}
}
