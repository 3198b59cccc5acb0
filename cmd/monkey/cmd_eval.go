package main

import (
	"fmt"
	"strings"

	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
)

// getEvalCmd returns the definition of the eval command.
func getEvalCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <source>...",
		Short: "Evaluate the source given on the command line and print the result.",
		Long: `
All arguments are joined with a space into one source. The result is printed in the
configured format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := monkey.Run("<command line>", strings.Join(args, " "), root.logger(cmd))
			if err := root.printer(cmd, false).print(r); err != nil {
				return err
			}
			if r.Failed() {
				return fmt.Errorf("evaluation failed")
			}
			return nil
		},
	}
}
