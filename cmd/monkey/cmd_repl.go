package main

import (
	"bufio"
	"fmt"

	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
)

// getReplCmd returns the definition of the repl command.
func getReplCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read lines from standard input and evaluate each one.",
		Long: `
Each line is evaluated on its own and the result, the parse errors, or the evaluation error
is printed. The session ends at end of input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			p := root.printer(cmd, false)
			logger := root.logger(cmd)
			for {
				fmt.Fprint(out, root.cfg.Prompt)
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}
				line := in.Text()
				if line == "" {
					continue
				}
				if err := p.print(monkey.Run("<stdin>", line, logger)); err != nil {
					return err
				}
			}
		},
	}
}
