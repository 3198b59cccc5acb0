package main

import (
	"fmt"

	"github.com/lyraproj/monkey-evaluator/mspec"
	"github.com/lyraproj/monkey-evaluator/utils"
	"github.com/spf13/cobra"
)

// getSpecCmd returns the definition of the spec command.
func getSpecCmd(root *rootEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "spec <dir>",
		Short: "Run the YAML example suites found in a directory.",
		Long: `
Every .yaml file in the directory is a suite. Suites whose language range does not include
the language version are skipped. The command fails when any case fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suites, err := mspec.LoadSuites(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, s := range suites {
				ok, err := s.Applies()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(out, "%s: skipped (language %s)\n", s.Name, s.Language)
					continue
				}
				for _, o := range s.Run(cmd.Context(), root.cfg.Parallelism) {
					if o.Err == nil {
						fmt.Fprintf(out, "ok\t%s/%s\n", s.Name, o.Case.Name)
						continue
					}
					failed++
					fmt.Fprintf(out, "FAIL\t%s/%s\n\t%s\n", s.Name, o.Case.Name, utils.Indent(o.Err.Error(), "\t"))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d cases failed", failed)
			}
			return nil
		},
	}
}
