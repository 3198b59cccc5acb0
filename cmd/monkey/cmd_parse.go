package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
)

var dumpConfig = spew.ConfigState{Indent: `  `, DisableMethods: true, DisablePointerAddresses: true}

// parseEnv provides the environment for the parse command.
type parseEnv struct {
	dump bool
}

// getParseCmd returns the definition of the parse command.
func getParseCmd(root *rootEnv) *cobra.Command {
	env := &parseEnv{}
	cmd := &cobra.Command{
		Use:   "parse <source>...",
		Short: "Parse the source given on the command line and print its canonical form.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  env.runParseCmd,
	}
	cmd.Flags().BoolVar(&env.dump, "dump", false, "Print the full syntax tree instead of its canonical form")
	return cmd
}

// runParseCmd executes the parse command.
func (p *parseEnv) runParseCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	program, errs, err := monkey.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	if p.dump {
		fmt.Fprint(out, dumpConfig.Sdump(program))
	} else {
		fmt.Fprintln(out, program)
	}
	for _, e := range errs {
		fmt.Fprintf(out, "\t%s\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d parse errors", len(errs))
	}
	return nil
}
