package main

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/hashicorp/go-multierror"
	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runEnv provides the environment for the run command.
type runEnv struct {
	root     *rootEnv
	failFast bool
}

// getRunCmd returns the definition of the run command.
func getRunCmd(root *rootEnv) *cobra.Command {
	env := &runEnv{root: root}
	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Evaluate source files and print their results.",
		Long: `
Files are evaluated concurrently, at most 'parallelism' at a time, each with its own lexer,
parser, and evaluator. Results are printed in the order the files were given. The command
fails when any file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: env.runRunCmd,
	}
	cmd.Flags().BoolVar(&env.failFast, "fail-fast", false, "Stop starting new files after the first failure")
	return cmd
}

// runRunCmd executes the run command.
func (r *runEnv) runRunCmd(cmd *cobra.Command, args []string) error {
	results, err := r.runFiles(cmd, args)
	p := r.root.printer(cmd, len(args) > 1)
	for _, res := range results {
		if res == nil {
			continue
		}
		if perr := p.print(res); perr != nil {
			return perr
		}
	}
	return err
}

// runFiles reads and evaluates the given files. The returned slice has one entry per file;
// entries of files that were never started are nil. All failures are combined in the
// returned error.
func (r *runEnv) runFiles(cmd *cobra.Command, files []string) ([]*monkey.Result, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := r.root.logger(cmd)
	results := make([]*monkey.Result, len(files))
	errs := make([]error, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.root.cfg.Parallelism)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			src, err := ioutil.ReadFile(file)
			if err != nil {
				errs[i] = err
			} else {
				results[i] = monkey.Run(file, string(src), logger)
				if results[i].Failed() {
					errs[i] = fmt.Errorf("%s: evaluation failed", file)
				}
			}
			if errs[i] != nil && r.failFast {
				return errs[i]
			}
			return nil
		})
	}
	_ = g.Wait()

	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return results, result.ErrorOrNil()
}
