package main

import (
	"github.com/lyraproj/monkey-evaluator/config"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/spf13/cobra"
)

// rootEnv holds the settings shared by all commands. Flags that are given on the command
// line override the values read from the configuration file.
type rootEnv struct {
	configPath string
	format     string
	logLevel   string
	cfg        *config.Config
}

// getRootCmd returns the command tree of the monkey tool
func getRootCmd() *cobra.Command {
	env := &rootEnv{}
	cmd := &cobra.Command{
		Use:   "monkey",
		Short: "Lex, parse, and evaluate monkey source.",
		Long: `
monkey evaluates programs written in a small expression language with integers, booleans,
prefix and infix operators, conditionals, and early return.`,
		SilenceUsage:      true,
		PersistentPreRunE: env.load,
	}

	cmd.PersistentFlags().StringVar(&env.configPath, "config", config.DefaultFile, "Configuration file")
	cmd.PersistentFlags().StringVar(&env.format, "format", "", "Output format, one of text, json, or proto")
	cmd.PersistentFlags().StringVar(&env.logLevel, "log-level", "", "Lowest level of log entries to output")

	cmd.AddCommand(
		getEvalCmd(env),
		getRunCmd(env),
		getParseCmd(env),
		getTokensCmd(env),
		getReplCmd(env),
		getSpecCmd(env),
		getVersionCmd(),
	)
	return cmd
}

// load reads the configuration and applies the flag overrides
func (r *rootEnv) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		return err
	}
	if r.format != "" {
		cfg.Format = r.format
	}
	if r.logLevel != "" {
		cfg.LogLevel = eval.LogLevel(r.logLevel)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// logger returns a logger that writes to the error stream of cmd
func (r *rootEnv) logger(cmd *cobra.Command) eval.Logger {
	return eval.NewWriterLogger(cmd.ErrOrStderr(), cmd.ErrOrStderr(), r.cfg.LogLevel)
}

func (r *rootEnv) printer(cmd *cobra.Command, withName bool) *printer {
	return &printer{format: r.cfg.Format, out: cmd.OutOrStdout(), withName: withName}
}
