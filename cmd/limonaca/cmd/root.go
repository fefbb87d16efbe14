// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     cmd
// Description: Root command, configuration and logger setup
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
	mdwlog "github.com/msto63/limonaca/foundation/core/log"
	"github.com/msto63/limonaca/foundation/limonaca"
	"github.com/msto63/limonaca/internal/render"
	"github.com/msto63/limonaca/pkg/core/config"
	"github.com/msto63/limonaca/pkg/core/logging"
)

// app holds the flags and the state shared by all sub commands of one run
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg    *config.Config
	logger *mdwlog.Logger
}

// Execute runs the command line with the process arguments and returns the
// exit status
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command line with the given arguments and streams
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var src *sourceError
	text := ""
	if errors.As(err, &src) {
		text = src.source
	}
	_ = render.Error(stderr, err, text, a.style())
	return exitCode(err)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "limonaca",
		Short: "Limonaca - tokenizer and parser for the Limonaca language",
		Long: `limonaca reads Limonaca source, splits it into tokens and parses
it into a syntax tree.

Commands:
  tokens   - print the token listing of a source file
  parse    - print the syntax tree of a source file
  repl     - parse statements interactively
  version  - print version information

Without a file argument the commands read code.liml from the current
directory; "-" reads standard input.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: $LIMONACA_CONFIG or ./configs/limonaca.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output (debug logging)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		a.newTokensCmd(),
		a.newParseCmd(),
		a.newREPLCmd(),
		a.newVersionCmd(),
	)
	return root
}

// setup loads .env, the configuration and creates the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.cfgFile != "" {
		path = a.cfgFile
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.General.LogLevel = "debug"
	}
	if a.noColor {
		cfg.Output.NoColor = true
	}
	a.cfg = cfg

	loggerConfig := logging.FromConfig(cfg)
	loggerConfig.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(loggerConfig)
	mdwlog.SetDefault(a.logger)

	if path != "" {
		a.logger.Debug("Configuration loaded", mdwlog.Fields{"path": path})
	}
	return nil
}

// engine creates an engine from the configuration; lenient forces lenient
// parenthesis handling
func (a *app) engine(lenient bool) *limonaca.Engine {
	return limonaca.New(limonaca.Options{
		Logger:        a.logger,
		LenientParens: lenient || a.cfg.Parser.LenientParens,
		MaxTokens:     a.cfg.Parser.MaxTokens,
	})
}

// style returns the terminal style; colours are off until the config is
// loaded
func (a *app) style() render.Style {
	if a.cfg == nil {
		return render.Style{}
	}
	return render.Style{Color: !a.cfg.Output.NoColor}
}

// sourceError attaches the source text to a failure so the error output
// can show the offending line
type sourceError struct {
	err    error
	source string
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

// exitCode maps err to a process exit status through its error code
func exitCode(err error) int {
	var coded interface{ Code() mdwerror.Code }
	if errors.As(err, &coded) {
		return coded.Code().ExitCode()
	}
	// Flag and argument errors from cobra
	return 1
}
