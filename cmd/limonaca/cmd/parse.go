// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     cmd
// Description: parse command - prints the syntax tree of a source
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/limonaca/foundation/limonaca"
	mdwsource "github.com/msto63/limonaca/foundation/limonaca/source"
	"github.com/msto63/limonaca/internal/render"
)

type parseOptions struct {
	format     string
	showTokens bool
	lenient    bool
	positions  bool
}

func (a *app) newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Prints the syntax tree of a source file",
		Long: `Parses every statement of the source and prints the syntax trees.

Formats:
  tree  - indented tree, one node per line (default)
  json  - JSON array of nodes
  yaml  - YAML sequence of nodes

With --tokens the tree output starts with the token listing; json and
yaml then contain the run id, the tokens and the statements.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("tokens") {
				opts.showTokens = a.cfg.Output.ShowTokens
			}
			return a.runParse(cmd, sourcePath(args), opts)
		},
	}

	parseCmd.Flags().StringVarP(&opts.format, "format", "f", "tree", "Output format (tree, json, yaml)")
	parseCmd.Flags().BoolVarP(&opts.showTokens, "tokens", "t", false, "Also print the tokens")
	parseCmd.Flags().BoolVar(&opts.lenient, "lenient-parens", false, "Do not require ')' after a parenthesised expression")
	parseCmd.Flags().BoolVarP(&opts.positions, "positions", "p", false, "Show line:column of tokens and nodes")
	return parseCmd
}

func (a *app) runParse(cmd *cobra.Command, path string, opts *parseOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	engine := a.engine(opts.lenient)

	var (
		result *limonaca.Result
		text   string
	)
	if path == mdwsource.StdinName {
		if text, err = a.readSource(cmd, path); err != nil {
			return err
		}
		result, err = engine.ParseProgram(text)
	} else {
		result, err = engine.ParseFile(path)
		if err != nil {
			// Reload only to show the offending line
			text, _ = mdwsource.Load(path)
		}
	}
	if err != nil {
		return &sourceError{err: err, source: text}
	}

	out := cmd.OutOrStdout()
	style := a.style()
	style.Positions = opts.positions

	if format != render.FormatTree {
		if opts.showTokens {
			return render.Encode(out, format, result)
		}
		return render.Write(out, format, result.Statements, style)
	}

	if opts.showTokens {
		fmt.Fprintln(out, "Tokens:")
		if err := render.Tokens(out, result.Tokens, style); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "Parsed AST:")
	return render.Tree(out, result.Statements, style)
}
