// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     cmd
// Description: repl command - interactive parser TUI
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/limonaca/foundation/core/log"
	"github.com/msto63/limonaca/foundation/limonaca"
	"github.com/msto63/limonaca/internal/tui/repl"
)

func (a *app) newREPLCmd() *cobra.Command {
	var lenient bool

	replCmd := &cobra.Command{
		Use:     "repl",
		Aliases: []string{"shell", "interactive"},
		Short:   "Parses statements interactively",
		Long: `Starts the interactive REPL. Every line is parsed as one statement
and its syntax tree, or the error, is added to the history.

Shortcuts:
  Enter       Parse the line
  Up / Down   Recall previous lines
  PgUp/PgDn   Scroll the history
  Ctrl+L      Clear the history
  Esc/Ctrl+C  Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would corrupt the alternate screen
			engine := limonaca.New(limonaca.Options{
				Logger:        mdwlog.Discard(),
				LenientParens: lenient || a.cfg.Parser.LenientParens,
				MaxTokens:     a.cfg.Parser.MaxTokens,
			})

			return repl.Run(repl.Config{
				Engine:       engine,
				Prompt:       a.cfg.REPL.Prompt,
				HistoryLimit: a.cfg.REPL.HistoryLimit,
				Style:        a.style(),
			})
		},
	}

	replCmd.Flags().BoolVar(&lenient, "lenient-parens", false, "Do not require ')' after a parenthesised expression")
	return replCmd
}
